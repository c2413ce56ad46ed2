package multimap

import (
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/persistent-go/mapz/internal/slicez"
)

// Container is a read-only view over the values stored for a single key. A
// container obtained from a multimap is never empty: a key whose last value
// is removed leaves the map instead of retaining an empty container.
type Container[V any] interface {
	// Len returns the number of values in the container.
	Len() int

	// Contains returns true if the container holds the given value.
	Contains(value V) bool

	// Values yields the contained values in the container's defined order.
	// The sequence is finite and restartable.
	Values() iter.Seq[V]
}

// container is the full capability surface of the three variants. Mutators
// return a new container; a mutator that changes nothing returns its
// receiver, which callers use to short-circuit.
type container[V any] interface {
	Container[V]

	add(value V) container[V]
	remove(value V) container[V]
	isEmpty() bool
	equalTo(other container[V]) bool
	hash() uint64
}

// seqContainer preserves insertion order and permits duplicate values.
// Equality between two seqContainers is order-sensitive.
type seqContainer[V any] struct {
	values []V
	equal  func(a, b V) bool
}

func (c *seqContainer[V]) Len() int { return len(c.values) }

func (c *seqContainer[V]) Contains(value V) bool {
	for _, v := range c.values {
		if c.equal(v, value) {
			return true
		}
	}
	return false
}

func (c *seqContainer[V]) Values() iter.Seq[V] { return sliceValues(c.values) }

func (c *seqContainer[V]) add(value V) container[V] {
	values := make([]V, 0, len(c.values)+1)
	values = append(append(values, c.values...), value)
	return &seqContainer[V]{values: values, equal: c.equal}
}

// remove drops every occurrence equal to the value.
func (c *seqContainer[V]) remove(value V) container[V] {
	remaining := slicez.Filter(c.values, func(v V) bool { return !c.equal(v, value) })
	if len(remaining) == len(c.values) {
		return c
	}
	return &seqContainer[V]{values: remaining, equal: c.equal}
}

func (c *seqContainer[V]) isEmpty() bool { return len(c.values) == 0 }

func (c *seqContainer[V]) equalTo(other container[V]) bool {
	o, ok := other.(*seqContainer[V])
	if !ok || len(o.values) != len(c.values) {
		return false
	}
	for i, v := range c.values {
		if !c.equal(v, o.values[i]) {
			return false
		}
	}
	return true
}

func (c *seqContainer[V]) hash() uint64 {
	var h uint64
	for _, v := range c.values {
		h = h*31 + hashValue(v)
	}
	return h
}

// setContainer deduplicates by equality. Its iteration order is the order in
// which values were first added, but equality between two setContainers is
// membership-only.
type setContainer[V any] struct {
	values []V
	equal  func(a, b V) bool
}

func (c *setContainer[V]) Len() int { return len(c.values) }

func (c *setContainer[V]) Contains(value V) bool {
	for _, v := range c.values {
		if c.equal(v, value) {
			return true
		}
	}
	return false
}

func (c *setContainer[V]) Values() iter.Seq[V] { return sliceValues(c.values) }

func (c *setContainer[V]) add(value V) container[V] {
	if c.Contains(value) {
		return c
	}
	values := make([]V, 0, len(c.values)+1)
	values = append(append(values, c.values...), value)
	return &setContainer[V]{values: values, equal: c.equal}
}

func (c *setContainer[V]) remove(value V) container[V] {
	remaining := slicez.Filter(c.values, func(v V) bool { return !c.equal(v, value) })
	if len(remaining) == len(c.values) {
		return c
	}
	return &setContainer[V]{values: remaining, equal: c.equal}
}

func (c *setContainer[V]) isEmpty() bool { return len(c.values) == 0 }

func (c *setContainer[V]) equalTo(other container[V]) bool {
	o, ok := other.(*setContainer[V])
	if !ok || len(o.values) != len(c.values) {
		return false
	}
	for _, v := range c.values {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

func (c *setContainer[V]) hash() uint64 {
	var h uint64
	for _, v := range c.values {
		h += hashValue(v)
	}
	return h
}

// sortedContainer deduplicates by the comparator's notion of equivalence and
// iterates in comparator order. Adding a value the comparator deems
// equivalent to a retained one replaces the retained value.
type sortedContainer[V any] struct {
	set     *treeset.Set
	compare func(a, b V) int
}

func newSortedContainer[V any](compare func(a, b V) int) *sortedContainer[V] {
	return &sortedContainer[V]{
		set: treeset.NewWith(func(a, b any) int {
			return compare(a.(V), b.(V))
		}),
		compare: compare,
	}
}

func (c *sortedContainer[V]) Len() int { return c.set.Size() }

func (c *sortedContainer[V]) Contains(value V) bool { return c.set.Contains(value) }

func (c *sortedContainer[V]) Values() iter.Seq[V] {
	values := slicez.Map(c.set.Values(), func(raw any) V { return raw.(V) })
	return sliceValues(values)
}

func (c *sortedContainer[V]) clone() *sortedContainer[V] {
	next := newSortedContainer(c.compare)
	next.set.Add(c.set.Values()...)
	return next
}

func (c *sortedContainer[V]) add(value V) container[V] {
	next := c.clone()
	// An equivalent value is replaced by the newly supplied one.
	next.set.Remove(value)
	next.set.Add(value)
	return next
}

func (c *sortedContainer[V]) remove(value V) container[V] {
	if !c.set.Contains(value) {
		return c
	}
	next := c.clone()
	next.set.Remove(value)
	return next
}

func (c *sortedContainer[V]) isEmpty() bool { return c.set.Empty() }

func (c *sortedContainer[V]) equalTo(other container[V]) bool {
	o, ok := other.(*sortedContainer[V])
	if !ok || o.set.Size() != c.set.Size() {
		return false
	}
	for value := range c.Values() {
		if !o.Contains(value) {
			return false
		}
	}
	return true
}

func (c *sortedContainer[V]) hash() uint64 {
	var h uint64
	for value := range c.Values() {
		h += hashValue(value)
	}
	return h
}

func sliceValues[V any](values []V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// hashValue hashes a value through its Go-syntax representation, so values
// whose types render equal values identically hash consistently with
// equality.
func hashValue(v any) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%#v", v))
}
