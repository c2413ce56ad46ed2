// Package multimap provides a persistent multimap: an immutable mapping from
// a key to one or more values. Keys iterate in the order they were first
// inserted, and the per-key value collection is one of three container
// families selected at construction: an insertion-ordered sequence permitting
// duplicates, an equality-deduplicating set, or a comparator-ordered set.
//
// Every operation that would change a multimap returns a new one; the
// receiver and all previously obtained versions remain valid and unchanged.
// Because nothing already published is ever mutated, any number of goroutines
// may read any version without locking.
package multimap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/persistent-go/mapz/pkg/either"
	"github.com/persistent-go/mapz/pkg/ordmap"
)

// Multimap is a persistent mapping from keys to non-empty value containers.
// Construct one through a Factory; the zero value is not usable.
type Multimap[K cmp.Ordered, V any] struct {
	entries *ordmap.Map[K, container[V]]
	factory Factory[K, V]

	// size is the sum of all container cardinalities, maintained
	// incrementally so Size is O(1).
	size int
}

// Family returns the container family fixed at construction.
func (m *Multimap[K, V]) Family() Family { return m.factory.family }

// Size returns the total number of values across all keys. A deduplicating
// family counts each retained value once, so Size reflects deduplication.
func (m *Multimap[K, V]) Size() int { return m.size }

// Len returns the number of keys present.
func (m *Multimap[K, V]) Len() int { return m.entries.Len() }

// IsEmpty returns true if the multimap holds no entries.
func (m *Multimap[K, V]) IsEmpty() bool { return m.entries.IsEmpty() }

// Has returns true if the key is found in the multimap.
func (m *Multimap[K, V]) Has(key K) bool { return m.entries.Has(key) }

// CountOf returns the number of values stored for the given key, zero if the
// key is absent.
func (m *Multimap[K, V]) CountOf(key K) int {
	c, ok := m.entries.Get(key)
	if !ok {
		return 0
	}
	return c.Len()
}

// Get returns the container of values for the given key and whether the key
// existed. A returned container is never empty.
func (m *Multimap[K, V]) Get(key K) (Container[V], bool) {
	c, ok := m.entries.Get(key)
	if !ok {
		return nil, false
	}
	return c, true
}

// MustGet returns the container of values for the given key, panicking if the
// key is absent. Use Get when absence is an expected outcome.
func (m *Multimap[K, V]) MustGet(key K) Container[V] {
	c, ok := m.Get(key)
	if !ok {
		panic(fmt.Sprintf("multimap: no values stored for key %v", key))
	}
	return c
}

// Put returns a new multimap with the value added under the given key. A new
// key is appended at the end of the key iteration order; an existing key
// keeps its position. How the value lands in the key's container depends on
// the family: seq appends, set ignores an equal duplicate, sortedset replaces
// a comparator-equivalent value.
func (m *Multimap[K, V]) Put(key K, value V) *Multimap[K, V] {
	current, ok := m.entries.Get(key)
	if !ok {
		current = m.factory.newContainer()
	}
	next := current.add(value)
	if ok && next == current {
		return m
	}
	return &Multimap[K, V]{
		entries: m.entries.Put(key, next),
		factory: m.factory,
		size:    m.size + next.Len() - current.Len(),
	}
}

// Remove returns a new multimap with the value removed from the given key's
// container. In the seq family every occurrence equal to the value is
// dropped. A key whose container becomes empty is removed entirely. Removing
// from an absent key, or removing an absent value, returns the receiver.
func (m *Multimap[K, V]) Remove(key K, value V) *Multimap[K, V] {
	current, ok := m.entries.Get(key)
	if !ok {
		return m
	}
	next := current.remove(value)
	if next == current {
		return m
	}
	if next.isEmpty() {
		return &Multimap[K, V]{
			entries: m.entries.Delete(key),
			factory: m.factory,
			size:    m.size - current.Len(),
		}
	}
	return &Multimap[K, V]{
		entries: m.entries.Put(key, next),
		factory: m.factory,
		size:    m.size - current.Len() + next.Len(),
	}
}

// RemoveKey returns a new multimap with the key and all of its values
// removed. Removing an absent key returns the receiver.
func (m *Multimap[K, V]) RemoveKey(key K) *Multimap[K, V] {
	current, ok := m.entries.Get(key)
	if !ok {
		return m
	}
	return &Multimap[K, V]{
		entries: m.entries.Delete(key),
		factory: m.factory,
		size:    m.size - current.Len(),
	}
}

// Merge returns a new multimap containing the receiver's entries plus every
// (key, value) pair of other, applied as Puts in other's iteration order.
// Merging across container families is a configuration error. Two sortedset
// multimaps are additionally assumed to share a comparator; Go cannot compare
// functions, so that part of the contract is the caller's to uphold.
func (m *Multimap[K, V]) Merge(other *Multimap[K, V]) (*Multimap[K, V], error) {
	if m.factory.family != other.factory.family {
		return nil, &FamilyMismatchError{Receiver: m.factory.family, Argument: other.factory.family}
	}

	merged := m
	for key, value := range other.All() {
		merged = merged.Put(key, value)
	}
	return merged, nil
}

// TryMerge is Merge with the outcome expressed as an Either.
func (m *Multimap[K, V]) TryMerge(other *Multimap[K, V]) either.Either[error, *Multimap[K, V]] {
	merged, err := m.Merge(other)
	if err != nil {
		return either.Left[error, *Multimap[K, V]](err)
	}
	return either.Right[error](merged)
}

// Keys yields the keys in first-insertion order. The sequence is finite and,
// because the multimap is immutable, restartable.
func (m *Multimap[K, V]) Keys() iter.Seq[K] { return m.entries.Keys() }

// All yields every (key, value) pair: keys in first-insertion order and, per
// key, values in the container's order. Rebuilding a multimap from this
// sequence with the same factory yields one Equal to the original.
func (m *Multimap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, c := range m.entries.All() {
			for value := range c.Values() {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// Values yields every value, grouped by key in key iteration order.
func (m *Multimap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range m.All() {
			if !yield(value) {
				return
			}
		}
	}
}

// Equal reports whether the two multimaps use the same container family and
// hold the same keys with, per key, equal containers under the family's own
// equality: order-sensitive for seq, membership-only for set and sortedset.
// Key insertion order is not significant.
func (m *Multimap[K, V]) Equal(other *Multimap[K, V]) bool {
	if other == nil || m.factory.family != other.factory.family {
		return false
	}
	if m.size != other.size || m.entries.Len() != other.entries.Len() {
		return false
	}
	for key, c := range m.entries.All() {
		oc, ok := other.entries.Get(key)
		if !ok || !c.equalTo(oc) {
			return false
		}
	}
	return true
}

// Hash returns a hash code consistent with Equal. Hashing is commutative
// across keys and, within set and sortedset containers, across values, so
// construction order never affects it.
func (m *Multimap[K, V]) Hash() uint64 {
	h := xxhash.Sum64String(string(m.factory.family))
	for key, c := range m.entries.All() {
		h += hashValue(key)*31 + c.hash()
	}
	return h
}

func (m *Multimap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString(string(m.factory.family))
	sb.WriteByte('(')
	first := true
	for key, value := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v=%v", key, value)
	}
	sb.WriteByte(')')
	return sb.String()
}
