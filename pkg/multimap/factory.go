package multimap

import (
	"cmp"

	"github.com/persistent-go/mapz/pkg/either"
	"github.com/persistent-go/mapz/pkg/ordmap"
)

// Family identifies which value-container variant a multimap uses. A
// multimap's family is fixed at construction for its entire lifetime.
type Family string

const (
	// FamilySeq preserves per-key insertion order and permits duplicates.
	FamilySeq Family = "seq"

	// FamilySet deduplicates values by equality.
	FamilySet Family = "set"

	// FamilySortedSet deduplicates values by comparator equivalence and
	// iterates them in comparator order.
	FamilySortedSet Family = "sortedset"
)

// Factory fixes the container family, the value equality, and the comparator
// (if any) used by every multimap it constructs.
type Factory[K cmp.Ordered, V any] struct {
	family  Family
	equal   func(a, b V) bool
	compare func(a, b V) int
}

// WithSeq selects the duplicate-permitting, insertion-ordered container
// family.
func WithSeq[K cmp.Ordered, V comparable]() Factory[K, V] {
	return Factory[K, V]{
		family: FamilySeq,
		equal:  func(a, b V) bool { return a == b },
	}
}

// WithSet selects the equality-deduplicating container family.
func WithSet[K cmp.Ordered, V comparable]() Factory[K, V] {
	return Factory[K, V]{
		family: FamilySet,
		equal:  func(a, b V) bool { return a == b },
	}
}

// WithSortedSet selects the comparator-ordered container family using the
// values' natural order. Value types without a natural order must use
// WithSortedSetFunc instead; the constraint enforces this at compile time.
func WithSortedSet[K cmp.Ordered, V cmp.Ordered]() Factory[K, V] {
	return WithSortedSetFunc[K](cmp.Compare[V])
}

// WithSortedSetFunc selects the comparator-ordered container family using the
// supplied total order. Two values the comparator maps to zero are treated as
// the same value.
func WithSortedSetFunc[K cmp.Ordered, V any](compare func(a, b V) int) Factory[K, V] {
	return Factory[K, V]{
		family:  FamilySortedSet,
		equal:   func(a, b V) bool { return compare(a, b) == 0 },
		compare: compare,
	}
}

// Family returns the container family this factory selects.
func (f Factory[K, V]) Family() Family { return f.family }

func (f Factory[K, V]) newContainer() container[V] {
	switch f.family {
	case FamilySeq:
		return &seqContainer[V]{equal: f.equal}
	case FamilySet:
		return &setContainer[V]{equal: f.equal}
	case FamilySortedSet:
		return newSortedContainer(f.compare)
	default:
		panic("multimap: factory constructed without a container family")
	}
}

// Empty constructs a multimap with no entries.
func (f Factory[K, V]) Empty() *Multimap[K, V] {
	return &Multimap[K, V]{
		entries: ordmap.New[K, container[V]](),
		factory: f,
	}
}

// Entry is an immutable (key, value) pair.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// E constructs an Entry.
func E[K cmp.Ordered, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// Of constructs a multimap by applying Put left-to-right over the entries.
// Entries sharing a key accumulate into that key's container; they never
// overwrite one another.
func (f Factory[K, V]) Of(entries ...Entry[K, V]) *Multimap[K, V] {
	m := f.Empty()
	for _, entry := range entries {
		m = m.Put(entry.Key, entry.Value)
	}
	return m
}

// OfFlat constructs a multimap from an alternating key1, value1, key2,
// value2, … argument list. An odd-length list yields an *ArityError; an
// argument whose dynamic type does not match its position yields a
// *PairTypeError. Both are construction-time failures with no partial result.
func (f Factory[K, V]) OfFlat(keysAndValues ...any) (*Multimap[K, V], error) {
	if len(keysAndValues)%2 != 0 {
		return nil, &ArityError{Count: len(keysAndValues)}
	}

	m := f.Empty()
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(K)
		if !ok {
			return nil, &PairTypeError{Index: i, Position: "key", Value: keysAndValues[i]}
		}
		value, ok := keysAndValues[i+1].(V)
		if !ok {
			return nil, &PairTypeError{Index: i + 1, Position: "value", Value: keysAndValues[i+1]}
		}
		m = m.Put(key, value)
	}
	return m, nil
}

// MustOfFlat is OfFlat, panicking on a malformed argument list.
func (f Factory[K, V]) MustOfFlat(keysAndValues ...any) *Multimap[K, V] {
	m, err := f.OfFlat(keysAndValues...)
	if err != nil {
		panic(err)
	}
	return m
}

// TryOfFlat is OfFlat with the outcome expressed as an Either.
func (f Factory[K, V]) TryOfFlat(keysAndValues ...any) either.Either[error, *Multimap[K, V]] {
	m, err := f.OfFlat(keysAndValues...)
	if err != nil {
		return either.Left[error, *Multimap[K, V]](err)
	}
	return either.Right[error](m)
}
