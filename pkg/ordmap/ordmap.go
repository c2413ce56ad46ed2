// Package ordmap provides a persistent map whose key iteration follows the
// order in which each key was first inserted.
package ordmap

import (
	"cmp"
	"iter"

	"github.com/jzelinskie/persistent"
)

// slot pairs a stored value with the key's position in the insertion order.
type slot[V any] struct {
	pos   uint64
	value V
}

// Map is a persistent mapping from keys to values. Iterating a Map yields its
// keys in the order in which each key was *first* inserted; re-inserting an
// existing key updates its value but never changes its position.
//
// Every mutating operation returns a new Map and leaves the receiver
// untouched, so any previously obtained version remains valid. Versions share
// unmodified substructure, making Put and Delete O(log n) in the number of
// keys and retained old versions cheap.
type Map[K cmp.Ordered, V any] struct {
	// byKey answers "is this key present, and where in the order" without
	// scanning; byPos drives in-order iteration. Handles stored here are
	// never mutated: all writes go through a fresh Clone.
	byKey *persistent.Map[K, slot[V]]
	byPos *persistent.Map[uint64, K]

	// next is the position assigned to the next newly inserted key.
	// Positions are never reused, so deleting and re-inserting a key moves
	// it to the end of the order.
	next  uint64
	count int
}

// New constructs an empty Map.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{
		byKey: persistent.NewMap[K, slot[V]](func(a, b K) bool { return a < b }),
		byPos: persistent.NewMap[uint64, K](func(a, b uint64) bool { return a < b }),
	}
}

// Get returns the value stored for the given key and whether the key existed.
func (m *Map[K, V]) Get(key K) (V, bool) {
	s, ok := m.byKey.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return s.value, true
}

// Has returns true if the key is found in the map.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.byKey.Get(key)
	return ok
}

// Len returns the number of keys in the map.
func (m *Map[K, V]) Len() int { return m.count }

// IsEmpty returns true if the map holds no keys.
func (m *Map[K, V]) IsEmpty() bool { return m.count == 0 }

// Put returns a new Map with the value stored at the given key. A new key is
// appended at the end of the iteration order; an existing key keeps its
// position and only its value changes.
func (m *Map[K, V]) Put(key K, value V) *Map[K, V] {
	byKey := m.byKey.Clone()
	if existing, ok := m.byKey.Get(key); ok {
		byKey.Set(key, slot[V]{pos: existing.pos, value: value}, nil)
		return &Map[K, V]{byKey: byKey, byPos: m.byPos, next: m.next, count: m.count}
	}

	byPos := m.byPos.Clone()
	byKey.Set(key, slot[V]{pos: m.next, value: value}, nil)
	byPos.Set(m.next, key, nil)
	return &Map[K, V]{byKey: byKey, byPos: byPos, next: m.next + 1, count: m.count + 1}
}

// Delete returns a new Map without the given key. The relative order of the
// remaining keys is preserved. Deleting an absent key returns the receiver.
func (m *Map[K, V]) Delete(key K) *Map[K, V] {
	existing, ok := m.byKey.Get(key)
	if !ok {
		return m
	}

	byKey := m.byKey.Clone()
	byPos := m.byPos.Clone()
	byKey.Delete(key)
	byPos.Delete(existing.pos)
	return &Map[K, V]{byKey: byKey, byPos: byPos, next: m.next, count: m.count - 1}
}

// Keys yields the keys in first-insertion order. The sequence is finite and,
// because the map is immutable, restartable: re-iterating yields the same
// keys in the same order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		stopped := false
		m.byPos.Range(func(_ uint64, key K) {
			if stopped {
				return
			}
			stopped = !yield(key)
		})
	}
}

// All yields the (key, value) pairs in first-insertion order of the keys.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stopped := false
		m.byPos.Range(func(_ uint64, key K) {
			if stopped {
				return
			}
			s, ok := m.byKey.Get(key)
			if !ok {
				return
			}
			stopped = !yield(key, s.value)
		})
	}
}
