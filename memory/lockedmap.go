// Package memory provides the shared mutable state passed between
// concurrently running handlers. The maps here serialize exactly the two
// operations that historically crashed under concurrent mutation during
// iteration: insertion and membership checks. Plain reads, deletes and
// iteration stay lock-free on purpose; callers rely on that, so the asymmetry
// is part of the contract and must not be widened into full synchronization.
package memory

import (
	"maps"
	"reflect"
	"sync"

	"github.com/samber/lo"
)

// LockedMap is an associative store whose Set and Contains are guarded by a
// mutex. It owns its internal map rather than embedding one, so nothing can
// reach the map through methods that bypass the lock.
type LockedMap[K comparable, V any] struct {
	mu    sync.Mutex
	items map[K]V
}

// NewLockedMap builds an empty map, optionally pre-seeded. Seed maps are
// copied; later mutation of a seed does not affect the store.
func NewLockedMap[K comparable, V any](seed ...map[K]V) *LockedMap[K, V] {
	m := &LockedMap[K, V]{items: make(map[K]V)}
	for _, s := range seed {
		maps.Copy(m.items, s)
	}
	return m
}

// Set inserts or overwrites under the lock. The deferred unlock guarantees
// release on every exit path.
func (m *LockedMap[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
}

// Contains reports membership under the lock.
func (m *LockedMap[K, V]) Contains(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[key]
	return ok
}

// Get reads without taking the lock.
func (m *LockedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.items[key]
	return v, ok
}

// Delete removes without taking the lock.
func (m *LockedMap[K, V]) Delete(key K) {
	delete(m.items, key)
}

// Len returns the current entry count, unlocked.
func (m *LockedMap[K, V]) Len() int {
	return len(m.items)
}

// Keys snapshots the current keys, unlocked.
func (m *LockedMap[K, V]) Keys() []K {
	return lo.Keys(m.items)
}

// Values snapshots the current values, unlocked.
func (m *LockedMap[K, V]) Values() []V {
	return lo.Values(m.items)
}

// Items returns a shallow copy of the contents, unlocked. A concurrent Set
// during the copy is the caller's race to manage, same as direct iteration.
func (m *LockedMap[K, V]) Items() map[K]V {
	return maps.Clone(m.items)
}

// Equal compares stored contents only. Two maps with identical entries but
// independent locks are equal.
func (m *LockedMap[K, V]) Equal(other *LockedMap[K, V]) bool {
	if m == nil || other == nil {
		return m == other
	}
	return reflect.DeepEqual(m.items, other.items)
}
