package memory

import (
	"fmt"

	"bot-lab/identifier"
)

// IdentityMap composes a LockedMap with a normalization factory so that keys
// are compared under the protocol's identity rule: every key-accepting
// operation folds the raw key first, and only folded keys are ever stored.
// Get and Contains normalize too, then follow the base map's discipline
// (Contains locked, Get lock-free).
type IdentityMap[V any] struct {
	store     *LockedMap[identifier.Identifier, V]
	normalize identifier.Factory
}

// NewIdentityMap builds an empty map using the given factory; nil selects
// identifier.Casefold.
func NewIdentityMap[V any](normalize identifier.Factory) *IdentityMap[V] {
	if normalize == nil {
		normalize = identifier.Casefold
	}
	return &IdentityMap[V]{
		store:     NewLockedMap[identifier.Identifier, V](),
		normalize: normalize,
	}
}

// NewIdentityMapFrom pre-seeds the map, folding every seed key. It fails on
// the first key the factory rejects.
func NewIdentityMapFrom[V any](seed map[string]V, normalize identifier.Factory) (*IdentityMap[V], error) {
	m := NewIdentityMap[V](normalize)
	for k, v := range seed {
		if err := m.Set(k, v); err != nil {
			return nil, fmt.Errorf("seeding key %q: %w", k, err)
		}
	}
	return m, nil
}

// Set folds the key and stores under the lock. A rejected key propagates as
// an error and leaves the map untouched.
func (m *IdentityMap[V]) Set(key string, value V) error {
	id, err := m.normalize(key)
	if err != nil {
		return err
	}
	m.store.Set(id, value)
	return nil
}

// Get folds the key, then reads lock-free.
func (m *IdentityMap[V]) Get(key string) (V, bool, error) {
	id, err := m.normalize(key)
	if err != nil {
		var zero V
		return zero, false, err
	}
	v, ok := m.store.Get(id)
	return v, ok, nil
}

// Contains folds the key, then checks membership under the lock.
func (m *IdentityMap[V]) Contains(key string) (bool, error) {
	id, err := m.normalize(key)
	if err != nil {
		return false, err
	}
	return m.store.Contains(id), nil
}

// Delete folds the key, then removes lock-free.
func (m *IdentityMap[V]) Delete(key string) error {
	id, err := m.normalize(key)
	if err != nil {
		return err
	}
	m.store.Delete(id)
	return nil
}

// Len returns the current entry count.
func (m *IdentityMap[V]) Len() int {
	return m.store.Len()
}

// Keys snapshots the stored (folded) keys.
func (m *IdentityMap[V]) Keys() []identifier.Identifier {
	return m.store.Keys()
}

// Items returns a shallow copy keyed by folded keys.
func (m *IdentityMap[V]) Items() map[identifier.Identifier]V {
	return m.store.Items()
}

// Equal compares stored contents only, like LockedMap.Equal. The factories
// are not compared; two maps built with different casemappings are equal if
// they hold the same folded entries.
func (m *IdentityMap[V]) Equal(other *IdentityMap[V]) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.store.Equal(other.store)
}
