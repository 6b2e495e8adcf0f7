package memory

// LockedMapWithDefault is a LockedMap whose Get materializes missing entries
// with a configured factory, stores them, and returns them. Only Set and
// Contains take the lock; the default-on-miss store follows the same
// lock-free read path as plain Get.
type LockedMapWithDefault[K comparable, V any] struct {
	LockedMap[K, V]
	newDefault func() V
}

// NewLockedMapWithDefault builds an empty map whose missing keys are filled
// by newDefault, optionally pre-seeded.
func NewLockedMapWithDefault[K comparable, V any](newDefault func() V, seed ...map[K]V) *LockedMapWithDefault[K, V] {
	m := &LockedMapWithDefault[K, V]{newDefault: newDefault}
	m.items = make(map[K]V)
	for _, s := range seed {
		for k, v := range s {
			m.items[k] = v
		}
	}
	return m
}

// Get returns the stored value, or builds, stores and returns the default
// when the key is missing.
func (m *LockedMapWithDefault[K, V]) Get(key K) V {
	if v, ok := m.items[key]; ok {
		return v
	}
	v := m.newDefault()
	m.items[key] = v
	return v
}
