package multiset

// OrderedMap is a map whose keys are enumerated in insertion order: the
// first Put of a key fixes its position, and deleting a key forgets it,
// so a later re-insertion counts as a fresh first add.
type OrderedMap[K comparable, V any] interface {
	Contains(k K) bool
	Get(k K) (V, bool)
	Put(k K, v V)
	// GetOrPut returns the value stored under k, installing
	// defaultValue() first if k is absent.
	GetOrPut(k K, defaultValue func() V) V
	Delete(k K) bool
	Size() int
	Keys() []K
	Values() []V
	// Each visits entries in insertion order until fn returns false.
	Each(fn func(k K, v V) bool)
}

type orderedMap[K comparable, V any] struct {
	entries map[K]V
	order   []K
}

func NewOrderedMap[K comparable, V any]() OrderedMap[K, V] {
	return &orderedMap[K, V]{
		entries: make(map[K]V),
		order:   make([]K, 0),
	}
}

func (m *orderedMap[K, V]) Contains(k K) bool {
	if _, ok := m.entries[k]; ok {
		return true
	}
	return false
}

func (m *orderedMap[K, V]) Get(k K) (v V, ok bool) {
	v, ok = m.entries[k]
	return v, ok
}

func (m *orderedMap[K, V]) Put(k K, v V) {
	if !m.Contains(k) {
		m.order = append(m.order, k)
	}
	m.entries[k] = v
}

func (m *orderedMap[K, V]) GetOrPut(k K, defaultValue func() V) V {
	if v, ok := m.entries[k]; ok {
		return v
	}
	v := defaultValue()
	m.Put(k, v)
	return v
}

func (m *orderedMap[K, V]) Delete(k K) bool {
	if !m.Contains(k) {
		return false
	}
	delete(m.entries, k)
	for i, key := range m.order {
		if key == k {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

func (m *orderedMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *orderedMap[K, V]) Keys() []K {
	arr := make([]K, len(m.order))
	copy(arr, m.order)
	return arr
}

func (m *orderedMap[K, V]) Values() []V {
	arr := make([]V, 0, m.Size())
	for _, k := range m.order {
		arr = append(arr, m.entries[k])
	}
	return arr
}

func (m *orderedMap[K, V]) Each(fn func(k K, v V) bool) {
	for _, k := range m.order {
		if !fn(k, m.entries[k]) {
			return
		}
	}
}
