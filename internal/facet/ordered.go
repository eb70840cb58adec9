package facet

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is an insertion-ordered string-keyed map that encodes as a JSON
// object in insertion order.
type Map[V any] struct {
	m *orderedmap.OrderedMap[string, V]
}

// NewMap creates an empty Map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{m: orderedmap.New[string, V]()}
}

// Set stores v under key. Existing keys keep their position.
func (om *Map[V]) Set(key string, v V) {
	om.m.Set(key, v)
}

// SetIfAbsent stores v under key only if key is new, and reports whether
// it did.
func (om *Map[V]) SetIfAbsent(key string, v V) bool {
	if _, ok := om.m.Get(key); ok {
		return false
	}
	om.m.Set(key, v)
	return true
}

// Get returns the value for key.
func (om *Map[V]) Get(key string) (V, bool) {
	return om.m.Get(key)
}

// Len returns the number of keys.
func (om *Map[V]) Len() int {
	return om.m.Len()
}

// Keys returns the keys in insertion order.
func (om *Map[V]) Keys() []string {
	keys := make([]string, 0, om.m.Len())
	for pair := om.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (om *Map[V]) MarshalJSON() ([]byte, error) {
	return marshalOrdered(om.m)
}
