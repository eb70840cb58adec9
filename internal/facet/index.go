package facet

import (
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Index is an insertion-ordered multimap from facet value to records.
// Duplicate registrations accumulate; nothing is deduplicated.
type Index[V any] struct {
	m *orderedmap.OrderedMap[string, []V]
}

// NewIndex creates an empty index.
func NewIndex[V any]() *Index[V] {
	return &Index[V]{m: orderedmap.New[string, []V]()}
}

// Append registers v under key, creating the key with an empty list first
// if it is new.
func (ix *Index[V]) Append(key string, v V) {
	records, _ := ix.m.Get(key)
	ix.m.Set(key, append(records, v))
}

// Get returns the records registered under key.
func (ix *Index[V]) Get(key string) []V {
	records, _ := ix.m.Get(key)
	return records
}

// Len returns the number of distinct keys.
func (ix *Index[V]) Len() int {
	return ix.m.Len()
}

// Keys returns the keys in insertion order.
func (ix *Index[V]) Keys() []string {
	keys := make([]string, 0, ix.m.Len())
	for pair := ix.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Ranked returns every key with its record count, most frequent first.
// Keys with equal counts keep their insertion order.
func (ix *Index[V]) Ranked() []Count {
	counts := make([]Count, 0, ix.m.Len())
	for pair := ix.m.Oldest(); pair != nil; pair = pair.Next() {
		counts = append(counts, Count{Key: pair.Key, N: len(pair.Value)})
	}
	slices.SortStableFunc(counts, func(a, b Count) int {
		return b.N - a.N
	})
	return counts
}

// Top returns at most n entries of Ranked.
func (ix *Index[V]) Top(n int) []Count {
	ranked := ix.Ranked()
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// MarshalJSON encodes the index as a JSON object in insertion order.
func (ix *Index[V]) MarshalJSON() ([]byte, error) {
	return marshalOrdered(ix.m)
}

// Count is a key with its number of records.
type Count struct {
	Key string
	N   int
}
