package facet

import (
	"encoding/json"

	"github.com/RoaringBitmap/roaring/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ChunkSet is a set of 1-based chunk numbers.
type ChunkSet struct {
	bm *roaring.Bitmap
}

// Chunks returns the members in ascending order. Chunks are assigned in
// ascending order, so this is also first-occurrence order.
func (s *ChunkSet) Chunks() []int {
	members := s.bm.ToArray()
	out := make([]int, len(members))
	for i, m := range members {
		out[i] = int(m)
	}
	return out
}

// Len returns the number of distinct chunks.
func (s *ChunkSet) Len() int {
	return int(s.bm.GetCardinality())
}

// MarshalJSON encodes the set as a JSON array of chunk numbers.
func (s *ChunkSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Chunks())
}

// ChunkIndex maps facet values to the chunks they occur in.
type ChunkIndex struct {
	m *orderedmap.OrderedMap[string, *ChunkSet]
}

// NewChunkIndex creates an empty chunk index.
func NewChunkIndex() *ChunkIndex {
	return &ChunkIndex{m: orderedmap.New[string, *ChunkSet]()}
}

// Add records that key occurs in chunk. It reports whether the chunk was
// new for that key.
func (ci *ChunkIndex) Add(key string, chunk int) bool {
	set, ok := ci.m.Get(key)
	if !ok {
		set = &ChunkSet{bm: roaring.New()}
		ci.m.Set(key, set)
	}
	return set.bm.CheckedAdd(uint32(chunk))
}

// Get returns the chunks recorded for key, or nil.
func (ci *ChunkIndex) Get(key string) []int {
	set, ok := ci.m.Get(key)
	if !ok {
		return nil
	}
	return set.Chunks()
}

// Len returns the number of distinct keys.
func (ci *ChunkIndex) Len() int {
	return ci.m.Len()
}

// MarshalJSON encodes the index as a JSON object in insertion order.
func (ci *ChunkIndex) MarshalJSON() ([]byte, error) {
	return marshalOrdered(ci.m)
}
