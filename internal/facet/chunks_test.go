package facet

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkIndex_Add_DeduplicatesWithinKey(t *testing.T) {
	// Given: a topic seen in three documents of the same chunk
	ci := NewChunkIndex()

	// When: adding chunk 1 three times
	assert.True(t, ci.Add("גאולה", 1))
	assert.False(t, ci.Add("גאולה", 1))
	assert.False(t, ci.Add("גאולה", 1))

	// Then: the list has a single entry
	assert.Equal(t, []int{1}, ci.Get("גאולה"))
}

func TestChunkIndex_Add_FirstOccurrenceOrder(t *testing.T) {
	ci := NewChunkIndex()
	for _, chunk := range []int{1, 1, 2, 3, 3} {
		ci.Add("topic", chunk)
	}

	assert.Equal(t, []int{1, 2, 3}, ci.Get("topic"))
	assert.Nil(t, ci.Get("other"))
}

func TestChunkIndex_MarshalJSON(t *testing.T) {
	// Given: keys inserted in non-lexical order
	ci := NewChunkIndex()
	ci.Add("z", 1)
	ci.Add("a", 1)
	ci.Add("z", 2)

	// When: marshaling
	data, err := json.Marshal(ci)
	require.NoError(t, err)

	// Then: insertion order and chunk arrays are kept
	assert.Equal(t, `{"z":[1,2],"a":[1]}`, string(data))
	assert.Equal(t, 2, ci.Len())
}
