package corpus

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	merrors "github.com/Aman-CERP/maamarim/internal/errors"
)

const sampleCollection = `{
  "collection_metadata": {"title": "Maamarim", "date_range": "5711-5752"},
  "documents": [
    {
      "id": "m-001",
      "reference": "Vol 1, p. 3",
      "metadata": {
        "hebrew_date": "י' שבט תשי\"א",
        "gregorian_date": "1951-01-17",
        "opening_phrase": "באתי לגני",
        "topics": ["גאולה", "שכינה"],
        "key_concepts": ["Redemption", "Divine Presence"],
        "biblical_references": ["Song 5:1"],
        "word_count": 0,
        "chunk_count": 0,
        "extra_field": true
      },
      "content": {
        "main_text": "one two  three\nfour",
        "main_text_chunks": ["a", "b", "c"],
        "glossary": "|שכינה (Shechinah): Divine Presence"
      }
    },
    {"id": "m-002", "metadata": {"word_count": 42, "chunk_count": 7}}
  ]
}`

func TestParse_DecodesTypedFields(t *testing.T) {
	// When: parsing a collection
	c, err := Parse([]byte(sampleCollection))
	require.NoError(t, err)

	// Then: typed fields are populated
	require.Len(t, c.Documents, 2)
	doc := c.Documents[0]
	assert.Equal(t, "m-001", doc.DocID())
	assert.Equal(t, []string{"גאולה", "שכינה"}, doc.Metadata.Topics)
	assert.Equal(t, []string{"Song 5:1"}, doc.Metadata.References())
	assert.Equal(t, "5711-5752", c.DateRange())
}

func TestDocument_MissingFieldsDefaultToEmpty(t *testing.T) {
	c, err := Parse([]byte(sampleCollection))
	require.NoError(t, err)

	doc := c.Documents[1]
	assert.Equal(t, "", doc.Metadata.HebrewDate)
	assert.NotNil(t, doc.Metadata.Topics)
	assert.Empty(t, doc.Metadata.Topics)
	assert.NotNil(t, doc.Content.MainTextChunks)
	assert.Empty(t, doc.Metadata.References())
}

func TestDocument_CountFallbackIsPerDocument(t *testing.T) {
	// Given: one document without stored counts and one with
	c, err := Parse([]byte(sampleCollection))
	require.NoError(t, err)

	// Then: the first derives counts, the second keeps its stored values
	assert.Equal(t, 4, c.Documents[0].WordCount())
	assert.Equal(t, 3, c.Documents[0].ChunkCount())
	assert.Equal(t, 42, c.Documents[1].WordCount())
	assert.Equal(t, 7, c.Documents[1].ChunkCount())
}

func TestDocument_MalformedCountsFallBack(t *testing.T) {
	tests := []struct {
		name      string
		wordCount string
		want      int
	}{
		{"integral float", `12.0`, 12},
		{"integer", `12`, 12},
		{"fraction", `12.5`, 3},
		{"string", `"12"`, 3},
		{"null", `null`, 3},
		{"object", `{"n": 12}`, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a document whose word_count is not a plain integer
			doc := `{"id": "m-1", "metadata": {"word_count": ` + tt.wordCount + `}, "content": {"main_text": "a b c"}}`

			// When: parsing
			c, err := Parse([]byte(`{"documents": [` + doc + `]}`))

			// Then: the load succeeds and only this document falls back
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Documents[0].WordCount())
		})
	}
}

func TestDocument_MarshalJSON_PreservesOriginal(t *testing.T) {
	c, err := Parse([]byte(sampleCollection))
	require.NoError(t, err)

	out, err := json.Marshal(c.Documents[0])
	require.NoError(t, err)

	// Unknown fields survive the round trip
	assert.Contains(t, string(out), `"extra_field":true`)
	assert.Contains(t, string(out), `"word_count":0`)
}

func TestDocument_DocIDUnknown(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{"metadata": {}}`), &doc))
	assert.Equal(t, UnknownID, doc.DocID())
}

func TestMetadata_ConceptAt(t *testing.T) {
	m := Metadata{KeyConcepts: []string{"Light"}}

	concept, ok := m.ConceptAt(0)
	assert.True(t, ok)
	assert.Equal(t, "Light", concept)

	_, ok = m.ConceptAt(1)
	assert.False(t, ok)
}

func TestCollection_DateRange(t *testing.T) {
	tests := []struct {
		name string
		meta string
		want string
	}{
		{name: "missing metadata", meta: "", want: "Unknown"},
		{name: "missing key", meta: `{"title": "x"}`, want: "Unknown"},
		{name: "string", meta: `{"date_range": "5711-5752"}`, want: "5711-5752"},
		{name: "non-string", meta: `{"date_range": {"from": 5711}}`, want: `{"from": 5711}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Collection{Metadata: json.RawMessage(tt.meta)}
			assert.Equal(t, tt.want, c.DateRange())
		})
	}
}

func TestLoad_MissingFileIsFileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Equal(t, merrors.ErrCodeFileNotFound, merrors.GetCode(err))
	assert.True(t, merrors.IsFatal(err))
}

func TestLoad_InvalidJSONIsFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"documents": [`), 0o644))

	_, err := Load(path)

	require.Error(t, err)
	assert.Equal(t, merrors.ErrCodeFileCorrupt, merrors.GetCode(err))
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maamarim_structured.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCollection), 0o644))

	c, err := Load(path)

	require.NoError(t, err)
	assert.Len(t, c.Documents, 2)
	assert.JSONEq(t, `{"title": "Maamarim", "date_range": "5711-5752"}`, string(c.MetadataJSON()))
}
