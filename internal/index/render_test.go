package index

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderJSON_SectionsAndCounts(t *testing.T) {
	// Given: an index over two documents
	ix := Build(parse(t, docRedemption, docTorah))

	// When: rendering
	data, err := ix.RenderJSON()
	require.NoError(t, err)

	// Then: each section carries its description and count
	var out map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &out))

	counts := map[string]string{
		"document_summary":     "total_documents",
		"topic_index":          "total_topics",
		"concept_index":        "total_concepts",
		"date_index":           "total_dates",
		"reference_index":      "total_references",
		"opening_phrase_index": "total_phrases",
		"glossary_index":       "total_glossary_terms",
	}
	want := map[string]string{
		"document_summary":     "2",
		"topic_index":          "3",
		"concept_index":        "3",
		"date_index":           "3",
		"reference_index":      "2",
		"opening_phrase_index": "1",
		"glossary_index":       "4",
	}
	for section, key := range counts {
		require.Contains(t, out, section)
		assert.Contains(t, out[section], "description", section)
		assert.Equal(t, want[section], string(out[section][key]), section)
	}
}

func TestRenderJSON_KeyOrder(t *testing.T) {
	ix := Build(parse(t, docRedemption))

	data, err := ix.RenderJSON()
	require.NoError(t, err)
	text := string(data)

	sections := []string{
		`"document_summary"`, `"topic_index"`, `"concept_index"`, `"date_index"`,
		`"reference_index"`, `"opening_phrase_index"`, `"glossary_index"`,
	}
	last := -1
	for _, s := range sections {
		pos := strings.Index(text, s)
		require.Greater(t, pos, last, s)
		last = pos
	}
}

func TestRenderJSON_Format(t *testing.T) {
	ix := Build(parse(t, docRedemption))

	data, err := ix.RenderJSON()
	require.NoError(t, err)

	// Two-space indent, literal UTF-8, no trailing newline
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"document_summary\": {\n    \"description\""))
	assert.Contains(t, string(data), "גאולה")
	assert.NotContains(t, string(data), `\u05`)
	assert.False(t, strings.HasSuffix(string(data), "\n"))
}

func TestRenderJSON_Deterministic(t *testing.T) {
	// Given: the same input parsed twice
	first, err := Build(parse(t, docRedemption, docTorah, docBare)).RenderJSON()
	require.NoError(t, err)
	second, err := Build(parse(t, docRedemption, docTorah, docBare)).RenderJSON()
	require.NoError(t, err)

	// Then: byte-for-byte identical
	assert.Equal(t, first, second)
}

func TestRenderJSON_EmptyIndexesAreObjects(t *testing.T) {
	data, err := Build(parse(t)).RenderJSON()
	require.NoError(t, err)

	assert.Contains(t, string(data), `"topics": {}`)
	assert.Contains(t, string(data), `"documents": []`)
}

func TestRenderJSON_NoHTMLEscaping(t *testing.T) {
	// Given: ids and topics carrying &, < and >
	doc := `{"id": "<m&1>", "metadata": {"topics": ["A & B"], "key_concepts": ["t<m"]}}`

	// When: rendering the search index
	data, err := Build(parse(t, doc)).RenderJSON()
	require.NoError(t, err)

	// Then: they are written literally
	text := string(data)
	assert.Contains(t, text, `"<m&1>"`)
	assert.Contains(t, text, `"A & B"`)
	assert.Contains(t, text, `"t<m"`)
	assert.NotContains(t, text, `\u0026`)
	assert.NotContains(t, text, `\u003c`)
}
