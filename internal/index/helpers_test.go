package index

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/maamarim/internal/corpus"
)

// collectionJSON wraps raw document objects into a collection file.
func collectionJSON(docs ...string) string {
	return fmt.Sprintf(`{"collection_metadata": {"date_range": "5711-5752"}, "documents": [%s]}`,
		strings.Join(docs, ","))
}

func parse(t *testing.T, docs ...string) *corpus.Collection {
	t.Helper()
	c, err := corpus.Parse([]byte(collectionJSON(docs...)))
	require.NoError(t, err)
	return c
}

const docRedemption = `{
  "id": "m-001",
  "reference": "Vol 1, p. 3",
  "metadata": {
    "hebrew_date": "י' שבט",
    "gregorian_date": "1951-01-17",
    "opening_phrase": "באתי לגני",
    "topics": ["גאולה", "שכינה"],
    "key_concepts": ["Redemption", "Divine Presence"],
    "biblical_references": ["Song 5:1"],
    "talmudic_references": ["Shabbat 88a"],
    "chassidic_references": ["Song 5:1"]
  },
  "content": {
    "main_text": "one two three four",
    "main_text_chunks": ["a", "b"],
    "glossary": "|שכינה (Shechinah): Divine Presence; no colon here"
  }
}`

const docTorah = `{
  "id": "m-002",
  "reference": "Vol 1, p. 9",
  "metadata": {
    "hebrew_date": "י\"ט כסלו",
    "opening_phrase": "  ",
    "topics": ["גאולה", "תורה", "  "],
    "key_concepts": ["", "Torah"],
    "word_count": 42,
    "chunk_count": 7
  },
  "content": {"main_text": "ignored because stored counts win"}
}`

const docBare = `{"reference": "loose page"}`
