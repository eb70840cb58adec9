package index

import (
	"github.com/Aman-CERP/maamarim/internal/facet"
)

// DocumentSummary is the per-document overview record. WordCount and
// ChunkCount carry the per-document fallbacks.
type DocumentSummary struct {
	ID            string   `json:"id"`
	Reference     string   `json:"reference"`
	HebrewDate    string   `json:"hebrew_date"`
	GregorianDate string   `json:"gregorian_date"`
	OpeningPhrase string   `json:"opening_phrase"`
	Topics        []string `json:"topics"`
	KeyConcepts   []string `json:"key_concepts"`
	WordCount     int      `json:"word_count"`
	ChunkCount    int      `json:"chunk_count"`
}

// TopicRef is registered under each topic of a document.
type TopicRef struct {
	DocID         string `json:"doc_id"`
	Reference     string `json:"reference"`
	HebrewDate    string `json:"hebrew_date"`
	OpeningPhrase string `json:"opening_phrase"`
}

// ConceptRef is registered under each key concept of a document.
type ConceptRef struct {
	DocID     string   `json:"doc_id"`
	Reference string   `json:"reference"`
	Topics    []string `json:"topics"`
}

// PhraseRef is registered under a document's opening phrase.
type PhraseRef struct {
	DocID      string   `json:"doc_id"`
	HebrewDate string   `json:"hebrew_date"`
	Topics     []string `json:"topics"`
}

// GlossaryRef is registered under a glossary lookup key. Which optional
// fields are set depends on the key kind; see termRef, translitRef and
// keywordRef.
type GlossaryRef struct {
	DocID           string  `json:"doc_id"`
	HebrewTerm      *string `json:"hebrew_term,omitempty"`
	Transliteration *string `json:"transliteration,omitempty"`
	Definition      *string `json:"definition,omitempty"`
	FullDefinition  *string `json:"full_definition,omitempty"`
	HebrewDate      *string `json:"hebrew_date,omitempty"`
}

// SearchIndex is the aggregated result of one Indexer pass.
type SearchIndex struct {
	Documents      []DocumentSummary
	Topics         *facet.Index[TopicRef]
	Concepts       *facet.Index[ConceptRef]
	Dates          *facet.Index[string]
	References     *facet.Index[string]
	OpeningPhrases *facet.Index[PhraseRef]
	Glossary       *facet.Index[GlossaryRef]

	// TopicConcepts maps each topic to the concept at the same position
	// the first time the topic was seen. Empty concepts are recorded too.
	TopicConcepts *facet.Map[string]

	// DateRange is collection_metadata.date_range for display.
	DateRange string
}

func termRef(docID string, e glossaryContext) GlossaryRef {
	return GlossaryRef{
		DocID:           docID,
		Transliteration: &e.Transliteration,
		Definition:      &e.Definition,
		HebrewDate:      &e.HebrewDate,
	}
}

func translitRef(docID string, e glossaryContext) GlossaryRef {
	return GlossaryRef{
		DocID:      docID,
		HebrewTerm: &e.HebrewTerm,
		Definition: &e.Definition,
		HebrewDate: &e.HebrewDate,
	}
}

func keywordRef(docID string, e glossaryContext) GlossaryRef {
	return GlossaryRef{
		DocID:          docID,
		HebrewTerm:     &e.HebrewTerm,
		FullDefinition: &e.Definition,
		HebrewDate:     &e.HebrewDate,
	}
}

// glossaryContext holds the values shared by the refs of one entry. Each
// ref builder takes it by value so the pointers do not alias across refs.
type glossaryContext struct {
	HebrewTerm      string
	Transliteration string
	Definition      string
	HebrewDate      string
}
