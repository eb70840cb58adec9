package index

import (
	"fmt"

	"github.com/Aman-CERP/maamarim/internal/corpus"
	merrors "github.com/Aman-CERP/maamarim/internal/errors"
	"github.com/Aman-CERP/maamarim/internal/facet"
)

// Section descriptions written into the search index file.
const (
	descSummary  = "Quick overview of all documents with key metadata"
	descTopics   = "Index by Hebrew topics/themes"
	descConcepts = "Index by English concepts"
	descDates    = "Index by Hebrew and Gregorian dates"
	descRefs     = "Index by biblical, talmudic, and chassidic references"
	descPhrases  = "Index by opening phrases of documents"
	descGlossary = "Index by glossary terms (Hebrew, transliteration, and English keywords)"
)

// searchIndexFile is the on-disk layout. Field order is the key order.
type searchIndexFile struct {
	DocumentSummary    summarySection   `json:"document_summary"`
	TopicIndex         topicSection     `json:"topic_index"`
	ConceptIndex       conceptSection   `json:"concept_index"`
	DateIndex          dateSection      `json:"date_index"`
	ReferenceIndex     referenceSection `json:"reference_index"`
	OpeningPhraseIndex phraseSection    `json:"opening_phrase_index"`
	GlossaryIndex      glossarySection  `json:"glossary_index"`
}

type summarySection struct {
	Description    string            `json:"description"`
	TotalDocuments int               `json:"total_documents"`
	Documents      []DocumentSummary `json:"documents"`
}

type topicSection struct {
	Description string                 `json:"description"`
	TotalTopics int                    `json:"total_topics"`
	Topics      *facet.Index[TopicRef] `json:"topics"`
}

type conceptSection struct {
	Description   string                   `json:"description"`
	TotalConcepts int                      `json:"total_concepts"`
	Concepts      *facet.Index[ConceptRef] `json:"concepts"`
}

type dateSection struct {
	Description string               `json:"description"`
	TotalDates  int                  `json:"total_dates"`
	Dates       *facet.Index[string] `json:"dates"`
}

type referenceSection struct {
	Description     string               `json:"description"`
	TotalReferences int                  `json:"total_references"`
	References      *facet.Index[string] `json:"references"`
}

type phraseSection struct {
	Description  string                  `json:"description"`
	TotalPhrases int                     `json:"total_phrases"`
	Phrases      *facet.Index[PhraseRef] `json:"phrases"`
}

type glossarySection struct {
	Description        string                    `json:"description"`
	TotalGlossaryTerms int                       `json:"total_glossary_terms"`
	GlossaryTerms      *facet.Index[GlossaryRef] `json:"glossary_terms"`
}

// RenderJSON renders the search index file.
func (ix *SearchIndex) RenderJSON() ([]byte, error) {
	doc := searchIndexFile{
		DocumentSummary:    summarySection{descSummary, len(ix.Documents), ix.Documents},
		TopicIndex:         topicSection{descTopics, ix.Topics.Len(), ix.Topics},
		ConceptIndex:       conceptSection{descConcepts, ix.Concepts.Len(), ix.Concepts},
		DateIndex:          dateSection{descDates, ix.Dates.Len(), ix.Dates},
		ReferenceIndex:     referenceSection{descRefs, ix.References.Len(), ix.References},
		OpeningPhraseIndex: phraseSection{descPhrases, ix.OpeningPhrases.Len(), ix.OpeningPhrases},
		GlossaryIndex:      glossarySection{descGlossary, ix.Glossary.Len(), ix.Glossary},
	}

	data, err := corpus.EncodeJSON(doc)
	if err != nil {
		return nil, merrors.New(merrors.ErrCodeRenderFailed, fmt.Sprintf("failed to render search index: %v", err), err)
	}
	return data, nil
}
