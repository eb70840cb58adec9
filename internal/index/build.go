// Package index builds the consolidated search index and the quick
// reference report from a document collection.
package index

import (
	"log/slog"
	"strings"

	"github.com/Aman-CERP/maamarim/internal/corpus"
	"github.com/Aman-CERP/maamarim/internal/facet"
)

// Build aggregates every facet of c in a single pass over its documents.
// Every document contributes one summary; facet indexes only receive
// non-empty values.
func Build(c *corpus.Collection) *SearchIndex {
	ix := &SearchIndex{
		Documents:      make([]DocumentSummary, 0, len(c.Documents)),
		Topics:         facet.NewIndex[TopicRef](),
		Concepts:       facet.NewIndex[ConceptRef](),
		Dates:          facet.NewIndex[string](),
		References:     facet.NewIndex[string](),
		OpeningPhrases: facet.NewIndex[PhraseRef](),
		Glossary:       facet.NewIndex[GlossaryRef](),
		TopicConcepts:  facet.NewMap[string](),
		DateRange:      c.DateRange(),
	}

	for i := range c.Documents {
		ix.add(&c.Documents[i])
	}

	slog.Debug("index_build_complete",
		slog.Int("documents", len(ix.Documents)),
		slog.Int("topics", ix.Topics.Len()),
		slog.Int("concepts", ix.Concepts.Len()),
		slog.Int("dates", ix.Dates.Len()),
		slog.Int("references", ix.References.Len()),
		slog.Int("opening_phrases", ix.OpeningPhrases.Len()),
		slog.Int("glossary_terms", ix.Glossary.Len()))

	return ix
}

func (ix *SearchIndex) add(doc *corpus.Document) {
	id := doc.DocID()
	m := &doc.Metadata

	ix.Documents = append(ix.Documents, DocumentSummary{
		ID:            id,
		Reference:     doc.Reference,
		HebrewDate:    m.HebrewDate,
		GregorianDate: m.GregorianDate,
		OpeningPhrase: m.OpeningPhrase,
		Topics:        m.Topics,
		KeyConcepts:   m.KeyConcepts,
		WordCount:     doc.WordCount(),
		ChunkCount:    doc.ChunkCount(),
	})

	for i, topic := range m.Topics {
		// Representative concept: first sighting wins, even when empty.
		if concept, ok := m.ConceptAt(i); ok {
			ix.TopicConcepts.SetIfAbsent(topic, concept)
		}
		if isBlank(topic) {
			continue
		}
		ix.Topics.Append(topic, TopicRef{
			DocID:         id,
			Reference:     doc.Reference,
			HebrewDate:    m.HebrewDate,
			OpeningPhrase: m.OpeningPhrase,
		})
	}

	if m.HebrewDate != "" {
		ix.Dates.Append(m.HebrewDate, id)
	}
	if m.GregorianDate != "" {
		ix.Dates.Append(m.GregorianDate, id)
	}

	for _, concept := range m.KeyConcepts {
		if isBlank(concept) {
			continue
		}
		ix.Concepts.Append(concept, ConceptRef{
			DocID:     id,
			Reference: doc.Reference,
			Topics:    m.Topics,
		})
	}

	for _, ref := range m.References() {
		if !isBlank(ref) {
			ix.References.Append(ref, id)
		}
	}

	if !isBlank(m.OpeningPhrase) {
		ix.OpeningPhrases.Append(m.OpeningPhrase, PhraseRef{
			DocID:      id,
			HebrewDate: m.HebrewDate,
			Topics:     m.Topics,
		})
	}

	ix.addGlossary(id, m.HebrewDate, doc.Content.Glossary)
}

func (ix *SearchIndex) addGlossary(id, hebrewDate, text string) {
	for _, e := range corpus.ParseGlossary(text) {
		gc := glossaryContext{
			HebrewTerm:      e.HebrewTerm,
			Transliteration: e.Transliteration,
			Definition:      e.EnglishDefinition,
			HebrewDate:      hebrewDate,
		}
		if e.HebrewTerm != "" {
			ix.Glossary.Append(e.HebrewTerm, termRef(id, gc))
		}
		if e.Transliteration != "" {
			ix.Glossary.Append(e.Transliteration, translitRef(id, gc))
		}
		for _, kw := range e.Keywords() {
			ix.Glossary.Append(kw, keywordRef(id, gc))
		}
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
