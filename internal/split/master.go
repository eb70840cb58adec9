// Package split exports a document collection as fixed-size chunk files,
// one file per document, and a master index from facet values to chunks.
package split

import (
	"encoding/json"
	"log/slog"
	"path"
	"strconv"
	"strings"

	"github.com/Aman-CERP/maamarim/internal/chunk"
	"github.com/Aman-CERP/maamarim/internal/corpus"
	"github.com/Aman-CERP/maamarim/internal/facet"
)

// ChunkEntry describes one chunk in the master index.
type ChunkEntry struct {
	File          string   `json:"file"`
	DocumentIDs   []string `json:"document_ids"`
	DocumentCount int      `json:"document_count"`
}

// MasterIndex cross-references facet values to chunk numbers. Field order
// is the key order of the written file.
type MasterIndex struct {
	CollectionMetadata    json.RawMessage        `json:"collection_metadata"`
	ChunkInfo             *facet.Map[ChunkEntry] `json:"chunk_info"`
	TopicToChunks         *facet.ChunkIndex      `json:"topic_to_chunks"`
	ConceptToChunks       *facet.ChunkIndex      `json:"concept_to_chunks"`
	DocIDToChunk          *facet.Map[int]        `json:"doc_id_to_chunk"`
	DateToChunks          *facet.ChunkIndex      `json:"date_to_chunks"`
	OpeningPhraseToChunks *facet.ChunkIndex      `json:"opening_phrase_to_chunks"`
	GlossaryTermToChunks  *facet.ChunkIndex      `json:"glossary_term_to_chunks"`
}

// BuildMasterIndex maps every facet of every chunked document to its chunk.
// chunksDir prefixes the file names recorded in chunk_info.
func BuildMasterIndex(c *corpus.Collection, chunks []chunk.Chunk, chunksDir string) *MasterIndex {
	mi := &MasterIndex{
		CollectionMetadata:    c.MetadataJSON(),
		ChunkInfo:             facet.NewMap[ChunkEntry](),
		TopicToChunks:         facet.NewChunkIndex(),
		ConceptToChunks:       facet.NewChunkIndex(),
		DocIDToChunk:          facet.NewMap[int](),
		DateToChunks:          facet.NewChunkIndex(),
		OpeningPhraseToChunks: facet.NewChunkIndex(),
		GlossaryTermToChunks:  facet.NewChunkIndex(),
	}

	for i := range chunks {
		ch := &chunks[i]
		mi.ChunkInfo.Set(strconv.Itoa(ch.Number), ChunkEntry{
			File:          path.Join(chunksDir, chunk.FileName(ch.Number)),
			DocumentIDs:   ch.DocIDs(),
			DocumentCount: ch.Len(),
		})
		for j := range ch.Documents {
			mi.add(&ch.Documents[j], ch.Number)
		}
	}

	slog.Debug("split_master_index_built",
		slog.Int("chunks", mi.ChunkInfo.Len()),
		slog.Int("documents", mi.DocIDToChunk.Len()),
		slog.Int("topics", mi.TopicToChunks.Len()),
		slog.Int("concepts", mi.ConceptToChunks.Len()),
		slog.Int("dates", mi.DateToChunks.Len()),
		slog.Int("glossary_terms", mi.GlossaryTermToChunks.Len()))

	return mi
}

func (mi *MasterIndex) add(doc *corpus.Document, n int) {
	m := &doc.Metadata

	mi.DocIDToChunk.Set(doc.DocID(), n)

	for _, topic := range m.Topics {
		mi.TopicToChunks.Add(topic, n)
	}
	for _, concept := range m.KeyConcepts {
		mi.ConceptToChunks.Add(concept, n)
	}

	if m.HebrewDate != "" {
		mi.DateToChunks.Add(m.HebrewDate, n)
	}
	if m.GregorianDate != "" {
		mi.DateToChunks.Add(m.GregorianDate, n)
	}

	if strings.TrimSpace(m.OpeningPhrase) != "" {
		mi.OpeningPhraseToChunks.Add(m.OpeningPhrase, n)
	}

	// Hebrew terms and transliterations only; no keyword expansion here.
	for _, e := range corpus.ParseGlossary(doc.Content.Glossary) {
		for _, term := range e.Terms() {
			mi.GlossaryTermToChunks.Add(term, n)
		}
	}
}
