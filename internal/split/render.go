package split

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/Aman-CERP/maamarim/internal/chunk"
	"github.com/Aman-CERP/maamarim/internal/corpus"
	merrors "github.com/Aman-CERP/maamarim/internal/errors"
)

type chunkFile struct {
	CollectionMetadata json.RawMessage   `json:"collection_metadata"`
	ChunkInfo          chunkHeader       `json:"chunk_info"`
	Documents          []corpus.Document `json:"documents"`
}

type chunkHeader struct {
	ChunkNumber      int      `json:"chunk_number"`
	TotalChunks      int      `json:"total_chunks"`
	DocumentsInChunk int      `json:"documents_in_chunk"`
	DocumentIDs      []string `json:"document_ids"`
}

type docFile struct {
	CollectionMetadata json.RawMessage `json:"collection_metadata"`
	Document           corpus.Document `json:"document"`
}

// Artifact is one rendered output file.
type Artifact struct {
	Name string
	Data []byte
}

// Layout names the Splitter outputs relative to the store root.
type Layout struct {
	ChunksDir   string
	DocsDir     string
	MasterIndex string
}

// ChunkPath returns the slash-separated name of chunk n's file.
func (l Layout) ChunkPath(n int) string {
	return path.Join(l.ChunksDir, chunk.FileName(n))
}

// DocPath returns the slash-separated name of the file for document id.
func (l Layout) DocPath(id string) string {
	return path.Join(l.DocsDir, chunk.DocFileName(id))
}

// Rendered holds every Splitter output, ready to write.
type Rendered struct {
	Chunks []Artifact
	Docs   []Artifact
	Master Artifact
}

// Render renders chunk files, document files and the master index.
// Document files follow input order; a later document whose sanitized id
// collides with an earlier one replaces it when written.
func Render(c *corpus.Collection, chunks []chunk.Chunk, layout Layout) (*Rendered, error) {
	meta := c.MetadataJSON()
	out := &Rendered{
		Chunks: make([]Artifact, 0, len(chunks)),
		Docs:   make([]Artifact, 0, len(c.Documents)),
	}

	for i := range chunks {
		ch := &chunks[i]
		data, err := encode(chunkFile{
			CollectionMetadata: meta,
			ChunkInfo: chunkHeader{
				ChunkNumber:      ch.Number,
				TotalChunks:      len(chunks),
				DocumentsInChunk: ch.Len(),
				DocumentIDs:      ch.DocIDs(),
			},
			Documents: ch.Documents,
		}, ch.Number)
		if err != nil {
			return nil, err
		}
		out.Chunks = append(out.Chunks, Artifact{Name: layout.ChunkPath(ch.Number), Data: data})

		for j := range ch.Documents {
			doc := ch.Documents[j]
			data, err := encode(docFile{CollectionMetadata: meta, Document: doc}, ch.Number)
			if err != nil {
				return nil, err
			}
			out.Docs = append(out.Docs, Artifact{Name: layout.DocPath(doc.DocID()), Data: data})
		}
	}

	master, err := corpus.EncodeJSON(BuildMasterIndex(c, chunks, layout.ChunksDir))
	if err != nil {
		return nil, merrors.New(merrors.ErrCodeRenderFailed, fmt.Sprintf("failed to render master index: %v", err), err)
	}
	out.Master = Artifact{Name: layout.MasterIndex, Data: master}

	return out, nil
}

func encode(v any, chunkNumber int) ([]byte, error) {
	data, err := corpus.EncodeJSON(v)
	if err != nil {
		return nil, merrors.New(merrors.ErrCodeRenderFailed, fmt.Sprintf("failed to render chunk %d: %v", chunkNumber, err), err).
			WithDetail("chunk", fmt.Sprint(chunkNumber))
	}
	return data, nil
}
