// Package chunk partitions a document collection into fixed-size, ordered
// groups and names the files they are exported to.
package chunk

import (
	"fmt"
	"strings"

	"github.com/Aman-CERP/maamarim/internal/corpus"
)

// DefaultDocsPerChunk is the number of documents per chunk unless configured.
const DefaultDocsPerChunk = 10

// Chunk is a contiguous run of documents.
type Chunk struct {
	Number    int // 1-based
	Documents []corpus.Document
}

// DocIDs returns the ids of the chunk's documents in order.
func (c *Chunk) DocIDs() []string {
	ids := make([]string, len(c.Documents))
	for i := range c.Documents {
		ids[i] = c.Documents[i].DocID()
	}
	return ids
}

// Len returns the number of documents in the chunk.
func (c *Chunk) Len() int {
	return len(c.Documents)
}

// FileName returns the chunk file name, e.g. maamarim_chunk_03.json.
func FileName(number int) string {
	return fmt.Sprintf("maamarim_chunk_%02d.json", number)
}

var idReplacer = strings.NewReplacer("/", "_", `\`, "_")

// SanitizeID makes a document id safe to use in a file name.
// Distinct ids may map to the same result.
func SanitizeID(id string) string {
	return idReplacer.Replace(id)
}

// DocFileName returns the per-document file name for id.
func DocFileName(id string) string {
	return "maamarim_doc_" + SanitizeID(id) + ".json"
}
