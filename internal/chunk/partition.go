package chunk

import (
	"fmt"

	"github.com/Aman-CERP/maamarim/internal/corpus"
	merrors "github.com/Aman-CERP/maamarim/internal/errors"
)

// Count returns the number of chunks needed for total documents.
func Count(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Partition slices docs into chunks of size documents, in order. The last
// chunk may be shorter. Every document lands in exactly one chunk.
func Partition(docs []corpus.Document, size int) ([]Chunk, error) {
	if size <= 0 {
		return nil, merrors.ValidationError(fmt.Sprintf("docs_per_chunk must be positive, got %d", size), nil).
			WithSuggestion("Set split.docs_per_chunk to a positive integer")
	}

	chunks := make([]Chunk, 0, Count(len(docs), size))
	for start := 0; start < len(docs); start += size {
		end := min(start+size, len(docs))
		chunks = append(chunks, Chunk{
			Number:    len(chunks) + 1,
			Documents: docs[start:end:end],
		})
	}
	return chunks, nil
}
