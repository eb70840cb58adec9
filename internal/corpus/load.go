package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	merrors "github.com/Aman-CERP/maamarim/internal/errors"
)

type collectionFile struct {
	CollectionMetadata json.RawMessage `json:"collection_metadata"`
	Documents          []Document      `json:"documents"`
}

// Load reads and decodes the collection at path. A missing or unreadable
// file and invalid JSON are fatal.
func Load(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := merrors.ErrCodeFileNotFound
		if os.IsPermission(err) {
			code = merrors.ErrCodeFilePermission
		}
		return nil, merrors.New(code, fmt.Sprintf("cannot read input %s", path), err).
			WithDetail("path", path).
			WithSuggestion("Set input in .maamarim.yaml, MAAMARIM_INPUT, or pass --input")
	}

	c, err := Parse(data)
	if err != nil {
		return nil, merrors.New(merrors.ErrCodeFileCorrupt, fmt.Sprintf("invalid collection JSON in %s: %v", path, err), err).
			WithDetail("path", path)
	}

	slog.Debug("corpus_loaded",
		slog.String("path", path),
		slog.Int("documents", len(c.Documents)),
		slog.Int("bytes", len(data)))

	return c, nil
}

// Parse decodes a collection from JSON bytes.
func Parse(data []byte) (*Collection, error) {
	var f collectionFile
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	if f.Documents == nil {
		f.Documents = []Document{}
	}
	return &Collection{
		Metadata:  f.CollectionMetadata,
		Documents: f.Documents,
	}, nil
}
