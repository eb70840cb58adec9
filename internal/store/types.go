// Package store provides the output sinks generated artifacts are written to.
// Names are slash-separated and relative to the store root, e.g.
// "maamarim_chunks/maamarim_chunk_01.json".
package store

import (
	"context"
	"path"
	"strings"
)

// Store receives finished artifacts.
type Store interface {
	// Put writes one artifact, replacing any previous content.
	Put(ctx context.Context, name string, data []byte) error

	// MakeDir ensures a directory exists. Existing directories are not an error.
	MakeDir(ctx context.Context, name string) error

	// Location describes where name ends up, for display.
	Location(name string) string
}

// contentType returns the MIME type used when publishing name.
func contentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return "application/json"
	case ".txt":
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
