package split

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/maamarim/internal/corpus"
	"github.com/Aman-CERP/maamarim/internal/ui"
)

func collectionJSON(docs ...string) string {
	return fmt.Sprintf(`{"collection_metadata": {"title": "Maamarim", "date_range": "5711-5752"}, "documents": [%s]}`,
		strings.Join(docs, ","))
}

// numberedDocs returns n documents with ids d-01..d-n. Every document in
// the first ten carries the topic "גאולה".
func numberedDocs(n int) []string {
	docs := make([]string, n)
	for i := range n {
		topics := `["שבת"]`
		if i < 10 {
			topics = `["גאולה", "שבת"]`
		}
		docs[i] = fmt.Sprintf(`{"id": "d-%02d", "metadata": {"topics": %s, "key_concepts": ["Redemption"]}}`, i+1, topics)
	}
	return docs
}

func parse(t *testing.T, docs ...string) *corpus.Collection {
	t.Helper()
	c, err := corpus.Parse([]byte(collectionJSON(docs...)))
	require.NoError(t, err)
	return c
}

func writeInput(t *testing.T, docs ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maamarim_structured.json")
	require.NoError(t, os.WriteFile(path, []byte(collectionJSON(docs...)), 0o644))
	return path
}

// MockRenderer implements ui.Renderer for testing.
type MockRenderer struct {
	CompleteCalled  bool
	ProgressEvents  []ui.ProgressEvent
	CompletionStats ui.CompletionStats
}

func (m *MockRenderer) Start(ctx context.Context) error { return nil }

func (m *MockRenderer) UpdateProgress(event ui.ProgressEvent) {
	m.ProgressEvents = append(m.ProgressEvents, event)
}

func (m *MockRenderer) AddError(event ui.ErrorEvent) {}

func (m *MockRenderer) Complete(stats ui.CompletionStats) {
	m.CompleteCalled = true
	m.CompletionStats = stats
}

func (m *MockRenderer) Stop() error { return nil }
