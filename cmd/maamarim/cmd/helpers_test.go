package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCorpus = `{
  "collection_metadata": {"title": "Maamarim", "date_range": "5711-5752"},
  "documents": [
    {"id": "m-001", "metadata": {"hebrew_date": "י' שבט", "topics": ["גאולה"], "key_concepts": ["Redemption"]},
     "content": {"main_text": "a b c", "glossary": "|שכינה (Shechinah): Divine Presence"}},
    {"id": "m-002", "metadata": {"topics": ["גאולה", "תורה"], "key_concepts": ["Redemption", "Torah"]}},
    {"id": "m-003", "metadata": {"opening_phrase": "באתי לגני"}}
  ]
}`

// inTempProject runs the test in a fresh directory holding the test corpus,
// with user config and MAAMARIM_* variables isolated.
func inTempProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "MAAMARIM_") {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
	require.NoError(t, os.WriteFile("maamarim_structured.json", []byte(testCorpus), 0o644))
	return dir
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--no-tui", "--no-color"}, args...))
	err := root.Execute()
	_ = stopRun(nil, nil)
	return stdout.String(), stderr.String(), err
}
