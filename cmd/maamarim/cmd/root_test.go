package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	merrors "github.com/Aman-CERP/maamarim/internal/errors"
)

func TestRootCmd_NoArgsRunsIndexThenSplit(t *testing.T) {
	// Given: a project with a corpus
	inTempProject(t)

	// When: running without a subcommand
	stdout, _, err := execute(t)
	require.NoError(t, err)

	// Then: both jobs wrote their outputs
	for _, name := range []string{
		"maamarim_search_index.json",
		"maamarim_quick_reference.txt",
		"maamarim_master_index.json",
		filepath.Join("maamarim_chunks", "maamarim_chunk_01.json"),
		filepath.Join("maamarim_docs", "maamarim_doc_m-003.json"),
	} {
		assert.FileExists(t, name)
	}
	assert.Contains(t, stdout, "Search optimization complete!")
	assert.Contains(t, stdout, "- Unique topics: 2")
	assert.Contains(t, stdout, "Split complete!")
	assert.Contains(t, stdout, "- Created 1 chunk files")
}

func TestRootCmd_JSONReport(t *testing.T) {
	inTempProject(t)

	stdout, _, err := execute(t, "--json")
	require.NoError(t, err)

	var got struct {
		Index struct {
			Documents int `json:"documents"`
		} `json:"index"`
		Split struct {
			Chunks int `json:"chunks"`
		} `json:"split"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, 3, got.Index.Documents)
	assert.Equal(t, 1, got.Split.Chunks)
}

func TestRootCmd_MissingInputFails(t *testing.T) {
	// Given: no corpus file
	inTempProject(t)
	require.NoError(t, os.Remove("maamarim_structured.json"))

	// When: running
	_, stderr, err := execute(t)

	// Then: a not-found error, logged at error level, and no outputs
	require.Error(t, err)
	assert.Equal(t, merrors.ErrCodeFileNotFound, merrors.GetCode(err))
	assert.Contains(t, stderr, "level=ERROR msg=index_failed")
	assert.NoFileExists(t, "maamarim_search_index.json")
	assert.NoDirExists(t, "maamarim_chunks")
}

func TestRootCmd_InputAndOutputFlags(t *testing.T) {
	dir := inTempProject(t)
	require.NoError(t, os.Rename("maamarim_structured.json", "corpus.json"))

	_, _, err := execute(t, "--input", "corpus.json", "--output-dir", "exports")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "exports", "maamarim_search_index.json"))
	assert.FileExists(t, filepath.Join(dir, "exports", "maamarim_chunks", "maamarim_chunk_01.json"))
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	inTempProject(t)

	_, _, err := execute(t, "unexpected")

	assert.Error(t, err)
}

func TestRootCmd_ShowsHelp(t *testing.T) {
	stdout, _, err := execute(t, "--help")

	require.NoError(t, err)
	assert.Contains(t, stdout, "maamarim")
	assert.Contains(t, stdout, "index")
	assert.Contains(t, stdout, "split")
}

func TestRootCmd_WritesMemoryProfile(t *testing.T) {
	inTempProject(t)

	_, _, err := execute(t, "--profile-mem", "heap.prof", "index")
	require.NoError(t, err)

	info, err := os.Stat("heap.prof")
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRootCmd_LogLinesShareOneRunID(t *testing.T) {
	// Given: debug logs on stderr, selected through the environment
	inTempProject(t)
	t.Setenv("MAAMARIM_LOG_LEVEL", "debug")

	// When: indexing, which reinstalls the logger once config is loaded
	_, stderr, err := execute(t, "index")
	require.NoError(t, err)

	// Then: lines from before and after the reinstall carry the same run_id
	assert.Contains(t, stderr, "msg=run_started")
	assert.Contains(t, stderr, "msg=config_loaded")
	ids := regexp.MustCompile(`run_id=(\w+)`).FindAllStringSubmatch(stderr, -1)
	require.GreaterOrEqual(t, len(ids), 2)
	for _, m := range ids {
		assert.Equal(t, runID, m[1])
	}
}
