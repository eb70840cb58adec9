package cmd

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/maamarim/internal/ui"
)

func TestIndexCmd_WritesIndexOnly(t *testing.T) {
	inTempProject(t)

	stdout, stderr, err := execute(t, "index")
	require.NoError(t, err)

	assert.FileExists(t, "maamarim_search_index.json")
	assert.FileExists(t, "maamarim_quick_reference.txt")
	assert.NoFileExists(t, "maamarim_master_index.json")
	assert.Contains(t, stdout, "- Unique glossary terms: 4")
	assert.Contains(t, stderr, "Complete: index of 3 documents, 2 files")
}

func TestIndexCmd_JSON(t *testing.T) {
	inTempProject(t)

	stdout, _, err := execute(t, "index", "--json")
	require.NoError(t, err)

	var rep ui.IndexReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &rep))
	assert.Equal(t, 3, rep.Documents)
	assert.Equal(t, 2, rep.Topics)
	assert.Equal(t, 1, rep.OpeningPhrases)
}

func TestIndexCmd_QuickReferenceContent(t *testing.T) {
	inTempProject(t)

	_, _, err := execute(t, "index")
	require.NoError(t, err)

	data, err := os.ReadFile("maamarim_quick_reference.txt")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Date Range: 5711-5752\n")
	assert.Contains(t, string(data), "גאולה (Redemption): 2 documents\n")
}
