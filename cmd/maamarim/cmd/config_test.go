package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/maamarim/configs"
)

func TestConfigInit_WritesTemplate(t *testing.T) {
	inTempProject(t)

	stdout, _, err := execute(t, "config", "init")
	require.NoError(t, err)

	data, err := os.ReadFile(".maamarim.yaml")
	require.NoError(t, err)
	assert.Equal(t, configs.ProjectConfigTemplate, string(data))
	assert.Contains(t, stdout, "Created configuration: .maamarim.yaml")
}

func TestConfigInit_KeepsExistingWithoutForce(t *testing.T) {
	// Given: an existing project config
	inTempProject(t)
	require.NoError(t, os.WriteFile(".maamarim.yaml", []byte("version: 1\n"), 0o644))

	// When: init runs without --force
	stdout, _, err := execute(t, "config", "init")
	require.NoError(t, err)

	// Then: the file is untouched
	data, err := os.ReadFile(".maamarim.yaml")
	require.NoError(t, err)
	assert.Equal(t, "version: 1\n", string(data))
	assert.Contains(t, stdout, "Configuration already exists: .maamarim.yaml")
}

func TestConfigInit_ForceBacksUp(t *testing.T) {
	inTempProject(t)
	require.NoError(t, os.WriteFile(".maamarim.yaml", []byte("version: 1\n"), 0o644))

	_, _, err := execute(t, "config", "init", "--force")
	require.NoError(t, err)

	backups, err := filepath.Glob(".maamarim.yaml.bak.*")
	require.NoError(t, err)
	require.Len(t, backups, 1)
	old, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Equal(t, "version: 1\n", string(old))

	data, err := os.ReadFile(".maamarim.yaml")
	require.NoError(t, err)
	assert.Equal(t, configs.ProjectConfigTemplate, string(data))
}

func TestConfigInit_User(t *testing.T) {
	inTempProject(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	_, _, err := execute(t, "config", "init", "--user")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(xdg, "maamarim", "config.yaml"))
	assert.NoFileExists(t, ".maamarim.yaml")
}

func TestConfigShow_MasksSecret(t *testing.T) {
	inTempProject(t)
	t.Setenv("MAAMARIM_MINIO_SECRET_KEY", "hunter2")

	stdout, _, err := execute(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, stdout, "docs_per_chunk: 10")
	assert.Contains(t, stdout, "********")
	assert.NotContains(t, stdout, "hunter2")
}

func TestConfigShow_JSONAppliesFlags(t *testing.T) {
	inTempProject(t)

	stdout, _, err := execute(t, "--output-dir", "exports", "config", "show", "--json")
	require.NoError(t, err)

	var got struct {
		OutputDir string `json:"output_dir"`
		Split     struct {
			DocsPerChunk int `json:"docs_per_chunk"`
		} `json:"split"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "exports", got.OutputDir)
	assert.Equal(t, 10, got.Split.DocsPerChunk)
}

func TestConfigPath_ListsProjectConfig(t *testing.T) {
	inTempProject(t)
	require.NoError(t, os.WriteFile(".maamarim.yaml", []byte("version: 1\n"), 0o644))

	stdout, _, err := execute(t, "config", "path")
	require.NoError(t, err)

	assert.Contains(t, stdout, "User")
	assert.Contains(t, stdout, ".maamarim.yaml")
}
