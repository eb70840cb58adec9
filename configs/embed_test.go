package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestProjectConfigTemplate_IsValidYAML(t *testing.T) {
	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(ProjectConfigTemplate), &parsed))

	assert.Equal(t, "maamarim_structured.json", parsed["input"])
	assert.Contains(t, parsed, "split")
	assert.Contains(t, parsed, "store")
}
