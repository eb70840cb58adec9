package version

import (
	"encoding/json"
	"regexp"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_FollowsSemverOrDev(t *testing.T) {
	// Given: a build with or without ldflags
	if Version == "dev" {
		return
	}

	// Then: injected versions are semver
	assert.Regexp(t, regexp.MustCompile(`^v?\d+\.\d+\.\d+(-[\w.]+)?$`), Version)
}

func TestString_ContainsAllParts(t *testing.T) {
	s := String()

	assert.Contains(t, s, "maamarim "+Version)
	assert.Contains(t, s, "commit: "+Commit)
	assert.Contains(t, s, "go: "+GoVersion)
}

func TestShort_ReturnsVersion(t *testing.T) {
	assert.Equal(t, Version, Short())
}

func TestGetInfo_IsJSONSerializable(t *testing.T) {
	// Given: the build info
	info := GetInfo()

	// When: encoding it
	data, err := json.Marshal(info)
	require.NoError(t, err)

	// Then: every field is present with the runtime platform
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Version, decoded["version"])
	assert.Equal(t, runtime.GOOS, decoded["os"])
	assert.Equal(t, runtime.GOARCH, decoded["arch"])
	assert.Contains(t, decoded, "go_version")
	assert.Contains(t, decoded, "date")
	assert.Contains(t, decoded, "commit")
}
