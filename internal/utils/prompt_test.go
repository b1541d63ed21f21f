package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tone-converter-service/internal/models"
)

func TestDefaultPromptsCoverEveryTarget(t *testing.T) {
	set := DefaultPrompts()
	for _, target := range models.Targets {
		prompt, ok := set.Resolve(target)
		assert.True(t, ok, "missing prompt for %s", target)
		assert.NotEmpty(t, prompt)
	}
}

func TestDefaultPromptsAreDistinct(t *testing.T) {
	set := DefaultPrompts()
	up, _ := set.Resolve(models.TargetUpward)
	lat, _ := set.Resolve(models.TargetLateral)
	ext, _ := set.Resolve(models.TargetExternal)

	assert.NotEqual(t, up, lat)
	assert.NotEqual(t, lat, ext)
	assert.NotEqual(t, up, ext)
}

func TestResolveUnknownTarget(t *testing.T) {
	_, ok := DefaultPrompts().Resolve(models.Target("Sideways"))
	assert.False(t, ok)
}

func TestLoadPromptsEmptyDirUsesDefaults(t *testing.T) {
	set, err := LoadPrompts("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPrompts(), set)
}

func TestLoadPromptsOverridesFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lateral.txt"), []byte("  be nice to peers \n"), 0o644))

	set, err := LoadPrompts(dir)
	require.NoError(t, err)

	lat, _ := set.Resolve(models.TargetLateral)
	assert.Equal(t, "be nice to peers", lat)

	up, _ := set.Resolve(models.TargetUpward)
	assert.Equal(t, upwardPrompt, up)
}

func TestLoadPromptsRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "external.txt"), []byte("   \n"), 0o644))

	_, err := LoadPrompts(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "External")
}

func TestLoadPromptFromFileMissing(t *testing.T) {
	_, err := LoadPromptFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
