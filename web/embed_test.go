package web

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedFrontend(t *testing.T) {
	fsys := FileSystem("")
	for _, name := range []string{"/index.html", "/js/script.js", "/css/style.css"} {
		f, err := fsys.Open(name)
		require.NoError(t, err, name)
		f.Close()
	}
}

func TestFileSystemFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("custom page"), 0o644))

	f, err := FileSystem(dir).Open("/index.html")
	require.NoError(t, err)
	defer f.Close()

	body, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "custom page", string(body))
}
