// Package web holds the frontend served at /.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var static embed.FS

// FileSystem returns the embedded frontend, or dir from disk when dir is set.
func FileSystem(dir string) http.FileSystem {
	if dir != "" {
		return http.Dir(dir)
	}
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
