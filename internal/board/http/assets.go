package http

import (
	"net/http"
	"os"
	"path/filepath"
)

// AssetsHandler serves the bundled web client from a directory on disk.
// "/" maps to client.html; anything else resolves inside the assets dir.
// When no assets directory is configured the handler 404s everything, which
// keeps API-only deployments clean.
func AssetsHandler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dir == "" {
			http.NotFound(w, r)
			return
		}

		name := r.URL.Path
		if name == "/" {
			name = "client.html"
		}

		path := filepath.Join(dir, filepath.Clean("/"+name))
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}

		http.ServeFile(w, r, path)
	}
}
