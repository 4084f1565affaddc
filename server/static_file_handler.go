package server

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"path/filepath"
	"strings"
)

//go:embed static/*
var staticFiles embed.FS

func StaticFilesFS() fs.FS {
	subFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic("Failed to create sub filesystem: " + err.Error())
	}
	return subFS
}

// StaticFileHandler streams files from fsys for GET requests. It declines,
// writing nothing, for other methods and for paths that are not regular files.
type StaticFileHandler struct {
	fsys fs.FS
}

func NewStaticFileHandler(fsys fs.FS) *StaticFileHandler {
	return &StaticFileHandler{fsys: fsys}
}

func (h *StaticFileHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		return
	}
	name, ok := h.resolve(r.URL.Path)
	if !ok {
		return
	}
	if err := StreamFile(w, h.fsys, name); err != nil {
		logError(r.Method, r.URL.Path, err.Error())
	}
}

// resolve maps a request path onto a regular file inside fsys.
func (h *StaticFileHandler) resolve(urlPath string) (string, bool) {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" || !fs.ValidPath(name) {
		return "", false
	}
	info, err := fs.Stat(h.fsys, name)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return name, true
}

func StreamFile(w http.ResponseWriter, fsys fs.FS, fileName string) error {
	f, err := fsys.Open(fileName)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", fileName, err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(fileName))
	ctype := mime.TypeByExtension(ext)
	if ctype == "" {
		// Fallback for unknown extensions
		ctype = "application/octet-stream"
	}
	// Ensure UTF-8 for text types when not present
	if strings.HasPrefix(ctype, "text/") && !strings.Contains(strings.ToLower(ctype), "charset=") {
		ctype += "; charset=utf-8"
	}
	w.Header().Set("Content-Type", ctype)
	w.Header().Set("Cache-Control", cacheControlFor(fileName))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to write %s content: %w", fileName, err)
	}
	return nil
}
