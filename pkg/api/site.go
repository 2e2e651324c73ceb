package api

import (
	"bytes"
	"compress/gzip"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/folio/folio/pkg/api/response"
	"github.com/folio/folio/pkg/logger"
)

// Vite emits content-hashed asset names such as index.4f2a9c1e.js.
var hashedAssetPattern = regexp.MustCompile(`[.-][a-zA-Z0-9_]{8,}\.(js|css|mjs|woff2?|png|jpe?g|svg|webp)$`)

const gzipMinSize = 1024

// siteHandler serves a built single-page site from siteFS. Paths without an
// extension fall back to index.html so client-side routes survive a reload.
type siteHandler struct {
	files fs.FS
	log   logger.Logger
}

func newSiteHandler(files fs.FS, log logger.Logger) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &siteHandler{files: files, log: log}
}

func (h *siteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		response.Error(w, http.StatusMethodNotAllowed, response.ErrCodeMethodNotAllowed,
			"Method not allowed", requestID(r))
		return
	}

	name, ok := h.resolve(r.URL.Path)
	if !ok {
		response.Error(w, http.StatusNotFound, response.ErrCodeNotFound, "Not found", requestID(r))
		return
	}

	content, modTime, err := h.read(name)
	if err != nil {
		h.log.WarnContext(r.Context(), "site file unreadable", "file", name, "error", err)
		response.Error(w, http.StatusNotFound, response.ErrCodeNotFound, "Not found", requestID(r))
		return
	}

	ctype := mime.TypeByExtension(path.Ext(name))
	if ctype == "" {
		ctype = http.DetectContentType(content)
	}
	w.Header().Set("Content-Type", ctype)
	w.Header().Set("Cache-Control", cacheControl(name))

	if !acceptsGzip(r, name, len(content)) {
		http.ServeContent(w, r, name, modTime, bytes.NewReader(content))
		return
	}

	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Add("Vary", "Accept-Encoding")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	gz := gzip.NewWriter(w)
	if _, err := gz.Write(content); err != nil {
		h.log.WarnContext(r.Context(), "site gzip write failed", "file", name, "error", err)
	}
	if err := gz.Close(); err != nil {
		h.log.WarnContext(r.Context(), "site gzip close failed", "file", name, "error", err)
	}
}

func (h *siteHandler) resolve(urlPath string) (string, bool) {
	clean := strings.TrimPrefix(path.Clean("/"+strings.TrimSpace(urlPath)), "/")
	if clean == "" {
		return "index.html", h.exists("index.html")
	}
	if h.exists(clean) {
		return clean, true
	}
	if path.Ext(clean) != "" {
		return "", false
	}
	return "index.html", h.exists("index.html")
}

func (h *siteHandler) exists(name string) bool {
	info, err := fs.Stat(h.files, name)
	return err == nil && !info.IsDir()
}

func (h *siteHandler) read(name string) ([]byte, time.Time, error) {
	info, err := fs.Stat(h.files, name)
	if err != nil {
		return nil, time.Time{}, err
	}
	content, err := fs.ReadFile(h.files, name)
	if err != nil {
		return nil, time.Time{}, err
	}
	return content, info.ModTime(), nil
}

func cacheControl(name string) string {
	switch base := path.Base(name); {
	case base == "index.html":
		return "no-cache"
	case hashedAssetPattern.MatchString(base):
		return "public, max-age=31536000, immutable"
	default:
		return "public, max-age=300"
	}
}

func acceptsGzip(r *http.Request, name string, size int) bool {
	if size < gzipMinSize || r.Header.Get("Range") != "" {
		return false
	}
	if !strings.Contains(strings.ToLower(r.Header.Get("Accept-Encoding")), "gzip") {
		return false
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".html", ".css", ".js", ".mjs", ".json", ".svg", ".txt":
		return true
	}
	return false
}
