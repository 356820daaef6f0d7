package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/nemeziz1010/pdfoutline/internal/batch"
	"github.com/nemeziz1010/pdfoutline/internal/source"
)

// handleOutline accepts one document as a multipart upload and responds
// with its detected title and heading outline, in the same JSON shape
// the batch mode writes to disk.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	// Limit total request size; extra 1MB for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !source.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	start := time.Now()
	structure, pageCount, err := batch.ProcessDocument(bytes.NewReader(data), filename, s.cfg.Detection())
	durationMs := time.Since(start).Milliseconds()
	if err != nil {
		s.stats.RecordFailure(durationMs)
		s.log.Error("outline failed", "file", filename, "error", err)
		jsonError(w, "detection failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	out, err := batch.EncodeStructure(structure)
	if err != nil {
		s.stats.RecordFailure(durationMs)
		jsonError(w, "failed to encode result", http.StatusInternalServerError)
		return
	}

	s.stats.RecordSuccess(durationMs)
	s.log.Info("outline detected",
		"file", filename,
		"pages", pageCount,
		"headings", len(structure.Outline),
		"has_title", structure.Title != "",
		"duration_ms", durationMs)

	w.Header().Set("Content-Type", "application/json")
	w.Write(out)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"uptime_s": int64(time.Since(s.started).Seconds()),
		"stats":    s.stats.Snapshot(),
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
