// Package batch drives outline detection over a directory of documents
// and owns the single-document pipeline shared with the HTTP mode.
package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/nemeziz1010/pdfoutline/internal/config"
	"github.com/nemeziz1010/pdfoutline/internal/doc"
	"github.com/nemeziz1010/pdfoutline/internal/outline"
	"github.com/nemeziz1010/pdfoutline/internal/source"
)

// Summary reports the outcome of one batch run.
type Summary struct {
	Found     int
	Processed int
	Failed    int
	Elapsed   time.Duration
}

// Runner walks the input directory once and writes one outline JSON
// file per supported document.
type Runner struct {
	cfg   config.Config
	stats *Stats
	log   *slog.Logger
}

func NewRunner(cfg config.Config, stats *Stats, log *slog.Logger) *Runner {
	return &Runner{cfg: cfg, stats: stats, log: log}
}

// Run processes every supported file in the input directory with a
// fixed-size worker pool. Document failures are logged, counted and
// skipped; only setup problems abort the run. Detection runs are
// independent per document, so the pool needs no coordination beyond
// the outcome counters.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	start := time.Now()

	files, err := r.discover()
	if err != nil {
		return Summary{}, err
	}
	r.log.Info("batch started",
		"input_dir", r.cfg.InputDir,
		"output_dir", r.cfg.OutputDir,
		"found", len(files),
		"workers", r.cfg.WorkerCount)

	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output dir: %w", err)
	}

	queue := make(chan string, len(files))
	for _, f := range files {
		queue <- f
	}
	close(queue)

	var (
		mu        sync.Mutex
		processed int
		failed    int
	)

	var wg sync.WaitGroup
	for i := 0; i < r.cfg.WorkerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case path, ok := <-queue:
					if !ok {
						return
					}
					err := r.processFile(path)
					mu.Lock()
					if err != nil {
						failed++
					} else {
						processed++
					}
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	if ctx.Err() != nil && len(queue) > 0 {
		r.log.Warn("batch interrupted", "remaining", len(queue))
	}

	sum := Summary{
		Found:     len(files),
		Processed: processed,
		Failed:    failed,
		Elapsed:   time.Since(start),
	}
	r.log.Info("batch complete",
		"found", sum.Found,
		"processed", sum.Processed,
		"failed", sum.Failed,
		"elapsed_ms", sum.Elapsed.Milliseconds())
	return sum, nil
}

// discover lists the supported files in the input directory. os.ReadDir
// returns entries sorted by name, which fixes the processing order.
func (r *Runner) discover() ([]string, error) {
	entries, err := os.ReadDir(r.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !source.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(r.cfg.InputDir, e.Name()))
	}
	return files, nil
}

// processFile turns one document into <base>.json in the output dir.
func (r *Runner) processFile(path string) error {
	start := time.Now()
	name := filepath.Base(path)
	log := r.log.With("file", name)

	f, err := os.Open(path)
	if err != nil {
		r.stats.RecordFailure(time.Since(start).Milliseconds())
		log.Error("open failed", "error", err)
		return err
	}
	structure, pageCount, err := ProcessDocument(f, name, r.cfg.Detection())
	f.Close()
	if err != nil {
		r.stats.RecordFailure(time.Since(start).Milliseconds())
		log.Error("document failed", "error", err)
		return err
	}

	data, err := EncodeStructure(structure)
	if err != nil {
		r.stats.RecordFailure(time.Since(start).Milliseconds())
		log.Error("encode failed", "error", err)
		return err
	}

	outPath := filepath.Join(r.cfg.OutputDir, outputName(name))
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		r.stats.RecordFailure(time.Since(start).Milliseconds())
		log.Error("write failed", "output", outPath, "error", err)
		return err
	}

	durationMs := time.Since(start).Milliseconds()
	r.stats.RecordSuccess(durationMs)
	log.Info("document processed",
		"output", filepath.Base(outPath),
		"pages", pageCount,
		"headings", len(structure.Outline),
		"has_title", structure.Title != "",
		"duration_ms", durationMs)
	return nil
}

// ProcessDocument runs the extract and detect pipeline for a single
// document. The format is chosen by the filename extension.
func ProcessDocument(rd io.Reader, filename string, cfg outline.Config) (doc.Structure, int, error) {
	src, err := source.ForFile(filename)
	if err != nil {
		return doc.Structure{}, 0, err
	}
	pages, err := src.Extract(rd, filename)
	if err != nil {
		return doc.Structure{}, 0, fmt.Errorf("extract: %w", err)
	}
	return outline.Detect(pages, cfg), len(pages), nil
}

// EncodeStructure marshals a detection result the way the output files
// carry it: four-space indentation, HTML escaping off, trailing newline.
func EncodeStructure(s doc.Structure) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// outputName maps a document filename to its outline filename.
func outputName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ".json"
}
