package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/doclift/doclift/internal/config"
	"github.com/doclift/doclift/internal/outline"
	"github.com/doclift/doclift/internal/parser"
	"github.com/doclift/doclift/internal/report"
)

// Batch extracts outlines for every supported document in a directory.
type Batch struct {
	Rules       config.Rules
	Concurrency int
	Format      report.Format
	Log         *slog.Logger
}

// BatchSummary reports the outcome of a batch run.
type BatchSummary struct {
	Found     int
	Processed int
	Failed    int
	Elapsed   time.Duration
}

// Run scans inputDir for supported documents and writes one artifact set
// per document into outputDir. A file that fails to parse is logged and
// counted as failed; the rest of the batch continues.
func (b *Batch) Run(ctx context.Context, inputDir, outputDir string) (BatchSummary, error) {
	start := time.Now()
	log := b.Log
	if log == nil {
		log = slog.Default()
	}
	format := b.Format
	if format == "" {
		format = report.FormatJSON
	}
	conc := b.Concurrency
	if conc <= 0 {
		conc = runtime.NumCPU()
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("reading input directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !parser.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}

	summary := BatchSummary{Found: len(files)}
	if len(files) == 0 {
		log.Warn("no supported documents found", "dir", inputDir)
		summary.Elapsed = time.Since(start)
		return summary, nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return summary, fmt.Errorf("creating output directory: %w", err)
	}

	var processed, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(conc)
	for _, name := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if err := b.extractOne(filepath.Join(inputDir, name), outputDir, format, log); err != nil {
				log.Error("extraction failed", "file", name, "error", err)
				failed.Add(1)
				return nil
			}
			processed.Add(1)
			return nil
		})
	}
	err = g.Wait()

	summary.Processed = int(processed.Load())
	summary.Failed = int(failed.Load())
	summary.Elapsed = time.Since(start)
	log.Info("batch complete",
		"generated", summary.Processed,
		"failed", summary.Failed,
		"found", summary.Found,
		"elapsed", summary.Elapsed.Round(time.Millisecond))
	return summary, err
}

func (b *Batch) extractOne(path, outputDir string, format report.Format, log *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	p, err := parser.ForFile(path)
	if err != nil {
		return err
	}
	if pdf, ok := p.(*parser.PDFParser); ok {
		pdf.Log = log
	}
	d, err := p.Parse(f, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	out := outline.Extract(d, b.Rules)
	paths, err := report.Save(outputDir, path, out, format)
	if err != nil {
		return err
	}
	log.Info("outline written",
		"file", filepath.Base(path),
		"headings", len(out.Entries),
		"artifacts", len(paths))
	return nil
}
