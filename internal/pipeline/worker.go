package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/doclift/doclift/internal/config"
	"github.com/doclift/doclift/internal/doc"
	"github.com/doclift/doclift/internal/outline"
	"github.com/doclift/doclift/internal/parser"
	"github.com/doclift/doclift/internal/sink"
)

// Worker processes a single extraction job.
type Worker struct {
	rules config.Rules
	sink  *sink.Client
	stats *ExtractStats
	log   *slog.Logger
}

func NewWorker(rules config.Rules, snk *sink.Client, stats *ExtractStats, log *slog.Logger) *Worker {
	return &Worker{
		rules: rules,
		sink:  snk,
		stats: stats,
		log:   log,
	}
}

// Process runs the full extraction pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	// Phase 1: Parse.
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if pdf, ok := p.(*parser.PDFParser); ok {
		pdf.Log = log
	}

	d, err := p.Parse(bytes.NewReader(job.fileData), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Phase 2: Analyze typography and assemble the outline.
	job.SetStatus(StatusAnalyzing, "analyzing")
	start := time.Now()
	out := outline.Extract(d, w.rules)
	w.stats.Record(time.Since(start).Milliseconds())

	job.SetResult(out)
	job.SetCounts(len(d.Pages), len(out.Entries))
	job.SetTitle(out.Title)
	log.Info("outline extracted",
		"pages", len(d.Pages),
		"headings", len(out.Entries),
		"embedded_toc", len(d.TOC) > 0)

	// Phase 3: Deliver to the sink when one is configured. A delivery
	// failure is recorded on the job but the extraction result stands.
	if w.sink != nil {
		job.SetStatus(StatusDelivering, "delivering")
		if err := w.deliver(ctx, job, out); err != nil {
			log.Error("delivery failed", "error", err)
			job.AddError(fmt.Sprintf("deliver: %s", err))
		}
	}

	job.SetStatus(StatusCompleted, "done")
}

// deliver pushes the outline to the sink, retrying transient failures
// with backoff.
func (w *Worker) deliver(ctx context.Context, job *Job, out *doc.Outline) error {
	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		lastErr = w.sink.PutOutline(ctx, job.DocID, out)
		if lastErr == nil || !IsRetryable(lastErr) {
			return lastErr
		}
		w.log.Warn("retryable delivery error", "job_id", job.ID, "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}
