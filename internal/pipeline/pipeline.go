// Package pipeline wires the fetch → analyze → append flow behind the
// "feynman run" command. One invocation processes the documents saved to the
// reading inbox during the lookback window and appends any matched insights
// to today's daily note.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/feynman-labs/feynman/internal/analysis"
	"github.com/feynman-labs/feynman/internal/reader"
)

// DocumentLister fetches recent inbox documents.
type DocumentLister interface {
	List(ctx context.Context, opts reader.ListOptions) ([]reader.Document, error)
}

// Analyzer runs one document against the problems context.
type Analyzer interface {
	Analyze(ctx context.Context, doc *reader.Document, problems string) (*analysis.Insight, error)
}

// Notebook is the markdown vault the pipeline reads context from and writes
// hits into.
type Notebook interface {
	ReadContext() (string, error)
	AppendHits(hits []analysis.Insight) error
}

// Options tune a single run.
type Options struct {
	// WindowHours is the lookback window for fetched documents.
	WindowHours int
	// Location filters the inbox location (e.g., "new").
	Location string
	// Delay is the pause between consecutive LLM calls.
	Delay time.Duration
	// Limit caps the number of documents analyzed; 0 means no cap.
	Limit int
	// DryRun prints hits without writing the daily note.
	DryRun bool
}

// Result summarizes a run.
type Result struct {
	Fetched  int
	Analyzed int
	Skipped  int
	Hits     []analysis.Insight
	Failures int
}

// Pipeline executes runs.
type Pipeline struct {
	lister   DocumentLister
	analyzer Analyzer
	notebook Notebook
	out      io.Writer
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

// New creates a Pipeline writing progress to out.
func New(lister DocumentLister, analyzer Analyzer, notebook Notebook, out io.Writer) *Pipeline {
	return &Pipeline{
		lister:   lister,
		analyzer: analyzer,
		notebook: notebook,
		out:      out,
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

// Run executes one pass. Per-document failures are reported and skipped; the
// run only aborts on context cancellation or when nothing can be fetched at
// all.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	problems, err := p.notebook.ReadContext()
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(p.out, "Fetching documents from the last %d hours...\n", opts.WindowHours)

	after := p.now().UTC().Add(-time.Duration(opts.WindowHours) * time.Hour)
	docs, err := p.lister.List(ctx, reader.ListOptions{
		UpdatedAfter: after,
		Location:     opts.Location,
		WithContent:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	fmt.Fprintf(p.out, "Found %d new documents.\n", len(docs))

	if opts.Limit > 0 && len(docs) > opts.Limit {
		docs = docs[:opts.Limit]
		fmt.Fprintf(p.out, "Limiting analysis to the first %d.\n", opts.Limit)
	}

	result := &Result{Fetched: len(docs)}

	for i := range docs {
		doc := &docs[i]

		// Pause between LLM calls to stay under provider rate limits.
		if result.Analyzed > 0 && opts.Delay > 0 {
			if err := p.sleep(ctx, opts.Delay); err != nil {
				return result, err
			}
		}

		ins, err := p.analyzer.Analyze(ctx, doc, problems)
		switch {
		case err == nil:
			result.Analyzed++
			result.Hits = append(result.Hits, *ins)
			fmt.Fprintf(p.out, "  HIT  %s -> %s\n", doc.DisplayTitle(), ins.ProjectName)
		case errors.Is(err, analysis.ErrContentTooShort):
			result.Skipped++
		case errors.Is(err, analysis.ErrNoHit):
			result.Analyzed++
			fmt.Fprintf(p.out, "  ...  %s (no hit)\n", doc.DisplayTitle())
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return result, err
		default:
			result.Analyzed++
			result.Failures++
			fmt.Fprintf(p.out, "  FAIL %s: %v\n", doc.DisplayTitle(), err)
		}
	}

	if len(result.Hits) == 0 {
		fmt.Fprintln(p.out, "No hits found today.")
		return result, nil
	}

	if opts.DryRun {
		fmt.Fprintf(p.out, "Dry run: %d hit(s) found, nothing written.\n", len(result.Hits))
		return result, nil
	}

	if err := p.notebook.AppendHits(result.Hits); err != nil {
		return result, fmt.Errorf("writing daily note: %w", err)
	}
	fmt.Fprintf(p.out, "Added %d hit(s) to the daily note.\n", len(result.Hits))
	return result, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
