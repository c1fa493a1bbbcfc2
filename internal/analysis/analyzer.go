package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/feynman-labs/feynman/internal/llm"
	"github.com/feynman-labs/feynman/internal/reader"
)

// ErrContentTooShort is returned for documents that are likely bare links
// rather than articles.
var ErrContentTooShort = errors.New("analysis: content too short")

// Analyzer runs documents against the active-problems context.
type Analyzer struct {
	client     llm.Client
	minContent int
	maxContent int
}

// NewAnalyzer creates an Analyzer. minContent is the character floor below
// which a document is skipped; maxContent caps how much article text goes
// into the prompt.
func NewAnalyzer(client llm.Client, minContent, maxContent int) *Analyzer {
	return &Analyzer{
		client:     client,
		minContent: minContent,
		maxContent: maxContent,
	}
}

// Analyze sends one document plus the problems context to the model and
// returns a validated insight. Returns ErrContentTooShort or ErrNoHit for
// the two expected negative outcomes.
func (a *Analyzer) Analyze(ctx context.Context, doc *reader.Document, problems string) (*Insight, error) {
	content := doc.Content()
	if len(content) < a.minContent {
		return nil, ErrContentTooShort
	}

	prompt := BuildPrompt(problems, doc.DisplayTitle(), content, a.maxContent)

	reply, err := a.client.Generate(ctx, prompt, llm.Params{
		Temperature: llm.Ptr(float32(0)),
		MaxTokens:   1000,
	})
	if err != nil {
		return nil, fmt.Errorf("generating analysis: %w", err)
	}

	ins, err := ParseReply(reply)
	if err != nil {
		return nil, err
	}

	// The source link comes from the document, not the model.
	ins.SourceURL = doc.SourceURL
	if ins.SourceURL == "" {
		ins.SourceURL = "#"
	}
	return ins, nil
}
