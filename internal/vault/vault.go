// Package vault reads and writes the user's Obsidian-style markdown vault:
// the active-problems context file and the daily note that insights are
// appended to.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/feynman-labs/feynman/internal/analysis"
)

const dailyNoteDateFormat = "2006-01-02"

// Vault wraps a vault directory layout.
type Vault struct {
	root        string
	contextFile string
	dailyDir    string
	now         func() time.Time
}

// Option configures a Vault.
type Option func(*Vault)

// WithClock overrides the time source (useful for testing).
func WithClock(now func() time.Time) Option {
	return func(v *Vault) {
		v.now = now
	}
}

// New creates a Vault rooted at root. contextFile and dailyDir are relative
// to root.
func New(root, contextFile, dailyDir string, opts ...Option) *Vault {
	v := &Vault{
		root:        root,
		contextFile: contextFile,
		dailyDir:    dailyDir,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ContextPath returns the absolute path of the active-problems file.
func (v *Vault) ContextPath() string {
	return filepath.Join(v.root, v.contextFile)
}

// DailyNotePath returns the path of today's daily note.
func (v *Vault) DailyNotePath() string {
	day := v.now().Format(dailyNoteDateFormat)
	return filepath.Join(v.root, v.dailyDir, day+".md")
}

// ReadContext reads the active-problems file. A missing file is an error:
// without it there is nothing to match articles against.
func (v *Vault) ReadContext() (string, error) {
	data, err := os.ReadFile(v.ContextPath())
	if err != nil {
		return "", fmt.Errorf("reading context file %s: %w", v.ContextPath(), err)
	}
	return string(data), nil
}

// AppendHits appends a Feynman Hits section with the given insights to
// today's daily note, creating the folder and the note as needed.
func (v *Vault) AppendHits(hits []analysis.Insight) error {
	if len(hits) == 0 {
		return nil
	}

	notePath := v.DailyNotePath()
	noteDir := filepath.Dir(notePath)
	if err := os.MkdirAll(noteDir, 0755); err != nil {
		return fmt.Errorf("creating daily note folder %s: %w", noteDir, err)
	}

	// Create the note with a header if it doesn't exist yet.
	if _, err := os.Stat(notePath); os.IsNotExist(err) {
		day := v.now().Format(dailyNoteDateFormat)
		header := fmt.Sprintf("# Daily Note %s\n\n", day)
		if err := os.WriteFile(notePath, []byte(header), 0644); err != nil {
			return fmt.Errorf("creating daily note %s: %w", notePath, err)
		}
	}

	f, err := os.OpenFile(notePath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening daily note %s: %w", notePath, err)
	}
	defer f.Close()

	if _, err := f.WriteString(renderHits(hits)); err != nil {
		return fmt.Errorf("appending to daily note %s: %w", notePath, err)
	}
	return nil
}

// renderHits produces the markdown block appended to the daily note.
func renderHits(hits []analysis.Insight) string {
	var b strings.Builder
	b.WriteString("\n\n## 🎯 Feynman Hits\n")
	for _, hit := range hits {
		fmt.Fprintf(&b, "### Match: %s\n", hit.ProjectName)
		fmt.Fprintf(&b, "> **%s**: %s\n\n", hit.InsightType, hit.Summary)
		fmt.Fprintf(&b, "👉 **Action:** %s\n", hit.ActionableAdvice)
		fmt.Fprintf(&b, "🔗 [%s](%s)\n\n", hit.SourceName, hit.SourceURL)
		b.WriteString("---\n")
	}
	return b.String()
}
