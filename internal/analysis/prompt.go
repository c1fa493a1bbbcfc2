package analysis

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"
)

// markdownSeparators prefer paragraph and sentence boundaries so a capped
// article ends on a readable edge instead of mid-word.
var markdownSeparators = []string{"\n\n", "\n", ". ", " ", ""}

const promptTemplate = `You are an expert research assistant using the Feynman Technique.

CONTEXT (My Active Problems):
%s

INPUT TEXT (New Article):
Title: %s
%s

---
YOUR TASK:
Run the Input Text against my Active Problems. Look for high-value connections.

Apply these filters:
1. THE INVERSION: Does this contradict my current hypothesis?
2. THE MECHANISM: Is there an abstract mechanism here I can steal?
3. THE SOLUTION: Does this directly solve a bottleneck?

OUTPUT FORMAT:
If NO strong connection is found, output exactly: "%s"

If a connection is found, output a JSON object:
{
    "project_name": "Name of the relevant project",
    "insight_type": "Mechanism" or "Contradiction" or "Solution",
    "summary": "One sentence summary of the connection.",
    "actionable_advice": "Specific thing I should do based on this.",
    "source_name": "Name of the article"
}`

// BuildPrompt assembles the analysis prompt. Article content longer than
// maxContent characters is reduced to its leading chunk to keep token costs
// bounded.
func BuildPrompt(context, title, content string, maxContent int) string {
	content = CapContent(content, maxContent)
	return fmt.Sprintf(promptTemplate, context, title, content, NoHitSentinel)
}

// CapContent returns content reduced to at most max characters, cutting on a
// markdown-aware boundary where possible.
func CapContent(content string, max int) string {
	if max <= 0 || len(content) <= max {
		return content
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(max),
		textsplitter.WithChunkOverlap(0),
		textsplitter.WithSeparators(markdownSeparators),
	)
	chunks, err := splitter.SplitText(content)
	if err != nil || len(chunks) == 0 {
		// Hard cut as a fallback.
		return content[:max]
	}

	first := strings.TrimSpace(chunks[0])
	if first == "" || len(first) > max {
		return content[:max]
	}
	return first
}
