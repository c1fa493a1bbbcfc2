package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// NoHitSentinel is the exact token the prompt asks the model to emit when an
// article has no strong connection to any active problem.
const NoHitSentinel = "NO_HIT"

// ErrNoHit is returned when the model reports no connection. It is the
// expected outcome for most documents, not a failure.
var ErrNoHit = errors.New("analysis: no connection found")

// Insight types the prompt allows.
const (
	TypeMechanism     = "Mechanism"
	TypeContradiction = "Contradiction"
	TypeSolution      = "Solution"
)

// Insight is one validated connection between an article and an active
// problem.
type Insight struct {
	ProjectName      string `json:"project_name"`
	InsightType      string `json:"insight_type"`
	Summary          string `json:"summary"`
	ActionableAdvice string `json:"actionable_advice"`
	SourceName       string `json:"source_name"`
	SourceURL        string `json:"source_url,omitempty"`
}

// ParseReply interprets a raw model reply. Returns ErrNoHit when the model
// emitted the sentinel. Models often wrap the JSON in prose or code fences,
// so the first '{' to the last '}' span is extracted before unmarshaling.
func ParseReply(reply string) (*Insight, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, fmt.Errorf("empty model reply")
	}
	if strings.Contains(reply, NoHitSentinel) {
		return nil, ErrNoHit
	}

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("model reply contains no JSON object")
	}
	raw := reply[start : end+1]

	result, err := ValidateInsight([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("validating insight: %w", err)
	}
	if !result.Valid {
		var msgs []string
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		return nil, fmt.Errorf("model reply failed schema validation: %s", strings.Join(msgs, "; "))
	}

	var ins Insight
	if err := json.Unmarshal([]byte(raw), &ins); err != nil {
		return nil, fmt.Errorf("parsing insight JSON: %w", err)
	}
	return &ins, nil
}
