package council

import (
	"context"
	"fmt"
	"strings"
)

// Perspective is the output of one category's analysis of a question.
// It lives only for the duration of a single consultation.
type Perspective struct {
	Category            Category `json:"category"`
	Perspective         string   `json:"perspective"`
	Reasoning           string   `json:"reasoning"`
	Recommendation      string   `json:"recommendation"`
	PrinciplesApplied   []string `json:"principles_applied"`
	CoherenceScore      float64  `json:"coherence_score"`
}

// perspectiveCoherence is a placeholder for a real scoring model; every
// perspective currently carries this literal score.
const perspectiveCoherence = 0.85

// appliedPrincipleLimit caps how many catalog entries a perspective cites.
const appliedPrincipleLimit = 2

// analyzeCategory builds one category's perspective on the question.
// Pure computation over the immutable catalog and framework table; the
// request context map is accepted for wire compatibility but unused.
func (e *Engine) analyzeCategory(ctx context.Context, question string, cat Category, _ map[string]any) (Perspective, error) {
	if err := ctx.Err(); err != nil {
		return Perspective{}, err
	}

	framework, err := e.frameworks.FrameworkFor(cat)
	if err != nil {
		return Perspective{}, err
	}
	principles := e.catalog.ByCategory(cat)

	limit := appliedPrincipleLimit
	if len(principles) < limit {
		limit = len(principles)
	}
	applied := make([]string, 0, limit)
	for _, p := range principles[:limit] {
		applied = append(applied, p.Name)
	}

	return Perspective{
		Category:          cat,
		Perspective:       fmt.Sprintf("%s analyzes through %s", strings.ToUpper(string(cat)), strings.Join(framework.FocusAreas, ", ")),
		Reasoning:         fmt.Sprintf("Considering: %s", strings.Join(framework.GuidingQuestions, " | ")),
		Recommendation:    fmt.Sprintf("Apply principles: %s", strings.Join(applied, ", ")),
		PrinciplesApplied: applied,
		CoherenceScore:    perspectiveCoherence,
	}, nil
}

// Validate enforces the perspective constraints: a known category and a
// coherence score inside [0,1].
func (p Perspective) Validate() error {
	if !p.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, p.Category)
	}
	if p.CoherenceScore < 0 || p.CoherenceScore > 1 {
		return fmt.Errorf("coherence score %v outside [0,1]", p.CoherenceScore)
	}
	return nil
}

// summarize returns at most limit characters of s followed by a literal
// ellipsis. The cut is rune-based so principle names survive intact.
func summarize(s string, limit int) string {
	r := []rune(s)
	if len(r) > limit {
		s = string(r[:limit])
	}
	return s + "..."
}
