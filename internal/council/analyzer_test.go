package council

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(nil)
	require.NoError(t, err)
	return engine
}

func TestAnalyzeCategory_Truth(t *testing.T) {
	engine := newTestEngine(t)

	p, err := engine.analyzeCategory(context.Background(), "Should I change jobs?", CategoryTruth, nil)
	require.NoError(t, err)

	assert.Equal(t, CategoryTruth, p.Category)
	assert.Equal(t, "TRUTH analyzes through truth, boundaries, integrity, measurement", p.Perspective)
	assert.True(t, strings.HasPrefix(p.Reasoning, "Considering: "))
	assert.Contains(t, p.Reasoning, " | ")
	assert.Equal(t, "Apply principles: DÁNÁ, KÉLÚ", p.Recommendation)
	assert.Equal(t, []string{"DÁNÁ", "KÉLÚ"}, p.PrinciplesApplied)
	assert.Equal(t, 0.85, p.CoherenceScore)
}

func TestAnalyzeCategory_AppliesFirstTwoPrinciples(t *testing.T) {
	engine := newTestEngine(t)

	want := map[Category][]string{
		CategoryNurture:   {"HÓTÉ", "LÚVÁ"},
		CategoryTruth:     {"DÁNÁ", "KÉLÚ"},
		CategoryVision:    {"VÍSÁ", "CRÉÁ"},
		CategoryStructure: {"MÁTÁ", "FÍSÁ"},
	}

	for cat, names := range want {
		p, err := engine.analyzeCategory(context.Background(), "q", cat, nil)
		require.NoError(t, err)
		assert.Equal(t, names, p.PrinciplesApplied, "category %s", cat)
	}
}

func TestAnalyzeCategory_CoherenceInRange(t *testing.T) {
	engine := newTestEngine(t)

	for _, cat := range Categories() {
		p, err := engine.analyzeCategory(context.Background(), "q", cat, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.CoherenceScore, 0.0)
		assert.LessOrEqual(t, p.CoherenceScore, 1.0)
	}
}

func TestAnalyzeCategory_ContextIgnored(t *testing.T) {
	engine := newTestEngine(t)

	without, err := engine.analyzeCategory(context.Background(), "q", CategoryVision, nil)
	require.NoError(t, err)
	with, err := engine.analyzeCategory(context.Background(), "q", CategoryVision, map[string]any{"mood": "urgent"})
	require.NoError(t, err)

	assert.Equal(t, without, with)
}

func TestAnalyzeCategory_CancelledContext(t *testing.T) {
	engine := newTestEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.analyzeCategory(ctx, "q", CategoryTruth, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	// Shorter than the limit: kept in full, ellipsis still appended.
	assert.Equal(t, "short...", summarize("short", 50))

	// Longer than the limit: rune-based cut.
	long := strings.Repeat("ÁB", 40)
	got := summarize(long, 50)
	assert.Equal(t, string([]rune(long)[:50])+"...", got)
	assert.Equal(t, 53, len([]rune(got)))
}
