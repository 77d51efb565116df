package council

import "fmt"

// Framework holds the static analysis frame for one category: what it
// focuses on, the questions it asks, and its weight in the council.
type Framework struct {
	FocusAreas       []string `json:"focus_areas"`
	GuidingQuestions []string `json:"guiding_questions"`
	Weight           float64  `json:"weight"`
}

// FrameworkTable maps every category to its framework. Exactly one entry
// per category, built once at engine initialization.
type FrameworkTable map[Category]Framework

// NewFrameworkTable builds the framework table and verifies it covers the
// four categories, no more, no less.
func NewFrameworkTable() (FrameworkTable, error) {
	t := frameworkData()
	if len(t) != len(Categories()) {
		return nil, fmt.Errorf("framework table has %d entries, want %d", len(t), len(Categories()))
	}
	for _, c := range Categories() {
		if _, ok := t[c]; !ok {
			return nil, fmt.Errorf("framework table missing category %q", c)
		}
	}
	return t, nil
}

// FrameworkFor returns the framework for cat. The error path is defensive:
// the category set is closed, so typed callers cannot reach it.
func (t FrameworkTable) FrameworkFor(cat Category) (Framework, error) {
	f, ok := t[cat]
	if !ok {
		return Framework{}, fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	return f, nil
}

func frameworkData() FrameworkTable {
	return FrameworkTable{
		CategoryNurture: {
			FocusAreas: []string{"nurturing", "connection", "emotional_intelligence", "community"},
			GuidingQuestions: []string{
				"How does this nurture growth and relationships?",
				"What connections need cultivation?",
				"How does this affect communal harmony?",
			},
			Weight: 0.25,
		},
		CategoryTruth: {
			FocusAreas: []string{"truth", "boundaries", "integrity", "measurement"},
			GuidingQuestions: []string{
				"What is the fundamental truth here?",
				"What boundaries ensure integrity?",
				"How do we measure accuracy and alignment?",
			},
			Weight: 0.25,
		},
		CategoryVision: {
			FocusAreas: []string{"vision", "possibility", "innovation", "perspective"},
			GuidingQuestions: []string{
				"What future possibilities does this reveal?",
				"How can perspective be expanded?",
				"What visionary paths are available?",
			},
			Weight: 0.25,
		},
		CategoryStructure: {
			FocusAreas: []string{"structure", "proportion", "timing", "manifestation"},
			GuidingQuestions: []string{
				"What structural integrity is needed?",
				"How is cosmic proportion maintained?",
				"What is the optimal timing for manifestation?",
			},
			Weight: 0.25,
		},
	}
}
