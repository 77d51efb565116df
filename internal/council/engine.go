package council

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Decision is the merged result of one council consultation.
type Decision struct {
	IntegratedDecision  string                   `json:"integrated_decision"`
	CouncilPerspectives map[Category]Perspective `json:"council_perspectives"`
	ConsensusLevel      float64                  `json:"consensus_level"`
	CosmicCoherence     float64                  `json:"cosmic_coherence"`
	RecommendedActions  []string                 `json:"recommended_actions"`
	DevelopmentalStage  int                      `json:"developmental_stage"`
}

// ErrEmptyQuestion is returned when a consultation is requested without a
// question to consult about.
var ErrEmptyQuestion = errors.New("question must not be empty")

const (
	// consensusLevel and decisionStage are placeholders for a real
	// scoring model; both are emitted as literal constants.
	consensusLevel = 0.75
	decisionStage  = 5

	// Truncation lengths for the integrated decision summary and the
	// per-category recommended actions.
	decisionSummaryLen = 50
	actionSummaryLen   = 60
)

// Engine is the cosmic reasoning core: the immutable principle catalog,
// the per-category frameworks and the golden ratio. It is initialized
// once at startup and shared read-only across all requests.
type Engine struct {
	phi        float64
	catalog    *Catalog
	frameworks FrameworkTable
	log        *logrus.Logger
}

// NewEngine validates and assembles the catalog and framework table.
func NewEngine(log *logrus.Logger) (*Engine, error) {
	if log == nil {
		log = logrus.New()
	}

	catalog, err := NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("initializing principle catalog: %w", err)
	}
	frameworks, err := NewFrameworkTable()
	if err != nil {
		return nil, fmt.Errorf("initializing framework table: %w", err)
	}

	log.WithField("principles", catalog.Len()).Info("Cosmic reasoning engine initialized")

	return &Engine{
		phi:        (1 + math.Sqrt(5)) / 2,
		catalog:    catalog,
		frameworks: frameworks,
		log:        log,
	}, nil
}

// Catalog exposes the engine's principle catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Phi returns the golden ratio constant.
func (e *Engine) Phi() float64 {
	return e.phi
}

// Consult runs the four category analyses concurrently and synthesizes
// them into a single decision. The join is all-or-nothing: any failed
// analysis fails the whole consultation. The reqContext map is carried
// through to the analyzers unused, for wire compatibility.
func (e *Engine) Consult(ctx context.Context, question string, reqContext map[string]any) (*Decision, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	cats := Categories()
	perspectives := make([]Perspective, len(cats))

	g, gctx := errgroup.WithContext(ctx)
	for i, cat := range cats {
		g.Go(func() error {
			p, err := e.analyzeCategory(gctx, question, cat, reqContext)
			if err != nil {
				return fmt.Errorf("analyzing %s: %w", cat, err)
			}
			if err := p.Validate(); err != nil {
				return fmt.Errorf("analyzing %s: %w", cat, err)
			}
			perspectives[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("council consultation: %w", err)
	}

	return e.synthesize(question, perspectives), nil
}

// synthesize merges the per-category perspectives into one decision.
// Perspectives arrive in canonical category order.
func (e *Engine) synthesize(question string, perspectives []Perspective) *Decision {
	byCategory := make(map[Category]Perspective, len(perspectives))
	var coherenceSum float64
	segments := make([]string, 0, len(perspectives))
	actions := make([]string, 0, len(perspectives))

	for _, p := range perspectives {
		byCategory[p.Category] = p
		coherenceSum += p.CoherenceScore
		segments = append(segments, fmt.Sprintf("%s: %s",
			strings.ToUpper(string(p.Category)), summarize(p.Recommendation, decisionSummaryLen)))
		actions = append(actions, fmt.Sprintf("Apply %s wisdom: %s",
			p.Category, summarize(p.Recommendation, actionSummaryLen)))
	}

	return &Decision{
		IntegratedDecision: fmt.Sprintf("COSMIC DECISION: %s → Integrated wisdom: %s",
			question, strings.Join(segments, " | ")),
		CouncilPerspectives: byCategory,
		ConsensusLevel:      consensusLevel,
		CosmicCoherence:     coherenceSum / float64(len(perspectives)),
		RecommendedActions:  actions,
		DevelopmentalStage:  decisionStage,
	}
}

// GoldenProgression computes φⁿ, the developmental progression value at
// stage n. Range limits on n are the caller's concern.
func (e *Engine) GoldenProgression(n int) float64 {
	return math.Pow(e.phi, float64(n))
}
