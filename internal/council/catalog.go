package council

import "fmt"

// Principle is one static record of the 42 Ka Cube principles. Records
// are built once at engine initialization and never mutated.
type Principle struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Meaning     string   `json:"meaning"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Formula     string   `json:"formula"`
	Application string   `json:"application"`
}

// Catalog owns the immutable principle table. Accessors are pure reads;
// the catalog is safe to share across concurrent request handlers.
type Catalog struct {
	entries []Principle
}

// catalogSize is the fixed number of Ka Cube principles.
const catalogSize = 42

// NewCatalog builds the catalog and validates its invariants: exactly 42
// entries, ids unique and ascending 1..42, every category in the closed set.
func NewCatalog() (*Catalog, error) {
	entries := principleTable()
	if len(entries) != catalogSize {
		return nil, fmt.Errorf("catalog has %d principles, want %d", len(entries), catalogSize)
	}
	for i, p := range entries {
		if p.ID != i+1 {
			return nil, fmt.Errorf("principle at index %d has id %d, want %d", i, p.ID, i+1)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("principle %d (%s): %w: %q", p.ID, p.Name, ErrUnknownCategory, p.Category)
		}
	}
	return &Catalog{entries: entries}, nil
}

// Principles returns all principles in declaration order, ids ascending.
func (c *Catalog) Principles() []Principle {
	out := make([]Principle, len(c.entries))
	copy(out, c.entries)
	return out
}

// ByCategory returns the principles belonging to cat, preserving catalog order.
func (c *Catalog) ByCategory(cat Category) []Principle {
	var out []Principle
	for _, p := range c.entries {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of loaded principles.
func (c *Catalog) Len() int {
	return len(c.entries)
}

func principleTable() []Principle {
	return []Principle{
		// Truth principles (boundaries, integrity, measurement)
		{
			ID: 1, Name: "DÁNÁ", Meaning: "Truth Alignment",
			Description: "Fundamental reality alignment and cosmic truth measurement",
			Category:    CategoryTruth,
			Formula:     "Â_truth = ∇·Ψ_cosmic",
			Application: "Reality verification and truth discernment",
		},
		{
			ID: 2, Name: "KÉLÚ", Meaning: "Boundary Clarity",
			Description: "Clear delineation of sacred boundaries and limits",
			Category:    CategoryTruth,
			Formula:     "∂Ω/∂t = 0",
			Application: "Setting healthy boundaries and limits",
		},
		{
			ID: 3, Name: "SÉTÁ", Meaning: "Precision Measurement",
			Description: "Accurate measurement and assessment of reality",
			Category:    CategoryTruth,
			Formula:     "ε_measure → 0",
			Application: "Data-driven decision making",
		},
		{
			ID: 4, Name: "WÉNÁ", Meaning: "Integrity Shield",
			Description: "Protection and maintenance of wholeness and authenticity",
			Category:    CategoryTruth,
			Formula:     "∮ integrity·dl = 1",
			Application: "Maintaining ethical standards",
		},
		{
			ID: 5, Name: "PÉKÁ", Meaning: "Discernment Light",
			Description: "Clear seeing and wise judgment of situations",
			Category:    CategoryTruth,
			Formula:     "L_discern = ∫clarity·dλ",
			Application: "Critical thinking and analysis",
		},
		{
			ID: 6, Name: "RÉNÁ", Meaning: "Truth Resonance",
			Description: "Vibrational alignment with fundamental truth",
			Category:    CategoryTruth,
			Formula:     "ω_truth ≈ ω_reality",
			Application: "Authenticity in communication",
		},
		{
			ID: 7, Name: "TÉLÚ", Meaning: "Test Validation",
			Description: "Verification through rigorous testing",
			Category:    CategoryTruth,
			Formula:     "P(valid|test) → 1",
			Application: "Quality assurance processes",
		},
		{
			ID: 8, Name: "MÉKÁ", Meaning: "Standard Calibration",
			Description: "Alignment with universal standards and measures",
			Category:    CategoryTruth,
			Formula:     "x_actual = x_standard",
			Application: "Standardization and consistency",
		},
		{
			ID: 9, Name: "DÉWÁ", Meaning: "Honesty Core",
			Description: "Foundation of truthful expression and transparency",
			Category:    CategoryTruth,
			Formula:     "H = -Σp·log(p)",
			Application: "Transparent communication",
		},
		{
			ID: 10, Name: "LÉNÁ", Meaning: "Law Harmony",
			Description: "Alignment with natural and cosmic law",
			Category:    CategoryTruth,
			Formula:     "∇×E = -∂B/∂t",
			Application: "Legal and ethical compliance",
		},
		{
			ID: 11, Name: "NÉKÁ", Meaning: "Clarity Beacon",
			Description: "Illumination of truth in darkness",
			Category:    CategoryTruth,
			Formula:     "I = I₀e^(-μx)",
			Application: "Clear documentation and teaching",
		},

		// Structure principles (proportion, timing, manifestation)
		{
			ID: 12, Name: "MÁTÁ", Meaning: "Justice Balance",
			Description: "Right relationship and cosmic balance maintenance",
			Category:    CategoryStructure,
			Formula:     "Â_justice = ∫balance·dΩ",
			Application: "Fairness and equitable distribution",
		},
		{
			ID: 13, Name: "FÍSÁ", Meaning: "Golden Proportion",
			Description: "Divine proportion and harmonic ratios in manifestation",
			Category:    CategoryStructure,
			Formula:     "φ = (1+√5)/2",
			Application: "Aesthetic and functional design",
		},
		{
			ID: 14, Name: "RÍTÁ", Meaning: "Sacred Timing",
			Description: "Perfect timing and synchronization with cosmic cycles",
			Category:    CategoryStructure,
			Formula:     "t_optimal = Φ(cycle)",
			Application: "Project planning and scheduling",
		},
		{
			ID: 15, Name: "SÍMÁ", Meaning: "Symmetry Order",
			Description: "Balanced structure and mirrored harmony",
			Category:    CategoryStructure,
			Formula:     "S(x) = S(-x)",
			Application: "Organizational structure design",
		},
		{
			ID: 16, Name: "KRÍÁ", Meaning: "Crystalline Matrix",
			Description: "Perfect geometric structure and lattice formation",
			Category:    CategoryStructure,
			Formula:     "A·B = 0",
			Application: "Systems architecture",
		},
		{
			ID: 17, Name: "BÓNÁ", Meaning: "Foundation Strength",
			Description: "Solid base and structural integrity",
			Category:    CategoryStructure,
			Formula:     "σ_max < σ_yield",
			Application: "Infrastructure development",
		},
		{
			ID: 18, Name: "DRÍÁ", Meaning: "Distribution Flow",
			Description: "Optimal resource allocation and flow",
			Category:    CategoryStructure,
			Formula:     "∇·F = ρ",
			Application: "Resource management",
		},
		{
			ID: 19, Name: "KÓNÁ", Meaning: "Sacred Geometry",
			Description: "Divine patterns in form and structure",
			Category:    CategoryStructure,
			Formula:     "V = ∫∫∫ dV",
			Application: "Spatial planning",
		},
		{
			ID: 20, Name: "TRÍÁ", Meaning: "Threefold Unity",
			Description: "Trinity principle in manifestation",
			Category:    CategoryStructure,
			Formula:     "Ψ = ψ₁ + ψ₂ + ψ₃",
			Application: "Three-pillar frameworks",
		},
		{
			ID: 21, Name: "MÉNÁ", Meaning: "Measure Exactness",
			Description: "Precise quantification and metrics",
			Category:    CategoryStructure,
			Formula:     "Δx·Δp ≥ ℏ/2",
			Application: "Performance measurement",
		},
		{
			ID: 22, Name: "ÁRÍÁ", Meaning: "Hierarchical Order",
			Description: "Natural ordering and stratification",
			Category:    CategoryStructure,
			Formula:     "E₀ < E₁ < E₂ < ...",
			Application: "Organizational hierarchy",
		},

		// Nurture principles (connection, community)
		{
			ID: 23, Name: "HÓTÉ", Meaning: "Harmonic Integration",
			Description: "Coherent integration of diverse elements into unified whole",
			Category:    CategoryNurture,
			Formula:     "Â_harmony = Σ(sin(ωt + φ))",
			Application: "Conflict resolution and relationship harmony",
		},
		{
			ID: 24, Name: "LÚVÁ", Meaning: "Love Resonance",
			Description: "Vibrational frequency of unconditional love",
			Category:    CategoryNurture,
			Formula:     "L(r) = k/r²",
			Application: "Compassionate relationships",
		},
		{
			ID: 25, Name: "ÚNÍÁ", Meaning: "Unity Consciousness",
			Description: "Recognition of interconnectedness of all being",
			Category:    CategoryNurture,
			Formula:     "Ψ_collective = ⨂Ψᵢ",
			Application: "Community building",
		},
		{
			ID: 26, Name: "KÁRÉ", Meaning: "Care Nurturing",
			Description: "Tender attention and supportive growth",
			Category:    CategoryNurture,
			Formula:     "dG/dt = r·G·(1-G/K)",
			Application: "Mentorship and support",
		},
		{
			ID: 27, Name: "ÉMÚÁ", Meaning: "Empathy Bridge",
			Description: "Deep understanding and emotional resonance",
			Category:    CategoryNurture,
			Formula:     "E_shared = ∫ψ₁*·ψ₂ dτ",
			Application: "Active listening",
		},
		{
			ID: 28, Name: "SHÁNÁ", Meaning: "Sharing Flow",
			Description: "Generous circulation of resources and wisdom",
			Category:    CategoryNurture,
			Formula:     "∮ J·dA = 0",
			Application: "Knowledge sharing",
		},
		{
			ID: 29, Name: "HÍLÁ", Meaning: "Healing Presence",
			Description: "Restorative energy and therapeutic power",
			Category:    CategoryNurture,
			Formula:     "H(t) = H₀·e^(-λt)",
			Application: "Healing practices",
		},
		{
			ID: 30, Name: "GRÁWÁ", Meaning: "Growth Cultivation",
			Description: "Organic development and evolutionary progress",
			Category:    CategoryNurture,
			Formula:     "∂u/∂t = D∇²u",
			Application: "Personal development",
		},
		{
			ID: 31, Name: "PÉWÁ", Meaning: "Peace Stillness",
			Description: "Tranquil center and harmonious equilibrium",
			Category:    CategoryNurture,
			Formula:     "∇V = 0",
			Application: "Meditation and calm",
		},
		{
			ID: 32, Name: "JÓYÁ", Meaning: "Joy Radiance",
			Description: "Light emanation of happiness and celebration",
			Category:    CategoryNurture,
			Formula:     "J = σT⁴",
			Application: "Positive environment",
		},

		// Vision principles (possibility, innovation)
		{
			ID: 33, Name: "VÍSÁ", Meaning: "Vision Sight",
			Description: "Clear perception of future possibilities",
			Category:    CategoryVision,
			Formula:     "V(future) = ∫P(t)·dt",
			Application: "Strategic planning",
		},
		{
			ID: 34, Name: "CRÉÁ", Meaning: "Creative Force",
			Description: "Generative power of imagination and innovation",
			Category:    CategoryVision,
			Formula:     "C = ∂Ψ/∂imagination",
			Application: "Innovation and creativity",
		},
		{
			ID: 35, Name: "ÉXPÁ", Meaning: "Expansion Wave",
			Description: "Outward growth and boundary transcendence",
			Category:    CategoryVision,
			Formula:     "r(t) = r₀·e^(Ht)",
			Application: "Market expansion",
		},
		{
			ID: 36, Name: "TRÁNÁ", Meaning: "Transformation Alchemy",
			Description: "Fundamental change and metamorphosis",
			Category:    CategoryVision,
			Formula:     "A → B: ΔG < 0",
			Application: "Change management",
		},
		{
			ID: 37, Name: "INSÁ", Meaning: "Insight Flash",
			Description: "Sudden illumination and epiphany",
			Category:    CategoryVision,
			Formula:     "I(t) = I₀·δ(t-t₀)",
			Application: "Breakthrough thinking",
		},
		{
			ID: 38, Name: "PÓSSÁ", Meaning: "Possibility Field",
			Description: "Quantum potential and multiple futures",
			Category:    CategoryVision,
			Formula:     "Ψ = Σcᵢ|ψᵢ⟩",
			Application: "Scenario planning",
		},
		{
			ID: 39, Name: "IMÁGÁ", Meaning: "Imagination Power",
			Description: "Mental creation and visualization strength",
			Category:    CategoryVision,
			Formula:     "I·V = Reality",
			Application: "Visioning exercises",
		},
		{
			ID: 40, Name: "NÓVÁ", Meaning: "Innovation Spark",
			Description: "Novel combination and inventive solutions",
			Category:    CategoryVision,
			Formula:     "N = recombine(A,B)",
			Application: "Product development",
		},
		{
			ID: 41, Name: "FÓRÉÁ", Meaning: "Foresight Wisdom",
			Description: "Anticipatory knowledge and prophetic vision",
			Category:    CategoryVision,
			Formula:     "F(t+Δt) = f(state,t)",
			Application: "Risk assessment",
		},
		{
			ID: 42, Name: "ÉVÓÁ", Meaning: "Evolution Drive",
			Description: "Progressive development toward higher complexity",
			Category:    CategoryVision,
			Formula:     "dΩ/dt > 0",
			Application: "Continuous improvement",
		},
	}
}
