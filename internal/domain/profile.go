package domain

// Dimension bounds.
const (
	DimensionMin = 0
	DimensionMax = 100
	// NudgeLimit bounds each dimension nudge to [-NudgeLimit, +NudgeLimit].
	NudgeLimit = 15
)

// Dimensions holds the three 0-100 behavioral scores.
type Dimensions struct {
	Conviction   int `json:"conviction"`
	Intuition    int `json:"intuition"`
	Contribution int `json:"contribution"`
}

// Clamp returns a copy with every dimension forced into [0,100].
func (d Dimensions) Clamp() Dimensions {
	return Dimensions{
		Conviction:   clampInt(d.Conviction, DimensionMin, DimensionMax),
		Intuition:    clampInt(d.Intuition, DimensionMin, DimensionMax),
		Contribution: clampInt(d.Contribution, DimensionMin, DimensionMax),
	}
}

// Apply adds the given nudges and clamps the result to [0,100].
func (d Dimensions) Apply(n DimensionNudges) Dimensions {
	return Dimensions{
		Conviction:   d.Conviction + n.Conviction,
		Intuition:    d.Intuition + n.Intuition,
		Contribution: d.Contribution + n.Contribution,
	}.Clamp()
}

// DimensionNudges holds bounded adjustments to the three dimensions,
// each an integer in [-15, +15].
type DimensionNudges struct {
	Conviction   int `json:"conviction"`
	Intuition    int `json:"intuition"`
	Contribution int `json:"contribution"`
}

// Clamp returns a copy with every nudge forced into [-15, +15].
func (n DimensionNudges) Clamp() DimensionNudges {
	return DimensionNudges{
		Conviction:   clampInt(n.Conviction, -NudgeLimit, NudgeLimit),
		Intuition:    clampInt(n.Intuition, -NudgeLimit, NudgeLimit),
		Contribution: clampInt(n.Contribution, -NudgeLimit, NudgeLimit),
	}
}

// IdentityType is the discrete label derived from the dimension triple.
type IdentityType string

const (
	IdentityVisionary  IdentityType = "visionary"
	IdentityExplorer   IdentityType = "explorer"
	IdentityOptimizer  IdentityType = "optimizer"
	IdentityInnovator  IdentityType = "innovator"
	IdentityCultivator IdentityType = "cultivator"
)

// Category list caps for a merged profile.
const (
	MaxMainCategories = 3
	MaxSubCategories  = 10
)

// MergedProfile is the fused identity profile produced by the merger.
type MergedProfile struct {
	// MainCategories is the top-ranked interest set, at most 3, unique.
	MainCategories []string `json:"main_categories"`
	// SubCategories is the supplementary interest set, at most 10, unique
	// and disjoint from MainCategories.
	SubCategories []string `json:"sub_categories"`
	// DimensionNudges are the bounded adjustments derived from the
	// declared profile.
	DimensionNudges DimensionNudges `json:"dimension_nudges"`
	// ExcludedSkillIDs and CategoryWeights are passed through from feedback.
	ExcludedSkillIDs []string           `json:"excluded_skill_ids,omitempty"`
	CategoryWeights  map[string]float64 `json:"category_weights,omitempty"`
}

// IdentityProfile is the produced interface of profile generation.
type IdentityProfile struct {
	UserID string `json:"user_id"`
	// EngineVersion stamps the engine build that produced the profile so
	// cached profiles can be traced back to the logic that generated them.
	EngineVersion    string          `json:"engine_version,omitempty"`
	MainCategories   []string        `json:"main_categories"`
	SubCategories    []string        `json:"sub_categories"`
	Dimensions       Dimensions      `json:"dimensions"`
	DimensionNudges  DimensionNudges `json:"dimension_nudges"`
	IdentityType     IdentityType    `json:"identity_type"`
	DataQualityScore int             `json:"data_quality_score"`
	// ExcludedSkillIDs and CategoryWeights carry the feedback pass-through
	// so callers can rank candidates without re-reading the feedback store.
	ExcludedSkillIDs []string           `json:"excluded_skill_ids,omitempty"`
	CategoryWeights  map[string]float64 `json:"category_weights,omitempty"`
	// ConversationTerms carries the raw conversation topics and interests
	// for the conversation-alignment term of recommendation scoring.
	ConversationTerms []string `json:"conversation_terms,omitempty"`
}

// Merged reconstructs the MergedProfile view of an identity profile.
func (p *IdentityProfile) Merged() *MergedProfile {
	return &MergedProfile{
		MainCategories:   p.MainCategories,
		SubCategories:    p.SubCategories,
		DimensionNudges:  p.DimensionNudges,
		ExcludedSkillIDs: p.ExcludedSkillIDs,
		CategoryWeights:  p.CategoryWeights,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
