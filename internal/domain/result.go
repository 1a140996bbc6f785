package domain

import "time"

// RetakeReason explains a needs_retake verdict. At most one reason is
// reported per assessment even when several conditions hold.
type RetakeReason string

const (
	RetakeReasonNone                 RetakeReason = "none"
	RetakeReasonInsufficientCoverage RetakeReason = "insufficient_coverage"
	RetakeReasonUniformResponse      RetakeReason = "uniform_response"
	RetakeReasonExtremeProfile       RetakeReason = "extreme_profile"
)

// OceanScores holds the normalized trait scores on the [0,1] scale.
// A nil entry means the trait was not measured, which is distinct from
// a measured low score and must never be coerced to 0.
type OceanScores struct {
	Openness          *float64 `json:"O"`
	Conscientiousness *float64 `json:"C"`
	Extraversion      *float64 `json:"E"`
	Agreeableness     *float64 `json:"A"`
	Neuroticism       *float64 `json:"N"`
}

// ByTrait returns the score pointer for one dimension.
func (s OceanScores) ByTrait(t Trait) *float64 {
	switch t {
	case TraitOpenness:
		return s.Openness
	case TraitConscientiousness:
		return s.Conscientiousness
	case TraitExtraversion:
		return s.Extraversion
	case TraitAgreeableness:
		return s.Agreeableness
	case TraitNeuroticism:
		return s.Neuroticism
	}
	return nil
}

// Set stores the score for one dimension.
func (s *OceanScores) Set(t Trait, v *float64) {
	switch t {
	case TraitOpenness:
		s.Openness = v
	case TraitConscientiousness:
		s.Conscientiousness = v
	case TraitExtraversion:
		s.Extraversion = v
	case TraitAgreeableness:
		s.Agreeableness = v
	case TraitNeuroticism:
		s.Neuroticism = v
	}
}

// Complete reports whether every trait was measured.
func (s OceanScores) Complete() bool {
	for _, t := range Traits {
		if s.ByTrait(t) == nil {
			return false
		}
	}
	return true
}

// Vector returns the scores as a 5-dim float32 vector in O-C-E-A-N order
// for similarity search. ok is false when any trait is unmeasured; partial
// profiles do not participate in similarity.
func (s OceanScores) Vector() ([]float32, bool) {
	vec := make([]float32, 0, len(Traits))
	for _, t := range Traits {
		v := s.ByTrait(t)
		if v == nil {
			return nil, false
		}
		vec = append(vec, float32(*v))
	}
	return vec, true
}

// TraitCoverage reports how much of one trait's question set was answered.
type TraitCoverage struct {
	Answered      int     `json:"answered"`
	Total         int     `json:"total"`
	MinItems      int     `json:"min_items"`
	WeightedCount float64 `json:"weighted_count"`
	Ratio         float64 `json:"ratio"`
	Sufficient    bool    `json:"sufficient"`
}

// Coverage aggregates per-trait coverage plus the whole-assessment ratio.
type Coverage struct {
	PerTrait map[Trait]TraitCoverage `json:"per_trait"`
	Overall  float64                 `json:"overall"`
}

// Result is the full output of one scoring run. Everything in it is
// derived from the response map and the active question bank; identical
// input always produces a byte-identical Result.
type Result struct {
	Ocean        OceanScores         `json:"ocean"`
	Facets       map[string]*float64 `json:"facets"`
	MBTIType     *string             `json:"mbti_type"`
	Persona      *Persona            `json:"persona"`
	Coverage     Coverage            `json:"coverage"`
	NeedsRetake  bool                `json:"needs_retake"`
	RetakeReason RetakeReason        `json:"needs_retake_reason"`
	Advisory     string              `json:"advisory,omitempty"`
}

// AssessmentRecord is the persisted artifact wrapping one result. It is
// written once at submission time and never recomputed on read.
type AssessmentRecord struct {
	ID             string    `json:"id"`
	CatalogVersion string    `json:"catalog_version"`
	Result         Result    `json:"result"`
	CreatedAt      time.Time `json:"created_at"`
}
