package domain

// PersonaKey addresses one of the diagnostic override personas that
// bypass the normal MBTI lookup.
type PersonaKey string

const (
	PersonaKeyUniform     PersonaKey = "uniform"
	PersonaKeyExtremeLow  PersonaKey = "extreme_low"
	PersonaKeyExtremeHigh PersonaKey = "extreme_high"
)

// Persona is a fixed narrative profile. Strengths and growth edges are
// precomputed ordered lists; no ranking happens at lookup time.
type Persona struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	Strengths   []string `json:"strengths"`
	Growth      []string `json:"growth"`
	MBTI        string   `json:"mbti,omitempty"`
}
