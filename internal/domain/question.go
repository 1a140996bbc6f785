package domain

// Trait identifies one of the Big Five (OCEAN) dimensions.
type Trait string

const (
	TraitOpenness          Trait = "O"
	TraitConscientiousness Trait = "C"
	TraitExtraversion      Trait = "E"
	TraitAgreeableness     Trait = "A"
	TraitNeuroticism       Trait = "N"
)

// Traits lists the five dimensions in canonical O-C-E-A-N order.
var Traits = [5]Trait{
	TraitOpenness,
	TraitConscientiousness,
	TraitExtraversion,
	TraitAgreeableness,
	TraitNeuroticism,
}

func (t Trait) Valid() bool {
	switch t {
	case TraitOpenness, TraitConscientiousness, TraitExtraversion, TraitAgreeableness, TraitNeuroticism:
		return true
	}
	return false
}

// Likert response bounds. Values outside this range are a caller error,
// never clamped.
const (
	ResponseMin = 1
	ResponseMax = 5
)

// Question is one scored Likert item from a versioned question bank.
// A facet belongs to exactly one trait; a reverse-keyed item has its
// response inverted before aggregation.
type Question struct {
	ID      string  `json:"id"`
	Text    string  `json:"text"`
	Trait   Trait   `json:"trait"`
	Facet   string  `json:"facet"`
	Reverse bool    `json:"reverse"`
	Weight  float64 `json:"weight"`
}

// Responses maps question id to the raw submitted answer in [1,5].
// Ids not present in the active bank are ignored by the engine.
type Responses map[string]int
