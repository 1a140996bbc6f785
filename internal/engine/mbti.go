package engine

import "persona-engine/internal/domain"

// resolveMBTI maps four of the normalized trait scores to a 4-letter type
// code. Each letter resolves independently against the scale midpoint.
//
// The at-midpoint defaults are asymmetric: E, F and J resolve high while
// S resolves low. Every sibling deployment encodes exactly these
// defaults, so they must not be made symmetric here without breaking
// cross-implementation parity. Neuroticism does not contribute a letter.
//
// If any contributing trait is unmeasured the whole code is nil; partial
// codes are never emitted.
func resolveMBTI(ocean domain.OceanScores) *string {
	e := ocean.Extraversion
	o := ocean.Openness
	a := ocean.Agreeableness
	c := ocean.Conscientiousness
	if e == nil || o == nil || a == nil || c == nil {
		return nil
	}

	code := string([]byte{
		pickLetter(*e, 'E', 'I', 'E'),
		pickLetter(*o, 'N', 'S', 'S'),
		pickLetter(*a, 'F', 'T', 'F'),
		pickLetter(*c, 'J', 'P', 'J'),
	})
	return &code
}

// pickLetter resolves one dimension: high above the midpoint, low below
// it, def exactly at it.
func pickLetter(score float64, high, low, def byte) byte {
	switch {
	case score > midpoint:
		return high
	case score < midpoint:
		return low
	default:
		return def
	}
}
