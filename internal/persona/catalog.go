package persona

import (
	"errors"
	"fmt"
	"sort"

	"persona-engine/internal/domain"
)

var ErrIncomplete = errors.New("persona catalog incomplete")

// mbtiCodes enumerates every valid 4-letter type; the catalog must cover
// all of them plus the three diagnostic overrides.
var mbtiCodes = []string{
	"ISTJ", "ISFJ", "INFJ", "INTJ",
	"ISTP", "ISFP", "INFP", "INTP",
	"ESTP", "ESFP", "ENFP", "ENTP",
	"ESTJ", "ESFJ", "ENFJ", "ENTJ",
}

// Catalog is the fixed persona bank. Lookup only: all variability in what
// a user sees comes from their trait scores, not from ranking here.
type Catalog struct {
	byMBTI    map[string]domain.Persona
	overrides map[domain.PersonaKey]domain.Persona
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c := &Catalog{
		byMBTI:    make(map[string]domain.Persona, len(personas)),
		overrides: make(map[domain.PersonaKey]domain.Persona, len(overridePersonas)),
	}
	for _, p := range personas {
		c.byMBTI[p.MBTI] = p
	}
	for key, p := range overridePersonas {
		c.overrides[key] = p
	}
	return c
}

// ByMBTI looks up the persona for a resolved type code.
func (c *Catalog) ByMBTI(code string) (domain.Persona, bool) {
	p, ok := c.byMBTI[code]
	return p, ok
}

// Override looks up a diagnostic override persona.
func (c *Catalog) Override(key domain.PersonaKey) (domain.Persona, bool) {
	p, ok := c.overrides[key]
	return p, ok
}

// Personas lists every catalog entry, MBTI personas first by type code,
// then overrides by id.
func (c *Catalog) Personas() []domain.Persona {
	out := make([]domain.Persona, 0, len(c.byMBTI)+len(c.overrides))
	for _, code := range mbtiCodes {
		if p, ok := c.byMBTI[code]; ok {
			out = append(out, p)
		}
	}
	extras := make([]domain.Persona, 0, len(c.overrides))
	for _, p := range c.overrides {
		extras = append(extras, p)
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i].ID < extras[j].ID })
	return append(out, extras...)
}

// Validate checks the catalog covers all sixteen type codes and the three
// override keys. A gap is a configuration error and should abort startup.
func (c *Catalog) Validate() error {
	for _, code := range mbtiCodes {
		if _, ok := c.byMBTI[code]; !ok {
			return fmt.Errorf("%w: missing persona for %s", ErrIncomplete, code)
		}
	}
	for _, key := range []domain.PersonaKey{
		domain.PersonaKeyUniform,
		domain.PersonaKeyExtremeLow,
		domain.PersonaKeyExtremeHigh,
	} {
		if _, ok := c.overrides[key]; !ok {
			return fmt.Errorf("%w: missing override persona %q", ErrIncomplete, key)
		}
	}
	return nil
}
