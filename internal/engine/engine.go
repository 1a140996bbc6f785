package engine

import (
	"errors"
	"fmt"

	"persona-engine/internal/catalog"
	"persona-engine/internal/domain"
	"persona-engine/internal/persona"
)

var (
	ErrNilCatalog         = errors.New("engine: nil question catalog")
	ErrNilPersonaCatalog  = errors.New("engine: nil persona catalog")
	ErrResponseOutOfRange = errors.New("engine: response outside 1..5")
)

// Engine scores assessments against one immutable question bank and one
// persona catalog. It holds no mutable state: Score is a pure function of
// its input and is safe for concurrent use across assessments.
type Engine struct {
	cat      *catalog.Catalog
	personas *persona.Catalog
}

// New wires a validated question bank to a persona catalog. Catalog
// problems are configuration errors and surface here, once, never during
// a scoring call.
func New(cat *catalog.Catalog, personas *persona.Catalog) (*Engine, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if personas == nil {
		return nil, ErrNilPersonaCatalog
	}
	if err := personas.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return &Engine{cat: cat, personas: personas}, nil
}

// CatalogVersion is the version stamp of the active bank.
func (e *Engine) CatalogVersion() string {
	return e.cat.Version
}

// Score runs the full pipeline over one response map: reverse-scoring,
// weighted aggregation, normalization, validity diagnostics, MBTI
// resolution and persona mapping. Ids not present in the bank are
// ignored; a response outside [1,5] fails fast with no partial result.
func (e *Engine) Score(responses domain.Responses) (*domain.Result, error) {
	items, err := collectAnswered(e.cat, responses)
	if err != nil {
		return nil, err
	}

	agg := aggregate(items)
	cov := buildCoverage(e.cat, agg)
	ocean, facets := normalizeScores(e.cat, agg, cov)
	v := diagnose(items, ocean, cov)
	mbti := resolveMBTI(ocean)

	return &domain.Result{
		Ocean:        ocean,
		Facets:       facets,
		MBTIType:     mbti,
		Persona:      e.mapPersona(v, mbti),
		Coverage:     cov,
		NeedsRetake:  v.needsRetake,
		RetakeReason: v.reason,
		Advisory:     v.advisory,
	}, nil
}

// answeredItem pairs a bank question with its response, raw as submitted
// and scored after reverse-keying.
type answeredItem struct {
	q      domain.Question
	raw    int
	scored float64
}

// collectAnswered filters the response map through the bank in ascending
// question-id order. Fixing the order here is what keeps the float
// accumulation identical regardless of the caller's map iteration order.
func collectAnswered(cat *catalog.Catalog, responses domain.Responses) ([]answeredItem, error) {
	items := make([]answeredItem, 0, len(responses))
	for _, q := range cat.Questions() {
		r, ok := responses[q.ID]
		if !ok {
			continue
		}
		if r < domain.ResponseMin || r > domain.ResponseMax {
			return nil, fmt.Errorf("%w: question %q got %d", ErrResponseOutOfRange, q.ID, r)
		}
		items = append(items, answeredItem{q: q, raw: r, scored: reverseScore(r, q.Reverse)})
	}
	return items, nil
}

// mapPersona applies the lookup order: diagnostic override first, then the
// fixed MBTI catalog, then nothing. A null persona is the caller's
// "insufficient data" state, not a default.
func (e *Engine) mapPersona(v verdict, mbti *string) *domain.Persona {
	if v.override != "" {
		if p, ok := e.personas.Override(v.override); ok {
			return &p
		}
		return nil
	}
	if mbti == nil {
		return nil
	}
	if p, ok := e.personas.ByMBTI(*mbti); ok {
		return &p
	}
	return nil
}
