package engine

import (
	"persona-engine/internal/catalog"
	"persona-engine/internal/domain"
)

// midpoint of the normalized scale; the MBTI letters split on it.
const midpoint = 0.5

// normalize maps a raw weighted mean in [1,5] onto [0,1]. The affine map
// is exact at the scale ends: (1-1)/4 is 0 and (5-1)/4 is 1 with no
// epsilon drift. Multiplying by 100 for percentage display happens at the
// presentation boundary, never inside a computation.
func normalize(mean float64) float64 {
	return (mean - 1) / 4
}

// normalizeScores produces the public trait and facet scores. A trait
// below its minimum item count is unmeasured: its score and every facet
// under it come out nil. Missing data is never imputed.
func normalizeScores(cat *catalog.Catalog, agg aggregates, cov domain.Coverage) (domain.OceanScores, map[string]*float64) {
	var ocean domain.OceanScores
	for _, t := range domain.Traits {
		if !cov.PerTrait[t].Sufficient {
			continue
		}
		m, ok := agg.traits[t].mean()
		if !ok {
			continue
		}
		v := normalize(m)
		ocean.Set(t, &v)
	}

	facets := make(map[string]*float64, len(cat.Facets()))
	for _, f := range cat.Facets() {
		facets[f] = nil
		owner, ok := cat.FacetTrait(f)
		if !ok || !cov.PerTrait[owner].Sufficient {
			continue
		}
		m, ok := agg.facets[f].mean()
		if !ok {
			continue
		}
		v := normalize(m)
		facets[f] = &v
	}
	return ocean, facets
}
