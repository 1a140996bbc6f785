package engine

import (
	"persona-engine/internal/catalog"
	"persona-engine/internal/domain"
)

// reverseScore inverts negatively-keyed responses: 6 - r. No clamping;
// the response is range-checked before this runs, and sibling deployments
// do not clamp either.
func reverseScore(r int, reverse bool) float64 {
	if reverse {
		return float64(6 - r)
	}
	return float64(r)
}

// accumulator is the weighted-sum / weighted-count pair behind every
// trait and facet mean. A zero weighted count means "no data", which
// downstream becomes null, never 0.
type accumulator struct {
	weightedSum   float64
	weightedCount float64
	answered      int
}

func (a *accumulator) add(score, weight float64) {
	a.weightedSum += score * weight
	a.weightedCount += weight
	a.answered++
}

// mean returns the raw weighted mean on the 1..5 scale; ok is false when
// the accumulator holds no data.
func (a *accumulator) mean() (float64, bool) {
	if a == nil || a.weightedCount <= 0 {
		return 0, false
	}
	return a.weightedSum / a.weightedCount, true
}

func (a *accumulator) count() int {
	if a == nil {
		return 0
	}
	return a.answered
}

func (a *accumulator) weight() float64 {
	if a == nil {
		return 0
	}
	return a.weightedCount
}

type aggregates struct {
	traits map[domain.Trait]*accumulator
	facets map[string]*accumulator
}

// aggregate folds reverse-scored responses into per-trait and per-facet
// accumulators. Items arrive already sorted by question id.
func aggregate(items []answeredItem) aggregates {
	agg := aggregates{
		traits: make(map[domain.Trait]*accumulator, len(domain.Traits)),
		facets: make(map[string]*accumulator),
	}
	for _, it := range items {
		t := agg.traits[it.q.Trait]
		if t == nil {
			t = &accumulator{}
			agg.traits[it.q.Trait] = t
		}
		t.add(it.scored, it.q.Weight)

		f := agg.facets[it.q.Facet]
		if f == nil {
			f = &accumulator{}
			agg.facets[it.q.Facet] = f
		}
		f.add(it.scored, it.q.Weight)
	}
	return agg
}

// buildCoverage reports, per trait, how many of the bank's items were
// answered and whether that meets the bank's minimum; sufficiency gates
// whether the trait counts as measured at all.
func buildCoverage(cat *catalog.Catalog, agg aggregates) domain.Coverage {
	per := make(map[domain.Trait]domain.TraitCoverage, len(domain.Traits))
	answeredTotal := 0
	for _, t := range domain.Traits {
		acc := agg.traits[t]
		tc := domain.TraitCoverage{
			Answered:      acc.count(),
			Total:         cat.TraitCount(t),
			MinItems:      cat.MinItemsPerTrait,
			WeightedCount: acc.weight(),
			Sufficient:    acc.count() >= cat.MinItemsPerTrait,
		}
		if tc.Total > 0 {
			tc.Ratio = float64(tc.Answered) / float64(tc.Total)
		}
		per[t] = tc
		answeredTotal += tc.Answered
	}

	overall := 0.0
	if cat.Len() > 0 {
		overall = float64(answeredTotal) / float64(cat.Len())
	}
	return domain.Coverage{PerTrait: per, Overall: overall}
}
