package engine

import "persona-engine/internal/domain"

const (
	// one stray answer per 20 still counts as straight-lining
	uniformSlackDivisor = 20
	// band around 0 and 1 inside which a trait counts as extreme
	extremeBand = 0.05
)

const (
	advisoryExtremeLow  = "Every trait score sits at the extreme low end of the scale; the profile may not be discriminative."
	advisoryExtremeHigh = "Every trait score sits at the extreme high end of the scale; the profile may not be discriminative."
)

// verdict is the outcome of the validity diagnostics: whether a retake is
// required, the single reported reason, and an optional persona override.
type verdict struct {
	needsRetake bool
	reason      domain.RetakeReason
	override    domain.PersonaKey
	advisory    string
}

// diagnose evaluates the three checks in fixed priority order; the first
// one that fires supplies the reported reason.
func diagnose(items []answeredItem, ocean domain.OceanScores, cov domain.Coverage) verdict {
	if insufficientCoverage(cov) {
		return verdict{needsRetake: true, reason: domain.RetakeReasonInsufficientCoverage}
	}
	if uniformResponses(items) {
		return verdict{
			needsRetake: true,
			reason:      domain.RetakeReasonUniformResponse,
			override:    domain.PersonaKeyUniform,
		}
	}
	if low, ok := extremeProfile(ocean); ok {
		v := verdict{reason: domain.RetakeReasonExtremeProfile}
		if low {
			v.override = domain.PersonaKeyExtremeLow
			v.advisory = advisoryExtremeLow
		} else {
			v.override = domain.PersonaKeyExtremeHigh
			v.advisory = advisoryExtremeHigh
		}
		return v
	}
	return verdict{reason: domain.RetakeReasonNone}
}

func insufficientCoverage(cov domain.Coverage) bool {
	for _, t := range domain.Traits {
		if !cov.PerTrait[t].Sufficient {
			return true
		}
	}
	return false
}

// uniformResponses detects straight-lining over the raw submitted values,
// before reverse-keying: a reverse item answered 3 is still a 3 here.
func uniformResponses(items []answeredItem) bool {
	if len(items) == 0 {
		return false
	}
	var counts [domain.ResponseMax + 1]int
	for _, it := range items {
		counts[it.raw]++
	}
	modal := 0
	for _, c := range counts {
		if c > modal {
			modal = c
		}
	}
	return len(items)-modal <= len(items)/uniformSlackDivisor
}

// extremeProfile reports whether every trait is measured and every score
// hugs the same end of the scale. low distinguishes the two ends.
func extremeProfile(ocean domain.OceanScores) (low bool, ok bool) {
	allLow, allHigh := true, true
	for _, t := range domain.Traits {
		v := ocean.ByTrait(t)
		if v == nil {
			return false, false
		}
		if *v > extremeBand {
			allLow = false
		}
		if *v < 1-extremeBand {
			allHigh = false
		}
	}
	if allLow {
		return true, true
	}
	if allHigh {
		return false, true
	}
	return false, false
}
