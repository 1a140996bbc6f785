package engine

import (
	"testing"

	"persona-engine/internal/domain"
)

func rawItems(values ...int) []answeredItem {
	items := make([]answeredItem, len(values))
	for i, v := range values {
		items[i] = answeredItem{raw: v, scored: float64(v)}
	}
	return items
}

func repeat(value, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = value
	}
	return out
}

func TestUniformResponses(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   bool
	}{
		{"no answers", nil, false},
		{"all identical", repeat(3, 30), true},
		{"single answer", []int{4}, true},
		{"one stray in twenty one", append(repeat(2, 20), 5), true},
		{"two strays in twenty one", append(repeat(2, 19), 5, 4), false},
		{"one stray in ten", append(repeat(3, 9), 1), false},
		{"balanced mix", []int{1, 2, 3, 4, 5, 1, 2, 3, 4, 5}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := uniformResponses(rawItems(tc.values...)); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestUniformResponsesUsesRawValues(t *testing.T) {
	// Straight-lining a bank with reverse-keyed items produces two distinct
	// scored values but one raw value. The check must fire anyway.
	items := make([]answeredItem, 20)
	for i := range items {
		q := domain.Question{Reverse: i%2 == 0}
		items[i] = answeredItem{q: q, raw: 3, scored: reverseScore(3, q.Reverse)}
	}
	if !uniformResponses(items) {
		t.Fatalf("raw straight-lining not detected")
	}
}

func TestExtremeProfile(t *testing.T) {
	tests := []struct {
		name    string
		ocean   domain.OceanScores
		wantLow bool
		wantOK  bool
	}{
		{"all floor", scoresOf(0, 0, 0, 0, 0), true, true},
		{"all ceiling", scoresOf(1, 1, 1, 1, 1), false, true},
		{"inside low band", scoresOf(0.05, 0.02, 0.04, 0.01, 0.03), true, true},
		{"inside high band", scoresOf(0.95, 0.98, 0.96, 0.99, 0.97), false, true},
		{"one trait escapes the band", scoresOf(0.051, 0.02, 0.04, 0.01, 0.03), false, false},
		{"mixed ends", scoresOf(0, 1, 0, 1, 0), false, false},
		{"moderate profile", scoresOf(0.4, 0.6, 0.5, 0.3, 0.7), false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			low, ok := extremeProfile(tc.ocean)
			if low != tc.wantLow || ok != tc.wantOK {
				t.Fatalf("expected (low=%v, ok=%v), got (low=%v, ok=%v)", tc.wantLow, tc.wantOK, low, ok)
			}
		})
	}

	partial := scoresOf(0, 0, 0, 0, 0)
	partial.Extraversion = nil
	if _, ok := extremeProfile(partial); ok {
		t.Fatalf("unmeasured trait must block the extreme check")
	}
}

func TestDiagnosePriority(t *testing.T) {
	fullCoverage := domain.Coverage{PerTrait: map[domain.Trait]domain.TraitCoverage{}}
	for _, tr := range domain.Traits {
		fullCoverage.PerTrait[tr] = domain.TraitCoverage{Answered: 6, Total: 6, Sufficient: true}
	}
	gapCoverage := domain.Coverage{PerTrait: map[domain.Trait]domain.TraitCoverage{}}
	for tr, tc := range fullCoverage.PerTrait {
		gapCoverage.PerTrait[tr] = tc
	}
	gapCoverage.PerTrait[domain.TraitNeuroticism] = domain.TraitCoverage{Answered: 1, Total: 6}

	uniform := rawItems(repeat(1, 30)...)
	floor := scoresOf(0, 0, 0, 0, 0)

	t.Run("coverage gap wins over everything", func(t *testing.T) {
		v := diagnose(uniform, floor, gapCoverage)
		if !v.needsRetake || v.reason != domain.RetakeReasonInsufficientCoverage {
			t.Fatalf("expected insufficient_coverage, got retake=%v reason=%s", v.needsRetake, v.reason)
		}
		if v.override != "" {
			t.Fatalf("coverage verdict must not carry a persona override, got %q", v.override)
		}
	})

	t.Run("uniform wins over extreme", func(t *testing.T) {
		v := diagnose(uniform, floor, fullCoverage)
		if !v.needsRetake || v.reason != domain.RetakeReasonUniformResponse {
			t.Fatalf("expected uniform_response, got retake=%v reason=%s", v.needsRetake, v.reason)
		}
		if v.override != domain.PersonaKeyUniform {
			t.Fatalf("expected the uniform override, got %q", v.override)
		}
	})

	t.Run("extreme alone flags without a retake", func(t *testing.T) {
		varied := rawItems(append(repeat(1, 15), repeat(2, 15)...)...)
		v := diagnose(varied, floor, fullCoverage)
		if v.needsRetake {
			t.Fatalf("extreme profile must not force a retake")
		}
		if v.reason != domain.RetakeReasonExtremeProfile || v.override != domain.PersonaKeyExtremeLow {
			t.Fatalf("expected extreme_profile with low override, got reason=%s override=%q", v.reason, v.override)
		}
		if v.advisory == "" {
			t.Fatalf("expected an advisory")
		}
	})

	t.Run("clean profile", func(t *testing.T) {
		varied := rawItems(append(repeat(2, 15), repeat(4, 15)...)...)
		v := diagnose(varied, scoresOf(0.4, 0.6, 0.5, 0.3, 0.7), fullCoverage)
		if v.needsRetake || v.reason != domain.RetakeReasonNone || v.override != "" {
			t.Fatalf("expected a clean verdict, got %+v", v)
		}
	})
}
