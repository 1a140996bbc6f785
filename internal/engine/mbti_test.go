package engine

import (
	"testing"

	"persona-engine/internal/domain"
)

func scoresOf(o, c, e, a, n float64) domain.OceanScores {
	return domain.OceanScores{
		Openness:          &o,
		Conscientiousness: &c,
		Extraversion:      &e,
		Agreeableness:     &a,
		Neuroticism:       &n,
	}
}

func TestResolveMBTI(t *testing.T) {
	tests := []struct {
		name  string
		ocean domain.OceanScores
		want  string
	}{
		{"all high", scoresOf(0.9, 0.9, 0.9, 0.9, 0.9), "ENFJ"},
		{"all low", scoresOf(0.1, 0.1, 0.1, 0.1, 0.1), "ISTP"},
		{"all midpoint", scoresOf(0.5, 0.5, 0.5, 0.5, 0.5), "ESFJ"},
		{"high openness only", scoresOf(0.9, 0.1, 0.1, 0.1, 0.5), "INTP"},
		{"just above midpoint", scoresOf(0.5001, 0.5001, 0.5001, 0.5001, 0.5), "ENFJ"},
		{"just below midpoint", scoresOf(0.4999, 0.4999, 0.4999, 0.4999, 0.5), "ISTP"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveMBTI(tc.ocean)
			if got == nil {
				t.Fatalf("expected %s, got nil", tc.want)
			}
			if *got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, *got)
			}
		})
	}
}

func TestResolveMBTIMissingTraits(t *testing.T) {
	blank := func(mutate func(*domain.OceanScores)) domain.OceanScores {
		s := scoresOf(0.7, 0.7, 0.7, 0.7, 0.7)
		mutate(&s)
		return s
	}

	tests := []struct {
		name  string
		ocean domain.OceanScores
	}{
		{"missing openness", blank(func(s *domain.OceanScores) { s.Openness = nil })},
		{"missing conscientiousness", blank(func(s *domain.OceanScores) { s.Conscientiousness = nil })},
		{"missing extraversion", blank(func(s *domain.OceanScores) { s.Extraversion = nil })},
		{"missing agreeableness", blank(func(s *domain.OceanScores) { s.Agreeableness = nil })},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveMBTI(tc.ocean); got != nil {
				t.Fatalf("expected nil code, got %s", *got)
			}
		})
	}

	// Neuroticism carries no letter, so its absence alone does not block
	// resolution.
	s := scoresOf(0.7, 0.7, 0.7, 0.7, 0)
	s.Neuroticism = nil
	if got := resolveMBTI(s); got == nil || *got != "ENFJ" {
		t.Fatalf("expected ENFJ without neuroticism, got %v", got)
	}
}
