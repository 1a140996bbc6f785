package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"persona-engine/internal/domain"
	"persona-engine/internal/engine"
	"persona-engine/internal/repository"
)

var ErrProfileNotComparable = errors.New("profile has unmeasured traits")

// ResultCache is a read-through cache over stored assessment records.
// A nil ResultCache disables caching; implementations fail open.
type ResultCache interface {
	Get(ctx context.Context, id string) (domain.AssessmentRecord, bool)
	Set(ctx context.Context, rec domain.AssessmentRecord)
}

// AssessmentService runs the scoring engine and owns the persisted
// record around its output.
type AssessmentService struct {
	engine *engine.Engine
	repo   repository.AssessmentRepository
	cache  ResultCache
	logger *zap.Logger
}

func NewAssessmentService(
	eng *engine.Engine,
	repo repository.AssessmentRepository,
	cache ResultCache,
	logger *zap.Logger,
) *AssessmentService {
	return &AssessmentService{
		engine: eng,
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Submit scores one response map and persists the result. The response
// map is forwarded to the engine unmodified; any filtering or clamping
// upstream would break parity with the sibling deployments.
func (s *AssessmentService) Submit(ctx context.Context, responses domain.Responses) (domain.AssessmentRecord, error) {
	result, err := s.engine.Score(responses)
	if err != nil {
		return domain.AssessmentRecord{}, fmt.Errorf("score assessment: %w", err)
	}

	rec := domain.AssessmentRecord{
		ID:             uuid.NewString(),
		CatalogVersion: s.engine.CatalogVersion(),
		Result:         *result,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, rec); err != nil {
		return domain.AssessmentRecord{}, fmt.Errorf("save assessment: %w", err)
	}
	if s.cache != nil {
		s.cache.Set(ctx, rec)
	}

	if s.logger != nil {
		fields := []zap.Field{
			zap.String("assessment_id", rec.ID),
			zap.Bool("needs_retake", result.NeedsRetake),
			zap.String("retake_reason", string(result.RetakeReason)),
		}
		if result.MBTIType != nil {
			fields = append(fields, zap.String("mbti_type", *result.MBTIType))
		}
		s.logger.Info("assessment scored", fields...)
	}
	return rec, nil
}

// Get returns a stored record, preferring the cache.
func (s *AssessmentService) Get(ctx context.Context, id string) (domain.AssessmentRecord, error) {
	if s.cache != nil {
		if rec, ok := s.cache.Get(ctx, id); ok {
			return rec, nil
		}
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.AssessmentRecord{}, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, rec)
	}
	return rec, nil
}

// FindSimilar returns the k nearest stored assessments by OCEAN trait
// vector. Profiles with any unmeasured trait cannot be compared.
func (s *AssessmentService) FindSimilar(ctx context.Context, id string, k int) ([]repository.SimilarAssessment, error) {
	if k <= 0 {
		k = 5
	}

	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	vec, ok := rec.Result.Ocean.Vector()
	if !ok {
		return nil, ErrProfileNotComparable
	}
	return s.repo.FindSimilar(ctx, vec, k, id)
}
