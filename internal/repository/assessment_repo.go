package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"persona-engine/internal/domain"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

// AssessmentRepository persists scored assessment records. The stored
// result is the engine's output verbatim; it is never recomputed on read.
type AssessmentRepository interface {
	Save(ctx context.Context, rec domain.AssessmentRecord) error
	FindByID(ctx context.Context, id string) (domain.AssessmentRecord, error)
	FindSimilar(ctx context.Context, vector []float32, k int, excludeID string) ([]SimilarAssessment, error)
}

// SimilarAssessment is one neighbor from a trait-vector similarity query.
type SimilarAssessment struct {
	Record   domain.AssessmentRecord `json:"record"`
	Distance float64                 `json:"distance"`
}

type PgAssessmentRepository struct {
	pool *pgxpool.Pool
}

func NewPgAssessmentRepository(pool *pgxpool.Pool) *PgAssessmentRepository {
	return &PgAssessmentRepository{pool: pool}
}

func (r *PgAssessmentRepository) Save(ctx context.Context, rec domain.AssessmentRecord) error {
	const query = `
		INSERT INTO assessments (id, catalog_version, result, ocean_vector, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	resultJSON, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	// Partial profiles store a NULL vector and stay out of similarity search.
	var vec interface{}
	if v, ok := rec.Result.Ocean.Vector(); ok {
		vec = pgvector.NewVector(v)
	}

	_, err = r.pool.Exec(ctx, query,
		rec.ID,
		rec.CatalogVersion,
		resultJSON,
		vec,
		rec.CreatedAt,
	)
	return err
}

func (r *PgAssessmentRepository) FindByID(ctx context.Context, id string) (domain.AssessmentRecord, error) {
	const query = `
		SELECT id, catalog_version, result, created_at
		FROM assessments
		WHERE id = $1
	`

	var rec domain.AssessmentRecord
	var resultJSON []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.CatalogVersion,
		&resultJSON,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AssessmentRecord{}, ErrAssessmentNotFound
		}
		return domain.AssessmentRecord{}, err
	}

	if err := json.Unmarshal(resultJSON, &rec.Result); err != nil {
		return domain.AssessmentRecord{}, fmt.Errorf("unmarshal result for %s: %w", id, err)
	}
	return rec, nil
}

func (r *PgAssessmentRepository) FindSimilar(ctx context.Context, vector []float32, k int, excludeID string) ([]SimilarAssessment, error) {
	const query = `
		SELECT id, catalog_version, result, created_at, ocean_vector <=> $1 AS distance
		FROM assessments
		WHERE ocean_vector IS NOT NULL AND id <> $2
		ORDER BY ocean_vector <=> $1, id
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, pgvector.NewVector(vector), excludeID, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SimilarAssessment
	for rows.Next() {
		var s SimilarAssessment
		var resultJSON []byte

		if err := rows.Scan(
			&s.Record.ID,
			&s.Record.CatalogVersion,
			&resultJSON,
			&s.Record.CreatedAt,
			&s.Distance,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(resultJSON, &s.Record.Result); err != nil {
			return nil, fmt.Errorf("unmarshal result for %s: %w", s.Record.ID, err)
		}
		out = append(out, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
