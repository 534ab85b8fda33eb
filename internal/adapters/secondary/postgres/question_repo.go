package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"grading-feedback-service/internal/core/domain"
	"grading-feedback-service/internal/core/ports/output"
)

type questionRepo struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) ports.QuestionRepository {
	return &questionRepo{pool: pool}
}

func (r *questionRepo) GetReferenceSolution(ctx context.Context, questionID uuid.UUID) (*domain.ReferenceSolution, error) {
	query := `
		SELECT id, question_id, language, code, parse_artifact
		FROM reference_solution
		WHERE question_id = $1
	`
	var (
		rs       domain.ReferenceSolution
		language string
		artifact []byte
	)
	err := r.pool.QueryRow(ctx, query, questionID).Scan(&rs.ID, &rs.QuestionID, &language, &rs.Code, &artifact)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoReferenceSolution
		}
		return nil, fmt.Errorf("get reference solution: %w", err)
	}
	rs.Language = domain.Language(language)
	if len(artifact) > 0 {
		rs.ParseArtifact = domain.ParseArtifact(artifact)
	}
	return &rs, nil
}

func (r *questionRepo) UpdateParseArtifact(ctx context.Context, referenceSolutionID uuid.UUID, artifact domain.ParseArtifact) error {
	query := `UPDATE reference_solution SET parse_artifact = $1 WHERE id = $2`
	result, err := r.pool.Exec(ctx, query, []byte(artifact), referenceSolutionID)
	if err != nil {
		return fmt.Errorf("update parse artifact: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNoReferenceSolution
	}
	return nil
}

func (r *questionRepo) GetOneTestCase(ctx context.Context, questionID uuid.UUID) (*domain.TestCase, error) {
	query := `
		SELECT id, question_id, input, output, is_public
		FROM test_case
		WHERE question_id = $1
		ORDER BY id
		LIMIT 1
	`
	var tc domain.TestCase
	err := r.pool.QueryRow(ctx, query, questionID).Scan(&tc.ID, &tc.QuestionID, &tc.Input, &tc.Output, &tc.IsPublic)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoTestCase
		}
		return nil, fmt.Errorf("get test case: %w", err)
	}
	return &tc, nil
}

func (r *questionRepo) ListTestCases(ctx context.Context, questionID uuid.UUID, publicOnly bool) ([]*domain.TestCase, error) {
	query := `
		SELECT id, question_id, input, output, is_public
		FROM test_case
		WHERE question_id = $1 AND ($2 = false OR is_public)
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, questionID, publicOnly)
	if err != nil {
		return nil, fmt.Errorf("list test cases: %w", err)
	}
	defer rows.Close()

	var cases []*domain.TestCase
	for rows.Next() {
		var tc domain.TestCase
		if err := rows.Scan(&tc.ID, &tc.QuestionID, &tc.Input, &tc.Output, &tc.IsPublic); err != nil {
			return nil, fmt.Errorf("scan test case row: %w", err)
		}
		cases = append(cases, &tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate test case rows: %w", err)
	}
	return cases, nil
}
