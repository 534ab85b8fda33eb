package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"grading-feedback-service/internal/core/domain"
	"grading-feedback-service/internal/core/ports/output"
)

type submissionRepo struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepository(pool *pgxpool.Pool) ports.SubmissionRepository {
	return &submissionRepo{pool: pool}
}

// Replace implements submit-again-replaces semantics: any prior submission
// for the same (question, student) pair is deleted and the new one inserted
// with its feedback rows, all in one transaction. A failure between delete
// and insert rolls back, so the student is never left with zero rows.
func (r *submissionRepo) Replace(ctx context.Context, sub *domain.Submission) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace submission: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM submission WHERE question_id = $1 AND student_id = $2`,
		sub.QuestionID, sub.StudentID,
	)
	if err != nil {
		return fmt.Errorf("delete prior submission: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO submission (id, question_id, student_id, language, code, created_on)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		sub.ID, sub.QuestionID, sub.StudentID, string(sub.Language), sub.Code, sub.CreatedOn,
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}

	for _, fb := range sub.Feedbacks {
		hintsJSON, err := json.Marshal(fb.Hints)
		if err != nil {
			return fmt.Errorf("marshal feedback hints: %w", err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO feedback (id, submission_id, line, hints) VALUES ($1, $2, $3, $4)`,
			uuid.New(), sub.ID, fb.Line, hintsJSON,
		)
		if err != nil {
			return fmt.Errorf("insert feedback: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace submission: %w", err)
	}
	return nil
}

func (r *submissionRepo) GetByQuestionAndStudent(ctx context.Context, questionID, studentID uuid.UUID) (*domain.Submission, error) {
	query := `
		SELECT id, question_id, student_id, language, code, created_on
		FROM submission
		WHERE question_id = $1 AND student_id = $2
	`
	var (
		sub      domain.Submission
		language string
	)
	err := r.pool.QueryRow(ctx, query, questionID, studentID).
		Scan(&sub.ID, &sub.QuestionID, &sub.StudentID, &language, &sub.Code, &sub.CreatedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	sub.Language = domain.Language(language)

	rows, err := r.pool.Query(ctx,
		`SELECT line, hints FROM feedback WHERE submission_id = $1 ORDER BY line`,
		sub.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			fb        domain.Feedback
			hintsJSON []byte
		)
		if err := rows.Scan(&fb.Line, &hintsJSON); err != nil {
			return nil, fmt.Errorf("scan feedback row: %w", err)
		}
		if err := json.Unmarshal(hintsJSON, &fb.Hints); err != nil {
			return nil, fmt.Errorf("unmarshal feedback hints: %w", err)
		}
		sub.Feedbacks = append(sub.Feedbacks, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback rows: %w", err)
	}

	return &sub, nil
}
