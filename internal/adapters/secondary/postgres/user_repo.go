package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"grading-feedback-service/internal/core/ports/output"
)

type userRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) ports.UserRepository {
	return &userRepo{pool: pool}
}

func (r *userRepo) Exists(ctx context.Context, studentID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM app_user WHERE id = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, studentID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check student exists: %w", err)
	}
	return exists, nil
}
