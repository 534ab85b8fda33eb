package ports

import (
	"context"

	"github.com/google/uuid"

	"grading-feedback-service/internal/core/domain"
)

// QuestionRepository is the read (plus cache-fill write) surface this service
// needs from the question store. Everything else about questions is owned by
// the CRUD service and out of scope here.
type QuestionRepository interface {
	// GetReferenceSolution returns domain.ErrNoReferenceSolution when the
	// question has none.
	GetReferenceSolution(ctx context.Context, questionID uuid.UUID) (*domain.ReferenceSolution, error)

	// UpdateParseArtifact persists a freshly generated artifact onto the
	// reference solution record (write-through cache fill).
	UpdateParseArtifact(ctx context.Context, referenceSolutionID uuid.UUID, artifact domain.ParseArtifact) error

	// GetOneTestCase returns an arbitrary (first available) test case for the
	// question, or domain.ErrNoTestCase.
	GetOneTestCase(ctx context.Context, questionID uuid.UUID) (*domain.TestCase, error)

	ListTestCases(ctx context.Context, questionID uuid.UUID, publicOnly bool) ([]*domain.TestCase, error)
}

type UserRepository interface {
	Exists(ctx context.Context, studentID uuid.UUID) (bool, error)
}

type SubmissionRepository interface {
	// Replace deletes any existing submission for the same
	// (question, student) pair and inserts sub with its feedback rows, all
	// inside one transaction.
	Replace(ctx context.Context, sub *domain.Submission) error

	// GetByQuestionAndStudent returns the live submission for the pair, or
	// domain.ErrSubmissionNotFound.
	GetByQuestionAndStudent(ctx context.Context, questionID, studentID uuid.UUID) (*domain.Submission, error)
}
