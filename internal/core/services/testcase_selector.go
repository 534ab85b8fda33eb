package services

import (
	"context"

	"github.com/google/uuid"

	"grading-feedback-service/internal/core/domain"
	"grading-feedback-service/internal/core/ports/output"
)

// TestCaseSelector picks the test case whose input becomes the diagnosis
// argument vector. Single-method contract: only one test case is ever used
// per feedback request, and which one is deliberately unspecified beyond
// "some existing one".
type TestCaseSelector interface {
	SelectOne(ctx context.Context, questionID uuid.UUID) (*domain.TestCase, error)
}

type firstAvailableSelector struct {
	questions ports.QuestionRepository
}

func NewFirstAvailableSelector(questions ports.QuestionRepository) TestCaseSelector {
	return &firstAvailableSelector{questions: questions}
}

func (s *firstAvailableSelector) SelectOne(ctx context.Context, questionID uuid.UUID) (*domain.TestCase, error) {
	return s.questions.GetOneTestCase(ctx, questionID)
}
