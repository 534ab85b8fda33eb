package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"grading-feedback-service/internal/core/domain"
)

// MockQuestionRepo is a mock of QuestionRepository.
type MockQuestionRepo struct {
	mock.Mock
}

func (m *MockQuestionRepo) GetReferenceSolution(ctx context.Context, questionID uuid.UUID) (*domain.ReferenceSolution, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReferenceSolution), args.Error(1)
}

func (m *MockQuestionRepo) UpdateParseArtifact(ctx context.Context, referenceSolutionID uuid.UUID, artifact domain.ParseArtifact) error {
	args := m.Called(ctx, referenceSolutionID, artifact)
	return args.Error(0)
}

func (m *MockQuestionRepo) GetOneTestCase(ctx context.Context, questionID uuid.UUID) (*domain.TestCase, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TestCase), args.Error(1)
}

func (m *MockQuestionRepo) ListTestCases(ctx context.Context, questionID uuid.UUID, publicOnly bool) ([]*domain.TestCase, error) {
	args := m.Called(ctx, questionID, publicOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TestCase), args.Error(1)
}

// MockUserRepo is a mock of UserRepository.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Exists(ctx context.Context, studentID uuid.UUID) (bool, error) {
	args := m.Called(ctx, studentID)
	return args.Bool(0), args.Error(1)
}

// MockSubmissionRepo is a mock of SubmissionRepository.
type MockSubmissionRepo struct {
	mock.Mock
}

func (m *MockSubmissionRepo) Replace(ctx context.Context, sub *domain.Submission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubmissionRepo) GetByQuestionAndStudent(ctx context.Context, questionID, studentID uuid.UUID) (*domain.Submission, error) {
	args := m.Called(ctx, questionID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

// MockParserClient is a mock of ParserClient.
type MockParserClient struct {
	mock.Mock
}

func (m *MockParserClient) GenerateParser(ctx context.Context, language domain.Language, sourceCode string) (domain.ParseArtifact, error) {
	args := m.Called(ctx, language, sourceCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ParseArtifact), args.Error(1)
}

func (m *MockParserClient) Diagnose(ctx context.Context, language domain.Language, referenceArtifact, studentArtifact domain.ParseArtifact, diagArgs string) ([]domain.Feedback, error) {
	args := m.Called(ctx, language, referenceArtifact, studentArtifact, diagArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feedback), args.Error(1)
}
