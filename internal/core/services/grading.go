package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"grading-feedback-service/internal/core/domain"
	"grading-feedback-service/internal/core/ports/output"
)

// GradingService runs the end-to-end feedback pipeline: verify the student,
// resolve the reference artifact, parse the student's code, check the target
// function, pick a test case, ask the Parser API for a diagnosis, and persist
// the submission. Each stage either advances or fails the whole request with
// one typed error; nothing is retried.
type GradingService struct {
	users        ports.UserRepository
	questions    ports.QuestionRepository
	submissions  ports.SubmissionRepository
	parser       ports.ParserClient
	refArtifacts *ReferenceArtifactService
	extractor    TargetFunctionExtractor
	selector     TestCaseSelector
}

func NewGradingService(
	users ports.UserRepository,
	questions ports.QuestionRepository,
	submissions ports.SubmissionRepository,
	parser ports.ParserClient,
	refArtifacts *ReferenceArtifactService,
	extractor TargetFunctionExtractor,
	selector TestCaseSelector,
) *GradingService {
	return &GradingService{
		users:        users,
		questions:    questions,
		submissions:  submissions,
		parser:       parser,
		refArtifacts: refArtifacts,
		extractor:    extractor,
		selector:     selector,
	}
}

// GenerateFeedback grades one submission. Re-invoking after a failure is
// always safe: no partial state survives except an already-committed
// reference artifact, which is itself idempotent.
func (s *GradingService) GenerateFeedback(ctx context.Context, language domain.Language, sourceCode string, questionID, studentID uuid.UUID) (*domain.GradingResult, error) {
	if !language.IsSupported() {
		return nil, domain.ErrUnsupportedLanguage
	}
	if sourceCode == "" {
		return nil, domain.ErrEmptySourceCode
	}

	exists, err := s.users.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &domain.UnknownStudentError{StudentID: studentID}
	}

	referenceArtifact, err := s.refArtifacts.Ensure(ctx, questionID)
	if err != nil {
		return nil, err
	}

	studentArtifact, err := s.parser.GenerateParser(ctx, language, sourceCode)
	if err != nil {
		return nil, err
	}

	targetName, err := s.extractor.ExtractTargetFunction(referenceArtifact)
	if err != nil {
		return nil, err
	}
	if err := VerifyDeclared(studentArtifact, targetName); err != nil {
		return nil, err
	}

	testCase, err := s.selector.SelectOne(ctx, questionID)
	if err != nil {
		return nil, err
	}

	feedbacks, err := s.parser.Diagnose(ctx, language, referenceArtifact, studentArtifact, diagnosisArgs(testCase))
	if err != nil {
		return nil, err
	}

	sub := &domain.Submission{
		ID:         uuid.New(),
		QuestionID: questionID,
		StudentID:  studentID,
		Language:   language,
		Code:       sourceCode,
		Feedbacks:  feedbacks,
		CreatedOn:  time.Now(),
	}
	if err := s.submissions.Replace(ctx, sub); err != nil {
		return nil, err
	}

	return &domain.GradingResult{
		HasError:  len(feedbacks) > 0,
		Feedbacks: feedbacks,
	}, nil
}

// GetSubmission returns the live submission for a (question, student) pair.
func (s *GradingService) GetSubmission(ctx context.Context, questionID, studentID uuid.UUID) (*domain.Submission, error) {
	return s.submissions.GetByQuestionAndStudent(ctx, questionID, studentID)
}

// ListTestCases exposes a question's test cases to the calling layer.
func (s *GradingService) ListTestCases(ctx context.Context, questionID uuid.UUID, publicOnly bool) ([]*domain.TestCase, error) {
	return s.questions.ListTestCases(ctx, questionID, publicOnly)
}

// diagnosisArgs builds the argument string for one diagnosis request: a
// single test case's raw input wrapped in brackets. Exactly one test case is
// used per request.
func diagnosisArgs(tc *domain.TestCase) string {
	return "[" + tc.Input + "]"
}
