package ports

import (
	"context"

	"grading-feedback-service/internal/core/domain"
)

// ParserClient wraps the two remote calls of the external Parser API. Both
// are single-attempt; transport failures come back as the typed errors of the
// grading taxonomy.
type ParserClient interface {
	// GenerateParser turns source code into a structural artifact. Failures
	// are reported as *domain.ParserGenerationError.
	GenerateParser(ctx context.Context, language domain.Language, sourceCode string) (domain.ParseArtifact, error)

	// Diagnose compares a student artifact against the reference artifact for
	// one test case's argument vector. Transport failures are reported as
	// *domain.FeedbackGenerationError; a 2xx response that is not a feedback
	// list is a plain decode error.
	Diagnose(ctx context.Context, language domain.Language, referenceArtifact, studentArtifact domain.ParseArtifact, args string) ([]domain.Feedback, error)
}
