package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ============================================================================
// Grading Pipeline Errors
// ============================================================================

// Not found errors
var (
	ErrNoReferenceSolution = errors.New("question has no reference solution")
	ErrNoTestCase          = errors.New("question has no test cases")
	ErrSubmissionNotFound  = errors.New("submission not found")
)

// Validation errors
var (
	ErrUnsupportedLanguage = errors.New("language is not supported")
	ErrEmptySourceCode     = errors.New("source code is required")
)

// Fields a ParserGenerationError can blame.
const (
	FieldLanguage   = "language"
	FieldSourceCode = "source_code"
)

// ParserGenerationError means the Parser API could not turn source code into
// an artifact. Field names the input that likely caused it; the remote API
// returns no structured field errors, so a client-fault status blames the
// language and everything else blames the source code.
type ParserGenerationError struct {
	Field string
	Err   error
}

func (e *ParserGenerationError) Error() string {
	return fmt.Sprintf("parser generation failed (%s): %v", e.Field, e.Err)
}

func (e *ParserGenerationError) Unwrap() error { return e.Err }

// FeedbackGenerationError means the diagnosis call failed after both
// artifacts were produced: the request was valid but the remote computation
// did not complete.
type FeedbackGenerationError struct {
	Err error
}

func (e *FeedbackGenerationError) Error() string {
	return fmt.Sprintf("feedback generation failed: %v", e.Err)
}

func (e *FeedbackGenerationError) Unwrap() error { return e.Err }

// MissingTargetFunctionError means the student's code does not declare the
// function the reference solution defines, so diagnosis would be meaningless.
type MissingTargetFunctionError struct {
	ExpectedName string
}

func (e *MissingTargetFunctionError) Error() string {
	return fmt.Sprintf("submitted code does not declare required function %q", e.ExpectedName)
}

// UnknownStudentError means the submitting student does not exist.
type UnknownStudentError struct {
	StudentID uuid.UUID
}

func (e *UnknownStudentError) Error() string {
	return fmt.Sprintf("student %s does not exist", e.StudentID)
}
