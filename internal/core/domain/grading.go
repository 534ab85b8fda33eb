package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ParseArtifact is the structural representation of a piece of source code as
// produced by the Parser API. It is opaque to this service except for one
// assumption: the document is a JSON object whose top-level keys are the
// declared function names.
type ParseArtifact json.RawMessage

// MarshalJSON keeps the raw document intact when an artifact is embedded in
// an outgoing request body.
func (a ParseArtifact) MarshalJSON() ([]byte, error) {
	return json.RawMessage(a).MarshalJSON()
}

func (a *ParseArtifact) UnmarshalJSON(data []byte) error {
	return (*json.RawMessage)(a).UnmarshalJSON(data)
}

// ReferenceSolution is the authored solution for a question. ParseArtifact
// starts empty and is filled exactly once, the first time feedback generation
// needs it.
type ReferenceSolution struct {
	ID            uuid.UUID
	QuestionID    uuid.UUID
	Language      Language
	Code          string
	ParseArtifact ParseArtifact
}

// HasArtifact reports whether the parsed form has already been materialized.
func (rs *ReferenceSolution) HasArtifact() bool {
	return len(rs.ParseArtifact) > 0
}

type TestCase struct {
	ID         uuid.UUID
	QuestionID uuid.UUID
	Input      string
	Output     string
	IsPublic   bool
}

// Submission is a student's graded attempt at a question. At most one live
// submission exists per (question, student) pair; a resubmission replaces the
// previous one together with its feedback rows.
type Submission struct {
	ID         uuid.UUID
	QuestionID uuid.UUID
	StudentID  uuid.UUID
	Language   Language
	Code       string
	Feedbacks  []Feedback
	CreatedOn  time.Time
}

// Feedback is one line-level hint set returned by the diagnoser and persisted
// with its submission.
type Feedback struct {
	Line  int      `json:"line"`
	Hints []string `json:"hints"`
}

// GradingResult is what the pipeline hands back to the caller on success. An
// empty feedback list is a valid result meaning no errors were detected.
type GradingResult struct {
	HasError  bool
	Feedbacks []Feedback
}
