package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"grading-feedback-service/internal/core/domain"
)

// TargetFunctionExtractor decides which declared function a question is
// actually testing. Kept as a single-method contract so the selection policy
// can be hardened later without changing the pipeline shape.
type TargetFunctionExtractor interface {
	ExtractTargetFunction(artifact domain.ParseArtifact) (string, error)
}

// firstDeclaredExtractor takes the first entry of the artifact's function
// table, in document order. Reference solutions are authored to expose
// exactly one meaningful function, which makes this safe.
type firstDeclaredExtractor struct{}

func NewFirstDeclaredExtractor() TargetFunctionExtractor {
	return firstDeclaredExtractor{}
}

func (firstDeclaredExtractor) ExtractTargetFunction(artifact domain.ParseArtifact) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(artifact))

	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("decode reference artifact: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return "", errors.New("reference artifact is not a function table")
	}

	tok, err = dec.Token()
	if err != nil {
		return "", fmt.Errorf("decode reference artifact: %w", err)
	}
	if d, ok := tok.(json.Delim); ok && d == '}' {
		return "", errors.New("reference artifact declares no functions")
	}

	name, ok := tok.(string)
	if !ok {
		return "", errors.New("reference artifact is not a function table")
	}
	return name, nil
}

// VerifyDeclared checks that the student's artifact declares targetName.
// Diagnosing against a function the student never wrote (renamed or missing)
// would produce meaningless feedback, so the pipeline rejects it before the
// network call.
func VerifyDeclared(artifact domain.ParseArtifact, targetName string) error {
	var table map[string]json.RawMessage
	if err := json.Unmarshal(artifact, &table); err != nil {
		return fmt.Errorf("decode student artifact: %w", err)
	}
	if _, ok := table[targetName]; !ok {
		return &domain.MissingTargetFunctionError{ExpectedName: targetName}
	}
	return nil
}
