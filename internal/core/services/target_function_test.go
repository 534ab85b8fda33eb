package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"grading-feedback-service/internal/core/domain"
)

func TestFirstDeclaredExtractor_SingleFunction(t *testing.T) {
	extractor := NewFirstDeclaredExtractor()

	name, err := extractor.ExtractTargetFunction(domain.ParseArtifact(`{"is_odd":{"params":["x"]}}`))
	assert.NoError(t, err)
	assert.Equal(t, "is_odd", name)
}

func TestFirstDeclaredExtractor_TakesFirstInDocumentOrder(t *testing.T) {
	extractor := NewFirstDeclaredExtractor()

	name, err := extractor.ExtractTargetFunction(domain.ParseArtifact(`{"solve":{},"helper":{}}`))
	assert.NoError(t, err)
	assert.Equal(t, "solve", name)
}

func TestFirstDeclaredExtractor_EmptyFunctionTable(t *testing.T) {
	extractor := NewFirstDeclaredExtractor()

	_, err := extractor.ExtractTargetFunction(domain.ParseArtifact(`{}`))
	assert.Error(t, err)
}

func TestFirstDeclaredExtractor_NotAnObject(t *testing.T) {
	extractor := NewFirstDeclaredExtractor()

	_, err := extractor.ExtractTargetFunction(domain.ParseArtifact(`["is_odd"]`))
	assert.Error(t, err)

	_, err = extractor.ExtractTargetFunction(domain.ParseArtifact(`not json`))
	assert.Error(t, err)
}

func TestVerifyDeclared_Present(t *testing.T) {
	err := VerifyDeclared(domain.ParseArtifact(`{"helper":{},"is_odd":{}}`), "is_odd")
	assert.NoError(t, err)
}

func TestVerifyDeclared_Missing(t *testing.T) {
	err := VerifyDeclared(domain.ParseArtifact(`{"isOdd":{}}`), "is_odd")

	var missingErr *domain.MissingTargetFunctionError
	assert.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "is_odd", missingErr.ExpectedName)
}

func TestVerifyDeclared_MalformedArtifact(t *testing.T) {
	err := VerifyDeclared(domain.ParseArtifact(`not json`), "is_odd")
	assert.Error(t, err)

	var missingErr *domain.MissingTargetFunctionError
	assert.False(t, errors.As(err, &missingErr))
}
