package handlers

import (
	"errors"
	"net/http"

	"grading-feedback-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	var (
		parserErr        *domain.ParserGenerationError
		feedbackErr      *domain.FeedbackGenerationError
		missingTargetErr *domain.MissingTargetFunctionError
		unknownStudent   *domain.UnknownStudentError
	)

	switch {
	// Not found errors
	case errors.Is(err, domain.ErrNoReferenceSolution),
		errors.Is(err, domain.ErrNoTestCase),
		errors.Is(err, domain.ErrSubmissionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.As(err, &unknownStudent):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrUnsupportedLanguage),
		errors.Is(err, domain.ErrEmptySourceCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.As(err, &parserErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": parserErr.Field})

	case errors.As(err, &missingTargetErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "expected_function": missingTargetErr.ExpectedName})

	// The request was valid but the remote diagnosis failed
	case errors.As(err, &feedbackErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
