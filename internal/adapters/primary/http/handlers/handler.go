package handlers

import (
	"grading-feedback-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	gradingSvc *services.GradingService
}

func New(gradingSvc *services.GradingService) *Handler {
	return &Handler{gradingSvc: gradingSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Feedback pipeline
	r.POST("/feedback", h.GenerateFeedback)

	// Read surface
	r.GET("/questions/:id/submission", h.GetSubmission)
	r.GET("/questions/:id/testcases", h.ListTestCases)
}
