package handlers

import (
	"net/http"
	"strconv"

	"grading-feedback-service/internal/adapters/primary/http/dto"
	"grading-feedback-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) GenerateFeedback(c *gin.Context) {
	var req dto.GenerateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.gradingSvc.GenerateFeedback(
		c.Request.Context(),
		domain.Language(req.Language),
		req.SourceCode,
		req.QuestionID,
		req.StudentID,
	)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"question_id": req.QuestionID,
			"student_id":  req.StudentID,
		}).Error("generate feedback failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGenerateFeedbackResponse(result))
}

func (h *Handler) GetSubmission(c *gin.Context) {
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid question id"})
		return
	}

	studentID, err := uuid.Parse(c.Query("student_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student id"})
		return
	}

	sub, err := h.gradingSvc.GetSubmission(c.Request.Context(), questionID, studentID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmissionResponse(sub))
}

func (h *Handler) ListTestCases(c *gin.Context) {
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid question id"})
		return
	}

	publicOnly, _ := strconv.ParseBool(c.DefaultQuery("public", "false"))

	cases, err := h.gradingSvc.ListTestCases(c.Request.Context(), questionID, publicOnly)
	if err != nil {
		log.WithError(err).Error("list test cases failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.TestCaseResponse, 0, len(cases))
	for _, tc := range cases {
		items = append(items, dto.ToTestCaseResponse(tc))
	}

	c.JSON(http.StatusOK, dto.ListTestCasesResponse{Items: items, Total: len(items)})
}
