package dto

import (
	"time"

	"github.com/google/uuid"

	"grading-feedback-service/internal/core/domain"
)

type GenerateFeedbackRequest struct {
	Language   string    `json:"language" binding:"required"`
	SourceCode string    `json:"source_code" binding:"required"`
	QuestionID uuid.UUID `json:"question_id" binding:"required"`
	StudentID  uuid.UUID `json:"student_id" binding:"required"`
}

type FeedbackResponse struct {
	Line  int      `json:"line"`
	Hints []string `json:"hints"`
}

type GenerateFeedbackResponse struct {
	HasError  bool               `json:"has_error"`
	Feedbacks []FeedbackResponse `json:"feedbacks"`
}

type SubmissionResponse struct {
	ID         uuid.UUID          `json:"id"`
	QuestionID uuid.UUID          `json:"question_id"`
	StudentID  uuid.UUID          `json:"student_id"`
	Language   string             `json:"language"`
	Code       string             `json:"code"`
	Feedbacks  []FeedbackResponse `json:"feedbacks"`
	CreatedOn  string             `json:"created_on"`
}

type TestCaseResponse struct {
	ID       uuid.UUID `json:"id"`
	Input    string    `json:"input"`
	Output   string    `json:"output"`
	IsPublic bool      `json:"is_public"`
}

type ListTestCasesResponse struct {
	Items []TestCaseResponse `json:"items"`
	Total int                `json:"total"`
}

func ToFeedbackResponses(feedbacks []domain.Feedback) []FeedbackResponse {
	items := make([]FeedbackResponse, 0, len(feedbacks))
	for _, fb := range feedbacks {
		items = append(items, FeedbackResponse{Line: fb.Line, Hints: fb.Hints})
	}
	return items
}

func ToGenerateFeedbackResponse(result *domain.GradingResult) GenerateFeedbackResponse {
	return GenerateFeedbackResponse{
		HasError:  result.HasError,
		Feedbacks: ToFeedbackResponses(result.Feedbacks),
	}
}

func ToSubmissionResponse(sub *domain.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:         sub.ID,
		QuestionID: sub.QuestionID,
		StudentID:  sub.StudentID,
		Language:   sub.Language.String(),
		Code:       sub.Code,
		Feedbacks:  ToFeedbackResponses(sub.Feedbacks),
		CreatedOn:  sub.CreatedOn.Format(time.RFC3339),
	}
}

func ToTestCaseResponse(tc *domain.TestCase) TestCaseResponse {
	return TestCaseResponse{
		ID:       tc.ID,
		Input:    tc.Input,
		Output:   tc.Output,
		IsPublic: tc.IsPublic,
	}
}
