package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"grading-feedback-service/internal/core/domain"
	"grading-feedback-service/internal/core/services"
	"grading-feedback-service/internal/testutil"
)

type routerFixture struct {
	users       *testutil.MockUserRepo
	questions   *testutil.MockQuestionRepo
	submissions *testutil.MockSubmissionRepo
	parser      *testutil.MockParserClient
	router      *gin.Engine
}

func setupGradingRouter() *routerFixture {
	gin.SetMode(gin.TestMode)

	users := new(testutil.MockUserRepo)
	questions := new(testutil.MockQuestionRepo)
	submissions := new(testutil.MockSubmissionRepo)
	parser := new(testutil.MockParserClient)

	gradingSvc := services.NewGradingService(
		users,
		questions,
		submissions,
		parser,
		services.NewReferenceArtifactService(questions, parser),
		services.NewFirstDeclaredExtractor(),
		services.NewFirstAvailableSelector(questions),
	)

	h := New(gradingSvc)
	r := gin.New()
	api := r.Group("/api/v1/grading")
	h.RegisterRoutes(api)

	return &routerFixture{
		users:       users,
		questions:   questions,
		submissions: submissions,
		parser:      parser,
		router:      r,
	}
}

func feedbackRequestBody(t *testing.T, questionID, studentID uuid.UUID) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"language":    "python",
		"source_code": "def is_odd(x): ...",
		"question_id": questionID,
		"student_id":  studentID,
	})
	assert.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestGenerateFeedback_Clean(t *testing.T) {
	f := setupGradingRouter()

	questionID := uuid.New()
	studentID := uuid.New()

	f.users.On("Exists", mock.Anything, studentID).Return(true, nil)
	f.questions.On("GetReferenceSolution", mock.Anything, questionID).Return(&domain.ReferenceSolution{
		ID:            uuid.New(),
		QuestionID:    questionID,
		Language:      domain.LanguagePython,
		Code:          "def is_odd(x): ...",
		ParseArtifact: domain.ParseArtifact(`{"is_odd":{}}`),
	}, nil)
	f.parser.On("GenerateParser", mock.Anything, domain.LanguagePython, mock.Anything).
		Return(domain.ParseArtifact(`{"is_odd":{}}`), nil)
	f.questions.On("GetOneTestCase", mock.Anything, questionID).
		Return(&domain.TestCase{ID: uuid.New(), QuestionID: questionID, Input: "2"}, nil)
	f.parser.On("Diagnose", mock.Anything, domain.LanguagePython, mock.Anything, mock.Anything, "[2]").
		Return([]domain.Feedback{}, nil)
	f.submissions.On("Replace", mock.Anything, mock.AnythingOfType("*domain.Submission")).Return(nil)

	req, _ := http.NewRequest("POST", "/api/v1/grading/feedback", feedbackRequestBody(t, questionID, studentID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, false, resp["has_error"])
	assert.Empty(t, resp["feedbacks"])
}

func TestGenerateFeedback_MalformedRequest(t *testing.T) {
	f := setupGradingRouter()

	req, _ := http.NewRequest("POST", "/api/v1/grading/feedback", bytes.NewBufferString(`{"language":"python"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateFeedback_UnknownStudent(t *testing.T) {
	f := setupGradingRouter()

	questionID := uuid.New()
	studentID := uuid.New()

	f.users.On("Exists", mock.Anything, studentID).Return(false, nil)

	req, _ := http.NewRequest("POST", "/api/v1/grading/feedback", feedbackRequestBody(t, questionID, studentID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateFeedback_NoReferenceSolution(t *testing.T) {
	f := setupGradingRouter()

	questionID := uuid.New()
	studentID := uuid.New()

	f.users.On("Exists", mock.Anything, studentID).Return(true, nil)
	f.questions.On("GetReferenceSolution", mock.Anything, questionID).Return(nil, domain.ErrNoReferenceSolution)

	req, _ := http.NewRequest("POST", "/api/v1/grading/feedback", feedbackRequestBody(t, questionID, studentID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateFeedback_MissingTargetFunction(t *testing.T) {
	f := setupGradingRouter()

	questionID := uuid.New()
	studentID := uuid.New()

	f.users.On("Exists", mock.Anything, studentID).Return(true, nil)
	f.questions.On("GetReferenceSolution", mock.Anything, questionID).Return(&domain.ReferenceSolution{
		ID:            uuid.New(),
		QuestionID:    questionID,
		Language:      domain.LanguagePython,
		ParseArtifact: domain.ParseArtifact(`{"is_odd":{}}`),
	}, nil)
	f.parser.On("GenerateParser", mock.Anything, domain.LanguagePython, mock.Anything).
		Return(domain.ParseArtifact(`{"isOdd":{}}`), nil)

	req, _ := http.NewRequest("POST", "/api/v1/grading/feedback", feedbackRequestBody(t, questionID, studentID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "is_odd", resp["expected_function"])
}

func TestGenerateFeedback_DiagnosisFailureIsBadGateway(t *testing.T) {
	f := setupGradingRouter()

	questionID := uuid.New()
	studentID := uuid.New()

	f.users.On("Exists", mock.Anything, studentID).Return(true, nil)
	f.questions.On("GetReferenceSolution", mock.Anything, questionID).Return(&domain.ReferenceSolution{
		ID:            uuid.New(),
		QuestionID:    questionID,
		Language:      domain.LanguagePython,
		ParseArtifact: domain.ParseArtifact(`{"is_odd":{}}`),
	}, nil)
	f.parser.On("GenerateParser", mock.Anything, domain.LanguagePython, mock.Anything).
		Return(domain.ParseArtifact(`{"is_odd":{}}`), nil)
	f.questions.On("GetOneTestCase", mock.Anything, questionID).
		Return(&domain.TestCase{ID: uuid.New(), QuestionID: questionID, Input: "2"}, nil)
	f.parser.On("Diagnose", mock.Anything, domain.LanguagePython, mock.Anything, mock.Anything, "[2]").
		Return(nil, &domain.FeedbackGenerationError{Err: errors.New("status 500")})

	req, _ := http.NewRequest("POST", "/api/v1/grading/feedback", feedbackRequestBody(t, questionID, studentID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetSubmission(t *testing.T) {
	f := setupGradingRouter()

	questionID := uuid.New()
	studentID := uuid.New()

	f.submissions.On("GetByQuestionAndStudent", mock.Anything, questionID, studentID).Return(&domain.Submission{
		ID:         uuid.New(),
		QuestionID: questionID,
		StudentID:  studentID,
		Language:   domain.LanguagePython,
		Code:       "def is_odd(x): ...",
		Feedbacks:  []domain.Feedback{{Line: 2, Hints: []string{"hint"}}},
		CreatedOn:  time.Now(),
	}, nil)

	req, _ := http.NewRequest("GET", "/api/v1/grading/questions/"+questionID.String()+"/submission?student_id="+studentID.String(), nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, studentID.String(), resp["student_id"])
}

func TestGetSubmission_NotFound(t *testing.T) {
	f := setupGradingRouter()

	questionID := uuid.New()
	studentID := uuid.New()

	f.submissions.On("GetByQuestionAndStudent", mock.Anything, questionID, studentID).
		Return(nil, domain.ErrSubmissionNotFound)

	req, _ := http.NewRequest("GET", "/api/v1/grading/questions/"+questionID.String()+"/submission?student_id="+studentID.String(), nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTestCases_PublicOnly(t *testing.T) {
	f := setupGradingRouter()

	questionID := uuid.New()
	f.questions.On("ListTestCases", mock.Anything, questionID, true).Return([]*domain.TestCase{
		{ID: uuid.New(), QuestionID: questionID, Input: "2", Output: "False", IsPublic: true},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/v1/grading/questions/"+questionID.String()+"/testcases?public=true", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(1), resp["total"])
}

func TestListTestCases_InvalidQuestionID(t *testing.T) {
	f := setupGradingRouter()

	req, _ := http.NewRequest("GET", "/api/v1/grading/questions/not-a-uuid/testcases", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
