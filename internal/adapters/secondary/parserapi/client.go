package parserapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"grading-feedback-service/internal/config"
	"grading-feedback-service/internal/core/domain"
	"grading-feedback-service/internal/core/ports/output"
)

type parserClient struct {
	baseURL string
	client  *http.Client
}

// NewClient creates the Parser API client adapter. Every call is a single
// attempt bounded by the configured timeout; a timeout is treated like any
// other transport failure.
func NewClient(cfg *config.ParserConfig) ports.ParserClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &parserClient{
		baseURL: cfg.URL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type parseRequest struct {
	Language   string `json:"language"`
	SourceCode string `json:"source_code"`
}

type diagnoseRequest struct {
	Language       string               `json:"language"`
	ReferenceParse domain.ParseArtifact `json:"reference_parser"`
	StudentParse   domain.ParseArtifact `json:"student_parser"`
	Args           string               `json:"args"`
	Inputs         string               `json:"inputs"`
}

func (c *parserClient) GenerateParser(ctx context.Context, language domain.Language, sourceCode string) (domain.ParseArtifact, error) {
	body, err := json.Marshal(parseRequest{
		Language:   language.String(),
		SourceCode: sourceCode,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal parse request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/parse", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create parse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.WithField("language", language).Debug("requesting parse artifact")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.ParserGenerationError{Field: domain.FieldSourceCode, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.ParserGenerationError{Field: domain.FieldSourceCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.ParserGenerationError{
			Field: blamedField(resp.StatusCode),
			Err:   fmt.Errorf("parser api returned status %d", resp.StatusCode),
		}
	}

	if !json.Valid(raw) {
		return nil, &domain.ParserGenerationError{
			Field: domain.FieldSourceCode,
			Err:   fmt.Errorf("parser api returned a malformed artifact"),
		}
	}

	return domain.ParseArtifact(raw), nil
}

func (c *parserClient) Diagnose(ctx context.Context, language domain.Language, referenceArtifact, studentArtifact domain.ParseArtifact, args string) ([]domain.Feedback, error) {
	body, err := json.Marshal(diagnoseRequest{
		Language:       language.String(),
		ReferenceParse: referenceArtifact,
		StudentParse:   studentArtifact,
		Args:           args,
		Inputs:         "",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal diagnose request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/diagnose", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create diagnose request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.WithFields(log.Fields{
		"language": language,
		"args":     args,
	}).Debug("requesting diagnosis")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.FeedbackGenerationError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.FeedbackGenerationError{
			Err: fmt.Errorf("parser api returned status %d", resp.StatusCode),
		}
	}

	// A 2xx response that is not a feedback list is a decode error, not a
	// FeedbackGenerationError: the remote computation succeeded but the
	// response shape is unexpected. Not retried.
	var feedbacks []domain.Feedback
	if err := json.NewDecoder(resp.Body).Decode(&feedbacks); err != nil {
		return nil, fmt.Errorf("decode diagnose response: %w", err)
	}

	return feedbacks, nil
}

// blamedField guesses which request input caused a failed parse. The remote
// API returns no structured field errors: a client-fault status blames the
// language, everything else defaults to the source code.
func blamedField(status int) string {
	if status >= 400 && status < 500 {
		return domain.FieldLanguage
	}
	return domain.FieldSourceCode
}
