package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Questionnaire holds the five career-questionnaire answers. Answers 1-4
// describe the candidate; Objective (5th answer) is the professional goal the
// assessment is evaluated against.
type Questionnaire struct {
	Answer1   string
	Answer2   string
	Answer3   string
	Answer4   string
	Objective string
}

// CareerAssessment is the structured result of the questionnaire pipeline.
// Fields are trusted exactly as returned by the model; this pipeline performs
// no range clamping or list padding.
type CareerAssessment struct {
	PontosFortes         []string `json:"pontos_fortes"`
	PontosAMelhorar      []string `json:"pontos_a_melhorar"`
	Recomendacoes        []string `json:"recomendacoes"`
	Nivel                string   `json:"nivel"`
	Score                int      `json:"score"`
	MensagemMotivacional string   `json:"mensagem_motivacional"`
}

type AssessmentErrorKind string

const (
	AssessmentErrMissingKey     AssessmentErrorKind = "missing_api_key"
	AssessmentErrTransport      AssessmentErrorKind = "transport"
	AssessmentErrRateLimited    AssessmentErrorKind = "rate_limited"
	AssessmentErrUpstreamStatus AssessmentErrorKind = "upstream_status"
	AssessmentErrBadEnvelope    AssessmentErrorKind = "malformed_envelope"
	AssessmentErrInvalidJSON    AssessmentErrorKind = "invalid_json"
)

// AssessmentError wraps every questionnaire-pipeline failure with a
// machine-readable kind. Raw carries a bounded prefix of the offending
// upstream payload for diagnostics.
type AssessmentError struct {
	Kind    AssessmentErrorKind
	Message string
	Raw     string
	Err     error
}

func (e *AssessmentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AssessmentError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller may retry after a backoff. Only rate
// limiting qualifies; retries are never attempted internally.
func (e *AssessmentError) Retryable() bool {
	return e.Kind == AssessmentErrRateLimited
}

const rawErrorLimit = 500

type QuestionnaireService interface {
	AnalyzeQuestionnaire(ctx context.Context, q Questionnaire) (*CareerAssessment, error)
}

type questionnaireService struct {
	apiKey        string
	model         string
	baseURL       string
	httpClient    *http.Client
	promptBuilder *PromptBuilder
}

func NewQuestionnaireService(apiKey, model, baseURL string, timeout time.Duration) QuestionnaireService {
	return &questionnaireService{
		apiKey:        apiKey,
		model:         model,
		baseURL:       baseURL,
		httpClient:    &http.Client{Timeout: timeout},
		promptBuilder: NewPromptBuilder(),
	}
}

// Gemini generateContent wire format. The generated text arrives nested in
// candidates[0].content.parts[0].text and is itself a JSON document.
type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generationConfig"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"response_mime_type"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// AnalyzeQuestionnaire implements QuestionnaireService. Unlike the interview
// pipeline, every failure propagates to the caller as an *AssessmentError.
func (s *questionnaireService) AnalyzeQuestionnaire(ctx context.Context, q Questionnaire) (*CareerAssessment, error) {
	if s.apiKey == "" {
		return nil, &AssessmentError{
			Kind:    AssessmentErrMissingKey,
			Message: "Gemini API key not configured. Set the GEMINI_API_KEY environment variable.",
		}
	}

	payload := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: s.promptBuilder.BuildQuestionnairePrompt(q)}}},
		},
		GenerationConfig: generationConfig{ResponseMIMEType: "application/json"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &AssessmentError{Kind: AssessmentErrTransport, Message: "failed to encode request", Err: err}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &AssessmentError{Kind: AssessmentErrTransport, Message: "failed to build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &AssessmentError{Kind: AssessmentErrTransport, Message: "Gemini API request failed", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AssessmentError{Kind: AssessmentErrTransport, Message: "failed to read Gemini API response", Err: err}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &AssessmentError{
			Kind:    AssessmentErrRateLimited,
			Message: "Gemini API rate limit exceeded, try again shortly",
			Raw:     boundedPrefix(respBody),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &AssessmentError{
			Kind:    AssessmentErrUpstreamStatus,
			Message: fmt.Sprintf("Gemini API returned status %d", resp.StatusCode),
			Raw:     boundedPrefix(respBody),
		}
	}

	var envelope generateResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, &AssessmentError{
			Kind:    AssessmentErrBadEnvelope,
			Message: "unexpected Gemini API response shape",
			Raw:     boundedPrefix(respBody),
			Err:     err,
		}
	}

	if len(envelope.Candidates) == 0 ||
		len(envelope.Candidates[0].Content.Parts) == 0 ||
		envelope.Candidates[0].Content.Parts[0].Text == "" {
		return nil, &AssessmentError{
			Kind:    AssessmentErrBadEnvelope,
			Message: "Gemini API response is missing generated text",
			Raw:     boundedPrefix(respBody),
		}
	}

	generated := envelope.Candidates[0].Content.Parts[0].Text

	var assessment CareerAssessment
	if err := json.Unmarshal([]byte(generated), &assessment); err != nil {
		return nil, &AssessmentError{
			Kind:    AssessmentErrInvalidJSON,
			Message: "generated text is not valid JSON",
			Raw:     boundedPrefix([]byte(generated)),
			Err:     err,
		}
	}

	return &assessment, nil
}

func boundedPrefix(body []byte) string {
	if len(body) > rawErrorLimit {
		return string(body[:rawErrorLimit])
	}
	return string(body)
}
