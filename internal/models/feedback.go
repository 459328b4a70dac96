package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AnswerItem is the input unit for answer analysis: one question/answer pair
// together with the job context it was answered for.
type AnswerItem struct {
	QuestionID     string `json:"question_id"`
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	JobRole        string `json:"job_role"`
	JobDescription string `json:"job_description"`
}

// FeedbackRecord is the normalized analysis result for a single answer.
// All five scores lie in [0,100]; Strengths and Improvements hold exactly
// three entries each.
type FeedbackRecord struct {
	Clarity      int      `json:"clarity"`
	Structure    int      `json:"structure"`
	Content      int      `json:"content"`
	Confidence   int      `json:"confidence"`
	OverallScore int      `json:"overall_score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// AnswerFeedback joins an answer's identity with its analysis outcome.
type AnswerFeedback struct {
	QuestionID   string   `json:"question_id"`
	Question     string   `json:"question"`
	Answer       string   `json:"answer"`
	Score        int      `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// InterviewFeedbackSummary is the interview-level aggregate: rounded means of
// the per-answer scores plus the per-answer feedback in input order.
type InterviewFeedbackSummary struct {
	OverallScore int              `json:"overall_score"`
	Metrics      FeedbackMetrics  `json:"metrics"`
	Answers      []AnswerFeedback `json:"answers"`
}

type FeedbackMetrics struct {
	Clarity    int `json:"clarity"`
	Structure  int `json:"structure"`
	Content    int `json:"content"`
	Confidence int `json:"confidence"`
}

// AnswerFeedbackList stores the ordered per-answer feedback as a jsonb column.
type AnswerFeedbackList []AnswerFeedback

func (l AnswerFeedbackList) Value() (driver.Value, error) {
	if l == nil {
		l = AnswerFeedbackList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal answer feedback: %w", err)
	}
	return data, nil
}

func (l *AnswerFeedbackList) Scan(value interface{}) error {
	if value == nil {
		*l = AnswerFeedbackList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for answer feedback: %T", value)
	}

	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("failed to unmarshal answer feedback: %w", err)
	}
	return nil
}
