package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"nexocarreira/career-coach/internal/models"
)

// ErrMalformedFeedback signals that a model reply is missing one of the
// required feedback fields and cannot be repaired. Callers fall back to the
// neutral default record.
var ErrMalformedFeedback = errors.New("malformed feedback response")

const defaultScore = 75

const (
	strengthFiller    = "Well-structured response"
	improvementFiller = "Consider adding more specific examples"
)

var requiredFeedbackFields = []string{
	"clarity", "structure", "content", "confidence", "overall_score", "strengths", "improvements",
}

// NormalizeFeedback validates and repairs a raw analysis payload into a
// well-formed FeedbackRecord. A missing required field fails with
// ErrMalformedFeedback; out-of-range or non-numeric scores and wrong-length
// lists are repaired silently.
func NormalizeFeedback(raw map[string]interface{}) (models.FeedbackRecord, error) {
	for _, field := range requiredFeedbackFields {
		if _, ok := raw[field]; !ok {
			return models.FeedbackRecord{}, fmt.Errorf("%w: missing required field %q", ErrMalformedFeedback, field)
		}
	}

	return models.FeedbackRecord{
		Clarity:      sanitizeScore(raw["clarity"]),
		Structure:    sanitizeScore(raw["structure"]),
		Content:      sanitizeScore(raw["content"]),
		Confidence:   sanitizeScore(raw["confidence"]),
		OverallScore: sanitizeScore(raw["overall_score"]),
		Strengths:    sanitizeList(raw["strengths"], strengthFiller),
		Improvements: sanitizeList(raw["improvements"], improvementFiller),
	}, nil
}

// sanitizeScore coerces a raw score to an int in [0,100], replacing anything
// non-numeric or out of range with the neutral default.
func sanitizeScore(value interface{}) int {
	var score float64

	switch v := value.(type) {
	case float64:
		score = v
	case int:
		score = float64(v)
	default:
		return defaultScore
	}

	if score < 0 || score > 100 {
		return defaultScore
	}

	return int(math.Round(score))
}

// sanitizeList coerces a raw list to exactly three strings, truncating extras
// and padding shortfalls with the filler. Order of original entries is kept.
func sanitizeList(value interface{}, filler string) []string {
	var entries []string

	switch v := value.(type) {
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				entries = append(entries, s)
			}
		}
	case []string:
		entries = append(entries, v...)
	}

	if len(entries) > 3 {
		entries = entries[:3]
	}
	for len(entries) < 3 {
		entries = append(entries, filler)
	}

	return entries
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object boundaries
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
