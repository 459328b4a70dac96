package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawFeedback() map[string]interface{} {
	return map[string]interface{}{
		"clarity":       float64(80),
		"structure":     float64(85),
		"content":       float64(90),
		"confidence":    float64(75),
		"overall_score": float64(82),
		"strengths":     []interface{}{"s1", "s2", "s3"},
		"improvements":  []interface{}{"i1", "i2", "i3"},
	}
}

func TestNormalizeFeedback_ValidInputUnchanged(t *testing.T) {
	record, err := NormalizeFeedback(validRawFeedback())
	require.NoError(t, err)

	assert.Equal(t, 80, record.Clarity)
	assert.Equal(t, 85, record.Structure)
	assert.Equal(t, 90, record.Content)
	assert.Equal(t, 75, record.Confidence)
	assert.Equal(t, 82, record.OverallScore)
	assert.Equal(t, []string{"s1", "s2", "s3"}, record.Strengths)
	assert.Equal(t, []string{"i1", "i2", "i3"}, record.Improvements)
}

func TestNormalizeFeedback_OutOfRangeScoreRepaired(t *testing.T) {
	raw := validRawFeedback()
	raw["clarity"] = float64(150)

	record, err := NormalizeFeedback(raw)
	require.NoError(t, err)

	assert.Equal(t, 75, record.Clarity)
	// Other fields untouched
	assert.Equal(t, 85, record.Structure)
	assert.Equal(t, 82, record.OverallScore)
}

func TestNormalizeFeedback_NegativeScoreRepaired(t *testing.T) {
	raw := validRawFeedback()
	raw["overall_score"] = float64(-1)

	record, err := NormalizeFeedback(raw)
	require.NoError(t, err)
	assert.Equal(t, 75, record.OverallScore)
}

func TestNormalizeFeedback_NonNumericScoreRepaired(t *testing.T) {
	raw := validRawFeedback()
	raw["confidence"] = "very high"

	record, err := NormalizeFeedback(raw)
	require.NoError(t, err)
	assert.Equal(t, 75, record.Confidence)
}

func TestNormalizeFeedback_ShortListPadded(t *testing.T) {
	raw := validRawFeedback()
	raw["strengths"] = []interface{}{"only one"}

	record, err := NormalizeFeedback(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"only one", strengthFiller, strengthFiller}, record.Strengths)
}

func TestNormalizeFeedback_ImprovementsPaddedWithOwnFiller(t *testing.T) {
	raw := validRawFeedback()
	raw["improvements"] = []interface{}{}

	record, err := NormalizeFeedback(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{improvementFiller, improvementFiller, improvementFiller}, record.Improvements)
}

func TestNormalizeFeedback_LongListTruncated(t *testing.T) {
	raw := validRawFeedback()
	raw["strengths"] = []interface{}{"a", "b", "c", "d", "e"}

	record, err := NormalizeFeedback(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, record.Strengths)
}

func TestNormalizeFeedback_MissingFieldFails(t *testing.T) {
	for _, field := range requiredFeedbackFields {
		raw := validRawFeedback()
		delete(raw, field)

		_, err := NormalizeFeedback(raw)
		require.Error(t, err, "expected error for missing %s", field)
		assert.ErrorIs(t, err, ErrMalformedFeedback)
	}
}

func TestExtractJSON_MarkdownFences(t *testing.T) {
	wrapped := "Here is the analysis:\n```json\n{\"clarity\": 80}\n```\nHope it helps!"
	assert.Equal(t, `{"clarity": 80}`, extractJSON(wrapped))
}

func TestExtractJSON_PlainObject(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON(`{"a":1}`))
}

func TestExtractJSON_NoObjectReturnsInput(t *testing.T) {
	assert.Equal(t, "not json at all", extractJSON("not json at all"))
}
