package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"nexocarreira/career-coach/internal/models"
)

// AnalyzerService scores interview answers with the external model. Both
// operations are total: any upstream failure is absorbed into a neutral
// fallback record so a practice session never hard-fails on a flaky model.
type AnalyzerService interface {
	AnalyzeAnswer(ctx context.Context, question, answer, jobRole, jobDescription string) models.FeedbackRecord
	AnalyzeInterview(ctx context.Context, items []models.AnswerItem) models.InterviewFeedbackSummary
}

type analyzerService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	temperature   float32
}

func NewAnalyzerService(generator TextGenerator) AnalyzerService {
	return &analyzerService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		temperature:   0.3,
	}
}

// AnalyzeAnswer implements AnalyzerService.
func (a *analyzerService) AnalyzeAnswer(ctx context.Context, question, answer, jobRole, jobDescription string) models.FeedbackRecord {
	// Time-derived session tag for external-service continuity. Best-effort
	// only, never used for deduplication.
	sessionID := fmt.Sprintf("interview_analysis_%d", time.Now().UnixNano())

	prompt := a.promptBuilder.BuildAnswerAnalysisPrompt(question, answer, jobRole, jobDescription)

	response, err := a.generator.GenerateText(ctx, prompt, a.temperature)
	if err != nil {
		log.Printf("❌ Answer analysis failed (session %s): %v\n", sessionID, err)
		return FallbackFeedback()
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(extractJSON(response)), &raw); err != nil {
		log.Printf("❌ Failed to parse analysis response as JSON (session %s): %v\n", sessionID, err)
		return FallbackFeedback()
	}

	record, err := NormalizeFeedback(raw)
	if err != nil {
		log.Printf("❌ Analysis response rejected (session %s): %v\n", sessionID, err)
		return FallbackFeedback()
	}

	log.Printf("✅ Analyzed answer for question: %s\n", truncate(question, 50))
	return record
}

// AnalyzeInterview implements AnalyzerService. Answers are analyzed one at a
// time in input order; the output preserves that order exactly.
func (a *analyzerService) AnalyzeInterview(ctx context.Context, items []models.AnswerItem) models.InterviewFeedbackSummary {
	if len(items) == 0 {
		return EmptyInterviewSummary()
	}

	var (
		answers         []models.AnswerFeedback
		totalScore      int
		totalClarity    int
		totalStructure  int
		totalContent    int
		totalConfidence int
	)

	for _, item := range items {
		feedback := a.AnalyzeAnswer(ctx, item.Question, item.Answer, item.JobRole, item.JobDescription)

		answers = append(answers, models.AnswerFeedback{
			QuestionID:   item.QuestionID,
			Question:     item.Question,
			Answer:       item.Answer,
			Score:        feedback.OverallScore,
			Strengths:    feedback.Strengths,
			Improvements: feedback.Improvements,
		})

		totalScore += feedback.OverallScore
		totalClarity += feedback.Clarity
		totalStructure += feedback.Structure
		totalContent += feedback.Content
		totalConfidence += feedback.Confidence
	}

	count := len(items)
	return models.InterviewFeedbackSummary{
		OverallScore: roundMean(totalScore, count),
		Metrics: models.FeedbackMetrics{
			Clarity:    roundMean(totalClarity, count),
			Structure:  roundMean(totalStructure, count),
			Content:    roundMean(totalContent, count),
			Confidence: roundMean(totalConfidence, count),
		},
		Answers: answers,
	}
}

// roundMean rounds half away from zero. The same rule applies to the overall
// score and every metric mean.
func roundMean(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}

// FallbackFeedback is the neutral record returned when analysis fails.
func FallbackFeedback() models.FeedbackRecord {
	return models.FeedbackRecord{
		Clarity:      defaultScore,
		Structure:    defaultScore,
		Content:      defaultScore,
		Confidence:   defaultScore,
		OverallScore: defaultScore,
		Strengths: []string{
			"You provided a complete response to the question",
			"Your answer shows relevant experience",
			"You demonstrated understanding of the role",
		},
		Improvements: []string{
			"Consider providing more specific examples",
			"Structure your response using the STAR method",
			"Add more quantifiable achievements",
		},
	}
}

// EmptyInterviewSummary is the fixed summary for an interview with no answers.
func EmptyInterviewSummary() models.InterviewFeedbackSummary {
	return models.InterviewFeedbackSummary{
		OverallScore: defaultScore,
		Metrics: models.FeedbackMetrics{
			Clarity:    defaultScore,
			Structure:  defaultScore,
			Content:    defaultScore,
			Confidence: defaultScore,
		},
		Answers: []models.AnswerFeedback{},
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
