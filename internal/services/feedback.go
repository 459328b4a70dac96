package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"nexocarreira/career-coach/internal/models"
	"nexocarreira/career-coach/internal/repositories"
)

// FeedbackService turns a finished interview's answers into a persisted
// feedback document and completes the interview record.
type FeedbackService interface {
	GenerateInterviewFeedback(ctx context.Context, interviewID uuid.UUID) error
	GetInterviewFeedback(interviewID uuid.UUID) (*models.InterviewFeedbackSummary, error)
}

type feedbackService struct {
	interviewRepo repositories.InterviewRepository
	feedbackRepo  repositories.FeedbackRepository
	analyzer      AnalyzerService
}

func NewFeedbackService(
	interviewRepo repositories.InterviewRepository,
	feedbackRepo repositories.FeedbackRepository,
	analyzer AnalyzerService,
) FeedbackService {
	return &feedbackService{
		interviewRepo: interviewRepo,
		feedbackRepo:  feedbackRepo,
		analyzer:      analyzer,
	}
}

// GenerateInterviewFeedback implements FeedbackService. Analysis itself never
// fails (failed answers fall back to the neutral record); only persistence
// errors propagate.
func (s *feedbackService) GenerateInterviewFeedback(ctx context.Context, interviewID uuid.UUID) error {
	interview, err := s.interviewRepo.FindByID(interviewID)
	if err != nil {
		return fmt.Errorf("failed to load interview: %w", err)
	}

	answers, err := s.interviewRepo.FindAnswersByInterview(interviewID)
	if err != nil {
		return fmt.Errorf("failed to load answers: %w", err)
	}

	items := make([]models.AnswerItem, 0, len(answers))
	for _, answer := range answers {
		items = append(items, models.AnswerItem{
			QuestionID:     answer.QuestionID.String(),
			Question:       answer.Question,
			Answer:         answer.Answer,
			JobRole:        interview.JobRole,
			JobDescription: interview.JobDescription,
		})
	}

	log.Printf("🤖 Analyzing interview %s (%d answers)...\n", interviewID, len(items))
	summary := s.analyzer.AnalyzeInterview(ctx, items)

	feedback := &models.Feedback{
		ID:           uuid.New(),
		InterviewID:  interviewID,
		OverallScore: summary.OverallScore,
		Clarity:      summary.Metrics.Clarity,
		Structure:    summary.Metrics.Structure,
		Content:      summary.Metrics.Content,
		Confidence:   summary.Metrics.Confidence,
		Answers:      summary.Answers,
	}

	if err := s.feedbackRepo.Upsert(feedback); err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	if err := s.interviewRepo.MarkCompleted(interviewID, summary.OverallScore); err != nil {
		return fmt.Errorf("failed to complete interview: %w", err)
	}

	log.Printf("✅ Interview %s completed with overall score %d\n", interviewID, summary.OverallScore)
	return nil
}

// GetInterviewFeedback implements FeedbackService.
func (s *feedbackService) GetInterviewFeedback(interviewID uuid.UUID) (*models.InterviewFeedbackSummary, error) {
	feedback, err := s.feedbackRepo.FindByInterviewID(interviewID)
	if err != nil {
		return nil, err
	}

	return &models.InterviewFeedbackSummary{
		OverallScore: feedback.OverallScore,
		Metrics: models.FeedbackMetrics{
			Clarity:    feedback.Clarity,
			Structure:  feedback.Structure,
			Content:    feedback.Content,
			Confidence: feedback.Confidence,
		},
		Answers: feedback.Answers,
	}, nil
}
