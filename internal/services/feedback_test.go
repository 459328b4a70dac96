package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexocarreira/career-coach/internal/models"
)

type fakeInterviewRepo struct {
	interview *models.Interview
	answers   []models.Answer

	completedID    uuid.UUID
	completedScore int
}

func (r *fakeInterviewRepo) Create(interview *models.Interview) error { return nil }

func (r *fakeInterviewRepo) FindByID(id uuid.UUID) (*models.Interview, error) {
	if r.interview == nil || r.interview.ID != id {
		return nil, fmt.Errorf("interview not found")
	}
	return r.interview, nil
}

func (r *fakeInterviewRepo) UpdateStatus(id uuid.UUID, status models.InterviewStatus) error {
	return nil
}

func (r *fakeInterviewRepo) MarkAnalyzing(id uuid.UUID, duration int) error { return nil }

func (r *fakeInterviewRepo) MarkCompleted(id uuid.UUID, overallScore int) error {
	r.completedID = id
	r.completedScore = overallScore
	return nil
}

func (r *fakeInterviewRepo) FindCompletedByUser(userID uuid.UUID, limit int) ([]models.Interview, error) {
	return nil, nil
}

func (r *fakeInterviewRepo) FindPendingAnalysis(limit int) ([]models.Interview, error) {
	return nil, nil
}

func (r *fakeInterviewRepo) GetUserStats(userID uuid.UUID) (*models.UserStats, error) {
	return &models.UserStats{}, nil
}

func (r *fakeInterviewRepo) CreateAnswer(answer *models.Answer) error { return nil }

func (r *fakeInterviewRepo) FindAnswersByInterview(interviewID uuid.UUID) ([]models.Answer, error) {
	return r.answers, nil
}

type fakeFeedbackRepo struct {
	saved *models.Feedback
}

func (r *fakeFeedbackRepo) Upsert(feedback *models.Feedback) error {
	r.saved = feedback
	return nil
}

func (r *fakeFeedbackRepo) FindByInterviewID(interviewID uuid.UUID) (*models.Feedback, error) {
	if r.saved == nil || r.saved.InterviewID != interviewID {
		return nil, fmt.Errorf("feedback not found")
	}
	return r.saved, nil
}

type fakeAnalyzer struct {
	gotItems []models.AnswerItem
	summary  models.InterviewFeedbackSummary
}

func (a *fakeAnalyzer) AnalyzeAnswer(ctx context.Context, question, answer, jobRole, jobDescription string) models.FeedbackRecord {
	return FallbackFeedback()
}

func (a *fakeAnalyzer) AnalyzeInterview(ctx context.Context, items []models.AnswerItem) models.InterviewFeedbackSummary {
	a.gotItems = items
	return a.summary
}

func TestGenerateInterviewFeedback_PersistsAndCompletes(t *testing.T) {
	interviewID := uuid.New()
	questionID := uuid.New()

	interviewRepo := &fakeInterviewRepo{
		interview: &models.Interview{
			ID:             interviewID,
			UserID:         uuid.New(),
			JobRole:        "Backend Engineer",
			JobDescription: "Build Go services",
			Status:         models.StatusAnalyzing,
		},
		answers: []models.Answer{
			{InterviewID: interviewID, QuestionID: questionID, Question: "Tell me about yourself", Answer: "I build APIs", Position: 0},
		},
	}
	feedbackRepo := &fakeFeedbackRepo{}
	analyzer := &fakeAnalyzer{
		summary: models.InterviewFeedbackSummary{
			OverallScore: 82,
			Metrics:      models.FeedbackMetrics{Clarity: 80, Structure: 84, Content: 81, Confidence: 83},
			Answers: []models.AnswerFeedback{
				{QuestionID: questionID.String(), Question: "Tell me about yourself", Answer: "I build APIs", Score: 82},
			},
		},
	}

	service := NewFeedbackService(interviewRepo, feedbackRepo, analyzer)

	err := service.GenerateInterviewFeedback(context.Background(), interviewID)
	require.NoError(t, err)

	// The analyzer sees the interview context on every answer.
	require.Len(t, analyzer.gotItems, 1)
	assert.Equal(t, "Backend Engineer", analyzer.gotItems[0].JobRole)
	assert.Equal(t, "Build Go services", analyzer.gotItems[0].JobDescription)
	assert.Equal(t, questionID.String(), analyzer.gotItems[0].QuestionID)

	require.NotNil(t, feedbackRepo.saved)
	assert.Equal(t, interviewID, feedbackRepo.saved.InterviewID)
	assert.Equal(t, 82, feedbackRepo.saved.OverallScore)
	assert.Equal(t, 80, feedbackRepo.saved.Clarity)

	assert.Equal(t, interviewID, interviewRepo.completedID)
	assert.Equal(t, 82, interviewRepo.completedScore)
}

func TestGenerateInterviewFeedback_UnknownInterview(t *testing.T) {
	service := NewFeedbackService(&fakeInterviewRepo{}, &fakeFeedbackRepo{}, &fakeAnalyzer{})

	err := service.GenerateInterviewFeedback(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestGetInterviewFeedback_RoundTrip(t *testing.T) {
	interviewID := uuid.New()
	feedbackRepo := &fakeFeedbackRepo{
		saved: &models.Feedback{
			InterviewID:  interviewID,
			OverallScore: 77,
			Clarity:      70,
			Structure:    75,
			Content:      80,
			Confidence:   83,
			Answers:      models.AnswerFeedbackList{{QuestionID: "q1", Score: 77}},
		},
	}

	service := NewFeedbackService(&fakeInterviewRepo{}, feedbackRepo, &fakeAnalyzer{})

	summary, err := service.GetInterviewFeedback(interviewID)
	require.NoError(t, err)

	assert.Equal(t, 77, summary.OverallScore)
	assert.Equal(t, 70, summary.Metrics.Clarity)
	require.Len(t, summary.Answers, 1)
	assert.Equal(t, "q1", summary.Answers[0].QuestionID)
}
