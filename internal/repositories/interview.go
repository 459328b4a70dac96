package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nexocarreira/career-coach/internal/models"
)

type InterviewRepository interface {
	Create(interview *models.Interview) error
	FindByID(id uuid.UUID) (*models.Interview, error)
	UpdateStatus(id uuid.UUID, status models.InterviewStatus) error
	MarkAnalyzing(id uuid.UUID, duration int) error
	MarkCompleted(id uuid.UUID, overallScore int) error
	FindCompletedByUser(userID uuid.UUID, limit int) ([]models.Interview, error)
	FindPendingAnalysis(limit int) ([]models.Interview, error)
	GetUserStats(userID uuid.UUID) (*models.UserStats, error)

	CreateAnswer(answer *models.Answer) error
	FindAnswersByInterview(interviewID uuid.UUID) ([]models.Answer, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(interview *models.Interview) error {
	if err := r.db.Create(interview).Error; err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}
	return nil
}

func (r *interviewRepository) FindByID(id uuid.UUID) (*models.Interview, error) {
	var interview models.Interview
	if err := r.db.Where("id = ?", id).First(&interview).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("interview not found")
		}
		return nil, fmt.Errorf("failed to find interview: %w", err)
	}
	return &interview, nil
}

func (r *interviewRepository) UpdateStatus(id uuid.UUID, status models.InterviewStatus) error {
	result := r.db.Model(&models.Interview{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("interview not found")
	}

	return nil
}

// MarkAnalyzing flags the interview for feedback generation and records how
// long the session took.
func (r *interviewRepository) MarkAnalyzing(id uuid.UUID, duration int) error {
	result := r.db.Model(&models.Interview{}).
		Where("id = ? AND status = ?", id, models.StatusInProgress).
		Updates(map[string]interface{}{
			"status":     models.StatusAnalyzing,
			"duration":   duration,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark interview for analysis: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("interview not found or already completed")
	}

	return nil
}

func (r *interviewRepository) MarkCompleted(id uuid.UUID, overallScore int) error {
	now := time.Now()
	result := r.db.Model(&models.Interview{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusCompleted,
			"overall_score": overallScore,
			"completed_at":  now,
			"updated_at":    now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to complete interview: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("interview not found")
	}

	return nil
}

func (r *interviewRepository) FindCompletedByUser(userID uuid.UUID, limit int) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.
		Where("user_id = ? AND status = ?", userID, models.StatusCompleted).
		Order("completed_at DESC").
		Limit(limit).
		Find(&interviews).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find interviews: %w", err)
	}

	return interviews, nil
}

func (r *interviewRepository) FindPendingAnalysis(limit int) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.
		Where("status = ?", models.StatusAnalyzing).
		Order("updated_at ASC").
		Limit(limit).
		Find(&interviews).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending analysis jobs: %w", err)
	}

	return interviews, nil
}

func (r *interviewRepository) GetUserStats(userID uuid.UUID) (*models.UserStats, error) {
	var row struct {
		TotalSessions int
		AverageScore  float64
		TotalDuration int
	}

	err := r.db.Model(&models.Interview{}).
		Select("COUNT(*) AS total_sessions, COALESCE(AVG(overall_score), 0) AS average_score, COALESCE(SUM(duration), 0) AS total_duration").
		Where("user_id = ? AND status = ?", userID, models.StatusCompleted).
		Scan(&row).Error

	if err != nil {
		return nil, fmt.Errorf("failed to compute user stats: %w", err)
	}

	return &models.UserStats{
		TotalSessions:     row.TotalSessions,
		AverageScore:      int(row.AverageScore + 0.5),
		TotalPracticeTime: row.TotalDuration,
	}, nil
}

func (r *interviewRepository) CreateAnswer(answer *models.Answer) error {
	if err := r.db.Create(answer).Error; err != nil {
		return fmt.Errorf("failed to create answer: %w", err)
	}
	return nil
}

func (r *interviewRepository) FindAnswersByInterview(interviewID uuid.UUID) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.
		Where("interview_id = ?", interviewID).
		Order("position ASC").
		Find(&answers).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find answers: %w", err)
	}

	return answers, nil
}
