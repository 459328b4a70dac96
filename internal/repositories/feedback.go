package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nexocarreira/career-coach/internal/models"
)

type FeedbackRepository interface {
	Upsert(feedback *models.Feedback) error
	FindByInterviewID(interviewID uuid.UUID) (*models.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Upsert implements FeedbackRepository. Re-running analysis for an interview
// replaces the previous feedback document.
func (r *feedbackRepository) Upsert(feedback *models.Feedback) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "interview_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"overall_score", "clarity", "structure", "content", "confidence", "answers",
		}),
	}).Create(feedback).Error

	if err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	return nil
}

// FindByInterviewID implements FeedbackRepository.
func (r *feedbackRepository) FindByInterviewID(interviewID uuid.UUID) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := r.db.Where("interview_id = ?", interviewID).First(&feedback).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("feedback not found")
		}
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}

	return &feedback, nil
}
