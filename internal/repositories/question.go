package repositories

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nexocarreira/career-coach/internal/models"
)

type QuestionRepository interface {
	List(limit int) ([]models.Question, error)
	FindByID(id uuid.UUID) (*models.Question, error)
	FindByIDs(ids []uuid.UUID) ([]models.Question, error)
	SeedDefaults() error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// List implements QuestionRepository.
func (r *questionRepository) List(limit int) ([]models.Question, error) {
	var questions []models.Question
	if err := r.db.Order("created_at ASC").Limit(limit).Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	return questions, nil
}

// FindByID implements QuestionRepository.
func (r *questionRepository) FindByID(id uuid.UUID) (*models.Question, error) {
	var question models.Question
	if err := r.db.Where("id = ?", id).First(&question).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("question not found")
		}
		return nil, fmt.Errorf("failed to find question: %w", err)
	}

	return &question, nil
}

// FindByIDs implements QuestionRepository.
func (r *questionRepository) FindByIDs(ids []uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to find questions: %w", err)
	}

	return questions, nil
}

// SeedDefaults inserts the default question bank when the table is empty.
func (r *questionRepository) SeedDefaults() error {
	var count int64
	if err := r.db.Model(&models.Question{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}

	if count > 0 {
		return nil
	}

	defaults := models.DefaultQuestions()
	for i := range defaults {
		defaults[i].ID = uuid.New()
	}

	if err := r.db.Create(&defaults).Error; err != nil {
		return fmt.Errorf("failed to seed questions: %w", err)
	}

	log.Printf("✅ Seeded %d default interview questions\n", len(defaults))
	return nil
}
