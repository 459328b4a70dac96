package models

import (
	"time"

	"github.com/google/uuid"
)

type InterviewStatus string

const (
	StatusInProgress InterviewStatus = "in_progress"
	StatusAnalyzing  InterviewStatus = "analyzing"
	StatusCompleted  InterviewStatus = "completed"
)

type Interview struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	JobRole        string          `gorm:"type:text;not null" json:"job_role"`
	JobDescription string          `gorm:"type:text" json:"job_description"`
	Status         InterviewStatus `gorm:"not null;default:'in_progress'" json:"status"`
	OverallScore   *int            `json:"overall_score,omitempty"`
	Duration       int             `gorm:"not null;default:0" json:"duration"`
	CreatedAt      time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	UpdatedAt      time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Interview) TableName() string {
	return "interviews"
}

// Answer is one submitted answer within an interview, kept in submission order.
type Answer struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InterviewID uuid.UUID `gorm:"type:uuid;not null;index" json:"interview_id"`
	QuestionID  uuid.UUID `gorm:"type:uuid;not null" json:"question_id"`
	Question    string    `gorm:"type:text;not null" json:"question"`
	Answer      string    `gorm:"type:text;not null" json:"answer"`
	Position    int       `gorm:"not null" json:"position"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relations
	Interview Interview `gorm:"foreignKey:InterviewID" json:"-"`
}

func (Answer) TableName() string {
	return "answers"
}

type Feedback struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InterviewID  uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"interview_id"`
	OverallScore int                `gorm:"not null" json:"overall_score"`
	Clarity      int                `gorm:"not null" json:"clarity"`
	Structure    int                `gorm:"not null" json:"structure"`
	Content      int                `gorm:"not null" json:"content"`
	Confidence   int                `gorm:"not null" json:"confidence"`
	Answers      AnswerFeedbackList `gorm:"type:jsonb" json:"answers"`
	CreatedAt    time.Time          `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relations
	Interview Interview `gorm:"foreignKey:InterviewID" json:"-"`
}

func (Feedback) TableName() string {
	return "feedback"
}
