package models

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Question   string    `gorm:"type:text;not null" json:"question"`
	Type       string    `gorm:"type:text" json:"type"`
	Category   string    `gorm:"type:text" json:"category"`
	TimeLimit  int       `gorm:"not null;default:180" json:"time_limit"`
	Difficulty string    `gorm:"type:text" json:"difficulty"`
	CreatedAt  time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (q *Question) TableName() string {
	return "questions"
}

// DefaultQuestions is the seed bank inserted when the questions table is empty.
func DefaultQuestions() []Question {
	return []Question{
		{
			Question:   "Tell me about yourself and why you're interested in this position.",
			Type:       "behavioral",
			Category:   "introduction",
			TimeLimit:  180,
			Difficulty: "easy",
		},
		{
			Question:   "Describe a challenging project you worked on and how you overcame obstacles.",
			Type:       "behavioral",
			Category:   "problem_solving",
			TimeLimit:  240,
			Difficulty: "medium",
		},
		{
			Question:   "What are your greatest strengths and how do they apply to this role?",
			Type:       "behavioral",
			Category:   "strengths",
			TimeLimit:  180,
			Difficulty: "easy",
		},
		{
			Question:   "Where do you see yourself in 5 years?",
			Type:       "career",
			Category:   "career_goals",
			TimeLimit:  120,
			Difficulty: "medium",
		},
		{
			Question:   "Describe a time when you had to work with a difficult team member.",
			Type:       "behavioral",
			Category:   "teamwork",
			TimeLimit:  200,
			Difficulty: "medium",
		},
		{
			Question:   "How do you handle stress and pressure?",
			Type:       "behavioral",
			Category:   "stress_management",
			TimeLimit:  150,
			Difficulty: "medium",
		},
	}
}
