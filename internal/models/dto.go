package models

import "time"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateInterviewRequest struct {
	JobRole        string `json:"job_role"`
	JobDescription string `json:"job_description"`
	QuestionCount  int    `json:"question_count"`
}

type CreateInterviewResponse struct {
	ID        string     `json:"id"`
	JobRole   string     `json:"job_role"`
	Status    string     `json:"status"`
	Questions []Question `json:"questions"`
}

type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

type CompleteInterviewRequest struct {
	Duration int `json:"duration"`
}

type InterviewResponse struct {
	ID           string                    `json:"id"`
	JobRole      string                    `json:"job_role"`
	Status       string                    `json:"status"`
	OverallScore *int                      `json:"overall_score,omitempty"`
	Duration     int                       `json:"duration"`
	CreatedAt    time.Time                 `json:"created_at"`
	CompletedAt  *time.Time                `json:"completed_at,omitempty"`
	Feedback     *InterviewFeedbackSummary `json:"feedback,omitempty"`
}

type UploadJobDescriptionResponse struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Text         string `json:"text"`
}

type UserStats struct {
	TotalSessions     int `json:"total_sessions"`
	AverageScore      int `json:"average_score"`
	TotalPracticeTime int `json:"total_practice_time"`
}

type AssessmentRequest struct {
	Answer1   string `json:"answer1"`
	Answer2   string `json:"answer2"`
	Answer3   string `json:"answer3"`
	Answer4   string `json:"answer4"`
	Objective string `json:"objective"`
}
