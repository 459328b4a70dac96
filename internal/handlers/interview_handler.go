package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"nexocarreira/career-coach/internal/middleware"
	"nexocarreira/career-coach/internal/models"
	"nexocarreira/career-coach/internal/repositories"
	"nexocarreira/career-coach/internal/services"
)

type InterviewHandler struct {
	interviewRepo    repositories.InterviewRepository
	questionSelector services.QuestionSelector
	feedbackService  services.FeedbackService
	worker           services.Worker
}

func NewInterviewHandler(
	interviewRepo repositories.InterviewRepository,
	questionSelector services.QuestionSelector,
	feedbackService services.FeedbackService,
	worker services.Worker,
) *InterviewHandler {
	return &InterviewHandler{
		interviewRepo:    interviewRepo,
		questionSelector: questionSelector,
		feedbackService:  feedbackService,
		worker:           worker,
	}
}

// HandleCreateInterview handles POST /interviews
func (h *InterviewHandler) HandleCreateInterview(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	var req models.CreateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobRole == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_role is required",
		})
	}

	questions, err := h.questionSelector.SelectQuestions(c.Context(), req.JobRole, req.JobDescription, req.QuestionCount)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to select interview questions",
		})
	}

	interview := &models.Interview{
		ID:             uuid.New(),
		UserID:         userID,
		JobRole:        req.JobRole,
		JobDescription: req.JobDescription,
		Status:         models.StatusInProgress,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.interviewRepo.Create(interview); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create interview",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.CreateInterviewResponse{
		ID:        interview.ID.String(),
		JobRole:   interview.JobRole,
		Status:    string(interview.Status),
		Questions: questions,
	})
}

// HandleSubmitAnswer handles POST /interviews/:id/answers
func (h *InterviewHandler) HandleSubmitAnswer(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	interview, status := h.loadOwnedInterview(c, userID)
	if interview == nil {
		return status
	}

	if interview.Status != models.StatusInProgress {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Interview is no longer accepting answers",
		})
	}

	var req models.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid question_id format",
		})
	}

	if req.Question == "" || req.Answer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "question and answer are required",
		})
	}

	existing, err := h.interviewRepo.FindAnswersByInterview(interview.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load answers",
		})
	}

	answer := &models.Answer{
		ID:          uuid.New(),
		InterviewID: interview.ID,
		QuestionID:  questionID,
		Question:    req.Question,
		Answer:      req.Answer,
		Position:    len(existing),
		CreatedAt:   time.Now(),
	}

	if err := h.interviewRepo.CreateAnswer(answer); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save answer",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       answer.ID.String(),
		"position": answer.Position,
	})
}

// HandleCompleteInterview handles POST /interviews/:id/complete
func (h *InterviewHandler) HandleCompleteInterview(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	interview, status := h.loadOwnedInterview(c, userID)
	if interview == nil {
		return status
	}

	var req models.CompleteInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.interviewRepo.MarkAnalyzing(interview.ID, req.Duration); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Interview is not in progress",
		})
	}

	// Analysis runs in the background; clients poll GET /interviews/:id
	h.worker.EnqueueInterview(interview.ID)

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"id":     interview.ID.String(),
		"status": string(models.StatusAnalyzing),
	})
}

// HandleGetInterview handles GET /interviews/:id
func (h *InterviewHandler) HandleGetInterview(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	interview, status := h.loadOwnedInterview(c, userID)
	if interview == nil {
		return status
	}

	response := models.InterviewResponse{
		ID:           interview.ID.String(),
		JobRole:      interview.JobRole,
		Status:       string(interview.Status),
		OverallScore: interview.OverallScore,
		Duration:     interview.Duration,
		CreatedAt:    interview.CreatedAt,
		CompletedAt:  interview.CompletedAt,
	}

	if interview.Status == models.StatusCompleted {
		if feedback, err := h.feedbackService.GetInterviewFeedback(interview.ID); err == nil {
			response.Feedback = feedback
		}
	}

	return c.JSON(response)
}

// HandleListInterviews handles GET /interviews
func (h *InterviewHandler) HandleListInterviews(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	interviews, err := h.interviewRepo.FindCompletedByUser(userID, 10)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load interviews",
		})
	}

	responses := make([]models.InterviewResponse, 0, len(interviews))
	for _, interview := range interviews {
		responses = append(responses, models.InterviewResponse{
			ID:           interview.ID.String(),
			JobRole:      interview.JobRole,
			Status:       string(interview.Status),
			OverallScore: interview.OverallScore,
			Duration:     interview.Duration,
			CreatedAt:    interview.CreatedAt,
			CompletedAt:  interview.CompletedAt,
		})
	}

	return c.JSON(fiber.Map{
		"interviews": responses,
	})
}

// HandleGetStats handles GET /stats
func (h *InterviewHandler) HandleGetStats(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	stats, err := h.interviewRepo.GetUserStats(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute stats",
		})
	}

	return c.JSON(stats)
}

// loadOwnedInterview parses :id, loads the interview and checks ownership.
// On failure it returns nil plus the error response already written.
func (h *InterviewHandler) loadOwnedInterview(c *fiber.Ctx, userID uuid.UUID) (*models.Interview, error) {
	interviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid interview ID format",
		})
	}

	interview, err := h.interviewRepo.FindByID(interviewID)
	if err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Interview not found",
		})
	}

	if interview.UserID != userID {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Interview not found",
		})
	}

	return interview, nil
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}
