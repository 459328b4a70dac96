package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"nexocarreira/career-coach/internal/models"
	"nexocarreira/career-coach/internal/services"
)

type AssessmentHandler struct {
	questionnaireService services.QuestionnaireService
}

func NewAssessmentHandler(questionnaireService services.QuestionnaireService) *AssessmentHandler {
	return &AssessmentHandler{
		questionnaireService: questionnaireService,
	}
}

// HandleAssessment handles POST /assessment. Unlike interview analysis this
// pipeline fails loudly: upstream errors surface to the client.
func (h *AssessmentHandler) HandleAssessment(c *fiber.Ctx) error {
	var req models.AssessmentRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Answer1 == "" || req.Answer2 == "" || req.Answer3 == "" || req.Answer4 == "" || req.Objective == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "All five answers are required",
		})
	}

	assessment, err := h.questionnaireService.AnalyzeQuestionnaire(c.Context(), services.Questionnaire{
		Answer1:   req.Answer1,
		Answer2:   req.Answer2,
		Answer3:   req.Answer3,
		Answer4:   req.Answer4,
		Objective: req.Objective,
	})
	if err != nil {
		var assessmentErr *services.AssessmentError
		if errors.As(err, &assessmentErr) {
			return c.Status(assessmentStatusCode(assessmentErr)).JSON(fiber.Map{
				"error":     assessmentErr.Message,
				"kind":      string(assessmentErr.Kind),
				"retryable": assessmentErr.Retryable(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyze questionnaire",
		})
	}

	return c.JSON(assessment)
}

func assessmentStatusCode(err *services.AssessmentError) int {
	switch err.Kind {
	case services.AssessmentErrMissingKey:
		return fiber.StatusServiceUnavailable
	case services.AssessmentErrRateLimited:
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusBadGateway
	}
}
