package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"nexocarreira/career-coach/internal/repositories"
)

type QuestionHandler struct {
	questionRepo repositories.QuestionRepository
}

func NewQuestionHandler(questionRepo repositories.QuestionRepository) *QuestionHandler {
	return &QuestionHandler{
		questionRepo: questionRepo,
	}
}

// HandleListQuestions handles GET /questions
func (h *QuestionHandler) HandleListQuestions(c *fiber.Ctx) error {
	limit := 4
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 20 {
			limit = v
		}
	}

	questions, err := h.questionRepo.List(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load questions",
		})
	}

	return c.JSON(fiber.Map{
		"questions": questions,
	})
}
