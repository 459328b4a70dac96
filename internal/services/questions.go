package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"nexocarreira/career-coach/internal/models"
	"nexocarreira/career-coach/internal/repositories"
)

// QuestionSelector picks the interview questions for a session. It prefers
// vector retrieval against the job context and falls back to the seeded bank
// when the index or the embedding service is unavailable.
type QuestionSelector interface {
	SelectQuestions(ctx context.Context, jobRole, jobDescription string, limit int) ([]models.Question, error)
}

type questionSelector struct {
	questionRepo  repositories.QuestionRepository
	gemini        GeminiService
	index         QuestionIndexService
	chunker       TextChunker
	promptBuilder *PromptBuilder
}

func NewQuestionSelector(
	questionRepo repositories.QuestionRepository,
	gemini GeminiService,
	index QuestionIndexService,
) QuestionSelector {
	return &questionSelector{
		questionRepo:  questionRepo,
		gemini:        gemini,
		index:         index,
		chunker:       NewTextChunker(),
		promptBuilder: NewPromptBuilder(),
	}
}

const defaultQuestionCount = 4

// SelectQuestions implements QuestionSelector.
func (s *questionSelector) SelectQuestions(ctx context.Context, jobRole, jobDescription string, limit int) ([]models.Question, error) {
	if limit <= 0 {
		limit = defaultQuestionCount
	}

	retrieved := s.retrieveRelevant(ctx, jobRole, jobDescription, limit)
	if len(retrieved) >= limit {
		return retrieved[:limit], nil
	}

	// Pad from the seeded bank, keeping retrieval order and skipping duplicates
	fallback, err := s.questionRepo.List(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load question bank: %w", err)
	}

	seen := make(map[uuid.UUID]bool, len(retrieved))
	for _, q := range retrieved {
		seen[q.ID] = true
	}

	for _, q := range fallback {
		if len(retrieved) >= limit {
			break
		}
		if seen[q.ID] {
			continue
		}
		retrieved = append(retrieved, q)
		seen[q.ID] = true
	}

	return retrieved, nil
}

// retrieveRelevant returns job-relevant questions via the vector index, or
// nothing when retrieval is unavailable. Retrieval failures never fail
// interview setup.
func (s *questionSelector) retrieveRelevant(ctx context.Context, jobRole, jobDescription string, limit int) []models.Question {
	// Long job descriptions get chunked; the leading chunk carries the role
	// summary and requirements, which is what the query needs.
	if chunks := s.chunker.ChunkText(jobDescription, 1000, 100); len(chunks) > 0 {
		jobDescription = chunks[0]
	}

	query := s.promptBuilder.BuildQuestionRetrievalQuery(jobRole, jobDescription)

	embedding, err := s.gemini.GenerateEmbedding(ctx, query)
	if err != nil {
		log.Printf("⚠️  Failed to embed question query: %v\n", err)
		return nil
	}

	matches, err := s.index.SearchQuestions(ctx, embedding, limit)
	if err != nil {
		log.Printf("⚠️  Question retrieval unavailable: %v\n", err)
		return nil
	}

	var ids []uuid.UUID
	for _, match := range matches {
		id, err := uuid.Parse(match.QuestionID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil
	}

	questions, err := s.questionRepo.FindByIDs(ids)
	if err != nil {
		log.Printf("⚠️  Failed to load retrieved questions: %v\n", err)
		return nil
	}

	// Restore retrieval (similarity) order
	byID := make(map[uuid.UUID]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	var ordered []models.Question
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}

	return ordered
}
