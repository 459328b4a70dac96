package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexocarreira/career-coach/internal/models"
)

type fakeQuestionRepo struct {
	bank []models.Question
}

func (r *fakeQuestionRepo) List(limit int) ([]models.Question, error) {
	if limit > len(r.bank) {
		limit = len(r.bank)
	}
	return r.bank[:limit], nil
}

func (r *fakeQuestionRepo) FindByID(id uuid.UUID) (*models.Question, error) {
	for i := range r.bank {
		if r.bank[i].ID == id {
			return &r.bank[i], nil
		}
	}
	return nil, errors.New("question not found")
}

func (r *fakeQuestionRepo) FindByIDs(ids []uuid.UUID) ([]models.Question, error) {
	var out []models.Question
	for _, id := range ids {
		if q, err := r.FindByID(id); err == nil {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) SeedDefaults() error { return nil }

type fakeEmbedder struct {
	embedding []float32
	err       error
}

func (e *fakeEmbedder) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	return "", errors.New("not used")
}

func (e *fakeEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return e.embedding, e.err
}

type fakeQuestionIndex struct {
	matches []QuestionMatch
	err     error
}

func (i *fakeQuestionIndex) InitCollection() error { return nil }

func (i *fakeQuestionIndex) UpsertQuestion(ctx context.Context, questionID, category, text string, embedding []float32) error {
	return nil
}

func (i *fakeQuestionIndex) SearchQuestions(ctx context.Context, queryEmbedding []float32, limit int) ([]QuestionMatch, error) {
	return i.matches, i.err
}

func questionBank(n int) []models.Question {
	bank := make([]models.Question, n)
	for i := range bank {
		bank[i] = models.Question{ID: uuid.New(), Question: "q", Category: "introduction"}
	}
	return bank
}

func TestSelectQuestions_UsesRetrievalOrder(t *testing.T) {
	bank := questionBank(4)
	repo := &fakeQuestionRepo{bank: bank}

	// Index returns the bank in reverse similarity order.
	index := &fakeQuestionIndex{matches: []QuestionMatch{
		{QuestionID: bank[3].ID.String(), Score: 0.9},
		{QuestionID: bank[1].ID.String(), Score: 0.8},
	}}

	selector := NewQuestionSelector(repo, &fakeEmbedder{embedding: []float32{0.1}}, index)

	questions, err := selector.SelectQuestions(context.Background(), "Backend Engineer", "Go services", 2)
	require.NoError(t, err)

	require.Len(t, questions, 2)
	assert.Equal(t, bank[3].ID, questions[0].ID)
	assert.Equal(t, bank[1].ID, questions[1].ID)
}

func TestSelectQuestions_PadsFromBankWithoutDuplicates(t *testing.T) {
	bank := questionBank(4)
	repo := &fakeQuestionRepo{bank: bank}

	index := &fakeQuestionIndex{matches: []QuestionMatch{
		{QuestionID: bank[0].ID.String(), Score: 0.9},
	}}

	selector := NewQuestionSelector(repo, &fakeEmbedder{embedding: []float32{0.1}}, index)

	questions, err := selector.SelectQuestions(context.Background(), "Backend Engineer", "", 3)
	require.NoError(t, err)

	require.Len(t, questions, 3)
	assert.Equal(t, bank[0].ID, questions[0].ID)

	seen := make(map[uuid.UUID]bool)
	for _, q := range questions {
		assert.False(t, seen[q.ID], "duplicate question %s", q.ID)
		seen[q.ID] = true
	}
}

func TestSelectQuestions_FallsBackWhenIndexUnavailable(t *testing.T) {
	bank := questionBank(6)
	repo := &fakeQuestionRepo{bank: bank}
	index := &fakeQuestionIndex{err: errors.New("connection refused")}

	selector := NewQuestionSelector(repo, &fakeEmbedder{embedding: []float32{0.1}}, index)

	questions, err := selector.SelectQuestions(context.Background(), "Backend Engineer", "Go services", 4)
	require.NoError(t, err)
	assert.Len(t, questions, 4)
}

func TestSelectQuestions_FallsBackWhenEmbeddingFails(t *testing.T) {
	bank := questionBank(6)
	repo := &fakeQuestionRepo{bank: bank}
	index := &fakeQuestionIndex{}

	selector := NewQuestionSelector(repo, &fakeEmbedder{err: errors.New("quota exceeded")}, index)

	questions, err := selector.SelectQuestions(context.Background(), "Backend Engineer", "Go services", 4)
	require.NoError(t, err)
	assert.Len(t, questions, 4)
}

func TestSelectQuestions_DefaultLimit(t *testing.T) {
	bank := questionBank(6)
	repo := &fakeQuestionRepo{bank: bank}
	index := &fakeQuestionIndex{}

	selector := NewQuestionSelector(repo, &fakeEmbedder{embedding: []float32{0.1}}, index)

	questions, err := selector.SelectQuestions(context.Background(), "Backend Engineer", "", 0)
	require.NoError(t, err)
	assert.Len(t, questions, defaultQuestionCount)
}
