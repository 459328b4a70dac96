package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
)

// QuestionIndexService maintains the vector index over the interview question
// bank used to pick questions relevant to a job description.
type QuestionIndexService interface {
	InitCollection() error
	UpsertQuestion(ctx context.Context, questionID, category, text string, embedding []float32) error
	SearchQuestions(ctx context.Context, queryEmbedding []float32, limit int) ([]QuestionMatch, error)
}

type QuestionMatch struct {
	QuestionID string
	Score      float32
	Text       string
	Category   string
}

type questionIndexService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewQuestionIndexService(urlStr, apiKey, collectionName string) (QuestionIndexService, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &questionIndexService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 vector size
	}, nil
}

// InitCollection implements QuestionIndexService.
func (q *questionIndexService) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Question collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// UpsertQuestion implements QuestionIndexService.
func (q *questionIndexService) UpsertQuestion(ctx context.Context, questionID, category, text string, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(questionID),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"question_id": questionID,
			"category":    category,
			"text":        text,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert question: %w", err)
	}

	return nil
}

// SearchQuestions implements QuestionIndexService.
func (q *questionIndexService) SearchQuestions(ctx context.Context, queryEmbedding []float32, limit int) ([]QuestionMatch, error) {
	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}

	var results []QuestionMatch
	for _, point := range searchResult {
		payload := point.Payload

		match := QuestionMatch{
			Score: point.Score,
		}

		if id, ok := payload["question_id"]; ok {
			if val, ok := id.GetKind().(*qdrant.Value_StringValue); ok {
				match.QuestionID = val.StringValue
			}
		}

		if text, ok := payload["text"]; ok {
			if val, ok := text.GetKind().(*qdrant.Value_StringValue); ok {
				match.Text = val.StringValue
			}
		}

		if category, ok := payload["category"]; ok {
			if val, ok := category.GetKind().(*qdrant.Value_StringValue); ok {
				match.Category = val.StringValue
			}
		}

		results = append(results, match)
	}

	return results, nil
}
