package main

import (
	"context"
	"log"

	"nexocarreira/career-coach/internal/config"
	"nexocarreira/career-coach/internal/repositories"
	"nexocarreira/career-coach/internal/services"
)

// Seeds the question bank into Postgres (if empty) and (re)indexes every
// question in Qdrant so interview setup can retrieve job-relevant questions.
func main() {
	log.Println("🚀 Starting question bank indexing...")

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	questionRepo := repositories.NewQuestionRepository(db)
	if err := questionRepo.SeedDefaults(); err != nil {
		log.Fatalf("❌ Failed to seed questions: %v", err)
	}

	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.EmbedModel,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	questionIndex, err := services.NewQuestionIndexService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := questionIndex.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	questions, err := questionRepo.List(100)
	if err != nil {
		log.Fatalf("❌ Failed to load questions: %v", err)
	}

	ctx := context.Background()
	successCount := 0
	failCount := 0

	for _, question := range questions {
		log.Printf("📄 Indexing question: %s", question.Question)

		embedding, err := geminiService.GenerateEmbedding(ctx, question.Question)
		if err != nil {
			log.Printf("⚠️  Failed to embed question %s: %v", question.ID, err)
			failCount++
			continue
		}

		if err := questionIndex.UpsertQuestion(ctx, question.ID.String(), question.Category, question.Question, embedding); err != nil {
			log.Printf("⚠️  Failed to index question %s: %v", question.ID, err)
			failCount++
			continue
		}

		successCount++
	}

	log.Printf("✅ Indexing finished: %d indexed, %d failed\n", successCount, failCount)
}
