package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"nexocarreira/career-coach/internal/config"
	"nexocarreira/career-coach/internal/handlers"
	"nexocarreira/career-coach/internal/middleware"
	"nexocarreira/career-coach/internal/repositories"
	"nexocarreira/career-coach/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Seed the default question bank on first boot
	if err := questionRepo.SeedDefaults(); err != nil {
		log.Fatalf("❌ Failed to seed questions: %v", err)
	}

	// Initialize storage
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.EmbedModel,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize question index
	questionIndex, err := services.NewQuestionIndexService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := questionIndex.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	// Initialize analysis pipeline
	analyzerService := services.NewAnalyzerService(geminiService)
	feedbackService := services.NewFeedbackService(interviewRepo, feedbackRepo, analyzerService)
	questionSelector := services.NewQuestionSelector(questionRepo, geminiService, questionIndex)

	questionnaireService := services.NewQuestionnaireService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.BaseURL,
		cfg.Gemini.Timeout,
	)
	log.Println("✅ Analysis pipeline initialized")

	// Initialize auth
	signToken := middleware.NewTokenSigner([]byte(cfg.Auth.JWTSecret))
	authService := services.NewAuthService(userRepo, signToken, cfg.Auth.TokenTTL)

	// Initialize worker
	worker := services.NewWorker(
		interviewRepo,
		feedbackService,
		cfg.Worker.Concurrency,
		cfg.Worker.PollInterval,
	)

	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userRepo)
	questionHandler := handlers.NewQuestionHandler(questionRepo)
	interviewHandler := handlers.NewInterviewHandler(interviewRepo, questionSelector, feedbackService, worker)
	uploadHandler := handlers.NewUploadHandler(storageService, pdfParser, cfg.Storage.MaxFileSize)
	assessmentHandler := handlers.NewAssessmentHandler(questionnaireService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Career Coach API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Public endpoints
	api.Post("/auth/register", authHandler.HandleRegister)
	api.Post("/auth/login", authHandler.HandleLogin)
	api.Post("/assessment", assessmentHandler.HandleAssessment)

	// Authenticated endpoints
	protected := api.Use(middleware.Protected([]byte(cfg.Auth.JWTSecret)))
	protected.Get("/auth/me", authHandler.HandleMe)
	protected.Get("/questions", questionHandler.HandleListQuestions)
	protected.Post("/uploads/job-description", uploadHandler.HandleUploadJobDescription)
	protected.Post("/interviews", interviewHandler.HandleCreateInterview)
	protected.Get("/interviews", interviewHandler.HandleListInterviews)
	protected.Get("/interviews/:id", interviewHandler.HandleGetInterview)
	protected.Post("/interviews/:id/answers", interviewHandler.HandleSubmitAnswer)
	protected.Post("/interviews/:id/complete", interviewHandler.HandleCompleteInterview)
	protected.Get("/stats", interviewHandler.HandleGetStats)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Career Coach API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/auth/register",
				"POST /api/v1/auth/login",
				"POST /api/v1/interviews",
				"POST /api/v1/assessment",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
