package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"nexocarreira/career-coach/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueInterview(interviewID uuid.UUID)
}

type worker struct {
	interviewRepo   repositories.InterviewRepository
	feedbackService FeedbackService
	jobQueue        chan uuid.UUID
	concurrency     int
	pollInterval    time.Duration
	wg              sync.WaitGroup
	stopChan        chan struct{}
}

func NewWorker(
	interviewRepo repositories.InterviewRepository,
	feedbackService FeedbackService,
	concurrency int,
	pollInterval time.Duration,
) Worker {
	return &worker{
		interviewRepo:   interviewRepo,
		feedbackService: feedbackService,
		jobQueue:        make(chan uuid.UUID, 100),
		concurrency:     concurrency,
		pollInterval:    pollInterval,
		stopChan:        make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting analysis worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	// Re-enqueue interviews left in analyzing state (e.g. after a restart)
	w.wg.Add(1)
	go w.pollPendingAnalysis(ctx)

	log.Println("✅ Analysis worker started successfully")
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping analysis worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Analysis worker stopped")
}

// EnqueueInterview implements Worker.
func (w *worker) EnqueueInterview(interviewID uuid.UUID) {
	select {
	case w.jobQueue <- interviewID:
		log.Printf("📥 Interview %s enqueued for analysis\n", interviewID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue interview %s\n", interviewID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case interviewID := <-w.jobQueue:
			log.Printf("👷 Worker #%d analyzing interview %s\n", workerID, interviewID)
			if err := w.feedbackService.GenerateInterviewFeedback(ctx, interviewID); err != nil {
				log.Printf("❌ Worker #%d failed to analyze interview %s: %v\n", workerID, interviewID, err)
			} else {
				log.Printf("✅ Worker #%d finished interview %s\n", workerID, interviewID)
			}
		}
	}
}

func (w *worker) pollPendingAnalysis(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	log.Println("🔄 Starting pending analysis poller")

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Pending analysis poller stopped")
			return
		case <-ticker.C:
			pending, err := w.interviewRepo.FindPendingAnalysis(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending analysis jobs: %v\n", err)
				continue
			}

			if len(pending) > 0 {
				log.Printf("📋 Found %d interviews waiting for analysis\n", len(pending))
			}

			for _, interview := range pending {
				w.EnqueueInterview(interview.ID)
			}
		}
	}
}
