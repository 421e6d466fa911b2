// Package worker provides a background job processing system using goroutines.
//
// Go Pattern: Goroutines and channels are Go's concurrency primitives.
// A goroutine is like a lightweight thread (thousands are fine), and
// channels are typed pipes for communication between goroutines.
//
// This worker pool pattern is very common in Go:
// 1. Create a buffered channel as a job queue
// 2. Spawn N worker goroutines that read from the channel
// 3. Send jobs to the channel from your HTTP handlers
// 4. Workers process jobs concurrently
//
// The pool's one job type today is AI keyword analysis: extracting and
// enriching vocabulary for a book without blocking the upload request.
package worker

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cosmos-reader/cosmos-reader-api/internal/database"
	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/ai"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/keywords"
)

// JobType identifies what kind of work a job represents.
type JobType string

const (
	JobKeywordAnalysis JobType = "keyword_analysis"
)

// Job represents a unit of work to be processed by a worker.
type Job struct {
	BookID    string
	Type      JobType
	CreatedAt time.Time
}

// Pool manages a pool of worker goroutines.
type Pool struct {
	// Go Pattern: Channels are the backbone of Go concurrency.
	// This buffered channel acts as our job queue.
	// Buffered means it can hold `queueSize` jobs before blocking.
	jobs    chan Job
	workers int
	db      *database.DB
	aiSvc   *ai.Service

	// Go Pattern: sync.WaitGroup tracks running goroutines.
	// We call wg.Add(1) when starting a worker, wg.Done() when it finishes,
	// and wg.Wait() blocks until all workers are done (used for graceful shutdown).
	wg sync.WaitGroup

	// Go Pattern: context.Context with cancel for graceful shutdown.
	// When we call cancel(), all workers' contexts are cancelled.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewPool creates a new worker pool.
func NewPool(workers, queueSize int, db *database.DB, aiSvc *ai.Service) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		jobs:    make(chan Job, queueSize), // Buffered channel
		workers: workers,
		db:      db,
		aiSvc:   aiSvc,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the worker goroutines.
// Go Pattern: The `go` keyword starts a new goroutine (lightweight thread).
// Each worker runs in its own goroutine, reading from the shared jobs channel.
func (p *Pool) Start() {
	log.Printf("🚀 Starting %d background workers", p.workers)
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i) // Launch worker goroutine
	}
}

// Stop gracefully shuts down all workers.
// Go Pattern: Close the channel + cancel the context + wait for completion.
func (p *Pool) Stop() {
	log.Println("⏹️  Stopping workers...")
	p.cancel()    // Signal all workers to stop
	close(p.jobs) // Close the channel (workers will drain remaining jobs)
	p.wg.Wait()   // Wait for all workers to finish
	log.Println("✅ All workers stopped")
}

// Submit adds a job to the queue.
// Returns an error if the queue is full (non-blocking).
func (p *Pool) Submit(job Job) error {
	// Go Pattern: `select` with `default` makes channel operations non-blocking.
	// Without default, sending to a full channel would block the HTTP handler.
	select {
	case p.jobs <- job:
		log.Printf("📥 Job queued: book %s (type: %s)", job.BookID, job.Type)
		return nil
	default:
		return fmt.Errorf("job queue is full; try again later")
	}
}

// QueueSize returns the current number of jobs in the queue.
func (p *Pool) QueueSize() int {
	return len(p.jobs)
}

// WorkerCount returns the number of workers.
func (p *Pool) WorkerCount() int {
	return p.workers
}

// worker is the main loop for each worker goroutine.
// It reads jobs from the channel and processes them.
func (p *Pool) worker(id int) {
	defer p.wg.Done() // Signal completion when this worker exits

	log.Printf("👷 Worker %d started", id)

	// Go Pattern: `range` over a channel reads values until the channel is closed.
	// This is the idiomatic way to consume from a channel.
	for job := range p.jobs {
		select {
		case <-p.ctx.Done():
			log.Printf("👷 Worker %d shutting down", id)
			return
		default:
		}

		log.Printf("👷 Worker %d processing job: book %s (type: %s)", id, job.BookID, job.Type)

		var err error
		switch job.Type {
		case JobKeywordAnalysis:
			err = p.processKeywordAnalysis(job)
		default:
			log.Printf("❌ Worker %d: unknown job type: %s", id, job.Type)
		}

		if err != nil {
			log.Printf("❌ Worker %d: job for book %s failed: %v", id, job.BookID, err)
		} else {
			log.Printf("✅ Worker %d: job for book %s completed", id, job.BookID)
		}
	}

	log.Printf("👷 Worker %d stopped", id)
}

// processKeywordAnalysis extracts and stores vocabulary for a book.
// The AI gateway does the heavy lifting; when it is unconfigured or fails,
// local frequency extraction supplies unenriched terms instead so the book
// never ends up with nothing.
func (p *Pool) processKeywordAnalysis(job Job) error {
	ctx := p.ctx

	book, err := p.db.GetBook(ctx, job.BookID)
	if err != nil {
		return fmt.Errorf("failed to get book: %w", err)
	}

	if err := p.db.UpsertKeywordAnalysis(ctx, book.ID, models.AnalysisProcessing, "", ""); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	rows, modelUsed, aiErr := p.extractWithAI(ctx, book)
	if aiErr != nil {
		log.Printf("⚠️  AI extraction failed for book %s, falling back to frequency: %v", book.ID, aiErr)
		rows = p.extractWithFrequency(book)
		modelUsed = ""
	}

	if err := p.db.ReplaceBookKeywords(ctx, book.ID, rows); err != nil {
		p.db.UpsertKeywordAnalysis(ctx, book.ID, models.AnalysisFailed, err.Error(), modelUsed)
		return fmt.Errorf("failed to store keywords: %w", err)
	}

	errMsg := ""
	if aiErr != nil {
		errMsg = aiErr.Error() // Completed via fallback; keep the AI error for diagnostics
	}
	if err := p.db.UpsertKeywordAnalysis(ctx, book.ID, models.AnalysisCompleted, errMsg, modelUsed); err != nil {
		return fmt.Errorf("failed to finalize status: %w", err)
	}
	return nil
}

func (p *Pool) extractWithAI(ctx context.Context, book *models.Book) ([]models.BookKeyword, string, error) {
	if p.aiSvc == nil || !p.aiSvc.Configured() {
		return nil, "", fmt.Errorf("AI gateway not configured")
	}
	extracted, model, err := p.aiSvc.ExtractKeywords(ctx, book.Title, book.Content)
	if err != nil {
		return nil, "", err
	}
	rows := make([]models.BookKeyword, 0, len(extracted))
	for _, kw := range extracted {
		row := models.BookKeyword{
			BookID:     book.ID,
			Keyword:    kw.Keyword,
			Definition: kw.Definition,
			Category:   kw.Category,
			Source:     "ai",
		}
		if kw.Example != "" {
			example := kw.Example
			row.Example = &example
		}
		rows = append(rows, row)
	}
	return rows, model, nil
}

func (p *Pool) extractWithFrequency(book *models.Book) []models.BookKeyword {
	terms := keywords.FrequencyExtractor{}.Extract(book.Content)
	rows := make([]models.BookKeyword, 0, len(terms))
	for _, term := range terms {
		rows = append(rows, models.BookKeyword{
			BookID:  book.ID,
			Keyword: term,
			Source:  "frequency",
		})
	}
	return rows
}
