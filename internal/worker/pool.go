package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/metrics"
)

// Job represents a task to be executed by a worker
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Pool runs queued jobs on a fixed set of goroutines
type Pool struct {
	workers    int
	jobQueue   chan Job
	jobTimeout time.Duration // per-job deadline
	wg         sync.WaitGroup

	// mu guards closed so no send races the channel close
	mu     sync.RWMutex
	closed bool
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		jobTimeout: DefaultJobTimeout,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker is the worker loop; it exits when Stop closes the queue
func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobQueue {
		p.run(job)
	}
}

// run executes one job under its own request ID and timeout
func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(logger.WithRequestID(context.Background(), logger.GenerateRequestID()), p.jobTimeout)
	defer cancel()

	log := logger.FromContext(ctx).With("job", job.Name())
	start := time.Now()
	err := job.Process(ctx)

	// Log error but don't crash worker
	metrics.RecordJob(job.Name(), err)
	if err != nil {
		log.Error(LogMsgWorkerJobFailed, "error", err)
		return
	}
	log.Debug(LogMsgWorkerJobDone, "duration", time.Since(start))
}

// Enqueue blocks until the job is queued. It returns false once the pool is stopped.
func (p *Pool) Enqueue(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		slog.Warn(LogMsgPoolStopped, "job", job.Name())
		return false
	}
	p.jobQueue <- job
	return true
}

// TryEnqueue queues the job unless the queue is full or the pool is stopped
func (p *Pool) TryEnqueue(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop refuses new jobs, lets the workers drain the queue and waits for them
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobQueue)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
