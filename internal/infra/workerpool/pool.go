// Package workerpool runs background tasks on a fixed number of goroutines
// fed by a bounded FIFO queue. Submit never blocks: a full queue rejects.
package workerpool

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"gin-voucher-shop/internal/pkg/errs"
)

var (
	ErrPoolSaturated = errs.New("workerpool: queue is full")
	ErrPoolClosed    = errs.New("workerpool: pool is stopped")
)

type Task func(ctx context.Context)

type Recorder interface {
	TaskRejected()
	TaskPanicked()
	QueueDepth(n int)
}

type Pool struct {
	name    string
	workers int
	tasks   chan Task

	mu      sync.RWMutex
	started bool
	closed  bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger   *slog.Logger
	recorder Recorder
}

func New(name string, workers, queueSize int, logger *slog.Logger, recorder Recorder) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		name:     name,
		workers:  workers,
		tasks:    make(chan Task, queueSize),
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger,
		recorder: recorder,
	}
}

func (p *Pool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.closed {
		return
	}
	p.started = true

	for i := range p.workers {
		p.wg.Add(1)
		go p.work(i)
	}
	p.logger.Info("worker pool started",
		slog.String("pool", p.name),
		slog.Int("workers", p.workers),
		slog.Int("queue", cap(p.tasks)))
}

// Submit enqueues task or fails fast with ErrPoolSaturated / ErrPoolClosed.
func (p *Pool) Submit(task Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.recorder.TaskRejected()
		return ErrPoolClosed
	}

	select {
	case p.tasks <- task:
		p.recorder.QueueDepth(len(p.tasks))
		return nil
	default:
		p.recorder.TaskRejected()
		return ErrPoolSaturated
	}
}

// Stop rejects new tasks and waits for queued ones to finish. When ctx
// expires first, the context handed to running tasks is cancelled and
// Stop returns ctx.Err() without waiting further.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.tasks)
	started := p.started
	p.mu.Unlock()

	if !started {
		p.cancel()
		return nil
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		p.logger.Info("worker pool drained", slog.String("pool", p.name))
		return nil
	case <-ctx.Done():
		p.cancel()
		p.logger.Warn("worker pool stop timed out, cancelling running tasks", slog.String("pool", p.name))
		return ctx.Err()
	}
}

func (p *Pool) work(id int) {
	defer p.wg.Done()
	for task := range p.tasks {
		p.recorder.QueueDepth(len(p.tasks))
		p.run(id, task)
	}
}

func (p *Pool) run(id int, task Task) {
	defer func() {
		if r := recover(); r != nil {
			p.recorder.TaskPanicked()
			p.logger.Error("worker task panicked",
				slog.String("pool", p.name),
				slog.Int("worker", id),
				slog.String("panic", fmt.Sprint(r)),
				slog.String("stack", string(debug.Stack())))
		}
	}()
	task(p.ctx)
}
