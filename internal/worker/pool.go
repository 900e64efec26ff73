// Package worker replays move scripts in parallel, one position per job.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/cheese-go/internal/output"
	"github.com/lgbarn/cheese-go/internal/parser"
)

// WorkItem is a script to replay.
type WorkItem struct {
	Script   *parser.Script
	File     string // source file, for error locations
	StartFEN string // overrides the script's FEN tag when set
	Index    int    // position in the batch
}

// ProcessResult is the outcome of one replay.
type ProcessResult struct {
	Game    *output.Game // the moves played before any error
	Index   int
	File    string
	Skipped int // moves rejected when not stopping on errors
	Error   error
}

// ProcessFunc replays a single item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over queued items on a fixed set of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	jobs        chan WorkItem
	results     chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	halted      atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of replay goroutines. Values below 1 are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the depth of the job and result queues. Values below
// 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with one worker and a queue depth of 10 unless
// the options say otherwise.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.jobs {
		if p.halted.Load() {
			continue // drain
		}
		p.results <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the queue is full.
func (p *Pool) Submit(item WorkItem) {
	p.jobs <- item
}

// Stop makes the workers discard every item they have not started yet.
// Replays already running finish and report their results.
func (p *Pool) Stop() {
	p.halted.Store(true)
}

// Close ends submission and waits for the workers. The results channel is
// closed once they are done.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished replays.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}
