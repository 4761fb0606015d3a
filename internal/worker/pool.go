// Package worker expands root moves of a perft tree on a pool of goroutines.
package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// WorkItem is one root move to expand. Position is owned by the worker
// that receives it.
type WorkItem struct {
	Position *chess.Position
	Move     chess.Move
	Depth    int
	Index    int
}

// ProcessResult is the node count below one root move.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Error error
}

// ProcessFunc expands a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans root moves out to a fixed set of workers. Cancelling the
// pool's context makes workers skip the items still queued.
type Pool struct {
	workers     int
	bufferSize  int
	items       chan WorkItem
	results     chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	nodes   atomic.Uint64
	skipped atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the queue and result buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithContext ties the pool to ctx. Once ctx is done, queued items are
// dropped without being expanded.
func WithContext(ctx context.Context) PoolOption {
	return func(p *Pool) {
		if ctx != nil {
			p.ctx = ctx
		}
	}
}

// NewPool creates a pool around processFunc. Defaults: one worker and a
// buffer of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers:     1,
		bufferSize:  10,
		processFunc: processFunc,
		ctx:         context.Background(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.ctx, p.cancel = context.WithCancel(p.ctx)
	p.items = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.items {
		if p.ctx.Err() != nil {
			p.skipped.Add(1)
			continue
		}
		result := p.process(item)
		p.nodes.Add(result.Nodes)
		p.results <- result
	}
}

// process runs processFunc, turning a panic into a result error so one
// bad root move does not take the whole count down.
func (p *Pool) process(item WorkItem) (result ProcessResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ProcessResult{
				Move:  item.Move,
				Index: item.Index,
				Error: fmt.Errorf("expanding root move %d: %v", item.Index, r),
			}
		}
	}()
	return p.processFunc(item)
}

// Submit queues an item, blocking while the queue is full. It returns
// false without queueing once the pool is stopped.
func (p *Pool) Submit(item WorkItem) bool {
	select {
	case <-p.ctx.Done():
		p.skipped.Add(1)
		return false
	case p.items <- item:
		return true
	}
}

// Stop cancels the pool. Items already queued are drained but not expanded.
func (p *Pool) Stop() {
	p.cancel()
}

// IsStopped reports whether the pool or its parent context was cancelled.
func (p *Pool) IsStopped() bool {
	return p.ctx.Err() != nil
}

// Err returns the cancellation cause, or nil while the pool is live.
func (p *Pool) Err() error {
	return p.ctx.Err()
}

// Close stops accepting items, waits for the workers and closes the
// result channel. It releases the pool context.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
	p.cancel()
}

// Results returns the channel of expanded items.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Nodes returns the nodes counted so far by finished items.
func (p *Pool) Nodes() uint64 {
	return p.nodes.Load()
}

// Skipped returns the number of items dropped after cancellation.
func (p *Pool) Skipped() int64 {
	return p.skipped.Load()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}
