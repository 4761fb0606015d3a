package worker

import (
	"context"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// PerftFunc counts the nodes below the item's move.
func PerftFunc(item WorkItem) ProcessResult {
	return ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: engine.PerftMove(item.Position, item.Move, item.Depth),
	}
}

// Divide computes per-root-move node counts on a pool of workers.
// Each root move gets its own clone of pos. workers below 1 means one
// per CPU. The result is sorted like engine.Divide. If ctx is cancelled
// before every root move is counted, Divide returns ctx's error.
func Divide(ctx context.Context, pos *chess.Position, depth, workers int) ([]engine.DivideEntry, error) {
	if depth <= 0 {
		return nil, nil
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	roots := engine.RootMoves(pos)
	pool := NewPool(PerftFunc,
		WithContext(ctx),
		WithWorkers(workers),
		WithBufferSize(len(roots)+1),
	)
	pool.Start()

	go func() {
		defer pool.Close()
		for i, m := range roots {
			if !pool.Submit(WorkItem{Position: pos.Clone(), Move: m, Depth: depth, Index: i}) {
				return
			}
		}
	}()

	entries := make([]engine.DivideEntry, len(roots))
	var firstErr error
	done := 0
	for result := range pool.Results() {
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
		entries[result.Index] = engine.DivideEntry{Move: result.Move, Nodes: result.Nodes}
		done++
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if done < len(roots) {
		return nil, ctx.Err()
	}
	engine.SortDivide(entries)
	return entries, nil
}

// Perft counts leaf nodes at depth using Divide.
func Perft(ctx context.Context, pos *chess.Position, depth, workers int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	entries, err := Divide(ctx, pos, depth, workers)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total, nil
}
