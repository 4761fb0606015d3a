package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestDivideMatchesSequential(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		depth   int
		workers int
	}{
		{name: "initial depth 3", fen: engine.InitialFEN, depth: 3, workers: 4},
		{name: "kiwipete depth 2", fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", depth: 2, workers: 3},
		{name: "promotions depth 2", fen: "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1", depth: 2, workers: 0},
		{name: "single worker", fen: engine.InitialFEN, depth: 2, workers: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := engine.MustPositionFromFEN(tt.fen)
			want := engine.Divide(pos, tt.depth)
			got, err := Divide(context.Background(), pos, tt.depth, tt.workers)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, want)
		})
	}
}

func TestPerft(t *testing.T) {
	ctx := context.Background()
	pos := chess.NewInitialPosition()

	nodes, err := Perft(ctx, pos, 3, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, nodes, uint64(8902))

	nodes, err = Perft(ctx, pos, 0, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, nodes, uint64(1))

	entries, err := Divide(ctx, pos, 0, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(entries), 0)
}

func TestDivideCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries, err := Divide(ctx, chess.NewInitialPosition(), 3, 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Divide() error = %v; want context.Canceled", err)
	}
	testutil.AssertEqual(t, len(entries), 0)

	_, err = Perft(ctx, chess.NewInitialPosition(), 3, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Perft() error = %v; want context.Canceled", err)
	}
}

func TestDivideMatedRoot(t *testing.T) {
	pos := engine.MustPositionFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	entries, err := Divide(context.Background(), pos, 2, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(entries), 0)

	nodes, err := Perft(context.Background(), pos, 2, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, nodes, uint64(0))
}

func TestDivideLeavesPositionUntouched(t *testing.T) {
	pos := chess.NewInitialPosition()
	before := pos.Clone()
	_, err := Divide(context.Background(), pos, 2, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos, before)
}

func TestPerftFunc(t *testing.T) {
	pos := chess.NewInitialPosition()
	m, err := engine.ParseMove(pos, "e2e4")
	testutil.AssertNoError(t, err)

	result := PerftFunc(WorkItem{Position: pos, Move: m, Depth: 2, Index: 7})
	testutil.AssertEqual(t, result.Index, 7)
	testutil.AssertEqual(t, result.Nodes, uint64(20))
	testutil.AssertNil(t, result.Error)
}
