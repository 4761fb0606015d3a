package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// Published node counts for well-known test positions.
var perftPositions = []struct {
	name   string
	fen    string
	counts []uint64 // Indexed by depth-1
}{
	{name: "initial", fen: InitialFEN, counts: []uint64{20, 400, 8902, 197281}},
	{name: "kiwipete", fen: kiwipeteFEN, counts: []uint64{48, 2039, 97862}},
	{name: "position 3", fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", counts: []uint64{14, 191, 2812, 43238}},
	{name: "position 4", fen: "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", counts: []uint64{6, 264, 9467}},
	{name: "position 5", fen: "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", counts: []uint64{44, 1486, 62379}},
	{name: "position 6", fen: "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", counts: []uint64{46, 2079, 89890}},
}

func TestPerft(t *testing.T) {
	for _, tt := range perftPositions {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustPositionFromFEN(tt.fen)
			for i, want := range tt.counts {
				depth := i + 1
				if testing.Short() && want > 10000 {
					t.Skipf("skipping depth %d in short mode", depth)
				}
				if got := Perft(pos, depth); got != want {
					t.Errorf("Perft(depth %d) = %d; want %d", depth, got, want)
				}
			}
		})
	}
}

func TestPerft_DepthZero(t *testing.T) {
	testutil.AssertEqual(t, Perft(chess.NewInitialPosition(), 0), uint64(1))
	testutil.AssertEqual(t, len(Divide(chess.NewInitialPosition(), 0)), 0)
}

func TestPerft_LeavesPositionUntouched(t *testing.T) {
	pos := MustPositionFromFEN(kiwipeteFEN)
	before := pos.Clone()
	Perft(pos, 2)
	testutil.AssertEqual(t, pos, before)
}

func TestDivide(t *testing.T) {
	pos := chess.NewInitialPosition()
	entries := Divide(pos, 2)

	testutil.AssertEqual(t, len(entries), 20)

	var total uint64
	for i, e := range entries {
		total += e.Nodes
		testutil.AssertEqual(t, e.Nodes, uint64(20), "nodes below %s", UCI(e.Move))
		if i > 0 && UCI(entries[i-1].Move) >= UCI(e.Move) {
			t.Errorf("entries not sorted: %s before %s", UCI(entries[i-1].Move), UCI(e.Move))
		}
	}
	testutil.AssertEqual(t, total, uint64(400))
	testutil.AssertEqual(t, UCI(entries[0].Move), "a2a3")
}

func TestDivide_Promotions(t *testing.T) {
	pos := MustPositionFromFEN("n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1")
	entries := Divide(pos, 1)

	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	testutil.AssertEqual(t, total, uint64(24))
	testutil.AssertEqual(t, len(entries), 24)
}
