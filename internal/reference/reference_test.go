package reference

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

var positions = []struct {
	name  string
	fen   string
	depth int
}{
	{"initial", engine.InitialFEN, 3},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2},
	{"position 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3},
	{"position 4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 2},
	{"position 5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 2},
}

func TestPerft_MatchesEngine(t *testing.T) {
	for _, tt := range positions {
		t.Run(tt.name, func(t *testing.T) {
			pos := engine.MustPositionFromFEN(tt.fen)
			testutil.AssertEqual(t, Perft(tt.fen, tt.depth), engine.Perft(pos, tt.depth))
		})
	}
}

func TestPerft_KnownCounts(t *testing.T) {
	testutil.AssertEqual(t, Perft(engine.InitialFEN, 0), uint64(1))
	testutil.AssertEqual(t, Perft(engine.InitialFEN, 1), uint64(20))
	testutil.AssertEqual(t, Perft(engine.InitialFEN, 2), uint64(400))
}

func TestCompare_Agrees(t *testing.T) {
	for _, tt := range positions {
		t.Run(tt.name, func(t *testing.T) {
			pos := engine.MustPositionFromFEN(tt.fen)
			mismatches, err := Compare(tt.fen, tt.depth, engine.Divide(pos, tt.depth))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, len(mismatches), 0)
		})
	}
}

func TestDivide(t *testing.T) {
	div := Divide(engine.InitialFEN, 1)
	testutil.AssertEqual(t, len(div), 20)
	testutil.AssertEqual(t, div["e2e4"], uint64(1))

	div = Divide(engine.InitialFEN, 2)
	testutil.AssertEqual(t, div["g1f3"], uint64(20))

	testutil.AssertEqual(t, len(Divide(engine.InitialFEN, 0)), 0)
}

func TestCompare_ReportsDifferences(t *testing.T) {
	pos := engine.MustPositionFromFEN(engine.InitialFEN)
	entries := engine.Divide(pos, 2)
	entries[0].Nodes++
	entries = entries[:len(entries)-1]

	mismatches, err := Compare(engine.InitialFEN, 2, entries)
	testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrPerftMismatch), "want ErrPerftMismatch, got %v", err)
	testutil.AssertEqual(t, len(mismatches), 2)
	testutil.AssertEqual(t, mismatches[0], Mismatch{Move: "a2a3", Got: 21, Want: 20})
	testutil.AssertEqual(t, mismatches[1].Got, uint64(0))
	testutil.AssertEqual(t, mismatches[0].String(), "a2a3: got 21, want 20")
}
