package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestGameStatus(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		wantKind   StatusKind
		wantString string
		wantResult string
	}{
		{
			name:       "initial position",
			fen:        InitialFEN,
			wantKind:   Ongoing,
			wantString: "White's turn",
			wantResult: "*",
		},
		{
			name:       "in check with escape",
			fen:        "4k3/8/8/8/8/8/8/4K2r w - - 0 1",
			wantKind:   Ongoing,
			wantString: "White's turn (in check)",
			wantResult: "*",
		},
		{
			name:       "fool's mate",
			fen:        "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			wantKind:   Checkmate,
			wantString: "Checkmate! Black wins",
			wantResult: "0-1",
		},
		{
			name:       "scholar's mate",
			fen:        "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4",
			wantKind:   Checkmate,
			wantString: "Checkmate! White wins",
			wantResult: "1-0",
		},
		{
			name:       "stalemate",
			fen:        "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			wantKind:   Stalemate,
			wantString: "Stalemate! Game is a draw",
			wantResult: "1/2-1/2",
		},
		{
			name:       "fifty move rule",
			fen:        "4k3/8/8/8/8/8/R7/4K3 b - - 100 80",
			wantKind:   FiftyMoveDraw,
			wantString: "Draw by 50-move rule",
			wantResult: "1/2-1/2",
		},
		{
			name:       "checkmate beats the fifty move rule",
			fen:        "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 100 3",
			wantKind:   Checkmate,
			wantString: "Checkmate! Black wins",
			wantResult: "0-1",
		},
		{
			name:       "stalemate beats the fifty move rule",
			fen:        "7k/5Q2/6K1/8/8/8/8/8 b - - 120 90",
			wantKind:   Stalemate,
			wantString: "Stalemate! Game is a draw",
			wantResult: "1/2-1/2",
		},
		{
			name:       "clock one short",
			fen:        "4k3/8/8/8/8/8/R7/4K3 b - - 99 80",
			wantKind:   Ongoing,
			wantString: "Black's turn",
			wantResult: "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustPositionFromFEN(tt.fen)
			status := GameStatus(pos)
			testutil.AssertEqual(t, status.Kind, tt.wantKind)
			testutil.AssertEqual(t, status.String(), tt.wantString)
			testutil.AssertEqual(t, status.Result(), tt.wantResult)
			testutil.AssertEqual(t, status.IsOver(), tt.wantKind != Ongoing)
			testutil.AssertEqual(t, IsCheckmate(pos), tt.wantKind == Checkmate)
			testutil.AssertEqual(t, IsStalemate(pos), tt.wantKind == Stalemate)
		})
	}
}

func TestGameStatus_AfterMoves(t *testing.T) {
	t.Run("fool's mate played out", func(t *testing.T) {
		pos := chess.NewInitialPosition()
		play(t, pos, "f3", "e5", "g4", "Qh4")
		status := GameStatus(pos)
		testutil.AssertEqual(t, status, Status{Kind: Checkmate, ToMove: chess.White, Winner: chess.Black, InCheck: true})
	})

	t.Run("quiet move reaches the fifty move limit", func(t *testing.T) {
		pos := MustPositionFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 99 60")
		testutil.AssertEqual(t, GameStatus(pos).Kind, Ongoing)
		play(t, pos, "Ra2")
		testutil.AssertEqual(t, pos.HalfmoveClock, 100)
		testutil.AssertEqual(t, GameStatus(pos).Kind, FiftyMoveDraw)
	})

	t.Run("pawn move resets the clock", func(t *testing.T) {
		pos := MustPositionFromFEN("4k3/8/8/8/8/8/P7/4K3 w - - 99 60")
		play(t, pos, "a3")
		testutil.AssertEqual(t, pos.HalfmoveClock, 0)
		testutil.AssertEqual(t, GameStatus(pos).Kind, Ongoing)
	})
}

func TestStatusKindString(t *testing.T) {
	testutil.AssertEqual(t, Ongoing.String(), "Ongoing")
	testutil.AssertEqual(t, FiftyMoveDraw.String(), "FiftyMoveDraw")
	testutil.AssertEqual(t, StatusKind(42).String(), "Unknown")
}
