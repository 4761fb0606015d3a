package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ParseBoard builds a position from a diagram of eight rows, rank 8 first.
// Pieces use FEN letters and '.' marks an empty square; spaces are ignored.
// The position has White to move and no castling rights or en passant target.
func ParseBoard(rows ...string) (*chess.Position, error) {
	if len(rows) != chess.BoardSize {
		return nil, fmt.Errorf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}

	pos := &chess.Position{SideToMove: chess.White, FullmoveNumber: 1}
	for row, text := range rows {
		text = strings.ReplaceAll(text, " ", "")
		if len(text) != chess.BoardSize {
			return nil, fmt.Errorf("row %d has %d squares, want %d", row, len(text), chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := text[col]
			if c == '.' {
				continue
			}
			pt := chess.PieceTypeFromLetter(c)
			if pt == chess.NoPieceType {
				return nil, fmt.Errorf("row %d: unknown piece %q", row, c)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			pos.Board.Set(chess.Sq(row, col), chess.Piece{Type: pt, Colour: colour})
		}
	}
	pos.RefreshKings()
	return pos, nil
}

// MustParseBoard is ParseBoard that calls t.Fatal on a malformed diagram.
func MustParseBoard(t *testing.T, rows ...string) *chess.Position {
	t.Helper()
	pos, err := ParseBoard(rows...)
	if err != nil {
		t.Fatalf("failed to parse board: %v", err)
	}
	return pos
}

// Squares parses a list of algebraic coordinates.
// It calls t.Fatal on malformed input.
func Squares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		sq, ok := chess.ParseSquare(name)
		if !ok {
			t.Fatalf("invalid square %q", name)
		}
		squares = append(squares, sq)
	}
	return squares
}
