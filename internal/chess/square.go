package chess

import "fmt"

// Square identifies a board cell. Row 0 is rank 8, column 0 is file a.
type Square struct {
	Row int
	Col int
}

// Sq builds a square from row and column.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid returns true if the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square shifted by the given row and column deltas.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// File returns the file letter 'a'-'h'.
func (s Square) File() byte {
	return byte('a' + s.Col)
}

// Rank returns the rank digit '1'-'8'.
func (s Square) Rank() byte {
	return byte('8' - s.Row)
}

// String returns algebraic coordinates such as "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(text string) (Square, bool) {
	if len(text) != 2 {
		return Square{}, false
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, false
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, true
}

// MustSquare parses a square and panics on malformed input.
// Intended for fixed coordinates in tests and tables.
func MustSquare(text string) Square {
	sq, ok := ParseSquare(text)
	if !ok {
		panic("chess: invalid square " + text)
	}
	return sq
}
