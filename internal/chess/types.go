// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents the kind of a chess piece.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts a piece letter in either case to a piece type.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// IsPromotionChoice reports whether a pawn may promote to p.
func (p PieceType) IsPromotionChoice() bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// PromotionChoices lists the promotion pieces in picker order.
var PromotionChoices = []PieceType{Queen, Rook, Bishop, Knight}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(t PieceType) Piece {
	return Piece{Type: t, Colour: White}
}

// B creates a black piece.
func B(t PieceType) Piece {
	return Piece{Type: t, Colour: Black}
}

// IsEmpty returns true if no piece is present.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// Is returns true if p is a piece of the given colour and type.
func (p Piece) Is(c Colour, t PieceType) bool {
	return p.Type == t && p.Colour == c
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Type.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// Symbol returns the Unicode chess glyph for the piece.
func (p Piece) Symbol() string {
	if p.IsEmpty() {
		return ""
	}
	white := []string{"", "♙", "♘", "♗", "♖", "♕", "♔"}
	black := []string{"", "♟", "♞", "♝", "♜", "♛", "♚"}
	if p.Colour == White {
		return white[p.Type]
	}
	return black[p.Type]
}

// String returns a readable description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// Constants for board dimensions.
const (
	BoardSize = 8

	// Row 0 is rank 8 in the standard orientation.
	WhiteHomeRow = 7
	BlackHomeRow = 0
)

// ForwardDir returns the row delta a pawn of the colour advances by.
func ForwardDir(c Colour) int {
	if c == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row pawns of the colour start on.
func PawnStartRow(c Colour) int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRow returns the farthest row for pawns of the colour.
func PromotionRow(c Colour) int {
	if c == White {
		return 0
	}
	return 7
}

// BackRow returns the row the colour's king and rooks start on.
func BackRow(c Colour) int {
	if c == White {
		return WhiteHomeRow
	}
	return BlackHomeRow
}
