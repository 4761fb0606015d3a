package chess

// Board is the 8x8 grid of squares, indexed [row][col].
type Board [BoardSize][BoardSize]Piece

// At returns the piece on a square. Off-board squares read as empty.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b[sq.Row][sq.Col]
}

// Set places a piece on a square. Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b[sq.Row][sq.Col] = p
	}
}

// CastlingRights records which castling options remain for each side.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// AllCastlingRights is the set held at the start of a game.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Has reports whether the colour may still castle on the given side.
func (cr CastlingRights) Has(c Colour, kingSide bool) bool {
	switch {
	case c == White && kingSide:
		return cr.WhiteKingSide
	case c == White:
		return cr.WhiteQueenSide
	case kingSide:
		return cr.BlackKingSide
	default:
		return cr.BlackQueenSide
	}
}

// Clear removes one castling option.
func (cr *CastlingRights) Clear(c Colour, kingSide bool) {
	switch {
	case c == White && kingSide:
		cr.WhiteKingSide = false
	case c == White:
		cr.WhiteQueenSide = false
	case kingSide:
		cr.BlackKingSide = false
	default:
		cr.BlackQueenSide = false
	}
}

// ClearAll removes both castling options for a colour.
func (cr *CastlingRights) ClearAll(c Colour) {
	cr.Clear(c, true)
	cr.Clear(c, false)
}

// PendingPromotion marks a pawn that reached the last rank and awaits
// the choice of promotion piece.
type PendingPromotion struct {
	Square Square
	Colour Colour
}

// Position represents a chess position with all state needed for play.
type Position struct {
	Board Board

	// Who has the next move.
	SideToMove Colour

	Castling CastlingRights

	// Is en passant capture possible? If so EPSquare is the square
	// the double-stepping pawn skipped over.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number.
	FullmoveNumber int

	// Where the two kings are, indexed by Colour.
	Kings [2]Square

	// Non-nil while a promotion choice is outstanding.
	Pending *PendingPromotion
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() *Position {
	p := &Position{}
	p.SetupInitialPosition()
	return p
}

// SetupInitialPosition sets up the standard chess starting position.
func (p *Position) SetupInitialPosition() {
	p.Board = Board{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		p.Board[BlackHomeRow][col] = B(backRank[col])
		p.Board[BlackHomeRow+1][col] = B(Pawn)
		p.Board[WhiteHomeRow-1][col] = W(Pawn)
		p.Board[WhiteHomeRow][col] = W(backRank[col])
	}

	p.Kings[White] = Sq(WhiteHomeRow, 4)
	p.Kings[Black] = Sq(BlackHomeRow, 4)

	p.SideToMove = White
	p.Castling = AllCastlingRights
	p.EnPassant = false
	p.EPSquare = Square{}
	p.HalfmoveClock = 0
	p.FullmoveNumber = 1
	p.Pending = nil
}

// Clone creates an independent copy of the position.
func (p *Position) Clone() *Position {
	c := *p
	if p.Pending != nil {
		pending := *p.Pending
		c.Pending = &pending
	}
	return &c
}

// KingSquare returns the cached square of the colour's king.
func (p *Position) KingSquare(c Colour) Square {
	return p.Kings[c]
}

// RefreshKings recomputes the king cache from the board.
// Only needed after the board has been filled in directly.
func (p *Position) RefreshKings() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := p.Board[row][col]
			if piece.Type == King {
				p.Kings[piece.Colour] = Sq(row, col)
			}
		}
	}
}
