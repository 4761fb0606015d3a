package chess

// Move represents a single move from one square to another together
// with the flags describing its special effects.
type Move struct {
	From Square
	To   Square

	// Pawn advanced two squares; the skipped square becomes the en passant target.
	DoublePawnPush bool

	// Pawn captured en passant; the victim stands on CaptureSquare().
	EnPassant bool

	// King castled; the rook travels from RookFrom to RookTo. The rook
	// squares are zero (a8) and meaningless unless Castling is set.
	Castling bool
	RookFrom Square
	RookTo   Square

	// The piece promoted to (NoPieceType until chosen).
	Promotion PieceType
}

// String renders the move in coordinate form, e.g. "e2e4" or "e7e8q".
// Castling adds the rook's path: "e1g1 (rook h1f1)".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	if m.Castling {
		s += " (rook " + m.RookFrom.String() + m.RookTo.String() + ")"
	}
	return s
}

// CaptureSquare returns the square of the piece a move captures:
// beside the origin for en passant, otherwise the destination.
func (m Move) CaptureSquare() Square {
	if m.EnPassant {
		return Square{Row: m.From.Row, Col: m.To.Col}
	}
	return m.To
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Castling
}

// IsKingSideCastle returns true for O-O.
func (m Move) IsKingSideCastle() bool {
	return m.Castling && m.To.Col > m.From.Col
}

// IsCapture returns true if the move takes a piece in the given position.
func (m Move) IsCapture(pos *Position) bool {
	return m.EnPassant || !pos.Board.At(m.To).IsEmpty()
}

// SameSquares returns true if both moves connect the same squares.
func (m Move) SameSquares(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// MoveRecord holds everything needed to reverse a move exactly.
type MoveRecord struct {
	Move Move

	// The piece that moved (a pawn for promotions).
	Piece Piece

	// The piece captured (NoPiece if none) and where it stood.
	Captured   Piece
	CapturedAt Square

	// State as it was before the move.
	Castling       CastlingRights
	EnPassant      bool
	EPSquare       Square
	HalfmoveClock  int
	FullmoveNumber int

	// The piece promoted to, once chosen.
	Promotion PieceType
}

// IsCapture returns true if this move captured a piece.
func (r *MoveRecord) IsCapture() bool {
	return !r.Captured.IsEmpty()
}

// IsPromotion returns true if a pawn reached the last rank.
func (r *MoveRecord) IsPromotion() bool {
	return r.Piece.Type == Pawn && r.Move.To.Row == PromotionRow(r.Piece.Colour)
}

// IsComplete returns false while the promotion piece is still unknown.
func (r *MoveRecord) IsComplete() bool {
	return !r.IsPromotion() || r.Promotion != NoPieceType
}
