package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Columns of the pieces involved in castling.
const (
	kingCol          = 4
	kingSideRookCol  = 7
	queenSideRookCol = 0
)

// castleSpec describes one castling option for a colour.
type castleSpec struct {
	kingSide bool
	kingTo   int   // Destination column of the king
	rookFrom int   // Starting column of the rook
	rookTo   int   // Destination column of the rook
	empty    []int // Columns strictly between king and rook
	safe     []int // Columns the king crosses or lands on
}

var castleSpecs = []castleSpec{
	{kingSide: true, kingTo: 6, rookFrom: kingSideRookCol, rookTo: 5, empty: []int{5, 6}, safe: []int{5, 6}},
	{kingSide: false, kingTo: 2, rookFrom: queenSideRookCol, rookTo: 3, empty: []int{3, 2, 1}, safe: []int{3, 2}},
}

// appendCastlingMoves generates the castling moves available to the king on from.
func appendCastlingMoves(moves []chess.Move, pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Move {
	row := chess.BackRow(colour)
	if from != chess.Sq(row, kingCol) {
		return moves
	}
	if !pos.Castling.Has(colour, true) && !pos.Castling.Has(colour, false) {
		return moves
	}

	opponent := colour.Opposite()
	if IsAttacked(pos, from, opponent) {
		return moves
	}

	for _, spec := range castleSpecs {
		if !canCastle(pos, colour, row, opponent, spec) {
			continue
		}
		moves = append(moves, chess.Move{
			From:     from,
			To:       chess.Sq(row, spec.kingTo),
			Castling: true,
			RookFrom: chess.Sq(row, spec.rookFrom),
			RookTo:   chess.Sq(row, spec.rookTo),
		})
	}
	return moves
}

// canCastle checks rights, rook presence, empty path and safe passage for one side.
func canCastle(pos *chess.Position, colour chess.Colour, row int, opponent chess.Colour, spec castleSpec) bool {
	if !pos.Castling.Has(colour, spec.kingSide) {
		return false
	}
	if !pos.Board.At(chess.Sq(row, spec.rookFrom)).Is(colour, chess.Rook) {
		return false
	}
	for _, col := range spec.empty {
		if !pos.Board.At(chess.Sq(row, col)).IsEmpty() {
			return false
		}
	}
	for _, col := range spec.safe {
		if IsAttacked(pos, chess.Sq(row, col), opponent) {
			return false
		}
	}
	return true
}

// updateCastlingRights removes castling rights after a move: a king move
// clears both sides, a rook leaving its corner clears that side, and a
// rook captured on its corner clears the opponent's side.
func updateCastlingRights(pos *chess.Position, piece chess.Piece, from chess.Square, captured chess.Piece, capturedAt chess.Square) {
	switch piece.Type {
	case chess.King:
		pos.Castling.ClearAll(piece.Colour)
	case chess.Rook:
		updateCastlingRightsForRook(pos, piece.Colour, from)
	}
	if captured.Type == chess.Rook {
		updateCastlingRightsForRook(pos, captured.Colour, capturedAt)
	}
}

// updateCastlingRightsForRook removes castling rights when a rook moves or is captured.
func updateCastlingRightsForRook(pos *chess.Position, colour chess.Colour, sq chess.Square) {
	if sq.Row != chess.BackRow(colour) {
		return
	}
	switch sq.Col {
	case kingSideRookCol:
		pos.Castling.Clear(colour, true)
	case queenSideRookCol:
		pos.Castling.Clear(colour, false)
	}
}
