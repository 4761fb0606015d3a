package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// appendPawnMoves generates pawn pushes, double pushes, captures and
// en passant captures, in that order per capture column.
func appendPawnMoves(moves []chess.Move, pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Move {
	dir := chess.ForwardDir(colour)

	// Forward move
	one := from.Offset(dir, 0)
	if one.Valid() && pos.Board.At(one).IsEmpty() {
		moves = append(moves, chess.Move{From: from, To: one})

		// Double push from starting rank
		two := from.Offset(2*dir, 0)
		if from.Row == chess.PawnStartRow(colour) && two.Valid() && pos.Board.At(two).IsEmpty() {
			moves = append(moves, chess.Move{From: from, To: two, DoublePawnPush: true})
		}
	}

	// Captures
	for _, dc := range []int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.Valid() {
			continue
		}
		target := pos.Board.At(to)
		if !target.IsEmpty() && target.Colour != colour {
			moves = append(moves, chess.Move{From: from, To: to})
		}
		if isEnPassantCapture(pos, from, to, colour) {
			moves = append(moves, chess.Move{From: from, To: to, EnPassant: true})
		}
	}
	return moves
}

// isEnPassantCapture reports whether a pawn on from may capture en passant
// onto to: to must be the current en passant target and the pawn beside
// the mover on its own rank must be an enemy pawn.
func isEnPassantCapture(pos *chess.Position, from, to chess.Square, colour chess.Colour) bool {
	if !pos.EnPassant || to != pos.EPSquare {
		return false
	}
	victim := pos.Board.At(chess.Sq(from.Row, to.Col))
	return victim.Is(colour.Opposite(), chess.Pawn)
}

// reachesLastRank reports whether a pawn move ends on the promotion row.
func reachesLastRank(piece chess.Piece, to chess.Square) bool {
	return piece.Type == chess.Pawn && to.Row == chess.PromotionRow(piece.Colour)
}
