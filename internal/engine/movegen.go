// Package engine provides chess move generation, validation and board manipulation.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// PseudoMoves returns the pseudo-legal moves of the piece on sq.
// Moves may leave the mover's king in check. Castling is only generated
// when checkKingSafety is true, since it consults the attack oracle,
// which in turn generates with checkKingSafety false.
func PseudoMoves(pos *chess.Position, sq chess.Square, checkKingSafety bool) []chess.Move {
	return appendPseudoMoves(nil, pos, sq, checkKingSafety)
}

// appendPseudoMoves appends the pseudo-legal moves of the piece on sq to moves.
func appendPseudoMoves(moves []chess.Move, pos *chess.Position, sq chess.Square, checkKingSafety bool) []chess.Move {
	piece := pos.Board.At(sq)
	switch piece.Type {
	case chess.Pawn:
		return appendPawnMoves(moves, pos, sq, piece.Colour)
	case chess.Knight:
		return appendStepMoves(moves, pos, sq, piece.Colour, knightOffsets)
	case chess.Bishop:
		return appendSlidingMoves(moves, pos, sq, piece.Colour, diagonalDirs)
	case chess.Rook:
		return appendSlidingMoves(moves, pos, sq, piece.Colour, straightDirs)
	case chess.Queen:
		moves = appendSlidingMoves(moves, pos, sq, piece.Colour, diagonalDirs)
		return appendSlidingMoves(moves, pos, sq, piece.Colour, straightDirs)
	case chess.King:
		moves = appendStepMoves(moves, pos, sq, piece.Colour, kingOffsets)
		if checkKingSafety {
			moves = appendCastlingMoves(moves, pos, sq, piece.Colour)
		}
		return moves
	}
	return moves
}

// canLandOn reports whether a piece of the colour may move to target:
// the square must be empty or hold an enemy piece.
func canLandOn(pos *chess.Position, target chess.Square, colour chess.Colour) bool {
	p := pos.Board.At(target)
	return p.IsEmpty() || p.Colour != colour
}

// appendStepMoves generates single-step moves for knights and kings.
func appendStepMoves(moves []chess.Move, pos *chess.Position, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if to.Valid() && canLandOn(pos, to, colour) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// appendSlidingMoves generates moves along each direction until blocked.
// A friendly piece stops the slide; an enemy piece is captured then stops it.
func appendSlidingMoves(moves []chess.Move, pos *chess.Position, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			target := pos.Board.At(to)
			if target.IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: to})
			} else {
				if target.Colour != colour {
					moves = append(moves, chess.Move{From: from, To: to})
				}
				break // Blocked
			}
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
