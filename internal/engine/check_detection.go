package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsKingInCheck returns true if the given colour's king is in check.
func IsKingInCheck(pos *chess.Position, colour chess.Colour) bool {
	return IsAttacked(pos, pos.KingSquare(colour), colour.Opposite())
}

// IsAttacked returns true if some piece of byColour has a pseudo-move
// landing on sq. Pawns attack only diagonally forward, whether or not the
// target is occupied; a push never counts as an attack.
func IsAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	var buf [32]chess.Move
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			piece := pos.Board.At(from)
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			if attacks(buf[:0], pos, from, piece, sq) {
				return true
			}
		}
	}
	return false
}

// Attackers returns the squares of byColour's pieces attacking sq.
func Attackers(pos *chess.Position, sq chess.Square, byColour chess.Colour) []chess.Square {
	var buf [32]chess.Move
	var attackers []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			piece := pos.Board.At(from)
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			if attacks(buf[:0], pos, from, piece, sq) {
				attackers = append(attackers, from)
			}
		}
	}
	return attackers
}

// attacks reports whether the piece on from attacks sq. buf is scratch
// space for the generated moves. Pawns skip the generator on purpose: their
// diagonal attacks exist whether or not the target square is occupied.
func attacks(buf []chess.Move, pos *chess.Position, from chess.Square, piece chess.Piece, sq chess.Square) bool {
	if piece.Type == chess.Pawn {
		dCol := sq.Col - from.Col
		return sq.Row == from.Row+chess.ForwardDir(piece.Colour) && (dCol == 1 || dCol == -1)
	}
	for _, m := range appendPseudoMoves(buf, pos, from, false) {
		if m.To == sq {
			return true
		}
	}
	return false
}
