package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMovesFrom returns the legal moves of the piece on sq in generation
// order. It returns nothing for an empty square, a piece of the side not
// to move, or while a promotion is pending.
func LegalMovesFrom(pos *chess.Position, sq chess.Square) []chess.Move {
	if pos.Pending != nil {
		return nil
	}
	piece := pos.Board.At(sq)
	if piece.IsEmpty() || piece.Colour != pos.SideToMove {
		return nil
	}
	return legalMovesForSquare(pos.Clone(), sq, nil)
}

// LegalMoves returns the legal moves of every piece of the colour,
// scanning the board row by row.
func LegalMoves(pos *chess.Position, colour chess.Colour) []chess.Move {
	scratch := pos.Clone()
	scratch.Pending = nil
	var moves []chess.Move
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			piece := scratch.Board.At(sq)
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			moves = legalMovesForSquare(scratch, sq, moves)
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	scratch := pos.Clone()
	scratch.Pending = nil
	var buf [64]chess.Move
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			piece := scratch.Board.At(sq)
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			for _, m := range appendPseudoMoves(buf[:0], scratch, sq, true) {
				if tryMove(scratch, m, colour) {
					return true
				}
			}
		}
	}
	return false
}

// legalMovesForSquare appends the legal moves of the piece on sq to moves.
// scratch is mutated during testing but restored before returning.
func legalMovesForSquare(scratch *chess.Position, sq chess.Square, moves []chess.Move) []chess.Move {
	colour := scratch.Board.At(sq).Colour
	for _, m := range PseudoMoves(scratch, sq, true) {
		if tryMove(scratch, m, colour) {
			moves = append(moves, m)
		}
	}
	return moves
}

// tryMove makes a move on the scratch position, checks whether it leaves
// the mover's king in check, then takes it back.
func tryMove(scratch *chess.Position, m chess.Move, colour chess.Colour) bool {
	side := scratch.SideToMove
	rec := MakeMove(scratch, m)
	ok := !IsKingInCheck(scratch, colour)
	UnmakeMove(scratch, &rec)
	scratch.SideToMove = side
	return ok
}
