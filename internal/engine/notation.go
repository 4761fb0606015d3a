package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Notation renders a move record in Standard Algebraic Notation.
// after is the position the move produced; it is only read. The check
// suffix is computed against after, and disambiguation against the prior
// position rebuilt on a clone.
func Notation(rec *chess.MoveRecord, after *chess.Position) string {
	before := after.Clone()
	UnmakeMove(before, rec)

	var sb strings.Builder
	move := rec.Move

	if move.Castling {
		if move.IsKingSideCastle() {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
	} else {
		pt := rec.Piece.Type

		// Piece letter and disambiguation (not for pawns)
		if pt != chess.Pawn {
			sb.WriteByte(pt.Letter())
			sb.WriteString(disambiguation(before, move, pt))
		}

		// Capture marker
		if rec.IsCapture() {
			if pt == chess.Pawn {
				// Pawn captures include the file of origin
				sb.WriteByte(move.From.File())
			}
			sb.WriteByte('x')
		}

		sb.WriteString(move.To.String())

		if rec.Promotion != chess.NoPieceType {
			sb.WriteByte('=')
			sb.WriteByte(rec.Promotion.Letter())
		}
	}

	if rec.IsComplete() && after.Pending == nil {
		sb.WriteString(CheckSuffix(after))
	}
	return sb.String()
}

// CheckSuffix returns "#" if the side to move is mated, "+" if it is in
// check and "" otherwise.
func CheckSuffix(pos *chess.Position) string {
	colour := pos.SideToMove
	if !IsKingInCheck(pos, colour) {
		return ""
	}
	if !HasLegalMoves(pos, colour) {
		return "#"
	}
	return "+"
}

// MoveSAN renders a legal move of the side to move in SAN without
// modifying pos.
func MoveSAN(pos *chess.Position, move chess.Move) string {
	after := pos.Clone()
	rec := MakeMove(after, move)
	return Notation(&rec, after)
}

// disambiguation returns the origin file, rank or square needed when
// another piece of the same type can reach the same destination.
func disambiguation(before *chess.Position, move chess.Move, pt chess.PieceType) string {
	colour := before.Board.At(move.From).Colour

	// Find all other pieces of the same type that can move to the same square
	var candidates []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			if sq == move.From || !before.Board.At(sq).Is(colour, pt) {
				continue
			}
			for _, m := range legalMovesForSquare(before.Clone(), sq, nil) {
				if m.To == move.To {
					candidates = append(candidates, sq)
					break
				}
			}
		}
	}

	// No ambiguity
	if len(candidates) == 0 {
		return ""
	}

	sameFile := false
	sameRank := false
	for _, sq := range candidates {
		if sq.Col == move.From.Col {
			sameFile = true
		}
		if sq.Row == move.From.Row {
			sameRank = true
		}
	}

	if !sameFile {
		return string(move.From.File())
	}
	if !sameRank {
		return string(move.From.Rank())
	}
	return move.From.String()
}
