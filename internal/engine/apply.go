package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyMove validates a requested move against the legal moves from its
// origin and applies it. Only From, To and Promotion of the request are
// consulted; the flags come from the generated move. The position is
// unchanged when an error is returned.
func ApplyMove(pos *chess.Position, request chess.Move) (*chess.MoveRecord, error) {
	if pos.Pending != nil {
		return nil, errors.ErrPromotionPending
	}

	move, ok := FindLegalMove(pos, request.From, request.To)
	if !ok {
		return nil, fmt.Errorf("%s%s: %w", request.From, request.To, errors.ErrIllegalMove)
	}

	if request.Promotion != chess.NoPieceType {
		if !reachesLastRank(pos.Board.At(move.From), move.To) {
			return nil, fmt.Errorf("%s%s=%c: %w", request.From, request.To, request.Promotion.Letter(), errors.ErrIllegalMove)
		}
		if !request.Promotion.IsPromotionChoice() {
			return nil, errors.ErrInvalidPromotion
		}
		move.Promotion = request.Promotion
	}

	rec := MakeMove(pos, move)
	return &rec, nil
}

// FindLegalMove returns the legal move connecting from and to, if any.
func FindLegalMove(pos *chess.Position, from, to chess.Square) (chess.Move, bool) {
	for _, m := range LegalMovesFrom(pos, from) {
		if m.To == to {
			return m, true
		}
	}
	return chess.Move{}, false
}

// MakeMove applies a move to the position without checking legality and
// returns the record needed to reverse it. A pawn reaching the last rank
// without a promotion piece leaves the promotion pending and the side to
// move unchanged.
func MakeMove(pos *chess.Position, move chess.Move) chess.MoveRecord {
	piece := pos.Board.At(move.From)
	colour := piece.Colour
	capturedAt := move.CaptureSquare()
	captured := pos.Board.At(capturedAt)

	rec := chess.MoveRecord{
		Move:           move,
		Piece:          piece,
		Captured:       captured,
		CapturedAt:     capturedAt,
		Castling:       pos.Castling,
		EnPassant:      pos.EnPassant,
		EPSquare:       pos.EPSquare,
		HalfmoveClock:  pos.HalfmoveClock,
		FullmoveNumber: pos.FullmoveNumber,
	}

	// Set en passant square if double pawn push
	pos.EnPassant = false
	pos.EPSquare = chess.Square{}
	if move.DoublePawnPush {
		pos.EnPassant = true
		pos.EPSquare = chess.Sq((move.From.Row+move.To.Row)/2, move.From.Col)
	}

	// Pawn moves and captures reset the clock
	if piece.Type == chess.Pawn || !captured.IsEmpty() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}

	// Move the piece
	if move.EnPassant {
		pos.Board.Set(capturedAt, chess.NoPiece)
	}
	pos.Board.Set(move.From, chess.NoPiece)
	pos.Board.Set(move.To, piece)

	// Move rook
	if move.Castling {
		rook := pos.Board.At(move.RookFrom)
		pos.Board.Set(move.RookFrom, chess.NoPiece)
		pos.Board.Set(move.RookTo, rook)
	}

	// Update king position if king moved
	if piece.Type == chess.King {
		pos.Kings[colour] = move.To
	}

	updateCastlingRights(pos, piece, move.From, captured, capturedAt)

	if reachesLastRank(piece, move.To) {
		if move.Promotion == chess.NoPieceType {
			pos.Pending = &chess.PendingPromotion{Square: move.To, Colour: colour}
			return rec
		}
		pos.Board.Set(move.To, chess.Piece{Type: move.Promotion, Colour: colour})
		rec.Promotion = move.Promotion
	}

	finishTurn(pos, colour)
	return rec
}

// finishTurn passes the move to the opponent.
func finishTurn(pos *chess.Position, mover chess.Colour) {
	if mover == chess.Black {
		pos.FullmoveNumber++
	}
	pos.SideToMove = mover.Opposite()
}

// ChoosePromotion completes a pending promotion with the chosen piece.
// rec must be the record of the move that left the promotion pending.
func ChoosePromotion(pos *chess.Position, rec *chess.MoveRecord, pieceType chess.PieceType) error {
	pending := pos.Pending
	if pending == nil || rec == nil {
		return errors.ErrNoPendingPromotion
	}
	if pending.Square != rec.Move.To || pending.Colour != rec.Piece.Colour {
		return errors.ErrNoPendingPromotion
	}
	if !pieceType.IsPromotionChoice() {
		return fmt.Errorf("%s: %w", pieceType, errors.ErrInvalidPromotion)
	}

	pos.Board.Set(pending.Square, chess.Piece{Type: pieceType, Colour: pending.Colour})
	rec.Promotion = pieceType
	pos.Pending = nil
	finishTurn(pos, pending.Colour)
	return nil
}

// UnmakeMove reverses a move recorded by MakeMove, whether it was
// completed or left a promotion pending.
func UnmakeMove(pos *chess.Position, rec *chess.MoveRecord) {
	move := rec.Move
	colour := rec.Piece.Colour

	pos.Board.Set(move.To, chess.NoPiece)
	pos.Board.Set(move.From, rec.Piece)
	if !rec.Captured.IsEmpty() {
		pos.Board.Set(rec.CapturedAt, rec.Captured)
	}

	if move.Castling {
		rook := pos.Board.At(move.RookTo)
		pos.Board.Set(move.RookTo, chess.NoPiece)
		pos.Board.Set(move.RookFrom, rook)
	}

	if rec.Piece.Type == chess.King {
		pos.Kings[colour] = move.From
	}

	pos.Castling = rec.Castling
	pos.EnPassant = rec.EnPassant
	pos.EPSquare = rec.EPSquare
	pos.HalfmoveClock = rec.HalfmoveClock
	pos.FullmoveNumber = rec.FullmoveNumber
	pos.SideToMove = colour
	pos.Pending = nil
}
