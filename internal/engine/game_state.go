package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// FiftyMoveLimit is the half-move clock value at which the game is drawn.
const FiftyMoveLimit = 100

// StatusKind classifies the state of the game for the side to move.
type StatusKind int

const (
	Ongoing StatusKind = iota
	Checkmate
	Stalemate
	FiftyMoveDraw
)

// String returns the string representation of a status kind.
func (k StatusKind) String() string {
	names := []string{"Ongoing", "Checkmate", "Stalemate", "FiftyMoveDraw"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Status is the result of evaluating a position.
type Status struct {
	Kind StatusKind

	// Side to move when the status was computed.
	ToMove chess.Colour

	// Set for Checkmate.
	Winner chess.Colour

	// Whether the side to move is in check.
	InCheck bool
}

// IsOver returns true for terminal statuses.
func (s Status) IsOver() bool {
	return s.Kind != Ongoing
}

// Result returns the PGN result token for the status.
func (s Status) Result() string {
	switch s.Kind {
	case Checkmate:
		if s.Winner == chess.White {
			return "1-0"
		}
		return "0-1"
	case Stalemate, FiftyMoveDraw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// String returns the status line shown to players.
func (s Status) String() string {
	switch s.Kind {
	case Checkmate:
		return fmt.Sprintf("Checkmate! %s wins", s.Winner)
	case Stalemate:
		return "Stalemate! Game is a draw"
	case FiftyMoveDraw:
		return "Draw by 50-move rule"
	}
	text := fmt.Sprintf("%s's turn", s.ToMove)
	if s.InCheck {
		text += " (in check)"
	}
	return text
}

// GameStatus evaluates the position for the side to move. Checkmate and
// stalemate take precedence over the fifty-move rule. While a promotion is
// pending the turn has not passed and the status is Ongoing for the mover.
func GameStatus(pos *chess.Position) Status {
	colour := pos.SideToMove
	if pos.Pending != nil {
		return Status{Kind: Ongoing, ToMove: colour}
	}

	inCheck := IsKingInCheck(pos, colour)
	hasMoves := HasLegalMoves(pos, colour)

	switch {
	case inCheck && !hasMoves:
		return Status{Kind: Checkmate, ToMove: colour, Winner: colour.Opposite(), InCheck: true}
	case !hasMoves:
		return Status{Kind: Stalemate, ToMove: colour}
	case pos.HalfmoveClock >= FiftyMoveLimit:
		return Status{Kind: FiftyMoveDraw, ToMove: colour, InCheck: inCheck}
	default:
		return Status{Kind: Ongoing, ToMove: colour, InCheck: inCheck}
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	colour := pos.SideToMove
	return IsKingInCheck(pos, colour) && !HasLegalMoves(pos, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	colour := pos.SideToMove
	return !IsKingInCheck(pos, colour) && !HasLegalMoves(pos, colour)
}
