// Package errors defines the rules engine's sentinel errors and the
// MoveError and ParseError wrappers. Both wrappers unwrap to their sentinel,
// so callers test with errors.Is.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrPromotionPending indicates a move was attempted while a pawn
	// is still waiting for its promotion piece.
	ErrPromotionPending = errors.New("promotion pending")

	// ErrNoPendingPromotion indicates a promotion choice with no pawn to promote.
	ErrNoPendingPromotion = errors.New("no promotion pending")

	// ErrInvalidPromotion indicates a promotion piece other than Q, R, B or N.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates malformed square coordinates.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a move after checkmate, stalemate or the
	// fifty-move draw.
	ErrGameOver = errors.New("game is over")

	// ErrPerftMismatch indicates a node count differing from the reference.
	ErrPerftMismatch = errors.New("perft mismatch")
)

// MoveError is a rejected move, with the ply it would have been, the side
// that tried it and the move as entered.
type MoveError struct {
	Err      error
	PlyNum   int // 0 when unknown
	Side     string
	MoveText string
}

func (e *MoveError) Error() string {
	var parts []string
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.Side != "" {
		parts = append(parts, e.Side+" to move")
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	return compose(parts, ", ", e.Err, "move error")
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError locates a syntax error in FEN, square or move text.
type ParseError struct {
	Err      error
	Input    string
	Field    int // 1-based FEN field, 0 when not applicable
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	var parts []string
	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Field > 0 {
			loc += fmt.Sprintf(" field %d", e.Field)
		}
		parts = append(parts, loc)
	}
	switch {
	case e.Expected != "" && e.Got != "":
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	case e.Expected != "":
		parts = append(parts, "expected "+e.Expected)
	case e.Got != "":
		parts = append(parts, "unexpected "+e.Got)
	}
	return compose(parts, ": ", e.Err, "parse error")
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// compose joins the context parts with sep and appends err. fallback is
// used when there is neither.
func compose(parts []string, sep string, err error, fallback string) string {
	context := strings.Join(parts, sep)
	switch {
	case err != nil && context != "":
		return context + ": " + err.Error()
	case err != nil:
		return err.Error()
	case context != "":
		return context
	}
	return fallback
}
