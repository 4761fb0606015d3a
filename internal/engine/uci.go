package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveFormat selects how moves are written.
type MoveFormat int

const (
	FormatSAN  MoveFormat = iota // Standard Algebraic Notation (Nf3)
	FormatLALG                   // Long algebraic (g1f3)
	FormatHALG                   // Hyphenated long algebraic (g1-f3)
	FormatUCI                    // UCI (g1f3, e7e8q)
)

// UCI returns the move in UCI form, e.g. "e2e4" or "e7e8q".
func UCI(m chess.Move) string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.NoPieceType {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// FormatMove renders a record in the given format; after is the position
// the move produced.
func FormatMove(format MoveFormat, rec *chess.MoveRecord, after *chess.Position) string {
	m := rec.Move
	m.Promotion = rec.Promotion
	switch format {
	case FormatLALG:
		s := m.From.String() + m.To.String()
		if m.Promotion != chess.NoPieceType {
			s += string(m.Promotion.Letter())
		}
		return s
	case FormatHALG:
		s := m.From.String() + "-" + m.To.String()
		if m.Promotion != chess.NoPieceType {
			s += string(m.Promotion.Letter())
		}
		return s
	case FormatUCI:
		return UCI(m)
	default:
		return Notation(rec, after)
	}
}

// ParseMove interprets move text in UCI, long algebraic or SAN form
// against the legal moves of the side to move. The returned move carries
// the generated flags and is ready for ApplyMove.
func ParseMove(pos *chess.Position, text string) (chess.Move, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return chess.Move{}, &errors.ParseError{Err: errors.ErrIllegalMove, Expected: "move"}
	}

	if m, ok := parseCoordinateMove(text); ok {
		legal, found := FindLegalMove(pos, m.From, m.To)
		if !found {
			return chess.Move{}, fmt.Errorf("%s: %w", text, errors.ErrIllegalMove)
		}
		legal.Promotion = m.Promotion
		return legal, nil
	}

	return parseSAN(pos, text)
}

// parseCoordinateMove parses "e2e4", "e2-e4", "e7e8q" or "e7e8=Q".
func parseCoordinateMove(text string) (chess.Move, bool) {
	s := strings.ReplaceAll(text, "-", "")
	s = strings.ReplaceAll(s, "=", "")
	if len(s) != 4 && len(s) != 5 {
		return chess.Move{}, false
	}
	from, ok := chess.ParseSquare(s[0:2])
	if !ok {
		return chess.Move{}, false
	}
	to, ok := chess.ParseSquare(s[2:4])
	if !ok {
		return chess.Move{}, false
	}
	m := chess.Move{From: from, To: to}
	if len(s) == 5 {
		m.Promotion = chess.PieceTypeFromLetter(s[4])
		if !m.Promotion.IsPromotionChoice() {
			return chess.Move{}, false
		}
	}
	return m, true
}

// parseSAN matches text against the SAN rendering of every legal move.
func parseSAN(pos *chess.Position, text string) (chess.Move, error) {
	want := normaliseSAN(text)
	for _, m := range ExpandPromotions(pos, LegalMoves(pos, pos.SideToMove)) {
		if normaliseSAN(MoveSAN(pos, m)) == want {
			return m, nil
		}
	}
	return chess.Move{}, fmt.Errorf("%s: %w", text, errors.ErrIllegalMove)
}

// normaliseSAN strips check marks and annotations and accepts zeros for castling.
func normaliseSAN(s string) string {
	s = strings.TrimRight(s, "+#!?")
	return strings.ReplaceAll(s, "0", "O")
}

// ExpandPromotions replaces every move reaching the last rank without a
// promotion piece by one move per promotion choice.
func ExpandPromotions(pos *chess.Position, moves []chess.Move) []chess.Move {
	expanded := make([]chess.Move, 0, len(moves))
	for _, m := range moves {
		if m.Promotion != chess.NoPieceType || !reachesLastRank(pos.Board.At(m.From), m.To) {
			expanded = append(expanded, m)
			continue
		}
		for _, pt := range chess.PromotionChoices {
			promo := m
			promo.Promotion = pt
			expanded = append(expanded, promo)
		}
	}
	return expanded
}
