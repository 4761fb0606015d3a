// Package reference counts move trees with an independent move generator
// so perft results can be cross-checked.
package reference

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Perft counts the leaf nodes below fen to the given depth.
func Perft(fen string, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	board := dragontoothmg.ParseFen(fen)
	return perft(&board, depth)
}

func perft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += perft(b, depth-1)
		unapply()
	}
	return nodes
}

// Divide returns node counts per root move keyed by UCI text.
func Divide(fen string, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	board := dragontoothmg.ParseFen(fen)
	for _, m := range board.GenerateLegalMoves() {
		move := m
		unapply := board.Apply(move)
		result[strings.ToLower(move.String())] = perft(&board, depth-1)
		unapply()
	}
	return result
}

// Mismatch is one root move whose count differs from the reference.
type Mismatch struct {
	Move      string
	Got, Want uint64
}

// String formats the mismatch for reports.
func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %d, want %d", m.Move, m.Got, m.Want)
}

// Compare checks divide entries against the reference counts for fen.
// Moves missing on either side are reported with a zero count. The error
// wraps ErrPerftMismatch when any count differs.
func Compare(fen string, depth int, entries []engine.DivideEntry) ([]Mismatch, error) {
	want := Divide(fen, depth)
	seen := make(map[string]bool, len(entries))
	var mismatches []Mismatch

	for _, e := range entries {
		uci := engine.UCI(e.Move)
		seen[uci] = true
		if w := want[uci]; w != e.Nodes {
			mismatches = append(mismatches, Mismatch{Move: uci, Got: e.Nodes, Want: w})
		}
	}
	for uci, w := range want {
		if !seen[uci] {
			mismatches = append(mismatches, Mismatch{Move: uci, Want: w})
		}
	}

	if len(mismatches) == 0 {
		return nil, nil
	}
	sort.Slice(mismatches, func(i, j int) bool { return mismatches[i].Move < mismatches[j].Move })
	return mismatches, fmt.Errorf("%d root moves differ at depth %d: %w", len(mismatches), depth, errors.ErrPerftMismatch)
}
