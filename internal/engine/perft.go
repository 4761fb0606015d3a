package engine

import (
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Promotions count once per promotion piece.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	scratch := pos.Clone()
	return perft(scratch, depth)
}

func perft(pos *chess.Position, depth int) uint64 {
	moves := ExpandPromotions(pos, LegalMoves(pos, pos.SideToMove))
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		rec := MakeMove(pos, m)
		nodes += perft(pos, depth-1)
		UnmakeMove(pos, &rec)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// RootMoves returns the legal root moves perft expands, promotions included.
func RootMoves(pos *chess.Position) []chess.Move {
	return ExpandPromotions(pos, LegalMoves(pos, pos.SideToMove))
}

// PerftMove counts the nodes below a single root move.
func PerftMove(pos *chess.Position, m chess.Move, depth int) uint64 {
	scratch := pos.Clone()
	MakeMove(scratch, m)
	return Perft(scratch, depth-1)
}

// Divide returns per-root-move node counts sorted by UCI text.
func Divide(pos *chess.Position, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	var entries []DivideEntry
	for _, m := range RootMoves(pos) {
		entries = append(entries, DivideEntry{Move: m, Nodes: PerftMove(pos, m, depth)})
	}
	SortDivide(entries)
	return entries
}

// SortDivide orders entries by the UCI text of their move.
func SortDivide(entries []DivideEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return UCI(entries[i].Move) < UCI(entries[j].Move)
	})
}
