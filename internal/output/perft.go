package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONPerft is a perft run in JSON format.
type JSONPerft struct {
	FEN    string       `json:"fen"`
	Depth  int          `json:"depth"`
	Nodes  uint64       `json:"nodes"`
	Divide []JSONDivide `json:"divide,omitempty"`
}

// JSONDivide is the node count below one root move.
type JSONDivide struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// PerftToJSON builds a perft report. entries may be nil when no divide
// was requested.
func PerftToJSON(fen string, depth int, nodes uint64, entries []engine.DivideEntry) *JSONPerft {
	report := &JSONPerft{FEN: fen, Depth: depth, Nodes: nodes}
	for _, e := range entries {
		report.Divide = append(report.Divide, JSONDivide{Move: engine.UCI(e.Move), Nodes: e.Nodes})
	}
	return report
}

// OutputPerftJSON writes a perft report in JSON format.
func OutputPerftJSON(w io.Writer, report *JSONPerft) error {
	return encodeJSON(w, report)
}

// OutputPerft writes a perft report as text: one "move: nodes" line per
// divide entry, then the total.
func OutputPerft(w io.Writer, report *JSONPerft) error {
	for _, d := range report.Divide {
		if _, err := fmt.Fprintf(w, "%s: %d\n", d.Move, d.Nodes); err != nil {
			return err
		}
	}
	if len(report.Divide) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Nodes searched: %d\n", report.Nodes)
	return err
}
