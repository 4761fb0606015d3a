// Package output writes games and perft reports as move lists or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// DefaultLineLength is the wrap width of move lists.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// playedMove is a completed move with the position it produced.
type playedMove struct {
	rec   *chess.MoveRecord
	after *chess.Position
}

// replay walks the completed moves of a game from its start position.
// A trailing move still waiting for its promotion piece is left out.
func replay(g *game.Game) []playedMove {
	pos := g.StartPosition()
	history := g.History()
	played := make([]playedMove, 0, len(history))
	for _, rec := range history {
		if !rec.IsComplete() {
			break
		}
		m := rec.Move
		m.Promotion = rec.Promotion
		engine.MakeMove(pos, m)
		played = append(played, playedMove{rec: rec, after: pos.Clone()})
	}
	return played
}

// OutputGame writes the move list of a game to cfg.OutputFile.
func OutputGame(g *game.Game, cfg *config.Config) {
	outputGame(g, cfg, cfg.OutputFile)
}

func outputGame(g *game.Game, cfg *config.Config, w io.Writer) {
	outputMoves(g, cfg, w)
	if cfg.Output.ShowStatus {
		fmt.Fprintln(w, g.Status())
	}
}

// outputMoves writes the numbered move list, optionally ending with the result.
func outputMoves(g *game.Game, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, DefaultLineLength)

	start := g.StartPosition()
	moveNum := start.FullmoveNumber
	isWhite := start.SideToMove == chess.White
	format := cfg.Output.Format.MoveFormat()

	for i, pm := range replay(g) {
		if cfg.Output.KeepMoveNumbers {
			if isWhite {
				ow.Write(fmt.Sprintf("%d.", moveNum))
			} else if i == 0 {
				// Black to move at start
				ow.Write(fmt.Sprintf("%d...", moveNum))
			}
		}

		ow.Write(engine.FormatMove(format, pm.rec, pm.after))

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	if cfg.Output.KeepResults {
		ow.Write(g.Status().Result())
	}

	ow.NewLine()
}
