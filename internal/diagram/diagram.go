// Package diagram renders board positions as SVG images.
package diagram

import (
	"bytes"
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Board colours.
const (
	LightSquare = "#f0d9b5"
	DarkSquare  = "#b58863"
	Highlight   = "#cdd26a"
	CheckColour = "#e04040"
)

// Options control how a diagram is drawn.
type Options struct {
	SquareSize        int
	Flip              bool
	Coordinates       bool
	HighlightLastMove bool
}

// DefaultOptions returns the options of the default diagram configuration.
func DefaultOptions() Options {
	return OptionsFromConfig(config.NewDiagramConfig())
}

// OptionsFromConfig converts a diagram configuration to drawing options.
func OptionsFromConfig(cfg *config.DiagramConfig) Options {
	return Options{
		SquareSize:        cfg.SquareSize,
		Flip:              cfg.Flip,
		Coordinates:       cfg.Coordinates,
		HighlightLastMove: cfg.HighlightLastMove,
	}
}

// margin is the border reserved for coordinate labels.
func (o Options) margin() int {
	if o.Coordinates {
		return o.SquareSize / 2
	}
	return 0
}

// Size returns the width and height of the image in pixels.
func (o Options) Size() int {
	return 8*o.SquareSize + 2*o.margin()
}

// origin returns the top-left pixel of a square.
func (o Options) origin(sq chess.Square) (int, int) {
	row, col := sq.Row, sq.Col
	if o.Flip {
		row, col = chess.BoardSize-1-row, chess.BoardSize-1-col
	}
	return o.margin() + col*o.SquareSize, o.margin() + row*o.SquareSize
}

// Render writes an SVG diagram of pos. last, when non-nil and highlighting
// is enabled, has its origin and destination shaded. When the side to move
// is in check its king and every checking piece are outlined.
func Render(w io.Writer, pos *chess.Position, last *chess.MoveRecord, opts Options) error {
	if opts.SquareSize <= 0 {
		return fmt.Errorf("square size %d must be positive", opts.SquareSize)
	}

	var buf bytes.Buffer
	size := opts.Size()
	canvas := svg.New(&buf)
	canvas.Start(size, size)
	canvas.Title(engine.PositionToFEN(pos))
	canvas.Rect(0, 0, size, size, "fill:white")

	drawSquares(canvas, opts)
	if opts.HighlightLastMove && last != nil {
		drawHighlight(canvas, last, opts)
	}
	drawCheck(canvas, pos, opts)
	drawPieces(canvas, pos, opts)
	if opts.Coordinates {
		drawCoordinates(canvas, opts)
	}

	canvas.End()
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteFile renders a diagram to the named file.
func WriteFile(path string, pos *chess.Position, last *chess.MoveRecord, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(f, pos, last, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func drawSquares(canvas *svg.SVG, opts Options) {
	canvas.Gid("squares")
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			x, y := opts.origin(sq)
			fill := LightSquare
			if (row+col)%2 == 1 {
				fill = DarkSquare
			}
			canvas.Rect(x, y, opts.SquareSize, opts.SquareSize, "fill:"+fill)
		}
	}
	canvas.Gend()
}

func drawHighlight(canvas *svg.SVG, last *chess.MoveRecord, opts Options) {
	canvas.Gid("last-move")
	for _, sq := range []chess.Square{last.Move.From, last.Move.To} {
		x, y := opts.origin(sq)
		canvas.Rect(x, y, opts.SquareSize, opts.SquareSize, "fill:"+Highlight+";fill-opacity:0.8")
	}
	canvas.Gend()
}

func drawCheck(canvas *svg.SVG, pos *chess.Position, opts Options) {
	colour := pos.SideToMove
	king := pos.KingSquare(colour)
	checkers := engine.Attackers(pos, king, colour.Opposite())
	if len(checkers) == 0 {
		return
	}

	canvas.Gid("check")
	half := opts.SquareSize / 2
	x, y := opts.origin(king)
	canvas.Circle(x+half, y+half, half, "fill:"+CheckColour+";fill-opacity:0.6")
	for _, sq := range checkers {
		x, y := opts.origin(sq)
		canvas.Rect(x+1, y+1, opts.SquareSize-2, opts.SquareSize-2,
			"fill:none;stroke:"+CheckColour+";stroke-width:2")
	}
	canvas.Gend()
}

func drawPieces(canvas *svg.SVG, pos *chess.Position, opts Options) {
	fontSize := opts.SquareSize * 4 / 5
	canvas.Gstyle(fmt.Sprintf("text-anchor:middle;font-size:%dpx;font-family:serif", fontSize))
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			piece := pos.Board.At(sq)
			if piece.IsEmpty() {
				continue
			}
			x, y := opts.origin(sq)
			canvas.Text(x+opts.SquareSize/2, y+opts.SquareSize*4/5, piece.Symbol())
		}
	}
	canvas.Gend()
}

func drawCoordinates(canvas *svg.SVG, opts Options) {
	m := opts.margin()
	canvas.Gstyle(fmt.Sprintf("text-anchor:middle;font-size:%dpx;font-family:sans-serif;fill:#404040", m*3/4))
	for i := 0; i < chess.BoardSize; i++ {
		// Files along the bottom, ranks down the left.
		fileSq := chess.Sq(chess.BoardSize-1, i)
		x, _ := opts.origin(fileSq)
		canvas.Text(x+opts.SquareSize/2, opts.Size()-m/4, string(fileSq.File()))

		rankSq := chess.Sq(i, 0)
		_, y := opts.origin(rankSq)
		canvas.Text(m/2, y+opts.SquareSize/2+m/4, string(rankSq.Rank()))
	}
	canvas.Gend()
}
