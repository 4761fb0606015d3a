// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Starting position
	fenFlag = flag.String("fen", "", "Starting position in FEN (default: initial position)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("W", "san", "Move format: san, lalg, halg, uci")
	jsonOutput   = flag.Bool("J", false, "Write a JSON game report instead of a move list")
	noResults    = flag.Bool("noresults", false, "Don't end the move list with the result")
	noNumbers    = flag.Bool("nonumbers", false, "Don't number moves")
	showStatus   = flag.Bool("status", false, "Print the status line after the move list")

	// Diagram options
	svgFile     = flag.String("svg", "", "Write an SVG diagram of the final position")
	squareSize  = flag.Int("square", 45, "Diagram square size in pixels")
	flipBoard   = flag.Bool("flip", false, "Draw the diagram with Black at the bottom")
	noCoords    = flag.Bool("nocoords", false, "Don't label files and ranks")
	noHighlight = flag.Bool("nohighlight", false, "Don't shade the last move")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	logJSON   = flag.Bool("logjson", false, "Write diagnostics as JSON lines")
	verbosity = flag.Int("v", 1, "Verbosity: 0=warnings, 1=progress, 2=every move")
	quiet     = flag.Bool("s", false, "Silent mode (warnings only)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.FEN = *fenFlag
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyDiagramFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.LogJSON = *logJSON
	return nil
}

// applyOutputFlags configures the move list or JSON report.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.KeepResults = !*noResults
	cfg.Output.KeepMoveNumbers = !*noNumbers
	cfg.Output.ShowStatus = *showStatus
	return nil
}

// applyDiagramFlags configures the SVG diagram.
func applyDiagramFlags(cfg *config.Config) {
	cfg.Diagram.File = *svgFile
	cfg.Diagram.SquareSize = *squareSize
	cfg.Diagram.Flip = *flipBoard
	cfg.Diagram.Coordinates = !*noCoords
	cfg.Diagram.HighlightLastMove = !*noHighlight
}
