// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	fenFlag    = flag.String("fen", "", "Position in FEN (default: initial position)")
	depth      = flag.Int("depth", 3, "Perft depth in plies")
	divide     = flag.Bool("divide", false, "Print node counts per root move")
	workers    = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	verify     = flag.Bool("verify", false, "Cross-check counts against the reference move generator")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")

	// Logging
	logJSON   = flag.Bool("logjson", false, "Write diagnostics as JSON lines")
	verbosity = flag.Int("v", 1, "Verbosity: 0=warnings, 1=progress, 2=debug")
	quiet     = flag.Bool("s", false, "Silent mode (warnings only)")

	help = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.FEN = *fenFlag
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.Verify = *verify
	cfg.Output.JSONFormat = *jsonOutput

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.LogJSON = *logJSON
}
