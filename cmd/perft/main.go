// perft counts the leaf nodes of the legal move tree of a position, with
// optional per-move breakdown and verification against a reference generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/reference"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg, cfg.Logger())
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run counts the configured position and writes the report. With Verify
// set, a count differing from the reference returns an error wrapping
// ErrPerftMismatch after the report is written. Cancelling ctx abandons
// the count and writes nothing.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	fen := cfg.StartFEN()
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}

	p := cfg.Perft
	logger.Debug().Str("fen", fen).Int("depth", p.Depth).Int("workers", p.Workers).Msg("perft started")

	start := time.Now()
	entries, err := worker.Divide(ctx, pos, p.Depth, p.Workers)
	if err != nil {
		logger.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("perft interrupted")
		return err
	}
	var nodes uint64
	for _, e := range entries {
		nodes += e.Nodes
	}
	elapsed := time.Since(start)

	logger.Info().
		Uint64("nodes", nodes).
		Dur("elapsed", elapsed).
		Float64("nps", float64(nodes)/elapsed.Seconds()).
		Msg("perft finished")

	var shown []engine.DivideEntry
	if p.Divide {
		shown = entries
	}
	report := output.PerftToJSON(fen, p.Depth, nodes, shown)
	if cfg.Output.JSONFormat {
		err = output.OutputPerftJSON(cfg.OutputFile, report)
	} else {
		err = output.OutputPerft(cfg.OutputFile, report)
	}
	if err != nil {
		return err
	}

	if !p.Verify {
		return nil
	}
	mismatches, err := reference.Compare(fen, p.Depth, entries)
	for _, m := range mismatches {
		logger.Error().Str("move", m.Move).Uint64("got", m.Got).Uint64("want", m.Want).Msg("perft mismatch")
	}
	if err != nil {
		return err
	}
	logger.Info().Msg("perft verified against reference")
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the legal move paths of a chess position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
