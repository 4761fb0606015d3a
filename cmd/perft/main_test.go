package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/config"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func runPerft(t *testing.T, cfg *config.Config) (string, string) {
	t.Helper()
	var out, log bytes.Buffer
	cfg.SetOutput(&out)
	if err := run(context.Background(), cfg, zerolog.New(&log).Level(zerolog.DebugLevel)); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	return out.String(), log.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  string
	}{
		{"initial depth 1", "", 1, "Nodes searched: 20\n"},
		{"initial depth 3", "", 3, "Nodes searched: 8902\n"},
		{"kiwipete depth 2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, "Nodes searched: 2039\n"},
		{"position 3 depth 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, "Nodes searched: 2812\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			cfg.FEN = tt.fen
			cfg.Perft.Depth = tt.depth
			cfg.Perft.Workers = 2
			out, _ := runPerft(t, cfg)
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestRun_Divide(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Perft.Depth = 2
	cfg.Perft.Divide = true
	out, _ := runPerft(t, cfg)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 22 {
		t.Fatalf("got %d lines, want 22:\n%s", len(lines), out)
	}
	if lines[0] != "a2a3: 20" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[21] != "Nodes searched: 400" {
		t.Errorf("last line = %q", lines[21])
	}
}

func TestRun_JSON(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Perft.Depth = 2
	cfg.Output.JSONFormat = true
	out, _ := runPerft(t, cfg)
	if !strings.Contains(out, `"nodes": 400`) {
		t.Errorf("unexpected JSON: %s", out)
	}
	if strings.Contains(out, `"divide"`) {
		t.Error("divide should be omitted unless requested")
	}
}

func TestRun_Verify(t *testing.T) {
	cfg := config.NewConfig()
	cfg.FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	cfg.Perft.Depth = 2
	cfg.Perft.Verify = true
	out, log := runPerft(t, cfg)

	if out != "Nodes searched: 264\n" {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(log, "perft verified against reference") {
		t.Errorf("log missing verification: %s", log)
	}
}

func TestRun_BadFEN(t *testing.T) {
	cfg := config.NewConfig()
	cfg.FEN = "not a fen"
	cfg.SetOutput(&bytes.Buffer{})
	err := run(context.Background(), cfg, zerolog.Nop())
	if !errors.Is(err, chesserrors.ErrInvalidFEN) {
		t.Errorf("run() error = %v; want ErrInvalidFEN", err)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.NewConfig()
	cfg.Perft.Depth = 3
	var out bytes.Buffer
	cfg.SetOutput(&out)
	err := run(ctx, cfg, zerolog.Nop())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("run() error = %v; want context.Canceled", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q; want nothing", out.String())
	}
}

func TestApplyFlags(t *testing.T) {
	oldDepth, oldDivide, oldQuiet := *depth, *divide, *quiet
	defer func() { *depth, *divide, *quiet = oldDepth, oldDivide, oldQuiet }()
	*depth, *divide, *quiet = 5, true, true

	cfg := config.NewConfig()
	applyFlags(cfg)
	if cfg.Perft.Depth != 5 || !cfg.Perft.Divide || cfg.Verbosity != 0 {
		t.Errorf("unexpected config: %+v verbosity=%d", *cfg.Perft, cfg.Verbosity)
	}
}
