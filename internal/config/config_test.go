package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != SAN {
		t.Errorf("Format = %v, want %v", cfg.Format, SAN)
	}
	if !cfg.KeepMoveNumbers {
		t.Error("KeepMoveNumbers should be true by default")
	}
	if !cfg.KeepResults {
		t.Error("KeepResults should be true by default")
	}
	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
}

// TestDiagramConfig_Defaults verifies DiagramConfig has sensible defaults
func TestDiagramConfig_Defaults(t *testing.T) {
	cfg := NewDiagramConfig()

	if cfg.Enabled() {
		t.Error("diagram should be disabled without a file")
	}
	if cfg.SquareSize != 45 {
		t.Errorf("SquareSize = %d, want 45", cfg.SquareSize)
	}
	if !cfg.Coordinates || !cfg.HighlightLastMove {
		t.Error("coordinates and last move highlight should be on by default")
	}
	if cfg.Flip {
		t.Error("Flip should be false by default")
	}
}

// TestDiagramConfig_Validate verifies square size bounds
func TestDiagramConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "default", size: 45, wantErr: false},
		{name: "minimum", size: MinSquareSize, wantErr: false},
		{name: "maximum", size: MaxSquareSize, wantErr: false},
		{name: "too small", size: MinSquareSize - 1, wantErr: true},
		{name: "too large", size: MaxSquareSize + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DiagramConfig{SquareSize: tt.size}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestPerftConfig_Validate verifies perft config validation
func TestPerftConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     PerftConfig
		wantErr bool
	}{
		{name: "defaults", cfg: *NewPerftConfig(), wantErr: false},
		{name: "depth one", cfg: PerftConfig{Depth: 1}, wantErr: false},
		{name: "zero depth", cfg: PerftConfig{Depth: 0}, wantErr: true},
		{name: "too deep", cfg: PerftConfig{Depth: MaxPerftDepth + 1}, wantErr: true},
		{name: "negative workers", cfg: PerftConfig{Depth: 2, Workers: -1}, wantErr: true},
		{name: "explicit workers", cfg: PerftConfig{Depth: 2, Workers: 4}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestConfig_Validate verifies the top-level checks
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "defaults", modify: func(*Config) {}, wantErr: false},
		{name: "valid fen", modify: func(c *Config) { c.FEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1" }, wantErr: false},
		{name: "bad fen", modify: func(c *Config) { c.FEN = "8/8 w" }, wantErr: true},
		{name: "negative verbosity", modify: func(c *Config) { c.Verbosity = -1 }, wantErr: true},
		{name: "bad diagram", modify: func(c *Config) { c.Diagram.SquareSize = 1 }, wantErr: true},
		{name: "bad perft", modify: func(c *Config) { c.Perft.Depth = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_StartFEN(t *testing.T) {
	cfg := NewConfig()
	if cfg.StartFEN() != engine.InitialFEN {
		t.Errorf("StartFEN() = %q, want the initial position", cfg.StartFEN())
	}
	cfg.FEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	if cfg.StartFEN() != cfg.FEN {
		t.Errorf("StartFEN() = %q, want %q", cfg.StartFEN(), cfg.FEN)
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		engine  engine.MoveFormat
		wantErr bool
	}{
		{in: "san", want: SAN, engine: engine.FormatSAN},
		{in: "", want: SAN, engine: engine.FormatSAN},
		{in: "LALG", want: LALG, engine: engine.FormatLALG},
		{in: "halg", want: HALG, engine: engine.FormatHALG},
		{in: "uci", want: UCI, engine: engine.FormatUCI},
		{in: "epd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.MoveFormat() != tt.engine {
				t.Errorf("MoveFormat() = %v, want %v", got.MoveFormat(), tt.engine)
			}
			if strings.ToLower(tt.in) != got.String() && tt.in != "" {
				t.Errorf("String() = %q, want %q", got.String(), strings.ToLower(tt.in))
			}
		})
	}
}

func TestConfig_Logger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		json      bool
		want      zerolog.Level
		contains  string
	}{
		{name: "quiet console", verbosity: 0, want: zerolog.WarnLevel, contains: "WRN"},
		{name: "normal json", verbosity: 1, json: true, want: zerolog.InfoLevel, contains: `"level":"warn"`},
		{name: "verbose", verbosity: 2, want: zerolog.DebugLevel, contains: "WRN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := NewConfigBuilder().WithVerbosity(tt.verbosity).WithLog(&buf, tt.json).Build()

			if cfg.LogLevel() != tt.want {
				t.Errorf("LogLevel() = %v, want %v", cfg.LogLevel(), tt.want)
			}

			logger := cfg.Logger()
			logger.Debug().Msg("debug line")
			logger.Warn().Msg("warn line")

			out := buf.String()
			if !strings.Contains(out, tt.contains) || !strings.Contains(out, "warn line") {
				t.Errorf("log output %q missing %q", out, tt.contains)
			}
			if tt.want > zerolog.DebugLevel && strings.Contains(out, "debug line") {
				t.Errorf("debug line written at level %v", tt.want)
			}
		})
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfigBuilder().
		WithOutputFormat(LALG).
		WithJSONOutput(true).
		WithFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithDiagram("board.svg", 60).
		WithPerft(5, 3).
		WithDivide(true).
		WithVerify(true).
		WithOutput(&out).
		Build()

	if cfg.Output.Format != LALG {
		t.Errorf("Format = %v, want LALG", cfg.Output.Format)
	}
	if !cfg.Output.JSONFormat {
		t.Error("JSONFormat should be true")
	}
	if cfg.Diagram.File != "board.svg" || cfg.Diagram.SquareSize != 60 {
		t.Errorf("Diagram = %+v", cfg.Diagram)
	}
	if cfg.Perft.Depth != 5 || cfg.Perft.Workers != 3 || !cfg.Perft.Divide || !cfg.Perft.Verify {
		t.Errorf("Perft = %+v", cfg.Perft)
	}
	if cfg.OutputFile != &out {
		t.Error("WithOutput did not set OutputFile")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
