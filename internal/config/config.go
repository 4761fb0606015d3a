// Package config provides configuration for the chessrules command-line tools.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputFormat represents different output notation formats.
type OutputFormat int

const (
	SAN  OutputFormat = iota // Standard Algebraic Notation
	LALG                     // Long algebraic (e2e4)
	HALG                     // Hyphenated long algebraic (e2-e4)
	UCI                      // UCI format (e7e8q)
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case SAN:
		return "san"
	case LALG:
		return "lalg"
	case HALG:
		return "halg"
	case UCI:
		return "uci"
	default:
		return "unknown"
	}
}

// MoveFormat returns the engine rendering used for the format.
func (f OutputFormat) MoveFormat() engine.MoveFormat {
	switch f {
	case LALG:
		return engine.FormatLALG
	case HALG:
		return engine.FormatHALG
	case UCI:
		return engine.FormatUCI
	default:
		return engine.FormatSAN
	}
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "san", "":
		return SAN, nil
	case "lalg":
		return LALG, nil
	case "halg":
		return HALG, nil
	case "uci":
		return UCI, nil
	}
	return SAN, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=warnings only, 1=progress, 2=every move
	LogJSON   bool

	// Starting position; empty means the standard initial position.
	FEN string

	Output  *OutputConfig
	Diagram *DiagramConfig
	Perft   *PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Diagram:    NewDiagramConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream moves and reports are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// StartFEN returns the configured starting position or the initial one.
func (c *Config) StartFEN() string {
	if c.FEN == "" {
		return engine.InitialFEN
	}
	return c.FEN
}

// Validate checks the configuration and every sub-configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("negative verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.FEN != "" {
		if _, err := engine.NewPositionFromFEN(c.FEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	if err := c.Diagram.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}
