package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth bounds the perft search depth.
const MaxPerftDepth = 10

// PerftConfig holds settings for move path enumeration.
type PerftConfig struct {
	Depth   int  // Plies to enumerate
	Divide  bool // Report node counts per root move
	Workers int  // Worker goroutines; 0 means one per CPU
	Verify  bool // Cross-check counts against the reference generator
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Depth: 3}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 1..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 0 {
		return fmt.Errorf("negative worker count %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
