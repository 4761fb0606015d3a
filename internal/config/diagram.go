package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Bounds for the diagram square size in pixels.
const (
	MinSquareSize = 16
	MaxSquareSize = 256
)

// DiagramConfig holds settings for SVG board diagrams.
type DiagramConfig struct {
	File              string // Output path; empty disables the diagram
	SquareSize        int    // Square edge in pixels
	Flip              bool   // Draw with Black at the bottom
	Coordinates       bool   // Label files and ranks
	HighlightLastMove bool   // Shade the squares of the last move
}

// NewDiagramConfig creates a DiagramConfig with default values.
func NewDiagramConfig() *DiagramConfig {
	return &DiagramConfig{
		SquareSize:        45,
		Coordinates:       true,
		HighlightLastMove: true,
	}
}

// Enabled reports whether a diagram should be written.
func (d *DiagramConfig) Enabled() bool {
	return d.File != ""
}

// Validate checks that the diagram configuration is valid.
func (d *DiagramConfig) Validate() error {
	if d.SquareSize < MinSquareSize || d.SquareSize > MaxSquareSize {
		return fmt.Errorf("square size %d outside %d..%d: %w",
			d.SquareSize, MinSquareSize, MaxSquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
