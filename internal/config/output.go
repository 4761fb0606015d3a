package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the move notation (SAN, LALG, etc.)
	Format OutputFormat

	// JSONFormat enables a JSON report instead of a move list
	JSONFormat bool

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool

	// KeepResults controls whether the result token ends the move list
	KeepResults bool

	// ShowStatus prints the status line after every applied move
	ShowStatus bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          SAN,
		KeepMoveNumbers: true,
		KeepResults:     true,
	}
}
