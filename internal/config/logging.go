package config

import (
	"github.com/rs/zerolog"
)

// LogLevel maps the verbosity setting to a zerolog level.
func (c *Config) LogLevel() zerolog.Level {
	switch {
	case c.Verbosity <= 0:
		return zerolog.WarnLevel
	case c.Verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// Logger builds the logger writing to LogFile: JSON lines when LogJSON is
// set, otherwise the human-readable console format.
func (c *Config) Logger() zerolog.Logger {
	w := c.LogFile
	if !c.LogJSON {
		w = zerolog.ConsoleWriter{Out: c.LogFile, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	}
	return zerolog.New(w).Level(c.LogLevel()).With().Timestamp().Logger()
}
