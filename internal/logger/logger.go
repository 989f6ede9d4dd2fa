// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logger configuration
type Config struct {
	Level  string    // debug, info, warn, error
	Format string    // json, text
	Output string    // stdout, stderr, file
	File   string    // file path if Output is "file"
	Writer io.Writer // overrides Output when set
}

// Setup initializes the global logger
func Setup(cfg Config) error {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	writer := cfg.Writer
	if writer == nil {
		switch cfg.Output {
		case "file":
			if cfg.File == "" {
				cfg.File = "ringtail.log"
			}
			file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
			if err != nil {
				return err
			}
			writer = file
		case "stdout":
			writer = os.Stdout
		default:
			writer = os.Stderr
		}
	}

	if cfg.Format == "text" {
		writer = zerolog.ConsoleWriter{
			Out:        writer,
			TimeFormat: time.RFC3339,
		}
	}

	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	return nil
}

// Get returns the global logger
func Get() *zerolog.Logger {
	return &log.Logger
}

// WithField returns a logger with additional field
func WithField(key string, value any) *zerolog.Logger {
	l := log.With().Interface(key, value).Logger()
	return &l
}
