package cli

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/skbhati199/ai-img-gen-go/internal/config"
)

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, w io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if cfg.Format == "json" {
		return zerolog.New(w).Level(level).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(w),
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
