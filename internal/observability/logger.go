package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a console logger on stderr as the global zerolog logger.
// stdout is left to rendered summaries and exports.
func InitLogger(app string, verbose bool) zerolog.Logger {
	logger := NewLogger(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}, app, verbose)
	log.Logger = logger
	return logger
}

func NewLogger(w io.Writer, app string, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("app", app).Logger()
}
