package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger.  In dev the output goes through the
// console writer for readable lines; everywhere else it stays structured
// JSON on stdout.
func New(env string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if env == "dev" || env == "development" {
		output := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "2006-01-02 15:04:05",
		}
		return zerolog.New(output).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
