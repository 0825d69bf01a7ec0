// Package logging wires zerolog with a console sink and an optional
// rotating file sink for the CLI.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init initializes the global logger. Console output goes to stderr;
// when NESTEGG_LOGS names a directory, a rotating file sink is added.
func Init(verbose bool) {
	// .env may carry NESTEGG_LOGS; missing files are fine.
	_ = godotenv.Load()

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	isTerminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal,
	}

	writer := io.Writer(consoleWriter)
	if logDir := os.Getenv("NESTEGG_LOGS"); logDir != "" {
		if err := os.MkdirAll(logDir, 0755); err == nil {
			fileWriter := &lumberjack.Logger{
				Filename:   filepath.Join(logDir, "nestegg.log"),
				MaxSize:    16, // megabytes
				MaxBackups: 8,
				MaxAge:     90, // days
				Compress:   true,
			}
			writer = zerolog.MultiLevelWriter(consoleWriter, fileWriter)
		} else {
			log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
		}
	}

	log.Logger = zerolog.New(writer).
		With().
		Timestamp().
		Logger()
}

// EngineLogger adapts the global zerolog logger to the simulation
// engine's Logger interface.
type EngineLogger struct{}

func (EngineLogger) Debugf(format string, args ...any) { log.Debug().Msgf(format, args...) }
func (EngineLogger) Infof(format string, args ...any)  { log.Info().Msgf(format, args...) }
func (EngineLogger) Warnf(format string, args ...any)  { log.Warn().Msgf(format, args...) }
func (EngineLogger) Errorf(format string, args ...any) { log.Error().Msgf(format, args...) }
