package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logFileRel is the log file location relative to the XDG state home
var logFileRel = filepath.Join("svnmanifest", "svnmanifest.log")

// SetupLogger configures the global logger based on verbosity level.
// It sets up dual output to both console and a log file. Quiet mode drops
// everything below error unless verbosity was asked for explicitly.
func SetupLogger(verbosity int, quiet bool) {
	SetLevel(verbosity, quiet)

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    false,
	}

	var writers []io.Writer
	writers = append(writers, consoleWriter)

	logFile, err := LogFilePath()
	if err == nil {
		var handle *os.File
		handle, err = openLogFile(logFile)
		if err == nil {
			writers = append(writers, handle)
		}
	}

	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	// Add caller information for debug and trace levels
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Bool("quiet", quiet).Str("logFile", logFile).Msg("Logger initialized")
}

// SetLevel adjusts the global level without touching the writers
func SetLevel(verbosity int, quiet bool) {
	zerolog.SetGlobalLevel(levelFor(verbosity, quiet))
}

func levelFor(verbosity int, quiet bool) zerolog.Level {
	switch {
	case quiet && verbosity == 0:
		return zerolog.ErrorLevel
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogFilePath returns the path to the log file under XDG_STATE_HOME,
// creating its parent directories.
func LogFilePath() (string, error) {
	return xdg.StateFile(logFileRel)
}

// openLogFile opens the log file in append mode
func openLogFile(logPath string) (*os.File, error) {
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
