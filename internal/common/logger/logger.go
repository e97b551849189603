// Package logger provides the process-wide zap logger used by the CLI
// and its scan pipeline. The tlsh engine package never imports this
// package: engine errors are returned, not logged, so that callers
// embedding pkg/tlsh in another program are never forced to adopt this
// logging stack.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init builds the process logger. debug raises the level to Debug and
// logPath selects the file that output is duplicated to alongside
// stdout; an empty logPath disables the file sink.
func Init(debug bool, logPath string) error {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	config.OutputPaths = []string{"stdout"}
	if logPath != "" {
		config.OutputPaths = append(config.OutputPaths, logPath)
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := config.Build()
	if err != nil {
		return err
	}
	log = built
	return nil
}

func ensure() *zap.Logger {
	if log == nil {
		log, _ = zap.NewProduction()
	}
	return log
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) { ensure().Debug(msg, fields...) }

// Info logs an info message.
func Info(msg string, fields ...zap.Field) { ensure().Info(msg, fields...) }

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) { ensure().Warn(msg, fields...) }

// Error logs an error message.
func Error(msg string, fields ...zap.Field) { ensure().Error(msg, fields...) }

// Fatal logs a message and then calls os.Exit(1).
func Fatal(msg string, fields ...zap.Field) { ensure().Fatal(msg, fields...) }

// Sync flushes any buffered log entries.
func Sync() error {
	if log == nil {
		return nil
	}
	return log.Sync()
}
