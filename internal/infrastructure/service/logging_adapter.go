package service

import (
	"github.com/alem-hub/solid-go/internal/domain/logging"
	"github.com/alem-hub/solid-go/pkg/logger"
)

// StructuredLogger adapts the application's structured JSON logger to the
// domain logging.Logger capability. Swapping it for logging.ConsoleLogger
// requires zero changes in the consuming component.
type StructuredLogger struct {
	log *logger.Logger
}

// NewStructuredLogger creates the adapter.
func NewStructuredLogger(log *logger.Logger) *StructuredLogger {
	if log == nil {
		log = logger.Default()
	}
	return &StructuredLogger{log: log.With(logger.Component("recorder"))}
}

// Log implements logging.Logger.
func (l *StructuredLogger) Log(message string) {
	l.log.Info(message)
}

// Compile-time interface check.
var _ logging.Logger = (*StructuredLogger)(nil)
