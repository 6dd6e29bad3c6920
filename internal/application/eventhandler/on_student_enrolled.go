// Package eventhandler contains application-level reactions to domain events.
package eventhandler

import (
	"context"
	"fmt"

	"github.com/alem-hub/solid-go/internal/domain/notification"
	"github.com/alem-hub/solid-go/internal/domain/shared"
	"github.com/alem-hub/solid-go/pkg/logger"
)

// WelcomeOnEnroll sends a welcome notification whenever a student is added
// to the roster. The delivery channel is injected, so any notification
// variant (email, SMS) serves without changes here.
type WelcomeOnEnroll struct {
	channel notification.Channel
	log     *logger.Logger
}

// NewWelcomeOnEnroll creates the handler.
func NewWelcomeOnEnroll(channel notification.Channel, log *logger.Logger) *WelcomeOnEnroll {
	if log == nil {
		log = logger.Default()
	}
	return &WelcomeOnEnroll{
		channel: channel,
		log:     log.With(logger.Component("welcome_on_enroll")),
	}
}

// Name implements shared.EventHandler.
func (h *WelcomeOnEnroll) Name() string {
	return "welcome_on_enroll"
}

// Handle implements shared.EventHandler.
func (h *WelcomeOnEnroll) Handle(ctx context.Context, event shared.Event) error {
	if event.EventType() != shared.EventStudentEnrolled {
		return nil
	}

	name, _ := event.Payload()["name"].(string)
	if name == "" {
		return fmt.Errorf("enrolled event %s has no student name", event.AggregateID())
	}

	msg, err := notification.NewMessage(name, fmt.Sprintf("Welcome to the roster, %s!", name))
	if err != nil {
		return fmt.Errorf("failed to build welcome message: %w", err)
	}

	result := notification.Notify(ctx, h.channel, msg)
	if !result.Success {
		return fmt.Errorf("failed to deliver welcome notification: %w", result.Error)
	}

	h.log.Info("welcome notification sent",
		logger.StudentID(event.AggregateID()),
		logger.StudentName(name),
		logger.Channel(result.Channel.String()),
	)
	return nil
}

// Compile-time interface check.
var _ shared.EventHandler = (*WelcomeOnEnroll)(nil)
