package eventhandler

import (
	"bytes"
	"context"
	"testing"

	"github.com/alem-hub/solid-go/internal/domain/notification"
	"github.com/alem-hub/solid-go/internal/domain/shared"
	"github.com/alem-hub/solid-go/internal/domain/student"
	"github.com/alem-hub/solid-go/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logger.Logger {
	return logger.New(logger.Options{Output: &bytes.Buffer{}, Level: logger.LevelFatal})
}

func enrolledEvent(t *testing.T, name string) shared.Event {
	t.Helper()
	s, err := student.NewStudent("id-1", student.Name(name))
	require.NoError(t, err)
	return student.NewEnrolledEvent(s, 0)
}

func TestHandle_SendsWelcomeThroughInjectedChannel(t *testing.T) {
	var out bytes.Buffer
	handler := NewWelcomeOnEnroll(notification.NewEmailChannel(&out), quietLogger())

	err := handler.Handle(context.Background(), enrolledEvent(t, "Aidos"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Welcome to the roster, Aidos!")
}

func TestHandle_AnyChannelVariantWorks(t *testing.T) {
	var out bytes.Buffer
	handler := NewWelcomeOnEnroll(notification.NewSMSChannel(&out), quietLogger())

	err := handler.Handle(context.Background(), enrolledEvent(t, "Bella"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Bella")
}

func TestHandle_IgnoresOtherEvents(t *testing.T) {
	var out bytes.Buffer
	handler := NewWelcomeOnEnroll(notification.NewEmailChannel(&out), quietLogger())

	s, err := student.NewStudent("id-1", "Aidos")
	require.NoError(t, err)

	err = handler.Handle(context.Background(), student.NewRemovedEvent(s, 0))
	require.NoError(t, err)
	assert.Zero(t, out.Len())
}
