package notification

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alem-hub/solid-go/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_EverySubstituteBehavesTheSame(t *testing.T) {
	msg, err := NewMessage("student@alem.school", "welcome aboard")
	require.NoError(t, err)

	cases := []struct {
		label string
		build func(out *bytes.Buffer) Channel
		ct    ChannelType
	}{
		{"email", func(out *bytes.Buffer) Channel { return NewEmailChannel(out) }, ChannelTypeEmail},
		{"sms", func(out *bytes.Buffer) Channel { return NewSMSChannel(out) }, ChannelTypeSMS},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			var out bytes.Buffer
			ch := tc.build(&out)

			result := Notify(context.Background(), ch, msg)

			assert.True(t, result.Success)
			assert.Nil(t, result.Error)
			assert.Equal(t, tc.ct, result.Channel)
			assert.False(t, result.DeliveredAt.IsZero())

			// Exactly one send: one line written, containing recipient and body.
			lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
			require.Len(t, lines, 1)
			assert.Contains(t, lines[0], msg.Recipient)
			assert.Contains(t, lines[0], msg.Body)
		})
	}
}

func TestNotify_NilChannel(t *testing.T) {
	msg, err := NewMessage("student@alem.school", "hello")
	require.NoError(t, err)

	result := Notify(context.Background(), nil, msg)

	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Error, shared.ErrNilChannel)
}

func TestNotify_InvalidMessage(t *testing.T) {
	var out bytes.Buffer
	ch := NewEmailChannel(&out)

	result := Notify(context.Background(), ch, Message{Recipient: "", Body: "hello"})
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Error, shared.ErrEmptyRecipient)

	result = Notify(context.Background(), ch, Message{Recipient: "a@b.c", Body: ""})
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Error, shared.ErrEmptyMessage)

	// No partial sends happened.
	assert.Zero(t, out.Len())
}

func TestNotify_CancelledContext(t *testing.T) {
	var out bytes.Buffer
	ch := NewSMSChannel(&out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg, err := NewMessage("+77010000000", "ping")
	require.NoError(t, err)

	result := Notify(ctx, ch, msg)
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Error, context.Canceled)
	assert.Zero(t, out.Len())
}

func TestParseChannelType(t *testing.T) {
	ct, err := ParseChannelType("email")
	require.NoError(t, err)
	assert.Equal(t, ChannelTypeEmail, ct)

	ct, err = ParseChannelType("sms")
	require.NoError(t, err)
	assert.Equal(t, ChannelTypeSMS, ct)

	_, err = ParseChannelType("pigeon")
	assert.ErrorIs(t, err, shared.ErrInvalidChannel)
}

func TestNewMessage_Validation(t *testing.T) {
	_, err := NewMessage("", "body")
	assert.ErrorIs(t, err, shared.ErrEmptyRecipient)

	_, err = NewMessage("a@b.c", "")
	assert.ErrorIs(t, err, shared.ErrEmptyMessage)
}
