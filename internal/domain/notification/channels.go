package notification

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ══════════════════════════════════════════════════════════════════════════════
// CHANNEL VARIANTS
// Оба варианта пишут ровно одну строку на отправку в переданный io.Writer.
// Реальных транспортов (SMTP, SMS-шлюз) здесь нет - только консольный вывод.
// ══════════════════════════════════════════════════════════════════════════════

// EmailChannel доставляет уведомления "по email" в виде строки в out.
type EmailChannel struct {
	out io.Writer
}

// NewEmailChannel создаёт email-канал. Если out == nil, используется os.Stdout.
func NewEmailChannel(out io.Writer) *EmailChannel {
	if out == nil {
		out = os.Stdout
	}
	return &EmailChannel{out: out}
}

// Type реализует Channel.
func (c *EmailChannel) Type() ChannelType {
	return ChannelTypeEmail
}

// Send реализует Channel. Для валидного сообщения выполняется ровно одна
// запись, и результат всегда успешный.
func (c *EmailChannel) Send(ctx context.Context, msg Message) DeliveryResult {
	return deliver(ctx, c.out, ChannelTypeEmail, "sending email to %s: %s\n", msg)
}

// SMSChannel доставляет уведомления "по SMS" в виде строки в out.
type SMSChannel struct {
	out io.Writer
}

// NewSMSChannel создаёт SMS-канал. Если out == nil, используется os.Stdout.
func NewSMSChannel(out io.Writer) *SMSChannel {
	if out == nil {
		out = os.Stdout
	}
	return &SMSChannel{out: out}
}

// Type реализует Channel.
func (c *SMSChannel) Type() ChannelType {
	return ChannelTypeSMS
}

// Send реализует Channel.
func (c *SMSChannel) Send(ctx context.Context, msg Message) DeliveryResult {
	return deliver(ctx, c.out, ChannelTypeSMS, "sending SMS to %s: %s\n", msg)
}

// deliver - общая запись одной строки доставки.
// Контракт каналов одинаковый, поэтому и реализация общая.
func deliver(ctx context.Context, out io.Writer, ct ChannelType, format string, msg Message) DeliveryResult {
	if err := ctx.Err(); err != nil {
		return NewFailureResult(ct, err)
	}
	if _, err := fmt.Fprintf(out, format, msg.Recipient, msg.Body); err != nil {
		return NewFailureResult(ct, err)
	}
	return NewSuccessResult(ct)
}
