// Package notification содержит доменную модель доставки уведомлений.
//
// Это демонстрация принципа подстановки Лисков (Liskov Substitution):
// все варианты Channel взаимозаменяемы. Ни один вариант не падает там,
// где контракт обещает успех, и ни один не предъявляет дополнительных
// предусловий к сообщению.
package notification

import (
	"context"
	"time"

	"github.com/alem-hub/solid-go/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// CHANNEL TYPE
// ══════════════════════════════════════════════════════════════════════════════

// ChannelType определяет тип канала доставки уведомлений.
type ChannelType string

const (
	// ChannelTypeEmail - доставка по email.
	ChannelTypeEmail ChannelType = "email"

	// ChannelTypeSMS - доставка по SMS.
	ChannelTypeSMS ChannelType = "sms"
)

// IsValid проверяет корректность типа канала.
func (ct ChannelType) IsValid() bool {
	switch ct {
	case ChannelTypeEmail, ChannelTypeSMS:
		return true
	default:
		return false
	}
}

// String возвращает строковое представление типа канала.
func (ct ChannelType) String() string {
	return string(ct)
}

// ParseChannelType разбирает строку в ChannelType.
func ParseChannelType(s string) (ChannelType, error) {
	ct := ChannelType(s)
	if !ct.IsValid() {
		return "", shared.ErrInvalidChannel
	}
	return ct, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// MESSAGE
// ══════════════════════════════════════════════════════════════════════════════

// Message представляет уведомление для доставки.
type Message struct {
	// Recipient - адресат (email, номер телефона).
	Recipient string

	// Body - текст уведомления.
	Body string
}

// NewMessage создаёт сообщение с валидацией.
func NewMessage(recipient, body string) (Message, error) {
	if recipient == "" {
		return Message{}, shared.ErrEmptyRecipient
	}
	if body == "" {
		return Message{}, shared.ErrEmptyMessage
	}
	return Message{Recipient: recipient, Body: body}, nil
}

// IsValid проверяет корректность сообщения.
func (m Message) IsValid() bool {
	return m.Recipient != "" && m.Body != ""
}

// ══════════════════════════════════════════════════════════════════════════════
// DELIVERY RESULT
// ══════════════════════════════════════════════════════════════════════════════

// DeliveryResult представляет результат доставки уведомления.
type DeliveryResult struct {
	// Success - успешно ли доставлено.
	Success bool

	// Channel - канал, через который было отправлено.
	Channel ChannelType

	// DeliveredAt - время доставки.
	DeliveredAt time.Time

	// Error - ошибка доставки (если Success = false).
	Error error
}

// NewSuccessResult создаёт результат успешной доставки.
func NewSuccessResult(channel ChannelType) DeliveryResult {
	return DeliveryResult{
		Success:     true,
		Channel:     channel,
		DeliveredAt: time.Now().UTC(),
	}
}

// NewFailureResult создаёт результат неудачной доставки.
func NewFailureResult(channel ChannelType, err error) DeliveryResult {
	return DeliveryResult{
		Success:     false,
		Channel:     channel,
		DeliveredAt: time.Now().UTC(),
		Error:       err,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// CHANNEL INTERFACE
// ══════════════════════════════════════════════════════════════════════════════

// Channel определяет интерфейс канала доставки уведомлений.
//
// Контракт подстановки: для любого валидного Message вызов Send выполняет
// ровно одну отправку и возвращает Success = true. Варианты не имеют права
// усиливать предусловия или падать там, где контракт обещает успех.
type Channel interface {
	// Type возвращает тип канала.
	Type() ChannelType

	// Send отправляет уведомление. ctx используется для отмены.
	Send(ctx context.Context, msg Message) DeliveryResult
}
