package notification

import (
	"context"

	"github.com/alem-hub/solid-go/internal/domain/shared"
)

// Notify отправляет сообщение через переданный канал.
//
// Функция полиморфна по каналу: она вызывает ровно один Send и ничего не
// знает о конкретном варианте. Подстановка любого варианта Channel не
// меняет её поведения.
func Notify(ctx context.Context, ch Channel, msg Message) DeliveryResult {
	if ch == nil {
		return NewFailureResult("", shared.ErrNilChannel)
	}
	if !msg.IsValid() {
		if msg.Recipient == "" {
			return NewFailureResult(ch.Type(), shared.ErrEmptyRecipient)
		}
		return NewFailureResult(ch.Type(), shared.ErrEmptyMessage)
	}
	return ch.Send(ctx, msg)
}
