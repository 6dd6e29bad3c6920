package pricing

import (
	"github.com/alem-hub/solid-go/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// INVENTORY SERVICE (strategy dispatcher)
// ══════════════════════════════════════════════════════════════════════════════

// InventoryService применяет скидки к ценам. Сервис закрыт для изменений:
// он делегирует расчёт переданной стратегии и ничего не знает о конкретных
// правилах. Новое правило - новый вариант DiscountStrategy.
type InventoryService struct{}

// NewInventoryService создаёт диспетчер скидок.
func NewInventoryService() *InventoryService {
	return &InventoryService{}
}

// ApplyDiscount возвращает цену после применения стратегии.
// Возвращает shared.ErrInvalidPrice для отрицательной цены и
// shared.ErrNilStrategy, если стратегия не передана.
func (s *InventoryService) ApplyDiscount(price Price, strategy DiscountStrategy) (Price, error) {
	if !price.IsValid() {
		return 0, shared.ErrInvalidPrice
	}
	if strategy == nil {
		return 0, shared.ErrNilStrategy
	}
	return strategy.Calculate(price), nil
}
