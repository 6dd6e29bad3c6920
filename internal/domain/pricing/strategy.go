// Package pricing содержит доменную модель расчёта скидок.
//
// Это демонстрация принципа открытости/закрытости (Open/Closed):
// новое правило ценообразования - это новый вариант DiscountStrategy,
// диспетчер InventoryService при этом не меняется.
package pricing

import (
	"fmt"

	"github.com/alem-hub/solid-go/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Price представляет цену товара.
type Price float64

// IsValid проверяет, что цена неотрицательная.
func (p Price) IsValid() bool {
	return p >= 0
}

// Float64 возвращает числовое значение цены.
func (p Price) Float64() float64 {
	return float64(p)
}

// ══════════════════════════════════════════════════════════════════════════════
// DISCOUNT STRATEGY
// ══════════════════════════════════════════════════════════════════════════════

// DiscountStrategy определяет правило пересчёта цены.
// Варианты не имеют состояния и создаются вызывающей стороной.
type DiscountStrategy interface {
	// Name возвращает имя стратегии для логирования и выбора из конфигурации.
	Name() string

	// Calculate возвращает цену после применения скидки.
	Calculate(price Price) Price
}

// NoDiscount - стратегия без скидки: цена возвращается как есть.
type NoDiscount struct{}

// Name реализует DiscountStrategy.
func (NoDiscount) Name() string { return "none" }

// Calculate реализует DiscountStrategy.
func (NoDiscount) Calculate(price Price) Price { return price }

// SeasonalDiscount - сезонная скидка 10%.
type SeasonalDiscount struct{}

// Name реализует DiscountStrategy.
func (SeasonalDiscount) Name() string { return "seasonal" }

// Calculate реализует DiscountStrategy.
func (SeasonalDiscount) Calculate(price Price) Price {
	return price * 0.90
}

// PercentageDiscount - скидка на произвольный процент.
// Добавлена как доказательство точки расширения: новый вариант
// не потребовал изменений в InventoryService.
type PercentageDiscount struct {
	percent float64
}

// NewPercentageDiscount создаёт процентную скидку с валидацией.
func NewPercentageDiscount(percent float64) (PercentageDiscount, error) {
	if percent < 0 || percent > 100 {
		return PercentageDiscount{}, shared.ErrInvalidPercent
	}
	return PercentageDiscount{percent: percent}, nil
}

// Name реализует DiscountStrategy.
func (d PercentageDiscount) Name() string {
	return fmt.Sprintf("percent-%.0f", d.percent)
}

// Calculate реализует DiscountStrategy.
func (d PercentageDiscount) Calculate(price Price) Price {
	return price * Price(1-d.percent/100)
}
