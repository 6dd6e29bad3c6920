package pricing

import (
	"testing"

	"github.com/alem-hub/solid-go/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDiscount_NoDiscount(t *testing.T) {
	svc := NewInventoryService()

	got, err := svc.ApplyDiscount(100, NoDiscount{})
	require.NoError(t, err)
	assert.Equal(t, Price(100), got)
}

func TestApplyDiscount_SeasonalDiscount(t *testing.T) {
	svc := NewInventoryService()

	got, err := svc.ApplyDiscount(100, SeasonalDiscount{})
	require.NoError(t, err)
	assert.InDelta(t, 90, got.Float64(), 1e-9)
}

func TestApplyDiscount_PercentageDiscount(t *testing.T) {
	svc := NewInventoryService()

	quarter, err := NewPercentageDiscount(25)
	require.NoError(t, err)

	got, err := svc.ApplyDiscount(200, quarter)
	require.NoError(t, err)
	assert.InDelta(t, 150, got.Float64(), 1e-9)
}

func TestNewPercentageDiscount_Validation(t *testing.T) {
	for _, percent := range []float64{-1, 100.5, 1000} {
		_, err := NewPercentageDiscount(percent)
		assert.ErrorIs(t, err, shared.ErrInvalidPercent)
	}

	free, err := NewPercentageDiscount(100)
	require.NoError(t, err)
	assert.Equal(t, Price(0), free.Calculate(100))
}

func TestApplyDiscount_RejectsNegativePrice(t *testing.T) {
	svc := NewInventoryService()

	_, err := svc.ApplyDiscount(-1, NoDiscount{})
	assert.ErrorIs(t, err, shared.ErrInvalidPrice)
}

func TestApplyDiscount_RejectsNilStrategy(t *testing.T) {
	svc := NewInventoryService()

	_, err := svc.ApplyDiscount(100, nil)
	assert.ErrorIs(t, err, shared.ErrNilStrategy)
}

// doubleOrNothing is a strategy defined outside the pricing dispatcher.
// It exists to show the dispatcher is closed for modification: a brand-new
// rule plugs in without touching ApplyDiscount.
type doubleOrNothing struct{}

func (doubleOrNothing) Name() string            { return "double-or-nothing" }
func (doubleOrNothing) Calculate(p Price) Price { return p * 2 }

func TestApplyDiscount_OpenForExtension(t *testing.T) {
	svc := NewInventoryService()

	got, err := svc.ApplyDiscount(100, doubleOrNothing{})
	require.NoError(t, err)
	assert.Equal(t, Price(200), got)
}
