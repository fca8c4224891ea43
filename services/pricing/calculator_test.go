package pricing

import (
	"testing"
	"time"

	"tripdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func hilgmiRate() models.RateRecord {
	return models.RateRecord{
		ID:           "rate-hilgmi",
		SupplierName: "Hilton Wholesale",
		PropertyName: "Hilton Garden Inn Miami",
		PropertyCode: "HILGMI001",
		ItemKind:     models.ItemKindHotel,
		ValidFrom:    date(2025, 1, 1),
		ValidTo:      date(2025, 1, 31),
		RoomType:     "Double",
		Occupancy:    &models.OccupancyRates{Double: 140},
		Currency:     "USD",
	}
}

func TestPriceThreeNightDoubleOccupancy(t *testing.T) {
	got, err := Price(hilgmiRate(), 2, 0, date(2025, 1, 15), date(2025, 1, 18), 20)
	require.NoError(t, err)

	assert.Equal(t, 3, got.Nights)
	assert.Equal(t, 140.0, got.PerNightNett)
	assert.Equal(t, 420.0, got.NettTotal)
	assert.Equal(t, 504.0, got.ClientTotal)
}

func TestPriceNettTotalIsExact(t *testing.T) {
	rate := models.RateRecord{
		ID:               "rate-exact",
		ItemKind:         models.ItemKindHotel,
		ValidFrom:        date(2025, 1, 1),
		ValidTo:          date(2025, 12, 31),
		NettRatePerNight: 133.33,
	}
	got, err := Price(rate, 2, 0, date(2025, 3, 1), date(2025, 3, 8), 15)
	require.NoError(t, err)

	// No rounding before the final markup step.
	assert.Equal(t, got.PerNightNett*float64(got.Nights), got.NettTotal)
}

func TestPriceIsIdempotent(t *testing.T) {
	first, err := Price(hilgmiRate(), 2, 0, date(2025, 1, 15), date(2025, 1, 18), 20)
	require.NoError(t, err)
	second, err := Price(hilgmiRate(), 2, 0, date(2025, 1, 15), date(2025, 1, 18), 20)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPriceRejectsSameDayStay(t *testing.T) {
	_, err := Price(hilgmiRate(), 2, 0, date(2025, 1, 15), date(2025, 1, 15), 20)
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeInvalidDateRange))
}

func TestPriceRejectsReversedDates(t *testing.T) {
	_, err := Price(hilgmiRate(), 2, 0, date(2025, 1, 18), date(2025, 1, 15), 20)
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeInvalidDateRange))
}

func TestPriceRejectsUnusableOccupancy(t *testing.T) {
	// Only the double tier is set and there is no base rate, so a single
	// guest has no usable per-night price.
	_, err := Price(hilgmiRate(), 1, 0, date(2025, 1, 15), date(2025, 1, 18), 20)
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeInvalidOccupancyRate))
}

func TestPriceFallsBackToBaseRateWhenTierUnset(t *testing.T) {
	rate := hilgmiRate()
	rate.NettRatePerNight = 90

	got, err := Price(rate, 2, 1, date(2025, 1, 15), date(2025, 1, 17), 0)
	require.NoError(t, err)

	assert.Equal(t, 90.0, got.PerNightNett)
	assert.Equal(t, 180.0, got.NettTotal)
	assert.Equal(t, 180.0, got.ClientTotal)
}

func TestPriceQuadPlusTierCoversLargeParties(t *testing.T) {
	rate := hilgmiRate()
	rate.Occupancy = &models.OccupancyRates{Double: 140, QuadPlus: 220}

	got, err := Price(rate, 4, 2, date(2025, 1, 15), date(2025, 1, 17), 10)
	require.NoError(t, err)
	assert.Equal(t, 220.0, got.PerNightNett)
}
