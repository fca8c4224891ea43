package pricing

import (
	"fmt"
	"math"
	"time"

	"tripdesk/models"
)

// Price computes the nett and client totals for a stay against a matched
// rate. The calculation is pure: identical inputs always yield identical
// outputs, so the caller may recompute freely whenever guests or dates
// change. Rounding happens exactly once, on the final client total; the
// nett total stays exact to avoid compounding per-night rounding error.
func Price(rate models.RateRecord, adults, children int, stayStart, stayEnd time.Time, markupPercent float64) (models.PricedItem, error) {
	if adults+children < 1 {
		return models.PricedItem{}, NewInvalidOccupancyRateError("at least one guest is required")
	}

	nights := nightCount(stayStart, stayEnd)
	if nights <= 0 {
		// Zero-night same-day stays are a caller decision, never coerced to 1.
		return models.PricedItem{}, NewInvalidDateRangeError(
			fmt.Sprintf("stay %s to %s yields a non-positive night count",
				stayStart.Format("2006-01-02"), stayEnd.Format("2006-01-02")))
	}

	perNight := perNightNettRate(rate, adults+children)
	if perNight <= 0 {
		return models.PricedItem{}, NewInvalidOccupancyRateError(
			fmt.Sprintf("rate %s has no usable per-night price for %d guests", rate.ID, adults+children))
	}

	nettTotal := perNight * float64(nights)
	clientTotal := ApplyMarkup(nettTotal, markupPercent)

	return models.PricedItem{
		NettTotal:    nettTotal,
		ClientTotal:  clientTotal,
		PerNightNett: perNight,
		Nights:       nights,
		RateID:       rate.ID,
		Matched:      true,
	}, nil
}

// nightCount is the stay length in whole nights, rounding partial days up.
func nightCount(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}
