package quote

import (
	"fmt"
	"strings"

	"tripdesk/models"
)

// DetectDestinationMismatches cross-checks flight arrival cities against
// the hotel cities on the same quote. A flight arriving where no hotel is
// booked is a likely data-entry error; the agent can still force-send, but
// the bypass is recorded on the quote.
func DetectDestinationMismatches(q models.Quote) []string {
	var hotelCities []string
	for _, item := range q.Items {
		if item.Type == models.TravelItemHotel && item.Details.Hotel != nil && item.Details.Hotel.City != "" {
			hotelCities = append(hotelCities, item.Details.Hotel.City)
		}
	}
	if len(hotelCities) == 0 {
		return nil
	}

	var mismatches []string
	for _, item := range q.Items {
		if item.Type != models.TravelItemFlight || item.Details.Flight == nil {
			continue
		}
		arrival := item.Details.Flight.ArrivalCity
		if arrival == "" {
			continue
		}
		if !containsCity(hotelCities, arrival) {
			mismatches = append(mismatches, fmt.Sprintf(
				"flight %q arrives in %s but no hotel is booked there (hotels: %s)",
				item.Name, arrival, strings.Join(hotelCities, ", ")))
		}
	}
	return mismatches
}

func containsCity(cities []string, city string) bool {
	for _, c := range cities {
		if strings.EqualFold(strings.TrimSpace(c), strings.TrimSpace(city)) {
			return true
		}
	}
	return false
}
