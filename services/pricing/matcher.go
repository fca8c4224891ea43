package pricing

import (
	"sort"
	"strings"

	"tripdesk/models"
)

// MatchResult reports the outcome of matching an item against the catalog.
// SupplierCost is the recovered per-night nett cost for the item's
// occupancy; it is only meaningful when Matched is true.
type MatchResult struct {
	Matched      bool
	Rate         *models.RateRecord
	SupplierCost float64
}

// RateMatcher finds the best catalog rate for a travel item. Matching is a
// pure lookup: identical inputs always select the same record.
type RateMatcher struct{}

// identity match strength, strongest first.
const (
	matchNone = iota
	matchSubstring
	matchNameEqual
	matchCode
)

// Match filters the catalog by item kind, validity window and identity,
// then picks the strongest identity match, breaking ties by the most
// recently added record.
func (m RateMatcher) Match(item models.TravelItem, catalog models.RateCatalog) MatchResult {
	kind, ok := rateKindFor(item.Type)
	if !ok {
		return MatchResult{}
	}

	type candidate struct {
		rate     models.RateRecord
		strength int
	}

	itemName := normalizeName(item.Name)
	itemCode := propertyCodeOf(item)

	var candidates []candidate
	for _, rate := range catalog {
		if rate.ItemKind != kind {
			continue
		}
		if !rate.CoversDate(item.StartDate) {
			continue
		}
		strength := identityStrength(itemName, itemCode, rate)
		if strength == matchNone {
			continue
		}
		candidates = append(candidates, candidate{rate: rate, strength: strength})
	}
	if len(candidates) == 0 {
		return MatchResult{}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].strength != candidates[j].strength {
			return candidates[i].strength > candidates[j].strength
		}
		if !candidates[i].rate.CreatedAt.Equal(candidates[j].rate.CreatedAt) {
			return candidates[i].rate.CreatedAt.After(candidates[j].rate.CreatedAt)
		}
		return candidates[i].rate.ID > candidates[j].rate.ID
	})

	best := candidates[0].rate
	adults, children := occupancyOf(item)
	perNight := perNightNettRate(best, adults+children)
	return MatchResult{Matched: true, Rate: &best, SupplierCost: perNight}
}

func identityStrength(itemName, itemCode string, rate models.RateRecord) int {
	if itemCode != "" && rate.PropertyCode != "" && strings.EqualFold(itemCode, rate.PropertyCode) {
		return matchCode
	}
	rateName := normalizeName(rate.PropertyName)
	if itemName == "" || rateName == "" {
		return matchNone
	}
	if itemName == rateName {
		return matchNameEqual
	}
	if strings.Contains(rateName, itemName) || strings.Contains(itemName, rateName) {
		return matchSubstring
	}
	return matchNone
}

// normalizeName lowercases and collapses runs of whitespace.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func rateKindFor(t models.TravelItemType) (models.ItemKind, bool) {
	switch t {
	case models.TravelItemHotel:
		return models.ItemKindHotel, true
	case models.TravelItemActivity:
		return models.ItemKindActivity, true
	case models.TravelItemTransfer:
		return models.ItemKindTransfer, true
	default:
		// Flights are priced from external searches, never from the catalog.
		return "", false
	}
}

func propertyCodeOf(item models.TravelItem) string {
	if item.Details.Hotel != nil {
		return item.Details.Hotel.PropertyCode
	}
	return ""
}

func occupancyOf(item models.TravelItem) (adults, children int) {
	if item.Details.Hotel != nil {
		return item.Details.Hotel.Adults, item.Details.Hotel.Children
	}
	return 2, 0
}

// perNightNettRate selects the occupancy tier for the guest count, falling
// back to the base per-night rate when the tier is unset.
func perNightNettRate(rate models.RateRecord, guests int) float64 {
	if rate.Occupancy != nil {
		occ := *rate.Occupancy
		var tier float64
		switch {
		case guests <= 1:
			tier = occ.Single
		case guests == 2:
			tier = occ.Double
		case guests == 3:
			tier = occ.Triple
		default:
			tier = occ.QuadPlus
		}
		if tier > 0 {
			return tier
		}
	}
	return rate.NettRatePerNight
}
