package pricing

import (
	"time"

	"tripdesk/models"
)

// PricingService is the pricing surface exposed to the quote-building UI.
type PricingService interface {
	PriceItem(item models.TravelItem, catalog models.RateCatalog, adults, children int, stayStart, stayEnd time.Time) (models.PricedItem, error)
	EstimateNettFromPrice(clientPrice float64) float64
}

// DefaultPricingService implements PricingService.
type DefaultPricingService struct {
	Matcher RateMatcher
	Policy  MarkupPolicy
	// FallbackRatio is the share of the client price assumed to be nett
	// cost when no catalog rate matches. Explicit policy, never hard-coded
	// at call sites.
	FallbackRatio float64
}

// PriceItem matches the item against the catalog and prices the stay.
// When no rate matches, the item's own client price is kept and the nett
// cost is estimated from the fallback ratio; the caller sees Estimated set
// so the margin is never mistaken for a negotiated one.
func (s *DefaultPricingService) PriceItem(item models.TravelItem, catalog models.RateCatalog, adults, children int, stayStart, stayEnd time.Time) (models.PricedItem, error) {
	match := s.Matcher.Match(item, catalog)
	if !match.Matched {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		clientTotal := RoundCurrency(item.Price * float64(qty))
		return models.PricedItem{
			NettTotal:   RoundCurrency(s.EstimateNettFromPrice(clientTotal)),
			ClientTotal: clientTotal,
			Matched:     false,
			Estimated:   true,
		}, nil
	}

	markup := s.Policy.PercentFor(item.MarkupOverride)
	return Price(*match.Rate, adults, children, stayStart, stayEnd, markup)
}

// EstimateNettFromPrice applies the configured fallback ratio.
func (s *DefaultPricingService) EstimateNettFromPrice(clientPrice float64) float64 {
	return clientPrice * s.FallbackRatio
}
