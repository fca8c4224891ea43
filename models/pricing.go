package models

// PricedItem is the pricing result for a single travel item.
type PricedItem struct {
	NettTotal    float64 `json:"nett_total"`
	ClientTotal  float64 `json:"client_total"`
	PerNightNett float64 `json:"per_night_nett"`
	Nights       int     `json:"nights"`
	RateID       string  `json:"rate_id,omitempty"`
	Matched      bool    `json:"matched"`
	Estimated    bool    `json:"estimated"` // nett derived from the fallback ratio, not a catalog rate
}
