package pricing

import "math"

// MarkupPolicy is the single source of truth for the margin applied on top
// of nett cost. The value is threaded explicitly into every calculation;
// there is no mutable global. Quote- or item-level overrides must be stored
// on the item itself and passed in, never substituted silently.
type MarkupPolicy struct {
	percent float64
}

// NewMarkupPolicy builds a policy with the given default markup percentage.
func NewMarkupPolicy(percent float64) MarkupPolicy {
	return MarkupPolicy{percent: percent}
}

// Percent returns the policy's markup percentage.
func (p MarkupPolicy) Percent() float64 {
	return p.percent
}

// PercentFor returns the markup to use for an item: the explicit override
// when one is set, the policy default otherwise.
func (p MarkupPolicy) PercentFor(override *float64) float64 {
	if override != nil {
		return *override
	}
	return p.percent
}

// ApplyMarkup adds percent on top of nett and rounds to currency precision.
// ApplyMarkup(n, 0) == n for any n already at currency precision, and the
// result is monotonically increasing in both arguments.
func ApplyMarkup(nett, percent float64) float64 {
	return RoundCurrency(nett * (1 + percent/100))
}

// RoundCurrency rounds to 2 decimal places, half up.
func RoundCurrency(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
