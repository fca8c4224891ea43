package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyMarkupZeroPercentIsIdentity(t *testing.T) {
	for _, nett := range []float64{0, 0.01, 99.99, 420, 1234.56} {
		assert.Equal(t, nett, ApplyMarkup(nett, 0), "nett=%v", nett)
	}
}

func TestApplyMarkupIsMonotonic(t *testing.T) {
	netts := []float64{10, 100, 420, 999.99}
	percents := []float64{0, 5, 10, 20, 35.5}

	for i := 1; i < len(netts); i++ {
		for _, p := range percents {
			assert.Greater(t, ApplyMarkup(netts[i], p), ApplyMarkup(netts[i-1], p))
		}
	}
	for _, n := range netts {
		for i := 1; i < len(percents); i++ {
			assert.GreaterOrEqual(t, ApplyMarkup(n, percents[i]), ApplyMarkup(n, percents[i-1]))
		}
	}
}

func TestRoundCurrencyHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{504.0, 504.0},
		{504.006, 504.01},
		{504.004, 504.0},
		{0.006, 0.01},
		{419.999, 420.0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RoundCurrency(tc.in), "in=%v", tc.in)
	}
}

func TestPercentForPrefersExplicitOverride(t *testing.T) {
	policy := NewMarkupPolicy(20)
	override := 12.5

	assert.Equal(t, 20.0, policy.PercentFor(nil))
	assert.Equal(t, 12.5, policy.PercentFor(&override))
}
