//go:build unit

package pricing_test

import (
	"testing"

	"balancestore/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	calc := pricing.NewCalculator()

	tests := []struct {
		name       string
		subtotal   float64
		percentOff float64
		expected   pricing.Breakdown
	}{
		{
			name:       "10% coupon on a round subtotal",
			subtotal:   10000,
			percentOff: 10,
			expected: pricing.Breakdown{
				Subtotal:       10000,
				DiscountAmount: 1000,
				Net:            9000,
				Tax:            1710,
				GrandTotal:     10710,
			},
		},
		{
			name:     "no coupon",
			subtotal: 10000,
			expected: pricing.Breakdown{
				Subtotal:       10000,
				DiscountAmount: 0,
				Net:            10000,
				Tax:            1900,
				GrandTotal:     11900,
			},
		},
		{
			name:       "discount and tax round independently",
			subtotal:   999,
			percentOff: 10,
			expected: pricing.Breakdown{
				Subtotal:       999,
				DiscountAmount: 100, // round(99.9)
				Net:            899,
				Tax:            171, // round(899 * 0.19) = round(170.81)
				GrandTotal:     1070,
			},
		},
		{
			name:     "empty cart",
			subtotal: 0,
			expected: pricing.Breakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calc.Calculate(tt.subtotal, tt.percentOff))
		})
	}
}

func TestDisplayTotal(t *testing.T) {
	calc := pricing.NewCalculator()

	assert.Equal(t, 9000.0, calc.DisplayTotal(10000, true))
	assert.Equal(t, 10000.0, calc.DisplayTotal(10000, false))
}
