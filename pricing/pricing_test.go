package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffective(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{name: "plain discount", price: 220, discount: 20, want: 200},
		{name: "no discount", price: 180, discount: 0, want: 180},
		{name: "discount exceeds price floors at zero", price: 50, discount: 80, want: 0},
		{name: "negative price coerced to zero", price: -10, discount: 0, want: 0},
		{name: "negative discount coerced to zero", price: 100, discount: -5, want: 100},
		{name: "NaN price coerced to zero", price: math.NaN(), discount: 10, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Effective(tc.price, tc.discount)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got, 0.0, "effective price must never be negative")
		})
	}
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 400.0, LineTotal(220, 20, 2))
	assert.Equal(t, 0.0, LineTotal(220, 20, 0))
	assert.Equal(t, 0.0, LineTotal(220, 20, -3))
}

func TestSum(t *testing.T) {
	tests := []struct {
		name  string
		lines []Line
		want  Totals
	}{
		{
			name:  "single discounted line",
			lines: []Line{{Price: 220, Discount: 20, Qty: 2}},
			want:  Totals{Subtotal: 440, Discount: 40, FinalPrice: 400},
		},
		{
			name: "mixed lines",
			lines: []Line{
				{Price: 220, Discount: 20, Qty: 1},
				{Price: 20, Discount: 0, Qty: 4},
			},
			want: Totals{Subtotal: 300, Discount: 20, FinalPrice: 280},
		},
		{
			name:  "discount larger than subtotal floors final price",
			lines: []Line{{Price: 10, Discount: 50, Qty: 1}},
			want:  Totals{Subtotal: 10, Discount: 50, FinalPrice: 0},
		},
		{
			name:  "empty set",
			lines: nil,
			want:  Totals{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sum(tc.lines))
		})
	}
}
