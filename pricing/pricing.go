// Package pricing holds the pure order-pricing arithmetic. Nothing in here
// touches storage or the network, so both the cart and the order endpoints
// can share it and agree on totals.
package pricing

import "math"

// Line is one priced row of a cart or order.
type Line struct {
	Price    float64
	Discount float64
	Qty      int
}

// Totals is the result of summing a set of lines.
type Totals struct {
	Subtotal   float64
	Discount   float64
	FinalPrice float64
}

// sanitize coerces NaN, Inf and negative inputs to zero so a bad record
// can never produce a negative or non-finite price.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Effective is the per-unit price after discount, floored at zero.
func Effective(price, discount float64) float64 {
	return math.Max(0, sanitize(price)-sanitize(discount))
}

// LineTotal prices qty units of an item.
func LineTotal(price, discount float64, qty int) float64 {
	if qty < 0 {
		qty = 0
	}
	return Effective(price, discount) * float64(qty)
}

// Sum computes order totals over a set of lines:
// subtotal is the undiscounted value, final price is floored at zero.
func Sum(lines []Line) Totals {
	var t Totals
	for _, l := range lines {
		qty := l.Qty
		if qty < 0 {
			qty = 0
		}
		t.Subtotal += sanitize(l.Price) * float64(qty)
		t.Discount += sanitize(l.Discount) * float64(qty)
	}
	t.FinalPrice = math.Max(0, t.Subtotal-t.Discount)
	return t
}
