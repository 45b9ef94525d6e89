// Package cart implements the in-session shopping cart. A cart only ever
// holds items from one restaurant; switching restaurants is destructive and
// must be confirmed by the caller.
package cart

import (
	"errors"

	"food-preorder-api/models"
	"food-preorder-api/pricing"
)

// ErrDifferentRestaurant is returned by Add when the cart already holds
// items from another restaurant and the caller did not confirm clearing it.
var ErrDifferentRestaurant = errors.New("cart holds items from another restaurant")

// Line is one cart row. Price and discount are cached from the menu at
// add time for display only; the server reprices at checkout.
type Line struct {
	ItemID       string
	RestaurantID string
	Name         string
	Price        float64
	Discount     float64
	Qty          int
}

// ItemQty is the shape of one item in a checkout request.
type ItemQty struct {
	ItemID string `json:"itemId"`
	Qty    int    `json:"qty"`
}

// Cart accumulates a customer's selection for one browsing session.
// It is discarded after checkout or an explicit clear.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add merges the item into the cart, incrementing qty if a line for the
// same item already exists. If the cart holds items from another
// restaurant, clearOnSwitch must be true; the prior lines are then dropped.
// Quantities below 1 are treated as 1.
func (c *Cart) Add(item models.MenuItem, qty int, clearOnSwitch bool) error {
	if len(c.lines) > 0 && c.lines[0].RestaurantID != item.RestaurantID {
		if !clearOnSwitch {
			return ErrDifferentRestaurant
		}
		c.lines = nil
	}
	if qty < 1 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Qty += qty
			return nil
		}
	}
	c.lines = append(c.lines, Line{
		ItemID:       item.ID,
		RestaurantID: item.RestaurantID,
		Name:         item.Name,
		Price:        item.Price,
		Discount:     item.Discount,
		Qty:          qty,
	})
	return nil
}

// Increment bumps a line's qty by one. Returns false if no such line.
func (c *Cart) Increment(itemID string) bool {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Qty++
			return true
		}
	}
	return false
}

// Decrement lowers a line's qty by one, flooring at 1. Removal is a
// separate explicit action, never a side effect of decrementing.
func (c *Cart) Decrement(itemID string) bool {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			if c.lines[i].Qty > 1 {
				c.lines[i].Qty--
			}
			return true
		}
	}
	return false
}

// Remove deletes a line unconditionally. Returns false if no such line.
func (c *Cart) Remove(itemID string) bool {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart, used after a successful checkout.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// RestaurantID reports which restaurant the cart is bound to, or "" when empty.
func (c *Cart) RestaurantID() string {
	if len(c.lines) == 0 {
		return ""
	}
	return c.lines[0].RestaurantID
}

// Lines returns a copy of the cart rows in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// ItemCount is the total unit count, used for the cart badge.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Qty
	}
	return n
}

// Totals prices the current selection. Display only: the order endpoint
// recomputes totals from the catalog and never trusts these numbers.
func (c *Cart) Totals() pricing.Totals {
	lines := make([]pricing.Line, len(c.lines))
	for i, l := range c.lines {
		lines[i] = pricing.Line{Price: l.Price, Discount: l.Discount, Qty: l.Qty}
	}
	return pricing.Sum(lines)
}

// CheckoutItems is the {itemId, qty} payload submitted to the order endpoint.
func (c *Cart) CheckoutItems() []ItemQty {
	items := make([]ItemQty, len(c.lines))
	for i, l := range c.lines {
		items[i] = ItemQty{ItemID: l.ItemID, Qty: l.Qty}
	}
	return items
}
