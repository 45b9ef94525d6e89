package models

import "food-preorder-api/pricing"

type Restaurant struct {
	ID       string     `json:"id" gorm:"primaryKey"`
	Name     string     `json:"name" gorm:"not null"`
	Location string     `json:"location"`
	Cuisine  string     `json:"cuisine"`
	Rating   float64    `json:"rating"`
	ETA      int        `json:"eta"` // estimated pickup readiness in minutes
	Image    string     `json:"image"`
	Menu     []MenuItem `json:"menu,omitempty" gorm:"foreignKey:RestaurantID"`
}

type MenuItem struct {
	ID           string  `json:"id" gorm:"primaryKey"`
	RestaurantID string  `json:"restaurantId" gorm:"index;not null"`
	Name         string  `json:"name" gorm:"not null"`
	Price        float64 `json:"price" gorm:"not null"`
	Discount     float64 `json:"discount"`
	Veg          bool    `json:"veg"`
	Category     string  `json:"category"`
}

// EffectivePrice is what the customer actually pays per unit.
func (m MenuItem) EffectivePrice() float64 {
	return pricing.Effective(m.Price, m.Discount)
}
