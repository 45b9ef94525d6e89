package store

import (
	"food-preorder-api/models"

	"golang.org/x/crypto/bcrypt"
)

// demo credentials: user@example.com / 123456
const (
	DemoUserEmail    = "user@example.com"
	DemoUserPassword = "123456"
)

// Seed loads the demo dataset: one user and three restaurants with their
// menus. It is a no-op when the store already holds users, so tests can
// call it repeatedly.
func (s *Store) Seed() error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{ID: "u1", Name: "Shiva", Email: DemoUserEmail, PasswordHash: string(hash)}
	if err := s.db.Create(&user).Error; err != nil {
		return err
	}

	restaurants := []models.Restaurant{
		{
			ID:       "r101",
			Name:     "Pradise",
			Location: "Hyderabad",
			Cuisine:  "Biryani • North Indian",
			Rating:   4.4,
			ETA:      15,
			Image:    "https://dynamic-media-cdn.tripadvisor.com/media/photo-o/1a/f3/37/e5/img-20200220-161954-largejpg.jpg?w=800&h=400&s=1",
			Menu: []models.MenuItem{
				{ID: "m001", Name: "Hyderabadi Chicken Biryani", Price: 220, Discount: 20, Veg: false, Category: "Main"},
				{ID: "m002", Name: "Veg Biryani", Price: 180, Discount: 0, Veg: true, Category: "Main"},
				{ID: "m003", Name: "Paneer Butter Masala", Price: 210, Discount: 30, Veg: true, Category: "Curry"},
				{ID: "m004", Name: "Tandoori Roti", Price: 20, Discount: 0, Veg: true, Category: "Bread"},
			},
		},
		{
			ID:       "r202",
			Name:     "Coastal Cravings",
			Location: "Visakhapatnam",
			Cuisine:  "Seafood • South Indian",
			Rating:   4.6,
			ETA:      20,
			Image:    "https://images.unsplash.com/photo-1544025162-d76694265947?w=1200&q=60&auto=format&fit=crop",
			Menu: []models.MenuItem{
				{ID: "m101", Name: "Prawn Fry", Price: 260, Discount: 40, Veg: false, Category: "Starter"},
				{ID: "m102", Name: "Fish Curry", Price: 240, Discount: 0, Veg: false, Category: "Curry"},
				{ID: "m103", Name: "Curd Rice", Price: 120, Discount: 10, Veg: true, Category: "Rice"},
				{ID: "m104", Name: "Neer Dosa (2 pcs)", Price: 90, Discount: 0, Veg: true, Category: "Bread"},
			},
		},
		{
			ID:       "r303",
			Name:     "pista house",
			Location: "Bengaluru",
			Cuisine:  "Biryani • Fast Food",
			Rating:   4.1,
			ETA:      12,
			Image:    "https://images.unsplash.com/photo-1550547660-d9450f859349?w=1200&q=60&auto=format&fit=crop",
			Menu: []models.MenuItem{
				{ID: "m201", Name: "Cheese Burger", Price: 150, Discount: 20, Veg: false, Category: "Burger"},
				{ID: "m202", Name: "Veggie Burger", Price: 120, Discount: 10, Veg: true, Category: "Burger"},
				{ID: "m203", Name: "French Fries", Price: 80, Discount: 0, Veg: true, Category: "Snacks"},
				{ID: "m204", Name: "Coke (500ml)", Price: 60, Discount: 0, Veg: true, Category: "Beverage"},
			},
		},
	}

	return s.db.Create(&restaurants).Error
}
