// Package store owns all catalog, user and order state. It is constructed
// once at startup and injected into the handlers; nothing else in the
// repository holds database handles.
package store

import (
	"errors"

	"food-preorder-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned when a user, restaurant or order id does not resolve.
var ErrNotFound = errors.New("record not found")

type Store struct {
	db *gorm.DB
}

// Open connects to the given sqlite DSN and migrates the schema. The default
// deployment uses an in-memory DSN, so a restart discards every order.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// A single connection keeps the in-memory database alive across requests
	// and serializes writes, so order appends stay atomic.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// RestaurantFilter narrows ListRestaurants. Zero value means no filtering.
type RestaurantFilter struct {
	Search  string // matches name, cuisine or location
	Cuisine string
}

func (s *Store) ListRestaurants(f RestaurantFilter) ([]models.Restaurant, error) {
	query := s.db.Preload("Menu")
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("name LIKE ? OR cuisine LIKE ? OR location LIKE ?", like, like, like)
	}
	if f.Cuisine != "" {
		query = query.Where("cuisine LIKE ?", "%"+f.Cuisine+"%")
	}

	var restaurants []models.Restaurant
	if err := query.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *Store) GetRestaurant(id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.Preload("Menu").First(&restaurant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// MenuFilter narrows Menu. Zero value means the full menu.
type MenuFilter struct {
	Category string
	VegOnly  bool
}

// Menu returns a restaurant's menu items, or ErrNotFound for an unknown
// restaurant id.
func (s *Store) Menu(restaurantID string, f MenuFilter) ([]models.MenuItem, error) {
	var restaurant models.Restaurant
	err := s.db.First(&restaurant, "id = ?", restaurantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	query := s.db.Where("restaurant_id = ?", restaurantID)
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.VegOnly {
		query = query.Where("veg = ?", true)
	}

	menu := []models.MenuItem{}
	if err := query.Find(&menu).Error; err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *Store) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) FindUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreateOrder(order *models.Order) error {
	return s.db.Create(order).Error
}

// ListOrders returns orders in insertion order, optionally filtered to one
// user. Orders are never deleted within the process lifetime.
func (s *Store) ListOrders(userID string) ([]models.Order, error) {
	query := s.db.Preload("Items").Order("seq asc")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	orders := []models.Order{}
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].Items == nil {
			orders[i].Items = []models.OrderItem{}
		}
	}
	return orders, nil
}

func (s *Store) GetOrder(id string) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").First(&order, "order_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}
	return &order, nil
}

// SetOrderStatus overwrites an order's status unconditionally and returns
// the updated record. The caller validates the status value first.
func (s *Store) SetOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Order{}).Where("order_id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}
