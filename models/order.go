package models

import "time"

// OrderStatus represents all possible states of a pre-order
type OrderStatus string

const (
	StatusPending OrderStatus = "Pending"
	StatusCooking OrderStatus = "Cooking"
	StatusReady   OrderStatus = "Ready"
	StatusPicked  OrderStatus = "Picked"
	StatusPaid    OrderStatus = "Paid"
)

// Order is the immutable record created at checkout. Status is the only
// field that changes afterwards; orders are never deleted.
type Order struct {
	Seq             uint        `json:"-" gorm:"primaryKey;autoIncrement"`
	ID              string      `json:"id" gorm:"column:order_id;uniqueIndex;not null"`
	UserID          string      `json:"userId" gorm:"index;not null"`
	RestaurantID    string      `json:"restaurantId" gorm:"not null"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderSeq;references:Seq"`
	Subtotal        float64     `json:"subtotal"`
	DiscountApplied float64     `json:"discountApplied"`
	FinalPrice      float64     `json:"finalPrice"`
	PickupTime      string      `json:"pickupTime"`
	Status          OrderStatus `json:"status" gorm:"not null"`
	PaymentStatus   string      `json:"paymentStatus"` // payment is simulated, always "Paid"
	OTP             string      `json:"otp"`
	QRData          string      `json:"qrData"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// OrderItem snapshots the menu item at checkout time so later menu edits
// cannot change what an order says it charged.
type OrderItem struct {
	Seq      uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderSeq uint    `json:"-" gorm:"index;not null"`
	ItemID   string  `json:"itemId" gorm:"not null"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Discount float64 `json:"discount"`
	Qty      int     `json:"qty"`
}
