package handlers

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"food-preorder-api/models"
	"food-preorder-api/pricing"
	"food-preorder-api/statemachine"
	"food-preorder-api/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

type PlaceOrderRequest struct {
	UserID       string `json:"userId" binding:"required"`
	RestaurantID string `json:"restaurantId" binding:"required"`
	Items        []struct {
		ItemID string `json:"itemId"`
		Qty    int    `json:"qty"`
	} `json:"items"`
	PickupTime string `json:"pickupTime"`
}

// genOrderID returns a random order id like ord_f3a91b04c2d7.
func genOrderID() string {
	u := uuid.New()
	return fmt.Sprintf("ord_%x", u[:6])
}

// genOTP returns a 4-digit pickup pin, uniform over 1000..9999.
func genOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken
		panic(err)
	}
	return fmt.Sprintf("%d", 1000+n.Int64())
}

// PlaceOrder validates a checkout request against the catalog and
// converts it into an immutable order. Only itemId and qty are taken
// from the request; prices always come from the menu. Item ids that do
// not resolve against the restaurant's menu are dropped rather than
// failing the order.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if _, err := h.store.FindUserByID(req.UserID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid userId"})
		return
	}
	restaurant, err := h.store.GetRestaurant(req.RestaurantID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid restaurantId"})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Items required"})
		return
	}

	menuByID := make(map[string]models.MenuItem, len(restaurant.Menu))
	for _, m := range restaurant.Menu {
		menuByID[m.ID] = m
	}

	items := []models.OrderItem{}
	lines := []pricing.Line{}
	for _, it := range req.Items {
		m, ok := menuByID[it.ItemID]
		if !ok {
			continue // stale or foreign item id, omit the line
		}
		qty := it.Qty
		if qty < 1 {
			qty = 1
		}
		items = append(items, models.OrderItem{
			ItemID:   m.ID,
			Name:     m.Name,
			Price:    m.Price,
			Discount: m.Discount,
			Qty:      qty,
		})
		lines = append(lines, pricing.Line{Price: m.Price, Discount: m.Discount, Qty: qty})
	}

	totals := pricing.Sum(lines)
	pickupTime := req.PickupTime
	if pickupTime == "" {
		pickupTime = "ASAP"
	}

	now := time.Now().UTC()
	order := models.Order{
		ID:              genOrderID(),
		UserID:          req.UserID,
		RestaurantID:    req.RestaurantID,
		Items:           items,
		Subtotal:        totals.Subtotal,
		DiscountApplied: totals.Discount,
		FinalPrice:      totals.FinalPrice,
		PickupTime:      pickupTime,
		Status:          models.StatusPaid, // payment is simulated as always successful
		PaymentStatus:   "Paid",
		OTP:             genOTP(),
		QRData:          fmt.Sprintf("ORDER:%d|RID:%s", now.UnixMilli(), req.RestaurantID),
		CreatedAt:       now,
	}

	if err := h.store.CreateOrder(&order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to place order"})
		return
	}

	h.log.Info("order placed",
		zap.String("orderId", order.ID),
		zap.String("userId", order.UserID),
		zap.String("restaurantId", order.RestaurantID),
		zap.Int("lines", len(order.Items)),
		zap.Float64("finalPrice", order.FinalPrice))

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// ListOrders returns all orders, or one user's, in insertion order
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.store.ListOrders(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrder returns a single order
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.store.GetOrder(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus overwrites an order's status. Any status in the
// allowed set may be set at any time; the previous value is not kept.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}
	if !statemachine.Valid(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	order, err := h.store.SetOrderStatus(c.Param("id"), req.Status)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order"})
		return
	}

	h.log.Info("order status updated",
		zap.String("orderId", order.ID),
		zap.String("status", string(order.Status)))

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GetOrderQRCode renders the order's qrData as a PNG for pickup scanning
func (h *Handler) GetOrderQRCode(c *gin.Context) {
	order, err := h.store.GetOrder(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load order"})
		return
	}

	png, err := qrcode.Encode(order.QRData, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to render QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
