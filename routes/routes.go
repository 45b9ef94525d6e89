package routes

import (
	"food-preorder-api/handlers"
	"food-preorder-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/login", h.Login)

		// Catalog (no auth needed)
		public.GET("/restaurants", h.ListRestaurants)
		public.GET("/restaurants/:id", h.GetRestaurant)
		public.GET("/restaurants/:id/menu", h.GetMenu)

		// Orders
		public.POST("/orders", h.PlaceOrder)
		public.GET("/orders", h.ListOrders)
		public.GET("/orders/:id", h.GetOrder)
		public.GET("/orders/:id/qrcode", h.GetOrderQRCode)
		public.PUT("/orders/:id/status", h.UpdateOrderStatus)

		// Status set info (great for docs/Postman)
		public.GET("/order-statuses", h.GetOrderStatuses)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", h.GetProfile)
	}
}
