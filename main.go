package main

import (
	"net/http"
	"os"

	"food-preorder-api/config"
	"food-preorder-api/handlers"
	"food-preorder-api/logger"
	"food-preorder-api/routes"
	"food-preorder-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Initialize the in-memory store and seed the demo catalog
	st, err := store.Open(cfg.DBDSN)
	if err != nil {
		log.Fatal("Failed to open store", zap.Error(err))
	}
	if err := st.Seed(); err != nil {
		log.Fatal("Failed to seed demo data", zap.Error(err))
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Pre-Order API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍔 Welcome to the Food Pre-Order API",
			"docs":    "/api/order-statuses",
			"health":  "/health",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, handlers.New(st, log))

	// Start server
	log.Info("🚀 Server running", zap.String("addr", "http://localhost:"+cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
