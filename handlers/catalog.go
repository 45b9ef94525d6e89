package handlers

import (
	"errors"
	"net/http"

	"food-preorder-api/statemachine"
	"food-preorder-api/store"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns the seeded catalog, optionally narrowed by a
// free-text search or a cuisine filter.
func (h *Handler) ListRestaurants(c *gin.Context) {
	filter := store.RestaurantFilter{
		Search:  c.Query("search"),
		Cuisine: c.Query("cuisine"),
	}
	restaurants, err := h.store.ListRestaurants(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// GetRestaurant returns a single restaurant with its menu
func (h *Handler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.store.GetRestaurant(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetMenu returns a restaurant's menu, optionally filtered by category
// or narrowed to veg items.
func (h *Handler) GetMenu(c *gin.Context) {
	filter := store.MenuFilter{
		Category: c.Query("category"),
		VegOnly:  c.Query("veg") == "true",
	}
	menu, err := h.store.Menu(c.Param("id"), filter)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

// GetOrderStatuses documents the allowed status set and the nominal
// kitchen pipeline for clients.
func (h *Handler) GetOrderStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"statuses": statemachine.AllStatuses(),
		"pipeline": statemachine.Pipeline(),
	})
}
