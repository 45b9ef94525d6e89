package statemachine

import "food-preorder-api/models"

// pipeline is the nominal kitchen flow shown to clients. Status updates are
// not forced through it: the status endpoint accepts any allowed status at
// any time (last write wins, no audit trail).
var pipeline = []models.OrderStatus{
	models.StatusPending,
	models.StatusCooking,
	models.StatusReady,
	models.StatusPicked,
}

var allowed = map[models.OrderStatus]bool{
	models.StatusPending: true,
	models.StatusCooking: true,
	models.StatusReady:   true,
	models.StatusPicked:  true,
	models.StatusPaid:    true,
}

// Valid reports whether s is in the allowed status set.
func Valid(s models.OrderStatus) bool {
	return allowed[s]
}

// AllStatuses returns the allowed status set in a stable order.
func AllStatuses() []models.OrderStatus {
	out := make([]models.OrderStatus, len(pipeline), len(pipeline)+1)
	copy(out, pipeline)
	return append(out, models.StatusPaid)
}

// Pipeline returns the nominal Pending → Cooking → Ready → Picked flow.
func Pipeline() []models.OrderStatus {
	out := make([]models.OrderStatus, len(pipeline))
	copy(out, pipeline)
	return out
}

// Next returns the status that follows s in the nominal pipeline.
// The second return is false for Picked, Paid and unknown statuses.
func Next(s models.OrderStatus) (models.OrderStatus, bool) {
	for i, st := range pipeline {
		if st == s && i+1 < len(pipeline) {
			return pipeline[i+1], true
		}
	}
	return "", false
}
