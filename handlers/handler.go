package handlers

import (
	"food-preorder-api/store"

	"go.uber.org/zap"
)

// Handler carries the injected store and logger; every endpoint is a
// method on it. There is no ambient state.
type Handler struct {
	store *store.Store
	log   *zap.Logger
}

func New(s *store.Store, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{store: s, log: log}
}
