package transport

import (
	"errors"
	"net/http"

	"threadline/internal/middleware"
	"threadline/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SeedHandler exposes the environment-gated catalog reseed
type SeedHandler struct {
	seeder service.SeedService
	logger *zap.Logger
}

// NewSeedHandler creates a new SeedHandler
func NewSeedHandler(seeder service.SeedService, logger *zap.Logger) *SeedHandler {
	return &SeedHandler{
		seeder: seeder,
		logger: logger,
	}
}

// RegisterRoutes registers the seed route
func (h *SeedHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/seed", h.Run)
}

// Run executes the destructive reset-and-repopulate
func (h *SeedHandler) Run(w http.ResponseWriter, r *http.Request) {
	summary, err := h.seeder.Run(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrSeedForbidden) {
			middleware.RespondWithError(w, http.StatusForbidden, err.Error())
			return
		}
		h.logger.Error("Seed run failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, service.ErrInternal.Error())
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "seed executed",
		"summary": summary,
	})
}
