package server

import (
	"fmt"
	"net/http"
	"time"

	"threadline/internal/config"
	"threadline/internal/database"
	custommiddleware "threadline/internal/middleware"
	"threadline/internal/repository"
	"threadline/internal/service"
	"threadline/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *database.Service
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *database.Service) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.IsDevelopment()))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		custommiddleware.RespondWithJSON(w, http.StatusOK, db.Health(r.Context()))
	})

	// Initialize repositories
	productRepo := repository.NewProductRepository(db.Pool(), logger)

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, logger, cfg.Catalog.DeletePolicy)
	seedService := service.NewSeedService(catalogService, productRepo, logger, cfg.Server.IsDevelopment())

	// Initialize handlers and register routes
	productHandler := transport.NewProductHandler(catalogService, logger)
	productHandler.RegisterRoutes(router)

	seedHandler := transport.NewSeedHandler(seedService, logger)
	seedHandler.RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.db != nil {
		s.db.Close()
	}

	s.logger.Sync()
	return nil
}
