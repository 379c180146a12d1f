package service

import (
	"context"
	"errors"
	"sync"

	"threadline/internal/repository"

	"go.uber.org/zap"
)

var (
	// ErrSeedForbidden guards the destructive reset outside the
	// designated non-production environment.
	ErrSeedForbidden = errors.New("seeding is only permitted in the development environment")
)

// SeedFailure records one seed definition that could not be inserted
type SeedFailure struct {
	Title string `json:"title"`
	Error string `json:"error"`
}

// SeedSummary aggregates the per-item outcomes of a reseed run
type SeedSummary struct {
	Requested int           `json:"requested"`
	Created   int           `json:"created"`
	Failures  []SeedFailure `json:"failures,omitempty"`
}

// SeedService wipes the catalog and repopulates it from the built-in seed
// definitions.
type SeedService interface {
	Run(ctx context.Context) (*SeedSummary, error)
}

type seedService struct {
	catalog     CatalogService
	repo        repository.ProductRepository
	logger      *zap.Logger
	development bool
}

// NewSeedService creates a new instance of SeedService. development gates
// whether Run is permitted at all.
func NewSeedService(catalog CatalogService, repo repository.ProductRepository, logger *zap.Logger, development bool) SeedService {
	return &seedService{
		catalog:     catalog,
		repo:        repo,
		logger:      logger,
		development: development,
	}
}

// Run truncates every product row, then issues one creation per seed
// definition concurrently and waits for all of them to settle. Creations
// that already committed stay committed even if a sibling fails; failures
// are reported per item and never retried.
func (s *seedService) Run(ctx context.Context) (*SeedSummary, error) {
	if !s.development {
		return nil, ErrSeedForbidden
	}

	if err := s.repo.TruncateAndReset(ctx); err != nil {
		s.logger.Error("Failed to reset catalog before seeding", zap.Error(err))
		return nil, ErrInternal
	}

	definitions := SeedProducts()
	results := make([]error, len(definitions))

	var wg sync.WaitGroup
	for i, definition := range definitions {
		wg.Add(1)
		go func(i int, definition CreateProductInput) {
			defer wg.Done()
			_, err := s.catalog.Create(ctx, definition)
			results[i] = err
		}(i, definition)
	}
	wg.Wait()

	summary := &SeedSummary{Requested: len(definitions)}
	for i, err := range results {
		if err != nil {
			summary.Failures = append(summary.Failures, SeedFailure{
				Title: definitions[i].Title,
				Error: err.Error(),
			})
			continue
		}
		summary.Created++
	}

	s.logger.Info("Seed run finished",
		zap.Int("requested", summary.Requested),
		zap.Int("created", summary.Created),
		zap.Int("failed", len(summary.Failures)),
	)

	return summary, nil
}
