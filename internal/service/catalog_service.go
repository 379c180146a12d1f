package service

import (
	"context"
	"errors"
	"fmt"

	"threadline/internal/config"
	"threadline/internal/domain"
	"threadline/internal/repository"
	"threadline/internal/slug"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInternal is what callers see for unexpected storage failures;
	// the detail stays in the server logs.
	ErrInternal = errors.New("unexpected error, check server logs")
)

// NotFoundError reports that a lookup term did not resolve to a product.
// Filter names the attempted filter ("id" or "title or slug") for
// diagnostic messages.
type NotFoundError struct {
	Filter string
	Term   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product with %s %s not found", e.Filter, e.Term)
}

func (e *NotFoundError) Unwrap() error {
	return repository.ErrProductNotFound
}

// CreateProductInput is the validated command for product creation. Optional
// fields are pointers; absent values fall back to the documented defaults.
type CreateProductInput struct {
	Title       string
	Price       *float64
	Description *string
	Slug        *string
	Stock       *int
	Sizes       []string
	Gender      string
	Tags        []string
	Images      []string
}

// UpdateProductInput is a partial patch. Nil fields leave the stored value
// untouched. A non-nil Images replaces the whole image set; an empty list
// leaves the product with zero images.
type UpdateProductInput struct {
	Title       *string
	Price       *float64
	Description *string
	Slug        *string
	Stock       *int
	Sizes       []string
	Gender      *string
	Tags        []string
	Status      *bool
	Images      *[]string
}

// RemovalResult reports which product a Remove call affected and which
// deletion branch executed.
type RemovalResult struct {
	ID     uuid.UUID           `json:"id"`
	Policy config.DeletePolicy `json:"policy"`
}

// CatalogService composes slug normalization, term resolution and the
// persistence gateway into the catalog's create/list/get/update/delete
// operations.
type CatalogService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	List(ctx context.Context, limit, offset *int) ([]*domain.Product, error)
	GetByTerm(ctx context.Context, term string) (*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch UpdateProductInput) (*domain.Product, error)
	Remove(ctx context.Context, term string) (*RemovalResult, error)
}

type catalogService struct {
	repo         repository.ProductRepository
	logger       *zap.Logger
	deletePolicy config.DeletePolicy
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(repo repository.ProductRepository, logger *zap.Logger, deletePolicy config.DeletePolicy) CatalogService {
	return &catalogService{
		repo:         repo,
		logger:       logger,
		deletePolicy: deletePolicy,
	}
}

// Create persists a new product aggregate. The slug is always computed here:
// from the explicit slug when one is supplied, otherwise from the title.
func (s *catalogService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	rawSlug := input.Title
	if input.Slug != nil && *input.Slug != "" {
		rawSlug = *input.Slug
	}

	product := &domain.Product{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Slug:        slug.Normalize(rawSlug),
		Sizes:       input.Sizes,
		Gender:      domain.Gender(input.Gender),
		Tags:        input.Tags,
		Status:      true,
		Images:      input.Images,
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if product.Sizes == nil {
		product.Sizes = []string{}
	}
	if product.Tags == nil {
		product.Tags = []string{}
	}
	if product.Images == nil {
		product.Images = []string{}
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateAggregate(ctx, product); err != nil {
		return nil, s.storageError("create product", err)
	}

	return product, nil
}

// List returns active products ordered by slug ascending, with the optional
// limit and offset applied.
func (s *catalogService) List(ctx context.Context, limit, offset *int) ([]*domain.Product, error) {
	products, err := s.repo.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, s.storageError("list products", err)
	}
	return products, nil
}

// GetByTerm resolves a term (id, title or slug) to exactly one active product
func (s *catalogService) GetByTerm(ctx context.Context, term string) (*domain.Product, error) {
	return s.findOne(ctx, term, false)
}

// findOne is the lookup resolver. A term that parses as a UUID resolves
// strictly by id; anything else matches case-insensitively on title or
// exactly on lower-cased slug, in a single combined lookup. Only the id path
// can see inactive products, and only when includeInactive is set.
func (s *catalogService) findOne(ctx context.Context, term string, includeInactive bool) (*domain.Product, error) {
	if id, err := uuid.Parse(term); err == nil {
		product, err := s.repo.FindByID(ctx, id, !includeInactive)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, &NotFoundError{Filter: "id", Term: term}
			}
			return nil, s.storageError("find product by id", err)
		}
		return product, nil
	}

	product, err := s.repo.FindActiveByTitleOrSlug(ctx, term)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, &NotFoundError{Filter: "title or slug", Term: term}
		}
		return nil, s.storageError("find product by title or slug", err)
	}
	return product, nil
}

// Update merges the patch onto the stored product and persists the result,
// replacing the image set when the patch carries one, all in a single
// transaction. The slug is re-normalized only when explicitly supplied.
func (s *catalogService) Update(ctx context.Context, id uuid.UUID, patch UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, &NotFoundError{Filter: "id", Term: id.String()}
		}
		return nil, s.storageError("load product for update", err)
	}

	if patch.Title != nil {
		product.Title = *patch.Title
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Description != nil {
		product.Description = patch.Description
	}
	if patch.Slug != nil {
		product.Slug = slug.Normalize(*patch.Slug)
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.Sizes != nil {
		product.Sizes = patch.Sizes
	}
	if patch.Gender != nil {
		product.Gender = domain.Gender(*patch.Gender)
	}
	if patch.Tags != nil {
		product.Tags = patch.Tags
	}
	if patch.Status != nil {
		product.Status = *patch.Status
	}

	replaceImages := patch.Images != nil
	if replaceImages {
		product.Images = *patch.Images
		if product.Images == nil {
			product.Images = []string{}
		}
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateAggregate(ctx, product, replaceImages); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, &NotFoundError{Filter: "id", Term: id.String()}
		}
		return nil, s.storageError("update product", err)
	}

	// Re-resolve after commit so the caller sees the stored state,
	// including the refreshed image set.
	return s.findOne(ctx, id.String(), true)
}

// Remove resolves the term and disposes of the product according to the
// configured deletion policy. Through the id path even inactive products
// can be removed; other terms only discover active ones.
func (s *catalogService) Remove(ctx context.Context, term string) (*RemovalResult, error) {
	product, err := s.findOne(ctx, term, true)
	if err != nil {
		return nil, err
	}

	switch s.deletePolicy {
	case config.DeletePolicySoft:
		err = s.repo.SoftDelete(ctx, product.ID)
	default:
		err = s.repo.HardDelete(ctx, product.ID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, &NotFoundError{Filter: "id", Term: product.ID.String()}
		}
		return nil, s.storageError("remove product", err)
	}

	policy := s.deletePolicy
	if policy != config.DeletePolicySoft {
		policy = config.DeletePolicyHard
	}
	return &RemovalResult{ID: product.ID, Policy: policy}, nil
}

// storageError lets conflicts through with their detail and collapses every
// other storage failure into the generic internal error after logging it.
func (s *catalogService) storageError(op string, err error) error {
	if repository.IsConflict(err) {
		return err
	}
	s.logger.Error("Storage operation failed", zap.String("op", op), zap.Error(err))
	return ErrInternal
}
