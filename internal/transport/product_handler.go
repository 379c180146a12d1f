package transport

import (
	"errors"
	"net/http"
	"strconv"

	"threadline/internal/domain"
	"threadline/internal/middleware"
	"threadline/internal/repository"
	"threadline/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateProductRequest represents the product creation payload
type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Slug        *string  `json:"slug"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Sizes       []string `json:"sizes" validate:"required"`
	Gender      string   `json:"gender" validate:"required,oneof=male female kid unisex"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images" validate:"omitempty,dive,required"`
}

// UpdateProductRequest represents a partial product patch. A missing images
// field leaves the stored image set untouched; an explicit empty list
// removes every image.
type UpdateProductRequest struct {
	Title       *string   `json:"title" validate:"omitempty,min=1"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Description *string   `json:"description"`
	Slug        *string   `json:"slug"`
	Stock       *int      `json:"stock" validate:"omitempty,gte=0"`
	Sizes       []string  `json:"sizes"`
	Gender      *string   `json:"gender" validate:"omitempty,oneof=male female kid unisex"`
	Tags        []string  `json:"tags"`
	Status      *bool     `json:"status"`
	Images      *[]string `json:"images"`
}

// ListResponse wraps the product listing
type ListResponse struct {
	Total    int               `json:"total"`
	Products []*domain.Product `json:"products"`
}

// ProductHandler handles HTTP requests for catalog operations
type ProductHandler struct {
	catalog service.CatalogService
	logger  *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(catalog service.CatalogService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{term}", h.GetByTerm)
		r.Patch("/{id}", h.Update)
		r.Delete("/{term}", h.Delete)
	})
}

// Create handles product creation
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product creation validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalog.Create(r.Context(), service.CreateProductInput{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Slug:        req.Slug,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		Gender:      req.Gender,
		Tags:        req.Tags,
		Images:      req.Images,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// List handles the paginated listing of active products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := optionalIntParam(r, "limit")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	offset, err := optionalIntParam(r, "offset")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "offset must be a non-negative integer")
		return
	}

	products, err := h.catalog.List(r.Context(), limit, offset)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ListResponse{
		Total:    len(products),
		Products: products,
	})
}

// GetByTerm handles lookup by id, title or slug
func (h *ProductHandler) GetByTerm(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "term")

	product, err := h.catalog.GetByTerm(r.Context(), term)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Update handles partial updates, including image-set replacement
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	var req UpdateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product update validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalog.Update(r.Context(), id, service.UpdateProductInput{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Slug:        req.Slug,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		Gender:      req.Gender,
		Tags:        req.Tags,
		Status:      req.Status,
		Images:      req.Images,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Delete handles removal by term under the configured deletion policy
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "term")

	result, err := h.catalog.Remove(r.Context(), term)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, result)
}

func (h *ProductHandler) respondServiceError(w http.ResponseWriter, err error) {
	var notFound *service.NotFoundError
	var conflict *repository.ConflictError

	switch {
	case errors.As(err, &notFound):
		middleware.RespondWithError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &conflict):
		middleware.RespondWithError(w, http.StatusConflict, conflict.Detail)
	case domain.IsValidationError(err):
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("Catalog operation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, service.ErrInternal.Error())
	}
}

func optionalIntParam(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return nil, errors.New("invalid " + name)
	}
	return &value, nil
}
