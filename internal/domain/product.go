package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Gender is the fixed set of audiences a product can target
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderKid    Gender = "kid"
	GenderUnisex Gender = "unisex"
)

var (
	ErrInvalidGender = errors.New("gender must be one of: male, female, kid, unisex")
	ErrNegativePrice = errors.New("price must not be negative")
	ErrNegativeStock = errors.New("stock must not be negative")
	ErrEmptyTitle    = errors.New("title must not be empty")
	ErrEmptySlug     = errors.New("slug must not be empty")
)

// Product is the catalog aggregate root. Images holds the owned image URLs
// in insertion order; the rows behind them never outlive the product.
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Price       float64   `json:"price" db:"price"`
	Description *string   `json:"description" db:"description"`
	Slug        string    `json:"slug" db:"slug"`
	Stock       int       `json:"stock" db:"stock"`
	Sizes       []string  `json:"sizes" db:"sizes"`
	Gender      Gender    `json:"gender" db:"gender"`
	Tags        []string  `json:"tags" db:"tags"`
	Status      bool      `json:"status" db:"status"`
	Images      []string  `json:"images"`
}

// ProductImage mirrors a single product_images row. The repository flattens
// these to URL strings before a product leaves the persistence layer.
type ProductImage struct {
	ID        int64     `json:"id" db:"id"`
	URL       string    `json:"url" db:"url"`
	Status    bool      `json:"status" db:"status"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
}

// ValidGender reports whether g is a member of the gender enumeration
func ValidGender(g Gender) bool {
	switch g {
	case GenderMale, GenderFemale, GenderKid, GenderUnisex:
		return true
	}
	return false
}

// IsValidationError reports whether err stems from an aggregate invariant
// violation rather than a storage failure.
func IsValidationError(err error) bool {
	for _, sentinel := range []error{ErrEmptyTitle, ErrEmptySlug, ErrNegativePrice, ErrNegativeStock, ErrInvalidGender} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Validate checks the aggregate invariants that do not need storage access.
// Uniqueness of title and slug is enforced by the database constraints.
func (p *Product) Validate() error {
	if p.Title == "" {
		return ErrEmptyTitle
	}
	if p.Slug == "" {
		return ErrEmptySlug
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	if !ValidGender(p.Gender) {
		return fmt.Errorf("%w: got %q", ErrInvalidGender, p.Gender)
	}
	return nil
}
