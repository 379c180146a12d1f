package repository

import (
	"context"
	"testing"

	"threadline/internal/domain"
	"threadline/internal/slug"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperty_ProductCreationPreservesAttributes(t *testing.T) {
	repo := newTestRepo()

	properties := gopter.NewProperties(nil)

	properties.Property("creating and retrieving a product preserves all attributes", prop.ForAll(
		func(title string, description string, price float64, stock int, imageCount int) bool {
			ctx := context.Background()

			// Unique suffix keeps generated titles clear of the unique constraints
			uniqueTitle := title + " " + uuid.New().String()

			images := make([]string, imageCount)
			for i := range images {
				images[i] = "http://example.com/" + uuid.New().String() + ".jpg"
			}

			product := &domain.Product{
				ID:          uuid.New(),
				Title:       uniqueTitle,
				Price:       price,
				Description: &description,
				Slug:        slug.Derive(uniqueTitle),
				Stock:       stock,
				Sizes:       []string{"S", "M"},
				Gender:      domain.GenderUnisex,
				Tags:        []string{"generated"},
				Status:      true,
				Images:      images,
			}

			err := repo.CreateAggregate(ctx, product)
			if err != nil {
				t.Logf("FAIL: Failed to create product: %v", err)
				return false
			}

			retrieved, err := repo.FindByID(ctx, product.ID, true)
			if err != nil {
				t.Logf("FAIL: Failed to retrieve product: %v", err)
				return false
			}

			if retrieved.ID != product.ID {
				t.Logf("FAIL: ID mismatch. Expected %s, got %s", product.ID, retrieved.ID)
				return false
			}

			if retrieved.Title != product.Title {
				t.Logf("FAIL: Title mismatch. Expected %s, got %s", product.Title, retrieved.Title)
				return false
			}

			if retrieved.Slug != product.Slug {
				t.Logf("FAIL: Slug mismatch. Expected %s, got %s", product.Slug, retrieved.Slug)
				return false
			}

			if retrieved.Description == nil || *retrieved.Description != description {
				t.Logf("FAIL: Description mismatch. Expected %s, got %v", description, retrieved.Description)
				return false
			}

			// Compare prices with small tolerance for floating point
			if retrieved.Price < product.Price-0.01 || retrieved.Price > product.Price+0.01 {
				t.Logf("FAIL: Price mismatch. Expected %f, got %f", product.Price, retrieved.Price)
				return false
			}

			if retrieved.Stock != product.Stock {
				t.Logf("FAIL: Stock mismatch. Expected %d, got %d", product.Stock, retrieved.Stock)
				return false
			}

			if len(retrieved.Images) != len(images) {
				t.Logf("FAIL: Image count mismatch. Expected %d, got %d", len(images), len(retrieved.Images))
				return false
			}
			for i := range images {
				if retrieved.Images[i] != images[i] {
					t.Logf("FAIL: Image order mismatch at %d. Expected %s, got %s", i, images[i], retrieved.Images[i])
					return false
				}
			}

			// Cleanup
			_ = repo.HardDelete(ctx, product.ID)

			return true
		},
		gen.RegexMatch(`[A-Za-z0-9 ]{3,50}`),       // title
		gen.RegexMatch(`[A-Za-z0-9 .,!?]{10,200}`), // description
		gen.Float64Range(0.01, 9999.99),            // price (positive values)
		gen.IntRange(0, 1000),                      // stock (non-negative)
		gen.IntRange(0, 5),                         // image count
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_SlugAndTitleLookupsAgree(t *testing.T) {
	repo := newTestRepo()

	properties := gopter.NewProperties(nil)

	properties.Property("a product found by title is the same product found by slug", prop.ForAll(
		func(title string) bool {
			ctx := context.Background()

			uniqueTitle := title + " " + uuid.New().String()

			product := &domain.Product{
				ID:     uuid.New(),
				Title:  uniqueTitle,
				Price:  10,
				Slug:   slug.Derive(uniqueTitle),
				Stock:  1,
				Sizes:  []string{"M"},
				Gender: domain.GenderMale,
				Tags:   []string{},
				Status: true,
				Images: []string{},
			}

			err := repo.CreateAggregate(ctx, product)
			if err != nil {
				t.Logf("FAIL: Failed to create product: %v", err)
				return false
			}

			byTitle, err := repo.FindActiveByTitleOrSlug(ctx, uniqueTitle)
			if err != nil {
				t.Logf("FAIL: Lookup by title %q failed: %v", uniqueTitle, err)
				return false
			}

			bySlug, err := repo.FindActiveByTitleOrSlug(ctx, product.Slug)
			if err != nil {
				t.Logf("FAIL: Lookup by slug %q failed: %v", product.Slug, err)
				return false
			}

			if byTitle.ID != product.ID || bySlug.ID != product.ID {
				t.Logf("FAIL: Lookups disagree. title->%s slug->%s want %s", byTitle.ID, bySlug.ID, product.ID)
				return false
			}

			// Cleanup
			_ = repo.HardDelete(ctx, product.ID)

			return true
		},
		gen.RegexMatch(`[A-Za-z][A-Za-z0-9 ]{3,40}`), // title
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
