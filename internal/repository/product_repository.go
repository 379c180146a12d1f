package repository

import (
	"context"
	"errors"
	"fmt"

	"threadline/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ConflictError is returned when an insert or update violates a unique
// constraint (duplicate title or slug). Detail carries the database's
// description of the offending key for the caller.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate value: %s", e.Detail)
}

// IsConflict reports whether err is a unique-constraint conflict
func IsConflict(err error) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict)
}

// ProductRepository defines the interface for product aggregate data access.
// Products returned by any method carry their image URLs flattened, in
// insertion order.
type ProductRepository interface {
	CreateAggregate(ctx context.Context, product *domain.Product) error
	ListActive(ctx context.Context, limit, offset *int) ([]*domain.Product, error)
	FindByID(ctx context.Context, id uuid.UUID, onlyActive bool) (*domain.Product, error)
	FindActiveByTitleOrSlug(ctx context.Context, term string) (*domain.Product, error)
	UpdateAggregate(ctx context.Context, product *domain.Product, replaceImages bool) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	TruncateAndReset(ctx context.Context) error
	CountProducts(ctx context.Context) (int, error)
}

type productRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(pool *pgxpool.Pool, logger *zap.Logger) ProductRepository {
	return &productRepository{pool: pool, logger: logger}
}

const productColumns = "id, title, price, description, slug, stock, sizes, gender, tags, status"

// CreateAggregate inserts a product and one image row per URL in a single
// transaction, preserving the order of product.Images.
func (r *productRepository) CreateAggregate(ctx context.Context, product *domain.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer r.rollback(ctx, tx)

	query := `
		INSERT INTO products (id, title, price, description, slug, stock, sizes, gender, tags, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.Exec(
		ctx,
		query,
		product.ID,
		product.Title,
		product.Price,
		product.Description,
		product.Slug,
		product.Stock,
		product.Sizes,
		product.Gender,
		product.Tags,
		product.Status,
	)
	if err != nil {
		return translateError("failed to create product", err)
	}

	if err := insertImages(ctx, tx, product.ID, product.Images); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit product creation: %w", err)
	}

	return nil
}

// ListActive retrieves active products ordered by slug ascending. A nil
// limit means no cap; a nil offset means start at 0.
func (r *productRepository) ListActive(ctx context.Context, limit, offset *int) ([]*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE status = TRUE
		ORDER BY slug ASC
	`, productColumns)

	args := []interface{}{}
	argIndex := 1

	if limit != nil {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, *limit)
		argIndex++
	}
	if offset != nil {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, *offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	if err := r.attachImages(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

// FindByID retrieves a product by its id. With onlyActive set, inactive
// products are treated as absent.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID, onlyActive bool) (*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE id = $1
	`, productColumns)
	if onlyActive {
		query += " AND status = TRUE"
	}

	return r.findOne(ctx, query, id)
}

// FindActiveByTitleOrSlug retrieves an active product matching the term
// case-insensitively on title or exactly on slug, as one combined lookup.
func (r *productRepository) FindActiveByTitleOrSlug(ctx context.Context, term string) (*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE (LOWER(title) = LOWER($1) OR slug = LOWER($1)) AND status = TRUE
	`, productColumns)

	return r.findOne(ctx, query, term)
}

func (r *productRepository) findOne(ctx context.Context, query string, arg interface{}) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	if err := r.attachImages(ctx, []*domain.Product{product}); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateAggregate persists a merged product within one transaction. With
// replaceImages set, every image row owned by the product is deleted first
// and product.Images is inserted as the new set; an empty list leaves the
// product with zero images. Without it, image rows are untouched.
func (r *productRepository) UpdateAggregate(ctx context.Context, product *domain.Product, replaceImages bool) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer r.rollback(ctx, tx)

	if replaceImages {
		if _, err := tx.Exec(ctx, `DELETE FROM product_images WHERE product_id = $1`, product.ID); err != nil {
			return fmt.Errorf("failed to delete product images: %w", err)
		}
		if err := insertImages(ctx, tx, product.ID, product.Images); err != nil {
			return err
		}
	}

	query := `
		UPDATE products
		SET title = $2, price = $3, description = $4, slug = $5,
		    stock = $6, sizes = $7, gender = $8, tags = $9, status = $10
		WHERE id = $1
	`

	tag, err := tx.Exec(
		ctx,
		query,
		product.ID,
		product.Title,
		product.Price,
		product.Description,
		product.Slug,
		product.Stock,
		product.Sizes,
		product.Gender,
		product.Tags,
		product.Status,
	)
	if err != nil {
		return translateError("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit product update: %w", err)
	}

	return nil
}

// HardDelete removes the product row; its image rows are removed by the
// ON DELETE CASCADE constraint, not by an application-level loop.
func (r *productRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// SoftDelete marks the product inactive, keeping the row and its images
func (r *productRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE products SET status = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to soft delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// TruncateAndReset removes every product row and restarts the identity
// sequences so future inserts start cleanly. Used only by seeding.
func (r *productRepository) TruncateAndReset(ctx context.Context) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer r.rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("failed to delete products: %w", err)
	}

	if _, err := tx.Exec(ctx, `TRUNCATE TABLE products RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("failed to truncate products: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit truncate: %w", err)
	}

	return nil
}

// CountProducts returns the total number of product rows, active or not
func (r *productRepository) CountProducts(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// rollback releases the transaction on every exit path. A rollback after a
// successful commit is a no-op; a genuine rollback failure is logged and
// must not mask the error already being propagated.
func (r *productRepository) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		r.logger.Error("Failed to rollback transaction", zap.Error(err))
	}
}

func insertImages(ctx context.Context, tx pgx.Tx, productID uuid.UUID, urls []string) error {
	// Sequential inserts keep the serial ids, and therefore the image
	// order, aligned with the caller-supplied URL order.
	for _, url := range urls {
		_, err := tx.Exec(ctx,
			`INSERT INTO product_images (url, product_id) VALUES ($1, $2)`,
			url, productID,
		)
		if err != nil {
			return translateError("failed to insert product image", err)
		}
	}
	return nil
}

// attachImages loads the image URLs for every product in one query and
// assigns them in image-id order.
func (r *productRepository) attachImages(ctx context.Context, products []*domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(products))
	byID := make(map[uuid.UUID]*domain.Product, len(products))
	for _, p := range products {
		p.Images = []string{}
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}

	rows, err := r.pool.Query(ctx, `
		SELECT product_id, url
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY id ASC
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to load product images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID uuid.UUID
		var url string
		if err := rows.Scan(&productID, &url); err != nil {
			return fmt.Errorf("failed to scan product image: %w", err)
		}
		if p, ok := byID[productID]; ok {
			p.Images = append(p.Images, url)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating product images: %w", err)
	}

	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	product := &domain.Product{}
	var gender string
	err := row.Scan(
		&product.ID,
		&product.Title,
		&product.Price,
		&product.Description,
		&product.Slug,
		&product.Stock,
		&product.Sizes,
		&gender,
		&product.Tags,
		&product.Status,
	)
	if err != nil {
		return nil, err
	}
	product.Gender = domain.Gender(gender)
	return product, nil
}

// translateError converts unique-violation failures into ConflictError and
// wraps everything else for the Internal path.
func translateError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		detail := pgErr.Detail
		if detail == "" {
			detail = pgErr.Message
		}
		return &ConflictError{Detail: detail}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
