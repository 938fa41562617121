package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akshayraj-industries/website-backend/store"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var _ store.ProductStore = (*ProductStore)(nil)

// ProductStore persists catalog entries in the products table. Prices are
// NUMERIC columns moved through their text form; image references are JSONB
// decoded exactly once here via types.ParseImageRef.
type ProductStore struct {
	db store.DB
}

// NewProductStore creates a new ProductStore.
func NewProductStore(db store.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, title, description, category,
	COALESCE(capacity, ''), features,
	price::text, image, is_active, created_at, updated_at`

func scanProduct(row pgx.Row) (*types.Product, error) {
	p := &types.Product{}
	var features []byte
	var priceText string
	var image []byte

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.Capacity,
		&features,
		&priceText,
		&image,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(features) > 0 {
		if err := json.Unmarshal(features, &p.Features); err != nil {
			return nil, fmt.Errorf("failed to decode features: %w", err)
		}
	}
	price, err := decimal.NewFromString(priceText)
	if err != nil {
		return nil, fmt.Errorf("failed to decode price: %w", err)
	}
	p.Price = price
	p.Image = types.ParseImageRef(image)
	return p, nil
}

// List returns active products matching the filter, newest first.
func (s *ProductStore) List(ctx context.Context, filter types.ProductFilter) ([]*types.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active = TRUE`
	var args []any

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND title ILIKE $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var out []*types.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID retrieves a single active product.
func (s *ProductStore) GetByID(ctx context.Context, id int64) (*types.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND is_active = TRUE`
	p, err := scanProduct(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

// Create inserts a product and returns the generated id.
func (s *ProductStore) Create(ctx context.Context, p *types.Product) (int64, error) {
	features, err := json.Marshal(p.Features)
	if err != nil {
		return 0, fmt.Errorf("failed to encode features: %w", err)
	}
	image, err := json.Marshal(p.Image)
	if err != nil {
		return 0, fmt.Errorf("failed to encode image ref: %w", err)
	}

	query := `
		INSERT INTO products (title, description, category, capacity, features, price, image, is_active)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8)
		RETURNING id`

	var id int64
	err = s.db.QueryRow(ctx, query,
		p.Title, p.Description, p.Category, p.Capacity,
		features, p.Price.StringFixed(2), image, p.IsActive,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}
	return id, nil
}

// Update applies the non-nil fields of the update.
func (s *ProductStore) Update(ctx context.Context, id int64, update *types.ProductUpdate) error {
	sets := []string{"updated_at = NOW()"}
	var args []any

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Title != nil {
		addSet("title", *update.Title)
	}
	if update.Description != nil {
		addSet("description", *update.Description)
	}
	if update.Category != nil {
		addSet("category", *update.Category)
	}
	if update.Capacity != nil {
		addSet("capacity", *update.Capacity)
	}
	if update.Features != nil {
		features, err := json.Marshal(*update.Features)
		if err != nil {
			return fmt.Errorf("failed to encode features: %w", err)
		}
		addSet("features", features)
	}
	if update.Price != nil {
		price, err := decimal.NewFromString(*update.Price)
		if err != nil {
			return fmt.Errorf("invalid price: %w", err)
		}
		addSet("price", price.StringFixed(2))
	}
	if update.IsActive != nil {
		addSet("is_active", *update.IsActive)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d",
		joinSets(sets), len(args))

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// SetImage replaces the product's image reference with the canonical
// variant form.
func (s *ProductStore) SetImage(ctx context.Context, id int64, ref types.ImageRef) error {
	image, err := json.Marshal(ref)
	if err != nil {
		return fmt.Errorf("failed to encode image ref: %w", err)
	}
	tag, err := s.db.Exec(ctx,
		`UPDATE products SET image = $1, updated_at = NOW() WHERE id = $2`,
		image, id)
	if err != nil {
		return fmt.Errorf("failed to set product image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete soft-deletes a product by clearing is_active.
func (s *ProductStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE products SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func joinSets(sets []string) string {
	out := sets[0]
	for _, s := range sets[1:] {
		out += ", " + s
	}
	return out
}
