package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"globalmart/models"
)

const productColumns = `id, name, description, detailed_description, specifications,
	image_url, COALESCE(gallery_images, '[]'::jsonb), category, subcategory,
	price, stock_quantity, is_featured, is_active, slug, created_at, updated_at`

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.DetailedDescription, &p.Specifications,
		&p.ImageURL, &p.GalleryImages, &p.Category, &p.Subcategory,
		&p.Price, &p.StockQuantity, &p.IsFeatured, &p.IsActive, &p.Slug,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT ` + productColumns + ` FROM products`
	conditions := []string{}
	args := []interface{}{}

	if filter.ActiveOnly {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)+1))
		args = append(args, true)
	}
	if filter.FeaturedOnly {
		conditions = append(conditions, fmt.Sprintf("is_featured = $%d", len(args)+1))
		args = append(args, true)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args)+1)
	args = append(args, limit)

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(models.DB.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *ProductRepository) Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	query := `
		INSERT INTO products (
			name, description, detailed_description, specifications,
			image_url, gallery_images, category, subcategory, price,
			stock_quantity, is_featured, is_active, slug
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			COALESCE($10, 0), COALESCE($11, false), COALESCE($12, true), $13
		)
		RETURNING ` + productColumns

	var gallery interface{}
	if req.GalleryImages != nil {
		gallery = req.GalleryImages
	}

	return scanProduct(models.DB.QueryRow(ctx, query,
		req.Name, req.Description, req.DetailedDescription, req.Specifications,
		req.ImageURL, gallery, req.Category, req.Subcategory, req.Price,
		req.StockQuantity, req.IsFeatured, req.IsActive, req.Slug,
	))
}

// Update sets only the supplied fields and bumps updated_at. It returns
// ErrNoFields when nothing was supplied and ErrNotFound when the id does
// not exist.
func (r *ProductRepository) Update(ctx context.Context, id int, req models.UpdateProductRequest) (*models.Product, error) {
	set := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.DetailedDescription != nil {
		add("detailed_description", *req.DetailedDescription)
	}
	if req.Specifications != nil {
		add("specifications", *req.Specifications)
	}
	if req.ImageURL != nil {
		add("image_url", *req.ImageURL)
	}
	if req.GalleryImages != nil {
		add("gallery_images", *req.GalleryImages)
	}
	if req.Category != nil {
		add("category", *req.Category)
	}
	if req.Subcategory != nil {
		add("subcategory", *req.Subcategory)
	}
	if req.Price != nil {
		add("price", *req.Price)
	}
	if req.StockQuantity != nil {
		add("stock_quantity", *req.StockQuantity)
	}
	if req.IsFeatured != nil {
		add("is_featured", *req.IsFeatured)
	}
	if req.IsActive != nil {
		add("is_active", *req.IsActive)
	}
	if req.Slug != nil {
		add("slug", *req.Slug)
	}

	if len(set) == 0 {
		return nil, ErrNoFields
	}

	set = append(set, "updated_at = NOW()")

	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args)+1, productColumns,
	)
	args = append(args, id)

	p, err := scanProduct(models.DB.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// SoftDelete hides the product from non-admin reads. Repeated calls are
// idempotent and a missing id is not an error.
func (r *ProductRepository) SoftDelete(ctx context.Context, id int) error {
	_, err := models.DB.Exec(ctx,
		`UPDATE products SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *ProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category FROM products
		WHERE category IS NOT NULL AND category != '' AND is_active = true
		ORDER BY category ASC`

	rows, err := models.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}
