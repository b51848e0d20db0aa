package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"globalmart/models"
)

const inquiryColumns = `id, product_id, name, email, company, phone, country,
	message, status, admin_notes, created_at, updated_at`

type InquiryRepository struct{}

func NewInquiryRepository() *InquiryRepository {
	return &InquiryRepository{}
}

func scanInquiry(row pgx.Row) (*models.Inquiry, error) {
	var i models.Inquiry
	err := row.Scan(
		&i.ID, &i.ProductID, &i.Name, &i.Email, &i.Company, &i.Phone, &i.Country,
		&i.Message, &i.Status, &i.AdminNotes, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InquiryRepository) List(ctx context.Context, filter models.InquiryFilter) ([]models.Inquiry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT ` + inquiryColumns + ` FROM inquiries`
	args := []interface{}{}

	if filter.Status != "" {
		query += " WHERE status = $1"
		args = append(args, filter.Status)
	}

	if len(args) == 0 {
		query += " ORDER BY created_at DESC LIMIT $1"
	} else {
		query += " ORDER BY created_at DESC LIMIT $2"
	}
	args = append(args, limit)

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := []models.Inquiry{}
	for rows.Next() {
		i, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, *i)
	}
	return inquiries, rows.Err()
}

func (r *InquiryRepository) GetByID(ctx context.Context, id int) (*models.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = $1`

	i, err := scanInquiry(models.DB.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return i, err
}

func (r *InquiryRepository) Create(ctx context.Context, req models.CreateInquiryRequest) (*models.Inquiry, error) {
	query := `
		INSERT INTO inquiries (product_id, name, email, company, phone, country, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + inquiryColumns

	return scanInquiry(models.DB.QueryRow(ctx, query,
		req.ProductID, req.Name, req.Email, req.Company, req.Phone, req.Country, req.Message,
	))
}

func (r *InquiryRepository) SetStatus(ctx context.Context, id int, status string) (*models.Inquiry, error) {
	query := `
		UPDATE inquiries SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + inquiryColumns

	i, err := scanInquiry(models.DB.QueryRow(ctx, query, status, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return i, err
}
