package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"globalmart/models"
	"globalmart/utils"
)

type AdminRepository struct{}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{}
}

// Authenticate looks an admin up by the (username, password digest) pair
// and records last_login on success. It returns nil on any mismatch
// without revealing which field was wrong.
func (r *AdminRepository) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	digest := utils.HashPassword(password)

	var admin models.Admin
	err := models.DB.QueryRow(ctx,
		`SELECT id, username, role FROM admins
		 WHERE username = $1 AND password_hash = $2
		 LIMIT 1`,
		username, digest,
	).Scan(&admin.ID, &admin.Username, &admin.Role)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	_, err = models.DB.Exec(ctx,
		`UPDATE admins SET last_login = NOW() WHERE id = $1`, admin.ID)
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

// DashboardStats counts all product rows (inactive included), all
// inquiries, and pending inquiries.
func (r *AdminRepository) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats

	if err := models.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM products`).Scan(&stats.TotalProducts); err != nil {
		return nil, err
	}
	if err := models.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM inquiries`).Scan(&stats.TotalInquiries); err != nil {
		return nil, err
	}
	if err := models.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM inquiries WHERE status = 'pending'`).Scan(&stats.PendingInquiries); err != nil {
		return nil, err
	}

	return &stats, nil
}
