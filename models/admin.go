package models

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type Admin struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type DashboardStats struct {
	TotalProducts    int `json:"totalProducts"`
	TotalInquiries   int `json:"totalInquiries"`
	PendingInquiries int `json:"pendingInquiries"`
}
