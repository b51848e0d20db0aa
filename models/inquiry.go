package models

import "time"

const (
	InquiryStatusPending    = "pending"
	InquiryStatusProcessing = "processing"
	InquiryStatusCompleted  = "completed"
)

type Inquiry struct {
	ID         int       `json:"id"`
	ProductID  *int      `json:"product_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Company    *string   `json:"company"`
	Phone      *string   `json:"phone"`
	Country    *string   `json:"country"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	AdminNotes *string   `json:"admin_notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ValidInquiryStatus(status string) bool {
	switch status {
	case InquiryStatusPending, InquiryStatusProcessing, InquiryStatusCompleted:
		return true
	}
	return false
}

type InquiryFilter struct {
	Status string
	Limit  int
}
