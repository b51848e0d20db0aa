package models

import "time"

type Product struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	Description         *string   `json:"description"`
	DetailedDescription *string   `json:"detailed_description"`
	Specifications      *string   `json:"specifications"`
	ImageURL            *string   `json:"image_url"`
	GalleryImages       []string  `json:"gallery_images"`
	Category            *string   `json:"category"`
	Subcategory         *string   `json:"subcategory"`
	Price               *float64  `json:"price"`
	StockQuantity       int       `json:"stock_quantity"`
	IsFeatured          bool      `json:"is_featured"`
	IsActive            bool      `json:"is_active"`
	Slug                *string   `json:"slug"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ProductFilter narrows product listings. ActiveOnly=false is the admin
// view and returns inactive rows as well.
type ProductFilter struct {
	ActiveOnly   bool
	FeaturedOnly bool
	Limit        int
}
