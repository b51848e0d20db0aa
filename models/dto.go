package models

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type VerifyTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type CreateProductRequest struct {
	Name                string   `json:"name"`
	Description         *string  `json:"description"`
	DetailedDescription *string  `json:"detailed_description"`
	Specifications      *string  `json:"specifications"`
	ImageURL            *string  `json:"image_url"`
	GalleryImages       []string `json:"gallery_images"`
	Category            *string  `json:"category"`
	Subcategory         *string  `json:"subcategory"`
	Price               *float64 `json:"price"`
	StockQuantity       *int     `json:"stock_quantity"`
	IsFeatured          *bool    `json:"is_featured"`
	IsActive            *bool    `json:"is_active"`
	Slug                *string  `json:"slug"`
}

// UpdateProductRequest is a partial update: only non-nil fields are
// written. An entirely empty request is rejected.
type UpdateProductRequest struct {
	Name                *string   `json:"name"`
	Description         *string   `json:"description"`
	DetailedDescription *string   `json:"detailed_description"`
	Specifications      *string   `json:"specifications"`
	ImageURL            *string   `json:"image_url"`
	GalleryImages       *[]string `json:"gallery_images"`
	Category            *string   `json:"category"`
	Subcategory         *string   `json:"subcategory"`
	Price               *float64  `json:"price"`
	StockQuantity       *int      `json:"stock_quantity"`
	IsFeatured          *bool     `json:"is_featured"`
	IsActive            *bool     `json:"is_active"`
	Slug                *string   `json:"slug"`
}

type CreateInquiryRequest struct {
	ProductID *int    `json:"product_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Company   *string `json:"company"`
	Phone     *string `json:"phone"`
	Country   *string `json:"country"`
	Message   string  `json:"message"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status"`
}

type UpdateSettingsRequest struct {
	SiteName        string `json:"site_name"`
	SiteDescription string `json:"site_description"`
	CompanyIntro    string `json:"company_intro"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	LinkedIn        string `json:"linkedin"`
	Facebook        string `json:"facebook"`
	Twitter         string `json:"twitter"`
}
