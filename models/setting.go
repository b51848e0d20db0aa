package models

// SiteSettings is the flat key→value configuration surfaced by the
// settings API. Absent keys resolve to the defaults below at read time.
type SiteSettings struct {
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

func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:        "GlobalMart",
		SiteDescription: "Your trusted partner for high-quality industrial products",
		CompanyIntro:    "We are a leading manufacturer and supplier of high-quality industrial products.",
		Email:           "info@example.com",
		Phone:           "+1 234 567 8900",
		Address:         "123 Business St, City, Country",
	}
}
