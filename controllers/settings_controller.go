package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"globalmart/models"
)

type SettingsStore interface {
	GetString(ctx context.Context, key, fallback string) (string, error)
	SetString(ctx context.Context, key, value string) error
}

type SettingsController struct {
	Settings SettingsStore
}

func NewSettingsController(store SettingsStore) *SettingsController {
	return &SettingsController{Settings: store}
}

// GetSettings returns the stored settings merged with built-in defaults
// for absent keys.
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()
	defaults := models.DefaultSiteSettings()
	settings := models.SiteSettings{}

	var err error
	read := func(key, fallback string) string {
		if err != nil {
			return fallback
		}
		var value string
		value, err = ctrl.Settings.GetString(ctx, key, fallback)
		return value
	}

	settings.SiteName = read("site_name", defaults.SiteName)
	settings.SiteDescription = read("site_description", defaults.SiteDescription)
	settings.CompanyIntro = read("company_intro", defaults.CompanyIntro)
	settings.Email = read("email", defaults.Email)
	settings.Phone = read("phone", defaults.Phone)
	settings.Address = read("address", defaults.Address)
	settings.LinkedIn = read("linkedin", defaults.LinkedIn)
	settings.Facebook = read("facebook", defaults.Facebook)
	settings.Twitter = read("twitter", defaults.Twitter)

	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: settings})
}

// UpdateSettings upserts all nine known keys in one request.
func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.SiteName == "" {
		req.SiteName = models.DefaultSiteSettings().SiteName
	}

	values := map[string]string{
		"site_name":        req.SiteName,
		"site_description": req.SiteDescription,
		"company_intro":    req.CompanyIntro,
		"email":            req.Email,
		"phone":            req.Phone,
		"address":          req.Address,
		"linkedin":         req.LinkedIn,
		"facebook":         req.Facebook,
		"twitter":          req.Twitter,
	}

	ctx := c.Request.Context()
	for key, value := range values {
		if err := ctrl.Settings.SetString(ctx, key, value); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Settings saved successfully",
		Data: models.SiteSettings{
			SiteName:        req.SiteName,
			SiteDescription: req.SiteDescription,
			CompanyIntro:    req.CompanyIntro,
			Email:           req.Email,
			Phone:           req.Phone,
			Address:         req.Address,
			LinkedIn:        req.LinkedIn,
			Facebook:        req.Facebook,
			Twitter:         req.Twitter,
		},
	})
}
