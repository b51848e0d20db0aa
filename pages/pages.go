package pages

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"globalmart/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler renders the public storefront and admin console shells. Data
// comes from the API client; any fetch failure falls back to defaults
// and the page still renders.
type Handler struct {
	API  *Client
	tmpl *template.Template
}

func NewHandler(api *Client) *Handler {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	return &Handler{API: api, tmpl: tmpl}
}

func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(c.Writer, name, data); err != nil {
		log.Printf("Failed to render %s: %v", name, err)
	}
}

func (h *Handler) Home(c *gin.Context) {
	settings := h.API.Settings()
	h.render(c, http.StatusOK, "home.html", gin.H{
		"Settings": settings,
		"Featured": h.API.FeaturedProducts(),
	})
}

func (h *Handler) Products(c *gin.Context) {
	h.render(c, http.StatusOK, "products.html", gin.H{
		"Settings":   h.API.Settings(),
		"Products":   h.API.Products(),
		"Categories": h.API.Categories(),
		"Category":   c.Query("category"),
	})
}

func (h *Handler) ProductDetail(c *gin.Context) {
	settings := h.API.Settings()

	product := h.API.Product(c.Param("id"))
	if product == nil {
		h.render(c, http.StatusNotFound, "not_found.html", gin.H{"Settings": settings})
		return
	}

	h.render(c, http.StatusOK, "product_detail.html", gin.H{
		"Settings": settings,
		"Product":  product,
	})
}

func (h *Handler) About(c *gin.Context) {
	h.render(c, http.StatusOK, "about.html", gin.H{
		"Settings": h.API.Settings(),
	})
}

func (h *Handler) AdminLogin(c *gin.Context) {
	h.render(c, http.StatusOK, "admin_login.html", gin.H{
		"Settings": h.API.Settings(),
	})
}

func (h *Handler) AdminDashboard(c *gin.Context) {
	h.render(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"Settings": h.API.Settings(),
	})
}

func (h *Handler) NotFound(c *gin.Context) {
	settings := models.DefaultSiteSettings()
	if h.API != nil {
		settings = h.API.Settings()
	}
	h.render(c, http.StatusNotFound, "not_found.html", gin.H{"Settings": settings})
}
