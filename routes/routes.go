package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"globalmart/config"
	"globalmart/controllers"
	"globalmart/libs"
	"globalmart/middleware"
	"globalmart/models"
	"globalmart/pages"
	"globalmart/repositories"
)

// SetupRoutes wires the API router and the page renderer onto one
// engine. The page renderer talks to the API over HTTP, never to the
// repositories directly.
func SetupRoutes(router *gin.Engine, storage libs.Storage, mailer *models.EmailService) {
	productRepo := repositories.NewProductRepository()
	inquiryRepo := repositories.NewInquiryRepository()
	adminRepo := repositories.NewAdminRepository()
	settingsRepo := repositories.NewSettingsRepository()

	var notifier controllers.InquiryNotifier
	if mailer != nil {
		notifier = mailer
	}

	productCtrl := controllers.NewProductController(productRepo)
	inquiryCtrl := controllers.NewInquiryController(inquiryRepo, settingsRepo, notifier)
	adminCtrl := controllers.NewAdminController(adminRepo, inquiryRepo)
	settingsCtrl := controllers.NewSettingsController(settingsRepo)
	uploadCtrl := controllers.NewUploadController(storage, config.AppConfig.MaxUploadSize)
	imageCtrl := controllers.NewImageController(storage)

	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.GET("/products", middleware.OptionalAuth(), productCtrl.GetAllProducts)
		api.GET("/products/categories", productCtrl.GetCategories)
		api.GET("/products/featured", productCtrl.GetFeaturedProducts)
		api.GET("/products/:id", middleware.OptionalAuth(), productCtrl.GetProductByID)
		api.POST("/products", middleware.RequireSuperAdmin(), productCtrl.CreateProduct)
		api.PUT("/products/:id", middleware.RequireSuperAdmin(), productCtrl.UpdateProduct)
		api.DELETE("/products/:id", middleware.RequireSuperAdmin(), productCtrl.DeleteProduct)

		api.POST("/inquiries", inquiryCtrl.CreateInquiry)
		api.GET("/inquiries", middleware.RequireAuth(), inquiryCtrl.GetAllInquiries)
		api.GET("/inquiries/:id", middleware.RequireAuth(), inquiryCtrl.GetInquiryByID)
		api.PUT("/inquiries/:id/status", middleware.RequireAuth(), inquiryCtrl.UpdateInquiryStatus)
		api.DELETE("/inquiries/:id", middleware.RequireSuperAdmin(), inquiryCtrl.DeleteInquiry)

		api.GET("/settings", settingsCtrl.GetSettings)
		api.POST("/settings", middleware.RequireSuperAdmin(), settingsCtrl.UpdateSettings)

		api.POST("/upload/image", middleware.RequireSuperAdmin(), uploadCtrl.UploadImage)
		api.GET("/images/:filename", imageCtrl.GetImage)

		api.POST("/admin/login", adminCtrl.Login)
		api.POST("/admin/verify", adminCtrl.VerifyToken)
		api.POST("/admin/logout", adminCtrl.Logout)
		api.GET("/admin/stats", middleware.RequireAuth(), adminCtrl.GetDashboardStats)
	}

	pageHandler := pages.NewHandler(pages.NewClient(config.AppConfig.APIBaseURL))

	router.GET("/", pageHandler.Home)
	router.GET("/products", pageHandler.Products)
	router.GET("/products/:id", pageHandler.ProductDetail)
	router.GET("/about", pageHandler.About)
	router.GET("/admin", pageHandler.AdminLogin)
	router.GET("/admin/dashboard", pageHandler.AdminDashboard)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Not found"})
			return
		}
		pageHandler.NotFound(c)
	})
}
