package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"globalmart/config"
	"globalmart/models"
	"globalmart/utils"
)

type AdminStore interface {
	Authenticate(ctx context.Context, username, password string) (*models.Admin, error)
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type AdminController struct {
	Admins    AdminStore
	Inquiries InquiryStore
}

func NewAdminController(admins AdminStore, inquiries InquiryStore) *AdminController {
	return &AdminController{Admins: admins, Inquiries: inquiries}
}

func tokenExpiry() time.Duration {
	if config.AppConfig != nil && config.AppConfig.JWTExpiry > 0 {
		return config.AppConfig.JWTExpiry
	}
	return 24 * time.Hour
}

func (ctrl *AdminController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Username and password are required"})
		return
	}

	admin, err := ctrl.Admins.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	if admin == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid username or password"})
		return
	}

	token, err := utils.GenerateToken(admin.ID, admin.Username, admin.Role, config.JWTSecret(), tokenExpiry())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data:    models.LoginResponse{Token: token, User: *admin},
	})
}

// VerifyToken decodes a token sent in the request body, for clients that
// want to check a stored credential without hitting a protected route.
func (ctrl *AdminController) VerifyToken(c *gin.Context) {
	var req models.VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Token is required"})
		return
	}

	claims := utils.ValidateToken(req.Token, config.JWTSecret())
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid or expired token"})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    gin.H{"user": claims},
	})
}

// Logout is stateless: tokens carry their own expiry and there is no
// server-side session to tear down.
func (ctrl *AdminController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Logged out successfully"})
}

func (ctrl *AdminController) GetDashboardStats(c *gin.Context) {
	stats, err := ctrl.Admins.DashboardStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	recent, err := ctrl.Inquiries.List(c.Request.Context(), models.InquiryFilter{Limit: 5})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: gin.H{
			"totalProducts":    stats.TotalProducts,
			"totalInquiries":   stats.TotalInquiries,
			"pendingInquiries": stats.PendingInquiries,
			"recent_inquiries": recent,
		},
	})
}
