package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"globalmart/models"
	"globalmart/repositories"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type InquiryStore interface {
	List(ctx context.Context, filter models.InquiryFilter) ([]models.Inquiry, error)
	GetByID(ctx context.Context, id int) (*models.Inquiry, error)
	Create(ctx context.Context, req models.CreateInquiryRequest) (*models.Inquiry, error)
	SetStatus(ctx context.Context, id int, status string) (*models.Inquiry, error)
}

// InquiryNotifier delivers a best-effort notification about a new
// inquiry. Failures never affect the API response.
type InquiryNotifier interface {
	SendInquiryNotification(toEmail, siteName string, inquiry *models.Inquiry) error
}

type InquiryController struct {
	Inquiries InquiryStore
	Settings  SettingsStore
	Notifier  InquiryNotifier
}

func NewInquiryController(store InquiryStore, settings SettingsStore, notifier InquiryNotifier) *InquiryController {
	return &InquiryController{Inquiries: store, Settings: settings, Notifier: notifier}
}

// CreateInquiry is the public buyer inquiry submission.
func (ctrl *InquiryController) CreateInquiry(c *gin.Context) {
	var req models.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Name, email, and message are required"})
		return
	}

	if !emailPattern.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid email format"})
		return
	}

	inquiry, err := ctrl.Inquiries.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	ctrl.notify(c.Request.Context(), inquiry)

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Inquiry submitted successfully",
		Data:    inquiry,
	})
}

func (ctrl *InquiryController) notify(ctx context.Context, inquiry *models.Inquiry) {
	if ctrl.Notifier == nil || ctrl.Settings == nil {
		return
	}

	defaults := models.DefaultSiteSettings()
	to, err := ctrl.Settings.GetString(ctx, "email", defaults.Email)
	if err != nil {
		log.Printf("Failed to resolve notification address: %v", err)
		return
	}
	siteName, _ := ctrl.Settings.GetString(ctx, "site_name", defaults.SiteName)

	if err := ctrl.Notifier.SendInquiryNotification(to, siteName, inquiry); err != nil {
		log.Printf("Failed to send inquiry notification: %v", err)
	}
}

func (ctrl *InquiryController) GetAllInquiries(c *gin.Context) {
	filter := models.InquiryFilter{Status: c.Query("status")}

	inquiries, err := ctrl.Inquiries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: inquiries})
}

func (ctrl *InquiryController) GetInquiryByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	inquiry, err := ctrl.Inquiries.GetByID(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Inquiry not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: inquiry})
}

func (ctrl *InquiryController) UpdateInquiryStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidInquiryStatus(req.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid status. Must be: pending, processing, or completed",
		})
		return
	}

	inquiry, err := ctrl.Inquiries.SetStatus(c.Request.Context(), id, req.Status)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Inquiry not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Inquiry status updated successfully",
		Data:    inquiry,
	})
}

// DeleteInquiry forces the status to completed. There is no hard delete;
// the row is retained.
func (ctrl *InquiryController) DeleteInquiry(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	_, err := ctrl.Inquiries.SetStatus(c.Request.Context(), id, models.InquiryStatusCompleted)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Inquiry not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Inquiry deleted successfully"})
}
