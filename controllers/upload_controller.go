package controllers

import (
	"io"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"globalmart/libs"
	"globalmart/models"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UploadController struct {
	Storage libs.Storage
	MaxSize int64
}

func NewUploadController(storage libs.Storage, maxSize int64) *UploadController {
	if maxSize <= 0 {
		maxSize = 5 * 1024 * 1024
	}
	return &UploadController{Storage: storage, MaxSize: maxSize}
}

// UploadImage validates type and size before any storage write happens.
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No file provided"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid file type. Only JPEG, PNG, GIF, and WebP are allowed.",
		})
		return
	}

	if file.Size > ctrl.MaxSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "File too large. Maximum size is 5MB."})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	folder := c.DefaultPostForm("folder", "products")

	result, err := ctrl.Storage.Upload(c.Request.Context(), data, file.Filename, contentType, folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"url":      result.URL,
		"filename": path.Base(result.Key),
		"path":     result.Key,
	})
}
