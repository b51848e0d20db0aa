package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"globalmart/libs"
	"globalmart/models"
)

// Folders probed when an image is requested by bare filename.
var imageFolders = []string{"products", "gallery", "uploads"}

type ImageController struct {
	Storage libs.Storage
}

func NewImageController(storage libs.Storage) *ImageController {
	return &ImageController{Storage: storage}
}

// GetImage proxies stored bytes. Objects are immutable (keys embed a
// timestamp and random suffix) so the response is cacheable forever.
func (ctrl *ImageController) GetImage(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" || strings.Contains(filename, "..") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Filename is required"})
		return
	}

	ctx := c.Request.Context()

	object, err := ctrl.Storage.Fetch(ctx, filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	for _, folder := range imageFolders {
		if object != nil {
			break
		}
		object, err = ctrl.Storage.Fetch(ctx, folder+"/"+filename)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
			return
		}
	}

	if object == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Image not found"})
		return
	}

	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, object.ContentType, object.Data)
}
