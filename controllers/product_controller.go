package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"globalmart/middleware"
	"globalmart/models"
	"globalmart/repositories"
)

type ProductStore interface {
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)
	Update(ctx context.Context, id int, req models.UpdateProductRequest) (*models.Product, error)
	SoftDelete(ctx context.Context, id int) error
	ListCategories(ctx context.Context) ([]string, error)
}

type ProductController struct {
	Products ProductStore
}

func NewProductController(store ProductStore) *ProductController {
	return &ProductController{Products: store}
}

// GetAllProducts lists products. Authenticated admins see inactive rows
// as well; everyone else only active ones.
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	isAdmin := middleware.CurrentAdmin(c) != nil

	products, err := ctrl.Products.List(c.Request.Context(), models.ProductFilter{
		ActiveOnly: !isAdmin,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: products})
}

func (ctrl *ProductController) GetFeaturedProducts(c *gin.Context) {
	products, err := ctrl.Products.List(c.Request.Context(), models.ProductFilter{
		ActiveOnly:   true,
		FeaturedOnly: true,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: products})
}

func (ctrl *ProductController) GetCategories(c *gin.Context) {
	categories, err := ctrl.Products.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: categories})
}

// GetProductByID returns the product. An inactive product is
// indistinguishable from a missing one for non-admin callers.
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	product, err := ctrl.Products.GetByID(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	if !product.IsActive && middleware.CurrentAdmin(c) == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Product not found"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: product})
}

func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Product name is required"})
		return
	}

	product, err := ctrl.Products.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	product, err := ctrl.Products.Update(c.Request.Context(), id, req)
	switch {
	case errors.Is(err, repositories.ErrNoFields):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No fields to update"})
		return
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Product not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct soft-deletes: the row is kept and hidden from non-admin
// reads. Calling it twice is not an error.
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctrl.Products.SoftDelete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product deleted successfully"})
}
