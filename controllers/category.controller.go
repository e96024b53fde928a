package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"merobazar-backend/middleware"
	"merobazar-backend/models"
)

// CreateCategory adds a category (admin only).
func (ctrl *Controller) CreateCategory(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	category, err := ctrl.Categories.Create(ctx, middleware.CurrentUser(c).ID, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully", "data": category})
}

// GetCategories lists all categories.
func (ctrl *Controller) GetCategories(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	categories, err := ctrl.Categories.List(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Categories fetched successfully", "data": categories})
}

// GetCategory returns a single category by id.
func (ctrl *Controller) GetCategory(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	category, err := ctrl.Categories.Get(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category fetched successfully", "data": category})
}

// UpdateCategory renames a category (admin only).
func (ctrl *Controller) UpdateCategory(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	category, err := ctrl.Categories.Rename(ctx, id, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "data": category})
}

// DeleteCategory removes a category (admin only).
func (ctrl *Controller) DeleteCategory(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Categories.Delete(ctx, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
