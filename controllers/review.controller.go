package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"merobazar-backend/middleware"
	"merobazar-backend/models"
)

// CreateReview leaves a rating for a product from a delivered order.
func (ctrl *Controller) CreateReview(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}
	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	review, err := ctrl.Reviews.Create(ctx, middleware.CurrentUser(c).ID, productID, orderID, req.Rating, req.Review)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review created successfully", "data": review})
}

// GetProductReviews lists the reviews of one product; public.
func (ctrl *Controller) GetProductReviews(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	productID, ok := objectIDParam(c, "productId")
	if !ok {
		return
	}

	reviews, err := ctrl.Reviews.ForProduct(ctx, productID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product reviews fetched successfully", "data": reviews})
}

// GetMyReviews lists the caller's reviews.
func (ctrl *Controller) GetMyReviews(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	reviews, err := ctrl.Reviews.Mine(ctx, middleware.CurrentUser(c).ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User reviews fetched successfully", "data": reviews})
}

// GetAllReviews lists every review (admin only).
func (ctrl *Controller) GetAllReviews(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	reviews, err := ctrl.Reviews.All(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All reviews fetched successfully", "data": reviews})
}

// UpdateReview edits the caller's own review.
func (ctrl *Controller) UpdateReview(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	review, err := ctrl.Reviews.Update(ctx, middleware.CurrentUser(c).ID, id, req.Rating, req.Review)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully", "data": review})
}

// DeleteReview removes the caller's own review.
func (ctrl *Controller) DeleteReview(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Reviews.Delete(ctx, middleware.CurrentUser(c).ID, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
