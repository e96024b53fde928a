package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"merobazar-backend/middleware"
	"merobazar-backend/models"
)

// AddToCart puts a product into the caller's cart, incrementing the line
// if the product is already there.
func (ctrl *Controller) AddToCart(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}

	item, created, err := ctrl.Carts.Add(ctx, middleware.CurrentUser(c).ID, productID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Product added to cart successfully", "data": item})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully", "data": item})
}

// GetCart lists the caller's cart with the total at current prices.
func (ctrl *Controller) GetCart(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	items, total, err := ctrl.Carts.Items(ctx, middleware.CurrentUser(c).ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Cart items fetched successfully",
		"data":        items,
		"totalAmount": total,
		"totalItems":  len(items),
	})
}

// GetAllCarts lists every cart line in the system (admin only).
func (ctrl *Controller) GetAllCarts(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	items, err := ctrl.Carts.All(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All cart items fetched successfully", "data": items})
}

// UpdateCartItem changes the quantity of an owned cart line.
func (ctrl *Controller) UpdateCartItem(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	item, err := ctrl.Carts.UpdateQuantity(ctx, middleware.CurrentUser(c).ID, id, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart item updated successfully", "data": item})
}

// RemoveCartItem deletes one owned cart line.
func (ctrl *Controller) RemoveCartItem(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Carts.Remove(ctx, middleware.CurrentUser(c).ID, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart successfully"})
}

// ClearCart empties the caller's cart; clearing an empty cart is fine.
func (ctrl *Controller) ClearCart(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	deleted, err := ctrl.Carts.Clear(ctx, middleware.CurrentUser(c).ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully", "deletedCount": deleted})
}
