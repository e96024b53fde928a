package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"merobazar-backend/middleware"
	"merobazar-backend/models"
)

// CreateOrder places an order; it always starts pending.
func (ctrl *Controller) CreateOrder(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	lines := make([]models.OrderLine, 0, len(req.Products))
	for _, line := range req.Products {
		productID, err := primitive.ObjectIDFromHex(line.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
			return
		}
		lines = append(lines, models.OrderLine{ProductID: productID, Quantity: line.Quantity})
	}

	order, err := ctrl.Orders.Create(ctx, middleware.CurrentUser(c).ID, lines,
		req.ShippingAddress, req.PhoneNumber, req.TotalAmount, req.PaymentMethod)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "data": order})
}

// GetMyOrders lists the caller's orders.
func (ctrl *Controller) GetMyOrders(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	orders, err := ctrl.Orders.Mine(ctx, middleware.CurrentUser(c).ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Orders fetched successfully",
		"data":        orders,
		"totalOrders": len(orders),
	})
}

// GetAllOrders lists every order (admin only).
func (ctrl *Controller) GetAllOrders(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	orders, err := ctrl.Orders.All(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "All orders fetched successfully",
		"data":        orders,
		"totalOrders": len(orders),
	})
}

// GetOrder returns one order; admins see any, users only their own.
func (ctrl *Controller) GetOrder(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	order, err := ctrl.Orders.Get(ctx, user.ID, user.Role, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order fetched successfully", "data": order})
}

// UpdateOrderStatus sets an order's status (admin only).
func (ctrl *Controller) UpdateOrderStatus(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, err := ctrl.Orders.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "data": order})
}

// DeleteOrder cancels an order: admins unconditionally, owners only while
// pending.
func (ctrl *Controller) DeleteOrder(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	if err := ctrl.Orders.Delete(ctx, user.ID, user.Role, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
