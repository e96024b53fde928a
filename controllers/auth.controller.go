package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"merobazar-backend/middleware"
	"merobazar-backend/models"
)

// Register handles account registration.
func (ctrl *Controller) Register(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := ctrl.Auth.Register(ctx, req)
	if err != nil {
		fail(c, err)
		return
	}

	user.Password = ""
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "data": user})
}

// Login authenticates a user and returns an access token.
func (ctrl *Controller) Login(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	tok, user, err := ctrl.Auth.Login(ctx, req)
	if err != nil {
		fail(c, err)
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": tok, "data": user})
}

// Profile returns the authenticated user's own record.
func (ctrl *Controller) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	out := *user
	out.Password = ""
	c.JSON(http.StatusOK, gin.H{"message": "User profile fetched successfully", "data": out})
}
