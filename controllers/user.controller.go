package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"merobazar-backend/models"
)

// GetUsers lists all users (admin only).
func (ctrl *Controller) GetUsers(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	users, err := ctrl.Users.List(ctx)
	if err != nil {
		fail(c, err)
		return
	}

	for i := range users {
		users[i].Password = ""
	}
	c.JSON(http.StatusOK, gin.H{"message": "Users fetched successfully", "data": users})
}

// GetUser returns a single user by id.
func (ctrl *Controller) GetUser(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	user, err := ctrl.Users.Get(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"message": "User fetched successfully", "data": user})
}

// UpdateUser changes a user's username, the only self-service field.
func (ctrl *Controller) UpdateUser(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := ctrl.Users.UpdateUsername(ctx, id, req.Username)
	if err != nil {
		fail(c, err)
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "data": user})
}

// DeleteUser removes a user account (admin only).
func (ctrl *Controller) DeleteUser(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Users.Delete(ctx, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
