package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"merobazar-backend/service"
)

// Controller holds the dependencies shared by all handlers.
type Controller struct {
	Auth       *service.AuthService
	Users      *service.UserService
	Products   *service.ProductService
	Categories *service.CategoryService
	Carts      *service.CartService
	Orders     *service.OrderService
	Favourites *service.FavouriteService
	Reviews    *service.ReviewService
	Stats      *service.StatsService
	Cld        *cloudinary.Cloudinary
	DB         *mongo.Database
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// statusFromError maps the service taxonomy to HTTP status codes. One
// kind, one code, everywhere.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrInsufficientStock):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// fail writes the JSON failure body for err. Unclassified errors become a
// generic 500 so no internal detail leaks.
func fail(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"message": err.Error()})
}

// objectIDParam parses a hex ObjectID path parameter, responding 400 on a
// malformed value.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid " + name})
		return primitive.NilObjectID, false
	}
	return id, true
}
