package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"merobazar-backend/middleware"
)

// AddFavourite marks a product as a favourite of the caller.
func (ctrl *Controller) AddFavourite(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	productID, ok := objectIDParam(c, "productId")
	if !ok {
		return
	}

	favourite, err := ctrl.Favourites.Add(ctx, middleware.CurrentUser(c).ID, productID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added to favourites successfully", "data": favourite})
}

// RemoveFavourite drops a product from the caller's favourites.
func (ctrl *Controller) RemoveFavourite(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	productID, ok := objectIDParam(c, "productId")
	if !ok {
		return
	}

	if err := ctrl.Favourites.Remove(ctx, middleware.CurrentUser(c).ID, productID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed from favourites successfully"})
}

// GetFavourites lists the caller's favourites.
func (ctrl *Controller) GetFavourites(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	favourites, err := ctrl.Favourites.Mine(ctx, middleware.CurrentUser(c).ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Favourite products fetched successfully",
		"data":            favourites,
		"totalFavourites": len(favourites),
	})
}

// GetAllFavourites lists every favourite pair (admin only).
func (ctrl *Controller) GetAllFavourites(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	favourites, err := ctrl.Favourites.All(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "All favourites fetched successfully",
		"data":            favourites,
		"totalFavourites": len(favourites),
	})
}

// CheckFavourite reports whether a product is in the caller's favourites.
func (ctrl *Controller) CheckFavourite(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	productID, ok := objectIDParam(c, "productId")
	if !ok {
		return
	}

	isFavourite, favourite, err := ctrl.Favourites.Check(ctx, middleware.CurrentUser(c).ID, productID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Favourite status checked successfully",
		"isFavourite": isFavourite,
		"data":        favourite,
	})
}
