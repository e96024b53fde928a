package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"

	"merobazar-backend/middleware"
	"merobazar-backend/models"
)

// GetProducts lists the whole catalogue.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	products, err := ctrl.Products.List(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Products fetched successfully", "data": products})
}

// GetProduct returns a single product by id.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	product, err := ctrl.Products.Get(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product fetched successfully", "data": product})
}

// CreateProduct adds a product from a multipart form, uploading the
// optional image to Cloudinary (admin only).
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid price"})
		return
	}
	stock, err := strconv.Atoi(c.PostForm("stock"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid stock"})
		return
	}

	imageURL, err := ctrl.uploadImage(ctx, c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	product := models.Product{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Stock:       stock,
		Category:    c.PostForm("category"),
		ImageURL:    imageURL,
		UserID:      middleware.CurrentUser(c).ID,
	}

	created, err := ctrl.Products.Create(ctx, product)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "data": created})
}

// UpdateProduct applies the multipart form fields that were provided
// (admin only).
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	upd := models.ProductUpdate{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
	}
	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid price"})
			return
		}
		upd.Price = &price
	}
	if v := c.PostForm("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid stock"})
			return
		}
		upd.Stock = &stock
	}

	imageURL, err := ctrl.uploadImage(ctx, c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}
	upd.ImageURL = imageURL

	product, err := ctrl.Products.Update(ctx, id, upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "data": product})
}

// DeleteProduct removes a product (admin only).
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Products.Delete(ctx, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// uploadImage streams the "image" form file to Cloudinary and returns its
// secure URL. No file, or no Cloudinary configured, yields an empty URL.
func (ctrl *Controller) uploadImage(ctx context.Context, c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil || ctrl.Cld == nil {
		return "", nil
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	result, err := ctrl.Cld.Upload.Upload(ctx, f, uploader.UploadParams{Folder: "merobazar/products"})
	if err != nil {
		log.Println("Cloudinary upload error:", err)
		return "", err
	}
	return result.SecureURL, nil
}
