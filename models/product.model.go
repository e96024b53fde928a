package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product defines the structure for a product.
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Stock       int                `json:"stock" bson:"stock"`
	ImageURL    string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Rating      float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	Category    string             `json:"category" bson:"category"`
	UserID      primitive.ObjectID `json:"user_id,omitempty" bson:"user_id,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// ProductUpdate holds the mutable product fields; nil means leave unchanged.
type ProductUpdate struct {
	Name        string
	Description string
	Price       *float64
	Stock       *int
	Category    string
	ImageURL    string
}

// Stats defines the structure for the admin statistics endpoint.
type Stats struct {
	TotalProducts int64   `json:"total_products"`
	TotalUsers    int64   `json:"total_users"`
	TotalOrders   int64   `json:"total_orders"`
	TotalValue    float64 `json:"total_value"`
}
