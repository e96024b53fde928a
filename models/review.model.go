package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a rating and optional text a user leaves for a product they
// received through a delivered order. A compound unique index on
// (user_id, product_id, order_id) allows one review per triple.
type Review struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	ProductID primitive.ObjectID `json:"product_id" bson:"product_id"`
	OrderID   primitive.ObjectID `json:"order_id" bson:"order_id"`
	Rating    int                `json:"rating" bson:"rating"`
	Review    string             `json:"review,omitempty" bson:"review,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateReviewRequest defines the payload for creating a review.
type CreateReviewRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	OrderID   string `json:"order_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Review    string `json:"review"`
}

// UpdateReviewRequest defines the payload for editing an existing review.
type UpdateReviewRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}
