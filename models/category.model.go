package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category defines the structure for a product category.
type Category struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	UserID    primitive.ObjectID `json:"user_id,omitempty" bson:"user_id,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// CategoryRequest defines the payload for creating or renaming a category.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
