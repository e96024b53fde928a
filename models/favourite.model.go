package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favourite marks a product as a favourite of a user. A compound unique
// index on (user_id, product_id) prevents duplicate pairs.
type Favourite struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	ProductID primitive.ObjectID `json:"product_id" bson:"product_id"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
