package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the closed set of states an order can be in.
// delivered and cancelled are terminal.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusOnTheWay  OrderStatus = "ontheway"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the four recognized statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusOnTheWay, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderLine is a (product, quantity) pair within an order.
type OrderLine struct {
	ProductID primitive.ObjectID `json:"product_id" bson:"product_id"`
	Quantity  int                `json:"quantity" bson:"quantity"`
}

// Order defines the structure for a placed order.
type Order struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID          primitive.ObjectID `json:"user_id" bson:"user_id"`
	Products        []OrderLine        `json:"products" bson:"products"`
	ShippingAddress string             `json:"shipping_address" bson:"shipping_address"`
	PhoneNumber     string             `json:"phone_number" bson:"phone_number"`
	TotalAmount     float64            `json:"total_amount" bson:"total_amount"`
	PaymentMethod   string             `json:"payment_method" bson:"payment_method"`
	Status          OrderStatus        `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// OrderLineRequest is one line of an incoming order payload.
type OrderLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// CreateOrderRequest defines the payload for placing an order.
type CreateOrderRequest struct {
	Products        []OrderLineRequest `json:"products" binding:"required"`
	ShippingAddress string             `json:"shipping_address" binding:"required"`
	PhoneNumber     string             `json:"phone_number" binding:"required"`
	TotalAmount     float64            `json:"total_amount" binding:"required"`
	PaymentMethod   string             `json:"payment_method" binding:"required"`
}

// UpdateOrderStatusRequest defines the payload for the admin status update.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required"`
}
