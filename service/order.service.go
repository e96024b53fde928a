package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"merobazar-backend/models"
	"merobazar-backend/repository"
)

// OrderService owns the order lifecycle. Orders always start pending;
// status updates accept any of the four recognized values without a
// transition table, and stock is not decremented at creation. Both are
// deliberate, see DESIGN.md.
type OrderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// Create places an order in the pending state.
func (s *OrderService) Create(ctx context.Context, userID primitive.ObjectID, lines []models.OrderLine,
	shippingAddress, phoneNumber string, totalAmount float64, paymentMethod string) (*models.Order, error) {

	if len(lines) == 0 || shippingAddress == "" || phoneNumber == "" || totalAmount == 0 || paymentMethod == "" {
		return nil, errf(ErrInvalidInput, "all fields are required")
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, errf(ErrInvalidInput, "line quantity must be at least 1")
		}
	}

	order := &models.Order{
		UserID:          userID,
		Products:        lines,
		ShippingAddress: shippingAddress,
		PhoneNumber:     phoneNumber,
		TotalAmount:     totalAmount,
		PaymentMethod:   paymentMethod,
		Status:          models.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Mine(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) All(ctx context.Context) ([]models.Order, error) {
	return s.orders.ListAll(ctx)
}

// Get returns a single order; admins can see any order, other users only
// their own.
func (s *OrderService) Get(ctx context.Context, userID primitive.ObjectID, role models.Role, id primitive.ObjectID) (*models.Order, error) {
	var (
		order *models.Order
		err   error
	)
	if role.IsAdmin() {
		order, err = s.orders.GetByID(ctx, id)
	} else {
		order, err = s.orders.GetForUser(ctx, id, userID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errf(ErrNotFound, "order not found")
		}
		return nil, err
	}
	return order, nil
}

// UpdateStatus sets the order's status to any of the recognized values.
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, errf(ErrInvalidInput,
			"invalid order status, valid options: pending, ontheway, delivered, cancelled")
	}
	order, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errf(ErrNotFound, "order not found")
		}
		return nil, err
	}
	return order, nil
}

// Delete removes an order. Admins delete unconditionally; other users may
// only cancel their own orders while still pending. The non-admin message
// does not reveal which of the two conditions failed.
func (s *OrderService) Delete(ctx context.Context, userID primitive.ObjectID, role models.Role, id primitive.ObjectID) error {
	if role.IsAdmin() {
		err := s.orders.Delete(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return errf(ErrNotFound, "order not found")
		}
		return err
	}

	err := s.orders.DeletePendingForUser(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return errf(ErrNotFound, "order not found or cannot be cancelled unless pending")
	}
	return err
}
