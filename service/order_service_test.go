package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"merobazar-backend/models"
	"merobazar-backend/repository"
)

func placeOrder(t *testing.T, svc *OrderService, userID primitive.ObjectID) *models.Order {
	t.Helper()
	lines := []models.OrderLine{{ProductID: primitive.NewObjectID(), Quantity: 2}}
	order, err := svc.Create(context.Background(), userID, lines, "Kathmandu 44600", "9800000000", 50, "cod")
	if err != nil {
		t.Fatalf("Create order: %v", err)
	}
	return order
}

func TestOrderCreateStartsPending(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewOrderService(store.Orders())

	order := placeOrder(t, svc, primitive.NewObjectID())
	if order.Status != models.OrderStatusPending {
		t.Fatalf("status = %q, want pending", order.Status)
	}
}

func TestOrderCreateValidation(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewOrderService(store.Orders())
	ctx := context.Background()
	userID := primitive.NewObjectID()
	lines := []models.OrderLine{{ProductID: primitive.NewObjectID(), Quantity: 1}}

	cases := []struct {
		name string
		run  func() error
	}{
		{"no lines", func() error {
			_, err := svc.Create(ctx, userID, nil, "addr", "980", 10, "cod")
			return err
		}},
		{"empty address", func() error {
			_, err := svc.Create(ctx, userID, lines, "", "980", 10, "cod")
			return err
		}},
		{"empty phone", func() error {
			_, err := svc.Create(ctx, userID, lines, "addr", "", 10, "cod")
			return err
		}},
		{"zero amount", func() error {
			_, err := svc.Create(ctx, userID, lines, "addr", "980", 0, "cod")
			return err
		}},
		{"zero line quantity", func() error {
			bad := []models.OrderLine{{ProductID: primitive.NewObjectID(), Quantity: 0}}
			_, err := svc.Create(ctx, userID, bad, "addr", "980", 10, "cod")
			return err
		}},
	}
	for _, tc := range cases {
		if err := tc.run(); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: err = %v, want ErrInvalidInput", tc.name, err)
		}
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewOrderService(store.Orders())
	ctx := context.Background()

	order := placeOrder(t, svc, primitive.NewObjectID())

	for _, status := range []models.OrderStatus{
		models.OrderStatusOnTheWay,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
		models.OrderStatusPending,
	} {
		updated, err := svc.UpdateStatus(ctx, order.ID, status)
		if err != nil {
			t.Fatalf("UpdateStatus(%s): %v", status, err)
		}
		if updated.Status != status {
			t.Fatalf("status = %q, want %q", updated.Status, status)
		}
	}

	if _, err := svc.UpdateStatus(ctx, order.ID, "shipped"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown status: err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.UpdateStatus(ctx, primitive.NewObjectID(), models.OrderStatusDelivered); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing order: err = %v, want ErrNotFound", err)
	}
}

func TestOrderGetScopedByOwner(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewOrderService(store.Orders())
	ctx := context.Background()
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	order := placeOrder(t, svc, owner)

	if _, err := svc.Get(ctx, owner, models.RoleUser, order.ID); err != nil {
		t.Fatalf("owner Get: %v", err)
	}
	if _, err := svc.Get(ctx, stranger, models.RoleUser, order.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("stranger Get: err = %v, want ErrNotFound", err)
	}
	if _, err := svc.Get(ctx, stranger, models.RoleAdmin, order.ID); err != nil {
		t.Fatalf("admin Get: %v", err)
	}
}

func TestOrderDeletePendingOnlyForOwner(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewOrderService(store.Orders())
	ctx := context.Background()
	owner := primitive.NewObjectID()

	order := placeOrder(t, svc, owner)
	if _, err := svc.UpdateStatus(ctx, order.ID, models.OrderStatusOnTheWay); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	// Once the order is on its way the owner can no longer cancel it.
	if err := svc.Delete(ctx, owner, models.RoleUser, order.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("owner delete ontheway: err = %v, want ErrNotFound", err)
	}

	pending := placeOrder(t, svc, owner)
	if err := svc.Delete(ctx, owner, models.RoleUser, pending.ID); err != nil {
		t.Fatalf("owner delete pending: %v", err)
	}

	// Admins delete regardless of status.
	if err := svc.Delete(ctx, primitive.NewObjectID(), models.RoleAdmin, order.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if err := svc.Delete(ctx, primitive.NewObjectID(), models.RoleAdmin, order.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("admin delete twice: err = %v, want ErrNotFound", err)
	}
}

func TestOrderDeleteForeignOrder(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewOrderService(store.Orders())
	owner := primitive.NewObjectID()

	order := placeOrder(t, svc, owner)
	err := svc.Delete(context.Background(), primitive.NewObjectID(), models.RoleUser, order.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	// The order must still exist for its owner.
	if _, err := svc.Get(context.Background(), owner, models.RoleUser, order.ID); err != nil {
		t.Fatalf("order gone after foreign delete attempt: %v", err)
	}
}
