package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"merobazar-backend/models"
	"merobazar-backend/repository"
)

type reviewFixture struct {
	reviews   *ReviewService
	orders    *OrderService
	userID    primitive.ObjectID
	productID primitive.ObjectID
	orderID   primitive.ObjectID
}

// newReviewFixture seeds one order for userID containing productID in the
// given status.
func newReviewFixture(t *testing.T, status models.OrderStatus) reviewFixture {
	t.Helper()
	store := repository.NewMemoryStore()
	ctx := context.Background()

	orders := NewOrderService(store.Orders())
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	order, err := orders.Create(ctx, userID,
		[]models.OrderLine{{ProductID: productID, Quantity: 1}},
		"Pokhara 33700", "9811111111", 20, "cod")
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	if status != models.OrderStatusPending {
		if _, err := orders.UpdateStatus(ctx, order.ID, status); err != nil {
			t.Fatalf("seed status: %v", err)
		}
	}

	return reviewFixture{
		reviews:   NewReviewService(store.Reviews(), store.Orders()),
		orders:    orders,
		userID:    userID,
		productID: productID,
		orderID:   order.ID,
	}
}

func TestReviewCreateDeliveredOrder(t *testing.T) {
	f := newReviewFixture(t, models.OrderStatusDelivered)

	review, err := f.reviews.Create(context.Background(), f.userID, f.productID, f.orderID, 4, "solid build")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if review.Rating != 4 || review.Review != "solid build" {
		t.Fatalf("unexpected review: %+v", review)
	}
}

func TestReviewRejectsUndeliveredOrder(t *testing.T) {
	for _, status := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusOnTheWay,
		models.OrderStatusCancelled,
	} {
		f := newReviewFixture(t, status)
		_, err := f.reviews.Create(context.Background(), f.userID, f.productID, f.orderID, 5, "")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("status %s: err = %v, want ErrInvalidState", status, err)
		}
	}
}

func TestReviewRejectsForeignOrder(t *testing.T) {
	f := newReviewFixture(t, models.OrderStatusDelivered)

	_, err := f.reviews.Create(context.Background(), primitive.NewObjectID(), f.productID, f.orderID, 5, "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReviewRatingBounds(t *testing.T) {
	f := newReviewFixture(t, models.OrderStatusDelivered)
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6} {
		if _, err := f.reviews.Create(ctx, f.userID, f.productID, f.orderID, rating, ""); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("rating %d: err = %v, want ErrInvalidInput", rating, err)
		}
	}
}

func TestReviewDuplicateRejected(t *testing.T) {
	f := newReviewFixture(t, models.OrderStatusDelivered)
	ctx := context.Background()

	if _, err := f.reviews.Create(ctx, f.userID, f.productID, f.orderID, 5, "first"); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := f.reviews.Create(ctx, f.userID, f.productID, f.orderID, 3, "second")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}

	got, err := f.reviews.ForProduct(ctx, f.productID)
	if err != nil {
		t.Fatalf("ForProduct: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("product has %d reviews, want 1", len(got))
	}
}

func TestReviewUpdateOwnOnly(t *testing.T) {
	f := newReviewFixture(t, models.OrderStatusDelivered)
	ctx := context.Background()

	review, err := f.reviews.Create(ctx, f.userID, f.productID, f.orderID, 2, "meh")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := f.reviews.Update(ctx, primitive.NewObjectID(), review.ID, 5, "great"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign update: err = %v, want ErrNotFound", err)
	}
	if _, err := f.reviews.Update(ctx, f.userID, review.ID, 7, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad rating: err = %v, want ErrInvalidInput", err)
	}

	// Zero rating leaves the old rating in place.
	updated, err := f.reviews.Update(ctx, f.userID, review.ID, 0, "actually fine")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Rating != 2 || updated.Review != "actually fine" {
		t.Fatalf("unexpected review after update: %+v", updated)
	}
}

func TestReviewDeleteOwnOnly(t *testing.T) {
	f := newReviewFixture(t, models.OrderStatusDelivered)
	ctx := context.Background()

	review, err := f.reviews.Create(ctx, f.userID, f.productID, f.orderID, 3, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := f.reviews.Delete(ctx, primitive.NewObjectID(), review.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign delete: err = %v, want ErrNotFound", err)
	}
	if err := f.reviews.Delete(ctx, f.userID, review.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := f.reviews.Delete(ctx, f.userID, review.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete: err = %v, want ErrNotFound", err)
	}
}
