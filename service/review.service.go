package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"merobazar-backend/models"
	"merobazar-backend/repository"
)

// ReviewService gates review creation on a delivered order owned by the
// caller, with one review per (user, product, order) triple.
type ReviewService struct {
	reviews repository.ReviewRepository
	orders  repository.OrderRepository
}

func NewReviewService(reviews repository.ReviewRepository, orders repository.OrderRepository) *ReviewService {
	return &ReviewService{reviews: reviews, orders: orders}
}

func (s *ReviewService) Create(ctx context.Context, userID, productID, orderID primitive.ObjectID, rating int, text string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, errf(ErrInvalidInput, "rating must be between 1 and 5")
	}

	order, err := s.orders.GetForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errf(ErrNotFound, "order not found")
		}
		return nil, err
	}
	if order.Status != models.OrderStatusDelivered {
		return nil, errf(ErrInvalidState, "you can only review delivered orders")
	}

	review := &models.Review{
		UserID:    userID,
		ProductID: productID,
		OrderID:   orderID,
		Rating:    rating,
		Review:    text,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errf(ErrConflict, "you have already reviewed this product")
		}
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ForProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	return s.reviews.ListByProduct(ctx, productID)
}

func (s *ReviewService) Mine(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	return s.reviews.ListByUser(ctx, userID)
}

func (s *ReviewService) All(ctx context.Context) ([]models.Review, error) {
	return s.reviews.ListAll(ctx)
}

// Update edits the caller's own review; zero values leave a field as is.
func (s *ReviewService) Update(ctx context.Context, userID, id primitive.ObjectID, rating int, text string) (*models.Review, error) {
	if rating != 0 && (rating < 1 || rating > 5) {
		return nil, errf(ErrInvalidInput, "rating must be between 1 and 5")
	}

	review, err := s.reviews.GetForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errf(ErrNotFound, "review not found")
		}
		return nil, err
	}

	if rating != 0 {
		review.Rating = rating
	}
	if text != "" {
		review.Review = text
	}
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	if _, err := s.reviews.GetForUser(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errf(ErrNotFound, "review not found")
		}
		return err
	}
	return s.reviews.Delete(ctx, id)
}
