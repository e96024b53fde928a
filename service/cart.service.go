package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"merobazar-backend/models"
	"merobazar-backend/repository"
)

// CartService enforces the cart invariants: one line per (user, product)
// and line quantity never above the product's stock snapshot at write
// time. The stock check is read-then-write; nothing is reserved.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// Add puts qty of a product into the user's cart, incrementing an
// existing line when there is one. The returned bool is true when a new
// line was created.
func (s *CartService) Add(ctx context.Context, userID, productID primitive.ObjectID, qty int) (*models.CartItem, bool, error) {
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return nil, false, errf(ErrInvalidInput, "quantity must be at least 1")
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, errf(ErrNotFound, "product not found")
		}
		return nil, false, err
	}
	if qty > product.Stock {
		return nil, false, errf(ErrInsufficientStock, "only %d items available in stock", product.Stock)
	}

	existing, err := s.carts.FindByUserAndProduct(ctx, userID, productID)
	switch {
	case err == nil:
		newQty := existing.Quantity + qty
		if newQty > product.Stock {
			return nil, false, errf(ErrInsufficientStock,
				"cannot add %d more, only %d more items available", qty, product.Stock-existing.Quantity)
		}
		if err := s.carts.UpdateQuantity(ctx, existing.ID, newQty); err != nil {
			return nil, false, err
		}
		existing.Quantity = newQty
		return existing, false, nil
	case errors.Is(err, repository.ErrNotFound):
		item := &models.CartItem{UserID: userID, ProductID: productID, Quantity: qty}
		if err := s.carts.Create(ctx, item); err != nil {
			return nil, false, err
		}
		return item, true, nil
	default:
		return nil, false, err
	}
}

// Items returns the user's cart lines and the total amount at current
// product prices. Lines whose product has disappeared contribute nothing.
func (s *CartService) Items(ctx context.Context, userID primitive.ObjectID) ([]models.CartItem, float64, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	var total float64
	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, 0, err
		}
		total += product.Price * float64(item.Quantity)
	}
	return items, total, nil
}

func (s *CartService) All(ctx context.Context) ([]models.CartItem, error) {
	return s.carts.ListAll(ctx)
}

// UpdateQuantity sets an owned line to qty, subject to the stock rule.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, id primitive.ObjectID, qty int) (*models.CartItem, error) {
	if qty < 1 {
		return nil, errf(ErrInvalidInput, "quantity must be at least 1")
	}

	item, err := s.carts.GetForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errf(ErrNotFound, "cart item not found")
		}
		return nil, err
	}

	product, err := s.products.GetByID(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errf(ErrNotFound, "product not found")
		}
		return nil, err
	}
	if qty > product.Stock {
		return nil, errf(ErrInsufficientStock, "only %d items available in stock", product.Stock)
	}

	if err := s.carts.UpdateQuantity(ctx, item.ID, qty); err != nil {
		return nil, err
	}
	item.Quantity = qty
	return item, nil
}

func (s *CartService) Remove(ctx context.Context, userID, id primitive.ObjectID) error {
	err := s.carts.Delete(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return errf(ErrNotFound, "cart item not found")
	}
	return err
}

// Clear empties the user's cart. Clearing an already-empty cart succeeds
// with a zero count.
func (s *CartService) Clear(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.carts.DeleteAllForUser(ctx, userID)
}
