package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"merobazar-backend/models"
	"merobazar-backend/repository"
)

// ProductService covers the product catalogue. Mutations are admin-only;
// the role check happens in the middleware chain, not here.
type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Create adds a product. Name uniqueness is a pre-check only, there is no
// index behind it.
func (s *ProductService) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	if p.Name == "" || p.Description == "" || p.Category == "" {
		return nil, errf(ErrInvalidInput, "name, description and category are required")
	}
	if p.Price <= 0 {
		return nil, errf(ErrInvalidInput, "price must be a positive number")
	}
	if p.Stock < 0 {
		return nil, errf(ErrInvalidInput, "stock must not be negative")
	}

	if _, err := s.products.GetByName(ctx, p.Name); err == nil {
		return nil, errf(ErrConflict, "product name must be unique")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	cp := p
	if err := s.products.Create(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *ProductService) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errf(ErrNotFound, "product not found")
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.products.List(ctx)
}

// Update applies the set fields of upd to an existing product.
func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, upd models.ProductUpdate) (*models.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != "" {
		p.Name = upd.Name
	}
	if upd.Description != "" {
		p.Description = upd.Description
	}
	if upd.Category != "" {
		p.Category = upd.Category
	}
	if upd.ImageURL != "" {
		p.ImageURL = upd.ImageURL
	}
	if upd.Price != nil {
		if *upd.Price <= 0 {
			return nil, errf(ErrInvalidInput, "price must be a positive number")
		}
		p.Price = *upd.Price
	}
	if upd.Stock != nil {
		if *upd.Stock < 0 {
			return nil, errf(ErrInvalidInput, "stock must not be negative")
		}
		p.Stock = *upd.Stock
	}

	if err := s.products.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errf(ErrNotFound, "product not found")
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.products.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return errf(ErrNotFound, "product not found")
	}
	return err
}
