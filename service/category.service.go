package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"merobazar-backend/models"
	"merobazar-backend/repository"
)

// CategoryService covers category CRUD.
type CategoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(ctx context.Context, userID primitive.ObjectID, name string) (*models.Category, error) {
	if name == "" {
		return nil, errf(ErrInvalidInput, "category name is required")
	}
	category := &models.Category{Name: name, UserID: userID}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errf(ErrNotFound, "category not found")
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Rename(ctx context.Context, id primitive.ObjectID, name string) (*models.Category, error) {
	if name == "" {
		return nil, errf(ErrInvalidInput, "category name is required")
	}
	category, err := s.categories.UpdateName(ctx, id, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errf(ErrNotFound, "category not found")
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.categories.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return errf(ErrNotFound, "category not found")
	}
	return err
}
