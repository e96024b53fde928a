package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"merobazar-backend/models"
	"merobazar-backend/repository"
)

// UserService covers account lookup and administration.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errf(ErrNotFound, "user not found")
		}
		return nil, err
	}
	return user, nil
}

// UpdateUsername is the only self-service mutation an account has.
func (s *UserService) UpdateUsername(ctx context.Context, id primitive.ObjectID, username string) (*models.User, error) {
	if username == "" {
		return nil, errf(ErrInvalidInput, "username is required")
	}
	user, err := s.users.UpdateUsername(ctx, id, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errf(ErrNotFound, "user not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.users.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return errf(ErrNotFound, "user not found")
	}
	return err
}
