package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"merobazar-backend/models"
	"merobazar-backend/repository"
)

// FavouriteService is a set-membership structure over (user, product)
// pairs, backed by a unique index.
type FavouriteService struct {
	favourites repository.FavouriteRepository
}

func NewFavouriteService(favourites repository.FavouriteRepository) *FavouriteService {
	return &FavouriteService{favourites: favourites}
}

func (s *FavouriteService) Add(ctx context.Context, userID, productID primitive.ObjectID) (*models.Favourite, error) {
	favourite := &models.Favourite{UserID: userID, ProductID: productID}
	if err := s.favourites.Create(ctx, favourite); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errf(ErrConflict, "product already in favourites")
		}
		return nil, err
	}
	return favourite, nil
}

func (s *FavouriteService) Remove(ctx context.Context, userID, productID primitive.ObjectID) error {
	err := s.favourites.Delete(ctx, userID, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return errf(ErrNotFound, "favourite not found")
	}
	return err
}

// Check is a pure membership query; it never fails for an absent pair.
func (s *FavouriteService) Check(ctx context.Context, userID, productID primitive.ObjectID) (bool, *models.Favourite, error) {
	favourite, err := s.favourites.Find(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil, nil
		}
		return false, nil, err
	}
	return true, favourite, nil
}

func (s *FavouriteService) Mine(ctx context.Context, userID primitive.ObjectID) ([]models.Favourite, error) {
	return s.favourites.ListByUser(ctx, userID)
}

func (s *FavouriteService) All(ctx context.Context) ([]models.Favourite, error) {
	return s.favourites.ListAll(ctx)
}
