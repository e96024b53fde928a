package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"merobazar-backend/repository"
)

func TestFavouriteAddOnce(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewFavouriteService(store.Favourites())
	ctx := context.Background()
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	if _, err := svc.Add(ctx, userID, productID); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Add(ctx, userID, productID); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate Add: err = %v, want ErrConflict", err)
	}

	// The same product can be favourited by another user.
	if _, err := svc.Add(ctx, primitive.NewObjectID(), productID); err != nil {
		t.Fatalf("Add by other user: %v", err)
	}
}

func TestFavouriteCheckIsSideEffectFree(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewFavouriteService(store.Favourites())
	ctx := context.Background()
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	found, fav, err := svc.Check(ctx, userID, productID)
	if err != nil {
		t.Fatalf("Check absent: %v", err)
	}
	if found || fav != nil {
		t.Fatalf("Check absent = (%v, %v), want (false, nil)", found, fav)
	}

	if _, err := svc.Add(ctx, userID, productID); err != nil {
		t.Fatalf("Add: %v", err)
	}
	found, fav, err = svc.Check(ctx, userID, productID)
	if err != nil {
		t.Fatalf("Check present: %v", err)
	}
	if !found || fav == nil {
		t.Fatalf("Check present = (%v, %v), want (true, favourite)", found, fav)
	}

	mine, err := svc.Mine(ctx, userID)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("Check created or removed favourites: have %d, want 1", len(mine))
	}
}

func TestFavouriteRemove(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewFavouriteService(store.Favourites())
	ctx := context.Background()
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	if err := svc.Remove(ctx, userID, productID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("remove absent: err = %v, want ErrNotFound", err)
	}

	if _, err := svc.Add(ctx, userID, productID); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := svc.Remove(ctx, userID, productID); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	found, _, err := svc.Check(ctx, userID, productID)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if found {
		t.Fatalf("favourite still present after Remove")
	}
}
