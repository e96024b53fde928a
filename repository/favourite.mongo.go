package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"merobazar-backend/models"
)

// MongoFavourites is the MongoDB-backed FavouriteRepository. The unique
// index on (user_id, product_id) makes duplicate pairs a write error.
type MongoFavourites struct {
	col *mongo.Collection
}

func NewMongoFavourites(db *mongo.Database) *MongoFavourites {
	return &MongoFavourites{col: db.Collection("favourites")}
}

var _ FavouriteRepository = (*MongoFavourites)(nil)

func (r *MongoFavourites) Create(ctx context.Context, f *models.Favourite) error {
	f.CreatedAt = time.Now()
	result, err := r.col.InsertOne(ctx, f)
	if err != nil {
		return translateError(err)
	}
	f.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoFavourites) Find(ctx context.Context, userID, productID primitive.ObjectID) (*models.Favourite, error) {
	var f models.Favourite
	err := r.col.FindOne(ctx, bson.M{"user_id": userID, "product_id": productID}).Decode(&f)
	if err != nil {
		return nil, translateError(err)
	}
	return &f, nil
}

func (r *MongoFavourites) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Favourite, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *MongoFavourites) ListAll(ctx context.Context) ([]models.Favourite, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoFavourites) list(ctx context.Context, filter bson.M) ([]models.Favourite, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var favourites []models.Favourite
	if err = cursor.All(ctx, &favourites); err != nil {
		return nil, err
	}
	return favourites, nil
}

func (r *MongoFavourites) Delete(ctx context.Context, userID, productID primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"user_id": userID, "product_id": productID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
