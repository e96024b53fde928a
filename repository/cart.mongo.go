package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"merobazar-backend/models"
)

// MongoCarts is the MongoDB-backed CartRepository.
type MongoCarts struct {
	col *mongo.Collection
}

func NewMongoCarts(db *mongo.Database) *MongoCarts {
	return &MongoCarts{col: db.Collection("carts")}
}

var _ CartRepository = (*MongoCarts)(nil)

func (r *MongoCarts) Create(ctx context.Context, item *models.CartItem) error {
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	result, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return translateError(err)
	}
	item.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoCarts) GetForUser(ctx context.Context, id, userID primitive.ObjectID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&item)
	if err != nil {
		return nil, translateError(err)
	}
	return &item, nil
}

func (r *MongoCarts) FindByUserAndProduct(ctx context.Context, userID, productID primitive.ObjectID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.col.FindOne(ctx, bson.M{"user_id": userID, "product_id": productID}).Decode(&item)
	if err != nil {
		return nil, translateError(err)
	}
	return &item, nil
}

func (r *MongoCarts) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.CartItem, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *MongoCarts) ListAll(ctx context.Context) ([]models.CartItem, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoCarts) list(ctx context.Context, filter bson.M) ([]models.CartItem, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoCarts) UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) error {
	update := bson.M{"$set": bson.M{"quantity": quantity, "updated_at": time.Now()}}
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCarts) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCarts) DeleteAllForUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	result, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
