package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"merobazar-backend/models"
)

// MongoOrders is the MongoDB-backed OrderRepository.
type MongoOrders struct {
	col *mongo.Collection
}

func NewMongoOrders(db *mongo.Database) *MongoOrders {
	return &MongoOrders{col: db.Collection("orders")}
}

var _ OrderRepository = (*MongoOrders)(nil)

func (r *MongoOrders) Create(ctx context.Context, o *models.Order) error {
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	result, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return translateError(err)
	}
	o.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoOrders) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return r.get(ctx, bson.M{"_id": id})
}

func (r *MongoOrders) GetForUser(ctx context.Context, id, userID primitive.ObjectID) (*models.Order, error) {
	return r.get(ctx, bson.M{"_id": id, "user_id": userID})
}

func (r *MongoOrders) get(ctx context.Context, filter bson.M) (*models.Order, error) {
	var o models.Order
	err := r.col.FindOne(ctx, filter).Decode(&o)
	if err != nil {
		return nil, translateError(err)
	}
	return &o, nil
}

func (r *MongoOrders) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *MongoOrders) ListAll(ctx context.Context) ([]models.Order, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoOrders) list(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *MongoOrders) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o models.Order
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&o)
	if err != nil {
		return nil, translateError(err)
	}
	return &o, nil
}

func (r *MongoOrders) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePendingForUser removes an order only when it belongs to the user
// and is still pending; anything else reports ErrNotFound.
func (r *MongoOrders) DeletePendingForUser(ctx context.Context, id, userID primitive.ObjectID) error {
	filter := bson.M{"_id": id, "user_id": userID, "status": models.OrderStatusPending}
	result, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoOrders) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
