package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"merobazar-backend/models"
)

// MongoReviews is the MongoDB-backed ReviewRepository. The unique index
// on (user_id, product_id, order_id) allows one review per triple.
type MongoReviews struct {
	col *mongo.Collection
}

func NewMongoReviews(db *mongo.Database) *MongoReviews {
	return &MongoReviews{col: db.Collection("reviews")}
}

var _ ReviewRepository = (*MongoReviews)(nil)

func (r *MongoReviews) Create(ctx context.Context, review *models.Review) error {
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	result, err := r.col.InsertOne(ctx, review)
	if err != nil {
		return translateError(err)
	}
	review.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoReviews) GetForUser(ctx context.Context, id, userID primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&review)
	if err != nil {
		return nil, translateError(err)
	}
	return &review, nil
}

func (r *MongoReviews) ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	return r.list(ctx, bson.M{"product_id": productID})
}

func (r *MongoReviews) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *MongoReviews) ListAll(ctx context.Context) ([]models.Review, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoReviews) list(ctx context.Context, filter bson.M) ([]models.Review, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *MongoReviews) Update(ctx context.Context, review *models.Review) error {
	review.UpdatedAt = time.Now()
	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": review.ID}, review)
	if err != nil {
		return translateError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoReviews) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
