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

// MongoCategories is the MongoDB-backed CategoryRepository.
type MongoCategories struct {
	col *mongo.Collection
}

func NewMongoCategories(db *mongo.Database) *MongoCategories {
	return &MongoCategories{col: db.Collection("categories")}
}

var _ CategoryRepository = (*MongoCategories)(nil)

func (r *MongoCategories) Create(ctx context.Context, c *models.Category) error {
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	result, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return translateError(err)
	}
	c.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoCategories) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var c models.Category
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *MongoCategories) List(ctx context.Context) ([]models.Category, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *MongoCategories) UpdateName(ctx context.Context, id primitive.ObjectID, name string) (*models.Category, error) {
	update := bson.M{"$set": bson.M{"name": name, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c models.Category
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&c)
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *MongoCategories) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
