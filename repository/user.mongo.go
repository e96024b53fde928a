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

// MongoUsers is the MongoDB-backed UserRepository.
type MongoUsers struct {
	col *mongo.Collection
}

func NewMongoUsers(db *mongo.Database) *MongoUsers {
	return &MongoUsers{col: db.Collection("users")}
}

var _ UserRepository = (*MongoUsers)(nil)

func (r *MongoUsers) Create(ctx context.Context, u *models.User) error {
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	result, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return translateError(err)
	}
	u.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoUsers) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}

func (r *MongoUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}

func (r *MongoUsers) List(ctx context.Context) ([]models.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUsers) UpdateUsername(ctx context.Context, id primitive.ObjectID, username string) (*models.User, error) {
	update := bson.M{"$set": bson.M{"username": username, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u models.User
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&u)
	if err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}

func (r *MongoUsers) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoUsers) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
