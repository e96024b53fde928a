package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"merobazar-backend/models"
)

// MongoProducts is the MongoDB-backed ProductRepository.
type MongoProducts struct {
	col *mongo.Collection
}

func NewMongoProducts(db *mongo.Database) *MongoProducts {
	return &MongoProducts{col: db.Collection("products")}
}

var _ ProductRepository = (*MongoProducts)(nil)

func (r *MongoProducts) Create(ctx context.Context, p *models.Product) error {
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	result, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return translateError(err)
	}
	p.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoProducts) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *MongoProducts) GetByName(ctx context.Context, name string) (*models.Product, error) {
	var p models.Product
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&p)
	if err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *MongoProducts) List(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProducts) Update(ctx context.Context, p *models.Product) error {
	p.UpdatedAt = time.Now()
	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return translateError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProducts) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProducts) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// TotalValue sums price*stock over all products.
func (r *MongoProducts) TotalValue(ctx context.Context) (float64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": bson.M{"$multiply": []string{"$price", "$stock"}}},
		}},
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var result []bson.M
	if err := cursor.All(ctx, &result); err != nil {
		return 0, err
	}
	if len(result) == 0 {
		return 0, nil
	}
	total, _ := result[0]["total"].(float64)
	return total, nil
}
