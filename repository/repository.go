package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"merobazar-backend/models"
)

// ErrNotFound is returned when no document matches the query.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a write violates a unique index.
var ErrDuplicate = errors.New("duplicate entry")

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateUsername(ctx context.Context, id primitive.ObjectID, username string) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// ProductRepository persists products.
type ProductRepository interface {
	Create(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	GetByName(ctx context.Context, name string) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	TotalValue(ctx context.Context) (float64, error)
}

// CategoryRepository persists product categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *models.Category) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	UpdateName(ctx context.Context, id primitive.ObjectID, name string) (*models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CartRepository persists cart lines, one document per (user, product).
type CartRepository interface {
	Create(ctx context.Context, item *models.CartItem) error
	GetForUser(ctx context.Context, id, userID primitive.ObjectID) (*models.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID, productID primitive.ObjectID) (*models.CartItem, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.CartItem, error)
	ListAll(ctx context.Context) ([]models.CartItem, error)
	UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
	DeleteAllForUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

// OrderRepository persists orders.
type OrderRepository interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	GetForUser(ctx context.Context, id, userID primitive.ObjectID) (*models.Order, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeletePendingForUser(ctx context.Context, id, userID primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// FavouriteRepository persists (user, product) favourite pairs. Create
// reports ErrDuplicate for an existing pair, backed by a unique index.
type FavouriteRepository interface {
	Create(ctx context.Context, f *models.Favourite) error
	Find(ctx context.Context, userID, productID primitive.ObjectID) (*models.Favourite, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Favourite, error)
	ListAll(ctx context.Context) ([]models.Favourite, error)
	Delete(ctx context.Context, userID, productID primitive.ObjectID) error
}

// ReviewRepository persists product reviews. Create reports ErrDuplicate
// for an existing (user, product, order) triple, backed by a unique index.
type ReviewRepository interface {
	Create(ctx context.Context, r *models.Review) error
	GetForUser(ctx context.Context, id, userID primitive.ObjectID) (*models.Review, error)
	ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error)
	ListAll(ctx context.Context) ([]models.Review, error)
	Update(ctx context.Context, r *models.Review) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
