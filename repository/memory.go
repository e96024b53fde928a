package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"merobazar-backend/models"
)

// MemoryStore is an in-memory stand-in for MongoDB used by tests. It
// enforces the same unique constraints the Mongo indexes provide:
// users.email, favourites(user, product) and reviews(user, product, order).
type MemoryStore struct {
	mu         sync.RWMutex
	users      map[primitive.ObjectID]models.User
	products   map[primitive.ObjectID]models.Product
	categories map[primitive.ObjectID]models.Category
	carts      map[primitive.ObjectID]models.CartItem
	orders     map[primitive.ObjectID]models.Order
	favourites map[primitive.ObjectID]models.Favourite
	reviews    map[primitive.ObjectID]models.Review
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[primitive.ObjectID]models.User),
		products:   make(map[primitive.ObjectID]models.Product),
		categories: make(map[primitive.ObjectID]models.Category),
		carts:      make(map[primitive.ObjectID]models.CartItem),
		orders:     make(map[primitive.ObjectID]models.Order),
		favourites: make(map[primitive.ObjectID]models.Favourite),
		reviews:    make(map[primitive.ObjectID]models.Review),
	}
}

// Users returns the in-memory UserRepository view of the store.
func (m *MemoryStore) Users() UserRepository             { return &memoryUsers{m} }
func (m *MemoryStore) Products() ProductRepository       { return &memoryProducts{m} }
func (m *MemoryStore) Categories() CategoryRepository    { return &memoryCategories{m} }
func (m *MemoryStore) Carts() CartRepository             { return &memoryCarts{m} }
func (m *MemoryStore) Orders() OrderRepository           { return &memoryOrders{m} }
func (m *MemoryStore) Favourites() FavouriteRepository   { return &memoryFavourites{m} }
func (m *MemoryStore) Reviews() ReviewRepository         { return &memoryReviews{m} }

// ----- users -----

type memoryUsers struct{ s *MemoryStore }

func (r *memoryUsers) Create(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return ErrDuplicate
		}
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.s.users[u.ID] = *u
	return nil
}

func (r *memoryUsers) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (r *memoryUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUsers) List(_ context.Context) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memoryUsers) UpdateUsername(_ context.Context, id primitive.ObjectID, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u.Username = username
	u.UpdatedAt = time.Now()
	r.s.users[id] = u
	cp := u
	return &cp, nil
}

func (r *memoryUsers) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

func (r *memoryUsers) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users)), nil
}

// ----- products -----

type memoryProducts struct{ s *MemoryStore }

func (r *memoryProducts) Create(_ context.Context, p *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.s.products[p.ID] = *p
	return nil
}

func (r *memoryProducts) GetByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (r *memoryProducts) GetByName(_ context.Context, name string) (*models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.Name == name {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryProducts) List(_ context.Context) ([]models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryProducts) Update(_ context.Context, p *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return ErrNotFound
	}
	p.UpdatedAt = time.Now()
	r.s.products[p.ID] = *p
	return nil
}

func (r *memoryProducts) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

func (r *memoryProducts) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.products)), nil
}

func (r *memoryProducts) TotalValue(_ context.Context) (float64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var total float64
	for _, p := range r.s.products {
		total += p.Price * float64(p.Stock)
	}
	return total, nil
}

// ----- categories -----

type memoryCategories struct{ s *MemoryStore }

func (r *memoryCategories) Create(_ context.Context, c *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.s.categories[c.ID] = *c
	return nil
}

func (r *memoryCategories) GetByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := c
	return &cp, nil
}

func (r *memoryCategories) List(_ context.Context) ([]models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *memoryCategories) UpdateName(_ context.Context, id primitive.ObjectID, name string) (*models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	r.s.categories[id] = c
	cp := c
	return &cp, nil
}

func (r *memoryCategories) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.categories, id)
	return nil
}

// ----- carts -----

type memoryCarts struct{ s *MemoryStore }

func (r *memoryCarts) Create(_ context.Context, item *models.CartItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	r.s.carts[item.ID] = *item
	return nil
}

func (r *memoryCarts) GetForUser(_ context.Context, id, userID primitive.ObjectID) (*models.CartItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	item, ok := r.s.carts[id]
	if !ok || item.UserID != userID {
		return nil, ErrNotFound
	}
	cp := item
	return &cp, nil
}

func (r *memoryCarts) FindByUserAndProduct(_ context.Context, userID, productID primitive.ObjectID) (*models.CartItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, item := range r.s.carts {
		if item.UserID == userID && item.ProductID == productID {
			cp := item
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryCarts) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.CartItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.CartItem, 0)
	for _, item := range r.s.carts {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memoryCarts) ListAll(_ context.Context) ([]models.CartItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.CartItem, 0, len(r.s.carts))
	for _, item := range r.s.carts {
		out = append(out, item)
	}
	return out, nil
}

func (r *memoryCarts) UpdateQuantity(_ context.Context, id primitive.ObjectID, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.carts[id]
	if !ok {
		return ErrNotFound
	}
	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	r.s.carts[id] = item
	return nil
}

func (r *memoryCarts) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.carts[id]
	if !ok || item.UserID != userID {
		return ErrNotFound
	}
	delete(r.s.carts, id)
	return nil
}

func (r *memoryCarts) DeleteAllForUser(_ context.Context, userID primitive.ObjectID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, item := range r.s.carts {
		if item.UserID == userID {
			delete(r.s.carts, id)
			n++
		}
	}
	return n, nil
}

// ----- orders -----

type memoryOrders struct{ s *MemoryStore }

func (r *memoryOrders) Create(_ context.Context, o *models.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o.ID = primitive.NewObjectID()
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	r.s.orders[o.ID] = *o
	return nil
}

func (r *memoryOrders) GetByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := o
	return &cp, nil
}

func (r *memoryOrders) GetForUser(_ context.Context, id, userID primitive.ObjectID) (*models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok || o.UserID != userID {
		return nil, ErrNotFound
	}
	cp := o
	return &cp, nil
}

func (r *memoryOrders) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Order, 0)
	for _, o := range r.s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memoryOrders) ListAll(_ context.Context) ([]models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *memoryOrders) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	r.s.orders[id] = o
	cp := o
	return &cp, nil
}

func (r *memoryOrders) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.orders, id)
	return nil
}

func (r *memoryOrders) DeletePendingForUser(_ context.Context, id, userID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok || o.UserID != userID || o.Status != models.OrderStatusPending {
		return ErrNotFound
	}
	delete(r.s.orders, id)
	return nil
}

func (r *memoryOrders) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.orders)), nil
}

// ----- favourites -----

type memoryFavourites struct{ s *MemoryStore }

func (r *memoryFavourites) Create(_ context.Context, f *models.Favourite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.favourites {
		if existing.UserID == f.UserID && existing.ProductID == f.ProductID {
			return ErrDuplicate
		}
	}
	f.ID = primitive.NewObjectID()
	f.CreatedAt = time.Now()
	r.s.favourites[f.ID] = *f
	return nil
}

func (r *memoryFavourites) Find(_ context.Context, userID, productID primitive.ObjectID) (*models.Favourite, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, f := range r.s.favourites {
		if f.UserID == userID && f.ProductID == productID {
			cp := f
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryFavourites) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Favourite, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Favourite, 0)
	for _, f := range r.s.favourites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memoryFavourites) ListAll(_ context.Context) ([]models.Favourite, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Favourite, 0, len(r.s.favourites))
	for _, f := range r.s.favourites {
		out = append(out, f)
	}
	return out, nil
}

func (r *memoryFavourites) Delete(_ context.Context, userID, productID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, f := range r.s.favourites {
		if f.UserID == userID && f.ProductID == productID {
			delete(r.s.favourites, id)
			return nil
		}
	}
	return ErrNotFound
}

// ----- reviews -----

type memoryReviews struct{ s *MemoryStore }

func (r *memoryReviews) Create(_ context.Context, review *models.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.reviews {
		if existing.UserID == review.UserID &&
			existing.ProductID == review.ProductID &&
			existing.OrderID == review.OrderID {
			return ErrDuplicate
		}
	}
	review.ID = primitive.NewObjectID()
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	r.s.reviews[review.ID] = *review
	return nil
}

func (r *memoryReviews) GetForUser(_ context.Context, id, userID primitive.ObjectID) (*models.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	review, ok := r.s.reviews[id]
	if !ok || review.UserID != userID {
		return nil, ErrNotFound
	}
	cp := review
	return &cp, nil
}

func (r *memoryReviews) ListByProduct(_ context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Review, 0)
	for _, review := range r.s.reviews {
		if review.ProductID == productID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (r *memoryReviews) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Review, 0)
	for _, review := range r.s.reviews {
		if review.UserID == userID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (r *memoryReviews) ListAll(_ context.Context) ([]models.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Review, 0, len(r.s.reviews))
	for _, review := range r.s.reviews {
		out = append(out, review)
	}
	return out, nil
}

func (r *memoryReviews) Update(_ context.Context, review *models.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reviews[review.ID]; !ok {
		return ErrNotFound
	}
	review.UpdatedAt = time.Now()
	r.s.reviews[review.ID] = *review
	return nil
}

func (r *memoryReviews) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reviews[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.reviews, id)
	return nil
}
