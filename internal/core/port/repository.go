package port

import (
	"context"
	"time"

	"github.com/blossomkart/blossomkart/internal/core/domain"
)

// ProductFilter narrows catalog listings. Page is 1-based.
type ProductFilter struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uint64) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)

	// Product
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
	GetProductByID(ctx context.Context, id uint64) (*domain.Product, error)
	GetProductByName(ctx context.Context, name string) (*domain.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]*domain.Product, int, error)

	// Cart
	ListCartItems(ctx context.Context, userID uint64) ([]*domain.CartItem, error)
	GetCartItem(ctx context.Context, userID, productID uint64) (*domain.CartItem, error)
	UpsertCartItem(ctx context.Context, item *domain.CartItem) error
	DeleteCartItem(ctx context.Context, userID, productID uint64) error
	ClearCart(ctx context.Context, userID uint64) error

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, username string) ([]*domain.Order, error)
	ListOrdersByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Order, error)
}
