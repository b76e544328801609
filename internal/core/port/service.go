package port

import (
	"context"
	"time"

	"github.com/blossomkart/blossomkart/internal/core/domain"
)

type ProfileUpdate struct {
	Name  string
	Email string
}

type Service interface {
	// Users
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, string, error)
	LoginUser(ctx context.Context, email string, password string) (*domain.User, string, error)
	GetProfile(ctx context.Context, userID uint64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uint64, update ProfileUpdate) (*domain.User, error)

	// Catalog
	ListProducts(ctx context.Context, filter ProductFilter) ([]*domain.Product, int, error)
	GetProduct(ctx context.Context, id uint64) (*domain.Product, error)
	CreateProduct(ctx context.Context, actorID uint64, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, actorID uint64, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, actorID uint64, id uint64) error

	// Cart
	GetCart(ctx context.Context, userID uint64) ([]*domain.CartItem, error)
	AddToCart(ctx context.Context, userID, productID uint64, quantity int) ([]*domain.CartItem, error)
	UpdateCartItem(ctx context.Context, userID, productID uint64, quantity int) ([]*domain.CartItem, error)
	RemoveFromCart(ctx context.Context, userID, productID uint64) ([]*domain.CartItem, error)
	ClearCart(ctx context.Context, userID uint64) error

	// Orders
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, username string, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, username string) ([]*domain.Order, error)
	UpdateOrderMessage(ctx context.Context, username string, orderID string, message string) (*domain.Order, error)
	CancelOrder(ctx context.Context, username string, orderID string) (*domain.Order, error)
	OrderStats(ctx context.Context, username string) (*domain.OrderStats, error)
	AvailableDeliveryTimes(ctx context.Context, date time.Time) ([]domain.DeliveryTime, error)
}
