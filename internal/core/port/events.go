package port

import (
	"context"

	"github.com/blossomkart/blossomkart/internal/core/domain"
)

//go:generate mockgen -source=events.go -destination=mock/events.go -package=mock
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *domain.Order) error
	PublishOrderCancelled(ctx context.Context, order *domain.Order) error
}
