package service

import (
	"context"
	"errors"

	"github.com/blossomkart/blossomkart/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) GetCart(ctx context.Context, userID uint64) ([]*domain.CartItem, error) {
	items, err := s.repo.ListCartItems(ctx, userID)
	if err != nil {
		s.logger.Error("List cart", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return items, nil
}

// AddToCart merges: an existing line item gets its quantity incremented, a
// missing one is created.
func (s *Service) AddToCart(ctx context.Context, userID, productID uint64, quantity int) ([]*domain.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	if _, err := s.repo.GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrProductNotFound
		}
		s.logger.Error("Get product for cart", zap.Error(err))
		return nil, domain.ErrInternal
	}

	item, err := s.repo.GetCartItem(ctx, userID, productID)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get cart item", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if item != nil {
		item.Quantity += quantity
	} else {
		item = &domain.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	}

	if err := s.repo.UpsertCartItem(ctx, item); err != nil {
		s.logger.Error("Upsert cart item", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return s.GetCart(ctx, userID)
}

func (s *Service) UpdateCartItem(ctx context.Context, userID, productID uint64, quantity int) ([]*domain.CartItem, error) {
	if quantity < 1 {
		return nil, domain.NewValidationError("quantity", "must be at least 1")
	}

	item, err := s.repo.GetCartItem(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrDataNotFound
		}
		s.logger.Error("Get cart item", zap.Error(err))
		return nil, domain.ErrInternal
	}

	item.Quantity = quantity
	if err := s.repo.UpsertCartItem(ctx, item); err != nil {
		s.logger.Error("Upsert cart item", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return s.GetCart(ctx, userID)
}

func (s *Service) RemoveFromCart(ctx context.Context, userID, productID uint64) ([]*domain.CartItem, error) {
	if err := s.repo.DeleteCartItem(ctx, userID, productID); err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrDataNotFound
		}
		s.logger.Error("Delete cart item", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return s.GetCart(ctx, userID)
}

func (s *Service) ClearCart(ctx context.Context, userID uint64) error {
	if err := s.repo.ClearCart(ctx, userID); err != nil {
		s.logger.Error("Clear cart", zap.Error(err))
		return domain.ErrInternal
	}
	return nil
}
