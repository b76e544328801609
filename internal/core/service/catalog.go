package service

import (
	"context"
	"errors"

	"github.com/blossomkart/blossomkart/internal/core/domain"
	"github.com/blossomkart/blossomkart/internal/core/port"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

const defaultPageLimit = 5

func (s *Service) ListProducts(ctx context.Context, filter port.ProductFilter) ([]*domain.Product, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}

	products, total, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		s.logger.Error("List products", zap.Error(err))
		return nil, 0, domain.ErrInternal
	}
	return products, total, nil
}

func (s *Service) GetProduct(ctx context.Context, id uint64) (*domain.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrProductNotFound
		}
		s.logger.Error("Get product", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return product, nil
}

func (s *Service) CreateProduct(ctx context.Context, actorID uint64, product *domain.Product) (*domain.Product, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrConflictingData
		}
		s.logger.Error("Create product", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return created, nil
}

func (s *Service) UpdateProduct(ctx context.Context, actorID uint64, product *domain.Product) (*domain.Product, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetProductByID(ctx, product.ID); err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrProductNotFound
		}
		s.logger.Error("Get product for update", zap.Error(err))
		return nil, domain.ErrInternal
	}

	updated, err := s.repo.UpdateProduct(ctx, product)
	if err != nil {
		s.logger.Error("Update product", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return updated, nil
}

func (s *Service) DeleteProduct(ctx context.Context, actorID uint64, id uint64) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}

	if _, err := s.repo.GetProductByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrProductNotFound
		}
		s.logger.Error("Get product for delete", zap.Error(err))
		return domain.ErrInternal
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		s.logger.Error("Delete product", zap.Error(err))
		return domain.ErrInternal
	}
	return nil
}

func (s *Service) requireAdmin(ctx context.Context, actorID uint64) error {
	actor, err := s.repo.GetUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrForbidden
		}
		s.logger.Error("Get actor", zap.Error(err))
		return domain.ErrInternal
	}
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

func validateProduct(product *domain.Product) error {
	if product.Name == "" {
		return domain.NewValidationError("name", "is required")
	}
	if product.Price.Cmp(decimal.Zero) < 0 {
		return domain.NewValidationError("price", "cannot be negative")
	}
	return nil
}
