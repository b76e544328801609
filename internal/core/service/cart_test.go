package service_test

import (
	"context"
	"testing"

	"github.com/blossomkart/blossomkart/internal/core/domain"
	"github.com/blossomkart/blossomkart/internal/core/port/mock"
	"github.com/blossomkart/blossomkart/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newCartService(t *testing.T, repo *mock.MockRepository) *service.Service {
	t.Helper()
	logger, _ := zap.NewProduction()

	s, err := service.NewService(repo, nil, nil, logger, service.Policy{})
	assert.NoError(t, err)
	return s
}

func TestService_AddToCart(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	product := &domain.Product{ID: 7, Name: "Bouquet"}

	t.Run("new line item created", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().GetProductByID(gomock.Any(), uint64(7)).Return(product, nil)
		repo.EXPECT().GetCartItem(gomock.Any(), uint64(1), uint64(7)).Return(nil, domain.ErrDataNotFound)
		repo.EXPECT().UpsertCartItem(gomock.Any(), &domain.CartItem{UserID: 1, ProductID: 7, Quantity: 2}).Return(nil)
		repo.EXPECT().ListCartItems(gomock.Any(), uint64(1)).
			Return([]*domain.CartItem{{UserID: 1, ProductID: 7, Quantity: 2, Product: product}}, nil)

		s := newCartService(t, repo)

		items, err := s.AddToCart(context.Background(), 1, 7, 2)

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("existing line item merged", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().GetProductByID(gomock.Any(), uint64(7)).Return(product, nil)
		repo.EXPECT().GetCartItem(gomock.Any(), uint64(1), uint64(7)).
			Return(&domain.CartItem{UserID: 1, ProductID: 7, Quantity: 2}, nil)
		repo.EXPECT().UpsertCartItem(gomock.Any(), &domain.CartItem{UserID: 1, ProductID: 7, Quantity: 3}).Return(nil)
		repo.EXPECT().ListCartItems(gomock.Any(), uint64(1)).
			Return([]*domain.CartItem{{UserID: 1, ProductID: 7, Quantity: 3, Product: product}}, nil)

		s := newCartService(t, repo)

		items, err := s.AddToCart(context.Background(), 1, 7, 1)

		assert.NoError(t, err)
		assert.Equal(t, 3, items[0].Quantity)
	})

	t.Run("zero quantity defaults to one", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().GetProductByID(gomock.Any(), uint64(7)).Return(product, nil)
		repo.EXPECT().GetCartItem(gomock.Any(), uint64(1), uint64(7)).Return(nil, domain.ErrDataNotFound)
		repo.EXPECT().UpsertCartItem(gomock.Any(), &domain.CartItem{UserID: 1, ProductID: 7, Quantity: 1}).Return(nil)
		repo.EXPECT().ListCartItems(gomock.Any(), uint64(1)).Return([]*domain.CartItem{}, nil)

		s := newCartService(t, repo)

		_, err := s.AddToCart(context.Background(), 1, 7, 0)

		assert.NoError(t, err)
	})

	t.Run("unknown product", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().GetProductByID(gomock.Any(), uint64(9)).Return(nil, domain.ErrDataNotFound)

		s := newCartService(t, repo)

		items, err := s.AddToCart(context.Background(), 1, 9, 1)

		assert.Nil(t, items)
		assert.Equal(t, domain.ErrProductNotFound, err)
	})
}

func TestService_ClearCart(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("all line items removed", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().ClearCart(gomock.Any(), uint64(1)).Return(nil)

		s := newCartService(t, repo)

		err := s.ClearCart(context.Background(), 1)

		assert.NoError(t, err)
	})

	t.Run("storage failure reported as internal", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().ClearCart(gomock.Any(), uint64(1)).Return(assert.AnError)

		s := newCartService(t, repo)

		err := s.ClearCart(context.Background(), 1)

		assert.Equal(t, domain.ErrInternal, err)
	})
}

func TestService_UpdateCartItem(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("quantity replaced", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().GetCartItem(gomock.Any(), uint64(1), uint64(7)).
			Return(&domain.CartItem{UserID: 1, ProductID: 7, Quantity: 2}, nil)
		repo.EXPECT().UpsertCartItem(gomock.Any(), &domain.CartItem{UserID: 1, ProductID: 7, Quantity: 5}).Return(nil)
		repo.EXPECT().ListCartItems(gomock.Any(), uint64(1)).Return([]*domain.CartItem{}, nil)

		s := newCartService(t, repo)

		_, err := s.UpdateCartItem(context.Background(), 1, 7, 5)

		assert.NoError(t, err)
	})

	t.Run("quantity below one rejected", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		s := newCartService(t, repo)

		items, err := s.UpdateCartItem(context.Background(), 1, 7, 0)

		assert.Nil(t, items)
		var validationErr *domain.ValidationError
		if assert.ErrorAs(t, err, &validationErr) {
			assert.Equal(t, "quantity", validationErr.Field)
		}
	})
}
