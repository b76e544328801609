package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/blossomkart/blossomkart/internal/core/domain"
	"github.com/blossomkart/blossomkart/internal/core/port/mock"
	"github.com/blossomkart/blossomkart/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Wednesday; Mar 16 is the next Sunday.
var testNow = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
var tomorrow = time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)

func dec(t *testing.T, v float64) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromFloat64(v)
	assert.NoError(t, err)
	return d
}

func newOrderService(t *testing.T, repo *mock.MockRepository, policy service.Policy) *service.Service {
	t.Helper()
	logger, _ := zap.NewProduction()

	s, err := service.NewService(repo, nil, nil, logger, policy)
	assert.NoError(t, err)
	s.WithClock(func() time.Time { return testNow })
	return s
}

func baseOrder() *domain.Order {
	return &domain.Order{
		Username:         "alice",
		PurchaseDate:     tomorrow,
		DeliveryTime:     domain.DeliveryTime10AM,
		DeliveryLocation: "Colombo",
		ProductName:      "Laptop",
		Quantity:         2,
	}
}

func slotOrders(slot domain.DeliveryTime, n int) []*domain.Order {
	orders := make([]*domain.Order, 0, n)
	for i := 0; i < n; i++ {
		orders = append(orders, &domain.Order{PurchaseDate: tomorrow, DeliveryTime: slot})
	}
	return orders
}

func expectPassthroughCreate(repo *mock.MockRepository) {
	repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o *domain.Order) (*domain.Order, error) {
			return o, nil
		})
}

func TestService_CreateOrder_Validation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name     string
		mutate   func(o *domain.Order)
		expField string
	}{
		{
			name:     "quantity zero",
			mutate:   func(o *domain.Order) { o.Quantity = 0 },
			expField: "quantity",
		},
		{
			name:     "quantity eleven",
			mutate:   func(o *domain.Order) { o.Quantity = 11 },
			expField: "quantity",
		},
		{
			name:     "bad delivery time",
			mutate:   func(o *domain.Order) { o.DeliveryTime = "9 AM" },
			expField: "deliveryTime",
		},
		{
			name:     "bad district",
			mutate:   func(o *domain.Order) { o.DeliveryLocation = "Atlantis" },
			expField: "deliveryLocation",
		},
		{
			name:     "message too long",
			mutate:   func(o *domain.Order) { o.Message = strings.Repeat("x", 501) },
			expField: "message",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			s := newOrderService(t, repo, service.Policy{EnforceCapacity: true})

			order := baseOrder()
			test.mutate(order)

			result, err := s.CreateOrder(context.Background(), order)

			assert.Nil(t, result)
			var validationErr *domain.ValidationError
			if assert.ErrorAs(t, err, &validationErr) {
				assert.Equal(t, test.expField, validationErr.Field)
			}
		})
	}
}

func TestService_CreateOrder_DatePolicy(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name     string
		date     time.Time
		expError error
	}{
		{
			name:     "past date",
			date:     time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			expError: domain.ErrPastDate,
		},
		{
			name:     "sunday",
			date:     time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
			expError: domain.ErrSundayNotAllowed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			s := newOrderService(t, repo, service.Policy{EnforceCapacity: true})

			order := baseOrder()
			order.PurchaseDate = test.date

			result, err := s.CreateOrder(context.Background(), order)

			assert.Nil(t, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_CreateOrder_ProductNotFound(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().GetProductByName(gomock.Any(), "Laptop").Return(nil, domain.ErrDataNotFound)

	s := newOrderService(t, repo, service.Policy{EnforceCapacity: true})

	result, err := s.CreateOrder(context.Background(), baseOrder())

	assert.Nil(t, result)
	assert.Equal(t, domain.ErrProductNotFound, err)
}

func TestService_CreateOrder_Good(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	product := &domain.Product{ID: 1, Name: "Laptop", Price: dec(t, 1000)}

	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().GetProductByName(gomock.Any(), "Laptop").Return(product, nil)
	repo.EXPECT().ListOrdersByDateRange(gomock.Any(), tomorrow, tomorrow.Add(24*time.Hour)).
		Return([]*domain.Order{}, nil)
	expectPassthroughCreate(repo)

	s := newOrderService(t, repo, service.Policy{EnforceCapacity: true})

	order := baseOrder()
	order.PurchaseDate = time.Date(2025, 3, 13, 9, 30, 0, 0, time.UTC)

	created, err := s.CreateOrder(context.Background(), order)

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, domain.OrderStatusPending, created.Status)
	assert.Equal(t, tomorrow, created.PurchaseDate)
	assert.Equal(t, testNow, created.CreatedAt)
	assert.True(t, created.TotalAmount.Cmp(dec(t, 2000)) == 0,
		"expected total 2000, got %s", created.TotalAmount)
}

func TestService_CreateOrder_TotalFrozenAtCreation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	product := &domain.Product{ID: 2, Name: "Bouquet", Price: dec(t, 25)}

	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().GetProductByName(gomock.Any(), "Bouquet").Return(product, nil)
	repo.EXPECT().ListOrdersByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.Order{}, nil)
	expectPassthroughCreate(repo)

	s := newOrderService(t, repo, service.Policy{EnforceCapacity: true})

	order := baseOrder()
	order.ProductName = "Bouquet"
	order.Quantity = 3

	created, err := s.CreateOrder(context.Background(), order)
	assert.NoError(t, err)
	assert.True(t, created.TotalAmount.Cmp(dec(t, 75)) == 0)

	// a later catalog price change must not touch the stored total
	product.Price = dec(t, 40)
	assert.True(t, created.TotalAmount.Cmp(dec(t, 75)) == 0)
}

func TestService_CreateOrder_QuantityBoundaries(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	for _, quantity := range []int{1, 10} {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().GetProductByName(gomock.Any(), "Laptop").
			Return(&domain.Product{Name: "Laptop", Price: dec(t, 10)}, nil)
		repo.EXPECT().ListOrdersByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*domain.Order{}, nil)
		expectPassthroughCreate(repo)

		s := newOrderService(t, repo, service.Policy{EnforceCapacity: true})

		order := baseOrder()
		order.Quantity = quantity

		created, err := s.CreateOrder(context.Background(), order)
		assert.NoError(t, err)
		assert.Equal(t, quantity, created.Quantity)
	}
}

func TestService_CreateOrder_SlotFull(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().GetProductByName(gomock.Any(), "Laptop").
		Return(&domain.Product{Name: "Laptop", Price: dec(t, 10)}, nil)
	repo.EXPECT().ListOrdersByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(slotOrders(domain.DeliveryTime10AM, 5), nil)

	s := newOrderService(t, repo, service.Policy{EnforceCapacity: true})

	result, err := s.CreateOrder(context.Background(), baseOrder())

	assert.Nil(t, result)
	assert.Equal(t, domain.ErrSlotFull, err)
}

func TestService_CreateOrder_OtherSlotStillOpen(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().GetProductByName(gomock.Any(), "Laptop").
		Return(&domain.Product{Name: "Laptop", Price: dec(t, 10)}, nil)
	repo.EXPECT().ListOrdersByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(slotOrders(domain.DeliveryTime10AM, 5), nil)
	expectPassthroughCreate(repo)

	s := newOrderService(t, repo, service.Policy{EnforceCapacity: true})

	order := baseOrder()
	order.DeliveryTime = domain.DeliveryTime11AM

	created, err := s.CreateOrder(context.Background(), order)

	assert.NoError(t, err)
	assert.Equal(t, domain.DeliveryTime11AM, created.DeliveryTime)
}

func TestService_CreateOrder_AdvisoryCapacity(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	// capacity not enforced: no occupancy read at all
	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().GetProductByName(gomock.Any(), "Laptop").
		Return(&domain.Product{Name: "Laptop", Price: dec(t, 10)}, nil)
	expectPassthroughCreate(repo)

	s := newOrderService(t, repo, service.Policy{EnforceCapacity: false})

	created, err := s.CreateOrder(context.Background(), baseOrder())

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, created.Status)
}

func TestService_AvailableDeliveryTimes(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name     string
		date     time.Time
		mock     prepareMocks
		expTimes []domain.DeliveryTime
		expError error
	}{
		{
			name: "all slots open",
			date: tomorrow,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ListOrdersByDateRange(gomock.Any(), tomorrow, tomorrow.Add(24*time.Hour)).
					Return([]*domain.Order{}, nil)
			},
			expTimes: []domain.DeliveryTime{domain.DeliveryTime10AM, domain.DeliveryTime11AM, domain.DeliveryTime12PM},
		},
		{
			name: "full slot dropped, partial slot kept",
			date: tomorrow,
			mock: func(repo *mock.MockRepository) {
				orders := append(slotOrders(domain.DeliveryTime10AM, 5), slotOrders(domain.DeliveryTime11AM, 3)...)
				repo.EXPECT().ListOrdersByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(orders, nil)
			},
			expTimes: []domain.DeliveryTime{domain.DeliveryTime11AM, domain.DeliveryTime12PM},
		},
		{
			name:     "past date rejected before any read",
			date:     time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrPastDate,
		},
		{
			name:     "sunday rejected before any read",
			date:     time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrSundayNotAllowed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.mock(repo)
			s := newOrderService(t, repo, service.Policy{EnforceCapacity: true})

			times, err := s.AvailableDeliveryTimes(context.Background(), test.date)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, test.expTimes, times)
			}
		})
	}
}

func TestService_GetOrder_Ownership(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	order := &domain.Order{ID: "o-1", Username: "alice", Status: domain.OrderStatusPending}

	tests := []struct {
		name     string
		username string
		orderID  string
		mock     prepareMocks
		expError error
	}{
		{
			name:     "owner reads own order",
			username: "alice",
			orderID:  "o-1",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), "o-1").Return(order, nil)
			},
		},
		{
			name:     "other user forbidden",
			username: "bob",
			orderID:  "o-1",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), "o-1").Return(order, nil)
			},
			expError: domain.ErrForbidden,
		},
		{
			name:     "missing order",
			username: "alice",
			orderID:  "o-404",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), "o-404").Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrOrderNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.mock(repo)
			s := newOrderService(t, repo, service.Policy{})

			result, err := s.GetOrder(context.Background(), test.username, test.orderID)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, order, result)
			}
		})
	}
}

func TestService_CancelOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name     string
		status   domain.OrderStatus
		expError error
	}{
		{
			name:   "pending cancels",
			status: domain.OrderStatusPending,
		},
		{
			name:     "shipped stays shipped",
			status:   domain.OrderStatusShipped,
			expError: domain.ErrOrderNotPending,
		},
		{
			name:     "cancelled cannot cancel again",
			status:   domain.OrderStatusCancelled,
			expError: domain.ErrOrderNotPending,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order := &domain.Order{ID: "o-1", Username: "alice", Status: test.status}

			repo := mock.NewMockRepository(mockCtrl)
			repo.EXPECT().ReadOrder(gomock.Any(), "o-1").Return(order, nil)
			if test.expError == nil {
				repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, o *domain.Order) (*domain.Order, error) {
						return o, nil
					})
			}

			s := newOrderService(t, repo, service.Policy{})

			result, err := s.CancelOrder(context.Background(), "alice", "o-1")

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, domain.OrderStatusCancelled, result.Status)
				assert.Equal(t, testNow, result.UpdatedAt)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestService_UpdateOrderMessage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("message updated", func(t *testing.T) {
		order := &domain.Order{ID: "o-1", Username: "alice", Status: domain.OrderStatusPending, Message: "old"}

		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().ReadOrder(gomock.Any(), "o-1").Return(order, nil)
		repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *domain.Order) (*domain.Order, error) {
				return o, nil
			})

		s := newOrderService(t, repo, service.Policy{})

		result, err := s.UpdateOrderMessage(context.Background(), "alice", "o-1", "happy birthday")

		assert.NoError(t, err)
		assert.Equal(t, "happy birthday", result.Message)
		assert.Equal(t, testNow, result.UpdatedAt)
	})

	t.Run("long message rejected before read", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		s := newOrderService(t, repo, service.Policy{})

		result, err := s.UpdateOrderMessage(context.Background(), "alice", "o-1", strings.Repeat("x", 501))

		assert.Nil(t, result)
		var validationErr *domain.ValidationError
		if assert.ErrorAs(t, err, &validationErr) {
			assert.Equal(t, "message", validationErr.Field)
		}
	})
}

func TestService_OrderStats(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orders := []*domain.Order{
		{Status: domain.OrderStatusPending, TotalAmount: dec(t, 100)},
		{Status: domain.OrderStatusDelivered, TotalAmount: dec(t, 250)},
		{Status: domain.OrderStatusCancelled, TotalAmount: dec(t, 50)},
	}

	t.Run("cancelled orders count by default", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().ListOrdersByUser(gomock.Any(), "alice").Return(orders, nil)

		s := newOrderService(t, repo, service.Policy{})

		stats, err := s.OrderStats(context.Background(), "alice")

		assert.NoError(t, err)
		assert.Equal(t, 3, stats.TotalOrders)
		assert.True(t, stats.TotalSpent.Cmp(dec(t, 400)) == 0,
			"expected total spent 400, got %s", stats.TotalSpent)
		assert.Len(t, stats.StatusBreakdown, 3)
		assert.Equal(t, domain.OrderStatusPending, stats.StatusBreakdown[0].Status)
		assert.Equal(t, domain.OrderStatusDelivered, stats.StatusBreakdown[1].Status)
		assert.Equal(t, domain.OrderStatusCancelled, stats.StatusBreakdown[2].Status)
	})

	t.Run("cancelled orders excluded by policy", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().ListOrdersByUser(gomock.Any(), "alice").Return(orders, nil)

		s := newOrderService(t, repo, service.Policy{SpentExcludesCancelled: true})

		stats, err := s.OrderStats(context.Background(), "alice")

		assert.NoError(t, err)
		assert.Equal(t, 3, stats.TotalOrders)
		assert.True(t, stats.TotalSpent.Cmp(dec(t, 350)) == 0,
			"expected total spent 350, got %s", stats.TotalSpent)
	})
}
