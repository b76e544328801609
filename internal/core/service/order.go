package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blossomkart/blossomkart/internal/core/domain"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// CreateOrder is the admission path: structural validation first, then the
// date policy, then catalog lookup, then the capacity gate, then exactly one
// insert. The order's owner comes in on order.Username and is never changed.
func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if !order.DeliveryTime.Valid() {
		return nil, domain.NewValidationError("deliveryTime",
			fmt.Sprintf("must be %s, %s, or %s", domain.DeliveryTime10AM, domain.DeliveryTime11AM, domain.DeliveryTime12PM))
	}
	if !domain.ValidDeliveryLocation(order.DeliveryLocation) {
		return nil, domain.NewValidationError("deliveryLocation", "must be a valid district")
	}
	if order.Quantity < domain.MinOrderQuantity || order.Quantity > domain.MaxOrderQuantity {
		return nil, domain.NewValidationError("quantity",
			fmt.Sprintf("must be between %d and %d", domain.MinOrderQuantity, domain.MaxOrderQuantity))
	}
	if len(order.Message) > domain.MaxMessageLength {
		return nil, domain.NewValidationError("message",
			fmt.Sprintf("cannot exceed %d characters", domain.MaxMessageLength))
	}

	if err := domain.ValidatePurchaseDate(order.PurchaseDate, s.now()); err != nil {
		return nil, err
	}

	product, err := s.repo.GetProductByName(ctx, order.ProductName)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrProductNotFound
		}
		s.logger.Error("Find product", zap.Error(err))
		return nil, domain.ErrInternal
	}

	quantity, err := decimal.New(int64(order.Quantity), 0)
	if err != nil {
		return nil, domain.ErrInternal
	}
	total, err := product.Price.Mul(quantity)
	if err != nil {
		s.logger.Error("Compute total", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if s.policy.EnforceCapacity {
		counts, err := s.slotOccupancy(ctx, order.PurchaseDate)
		if err != nil {
			return nil, err
		}
		if counts[order.DeliveryTime] >= domain.SlotCapacity {
			return nil, domain.ErrSlotFull
		}
	}

	now := s.now()
	order.ID = uuid.NewString()
	order.PurchaseDate = domain.NormalizeDate(order.PurchaseDate)
	order.TotalAmount = total
	order.Status = domain.OrderStatusPending
	order.CreatedAt = now
	order.UpdatedAt = now

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}

	s.publishOrderEvent(created, eventOrderCreated)

	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, username string, orderID string) (*domain.Order, error) {
	return s.getOwnedOrder(ctx, username, orderID)
}

func (s *Service) ListOrders(ctx context.Context, username string) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByUser(ctx, username)
	if err != nil {
		s.logger.Error("List orders for user", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// UpdateOrderMessage is the only post-creation field edit. The mutable-field
// set is exactly {message}.
func (s *Service) UpdateOrderMessage(ctx context.Context, username string, orderID string, message string) (*domain.Order, error) {
	if len(message) > domain.MaxMessageLength {
		return nil, domain.NewValidationError("message",
			fmt.Sprintf("cannot exceed %d characters", domain.MaxMessageLength))
	}

	order, err := s.getOwnedOrder(ctx, username, orderID)
	if err != nil {
		return nil, err
	}

	order.Message = message
	order.UpdatedAt = s.now()

	updated, err := s.repo.UpdateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Update order", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) CancelOrder(ctx context.Context, username string, orderID string) (*domain.Order, error) {
	order, err := s.getOwnedOrder(ctx, username, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Cancellable() {
		return nil, domain.ErrOrderNotPending
	}

	order.Status = domain.OrderStatusCancelled
	order.UpdatedAt = s.now()

	updated, err := s.repo.UpdateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Cancel order", zap.Error(err))
		return nil, err
	}

	s.publishOrderEvent(updated, eventOrderCancelled)

	return updated, nil
}

func (s *Service) OrderStats(ctx context.Context, username string) (*domain.OrderStats, error) {
	orders, err := s.repo.ListOrdersByUser(ctx, username)
	if err != nil {
		s.logger.Error("List orders for stats", zap.Error(err))
		return nil, err
	}

	stats := &domain.OrderStats{
		TotalOrders: len(orders),
		TotalSpent:  decimal.Zero,
	}

	type acc struct {
		count int
		total decimal.Decimal
	}
	byStatus := make(map[domain.OrderStatus]*acc)

	for _, o := range orders {
		if !(s.policy.SpentExcludesCancelled && o.Status == domain.OrderStatusCancelled) {
			stats.TotalSpent, err = stats.TotalSpent.Add(o.TotalAmount)
			if err != nil {
				s.logger.Error("Sum total spent", zap.Error(err))
				return nil, domain.ErrInternal
			}
		}

		a, ok := byStatus[o.Status]
		if !ok {
			a = &acc{total: decimal.Zero}
			byStatus[o.Status] = a
		}
		a.count++
		a.total, err = a.total.Add(o.TotalAmount)
		if err != nil {
			s.logger.Error("Sum status total", zap.Error(err))
			return nil, domain.ErrInternal
		}
	}

	for _, status := range []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusConfirmed,
		domain.OrderStatusShipped,
		domain.OrderStatusDelivered,
		domain.OrderStatusCancelled,
	} {
		if a, ok := byStatus[status]; ok {
			stats.StatusBreakdown = append(stats.StatusBreakdown, domain.StatusCount{
				Status:      status,
				Count:       a.count,
				TotalAmount: a.total,
			})
		}
	}

	return stats, nil
}

// AvailableDeliveryTimes reports the slots with remaining capacity for a
// date. It is an advisory point-in-time estimate, not a reservation.
func (s *Service) AvailableDeliveryTimes(ctx context.Context, date time.Time) ([]domain.DeliveryTime, error) {
	if err := domain.ValidatePurchaseDate(date, s.now()); err != nil {
		return nil, err
	}

	counts, err := s.slotOccupancy(ctx, date)
	if err != nil {
		return nil, err
	}

	available := make([]domain.DeliveryTime, 0, len(domain.DeliverySlots))
	for _, slot := range domain.DeliverySlots {
		if counts[slot] < domain.SlotCapacity {
			available = append(available, slot)
		}
	}
	return available, nil
}

// slotOccupancy counts existing orders per slot within the calendar day of
// date, regardless of any time-of-day stored on the rows.
func (s *Service) slotOccupancy(ctx context.Context, date time.Time) (map[domain.DeliveryTime]int, error) {
	from := domain.NormalizeDate(date)
	to := from.Add(24 * time.Hour)

	orders, err := s.repo.ListOrdersByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("List orders for date", zap.Error(err))
		return nil, err
	}

	counts := make(map[domain.DeliveryTime]int, len(domain.DeliverySlots))
	for _, o := range orders {
		counts[o.DeliveryTime]++
	}
	return counts, nil
}

func (s *Service) getOwnedOrder(ctx context.Context, username string, orderID string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Read order", zap.Error(err))
		return nil, err
	}

	if order.Username != username {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

type orderEvent string

const (
	eventOrderCreated   orderEvent = "order created"
	eventOrderCancelled orderEvent = "order cancelled"
)

// publishOrderEvent fires an order event without blocking the request.
// Failures are logged, never surfaced.
func (s *Service) publishOrderEvent(order *domain.Order, kind orderEvent) {
	if s.events == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var err error
		switch kind {
		case eventOrderCreated:
			err = s.events.PublishOrderCreated(ctx, order)
		case eventOrderCancelled:
			err = s.events.PublishOrderCancelled(ctx, order)
		}
		if err != nil {
			s.logger.Warn("Publish event", zap.String("event", string(kind)), zap.Error(err))
		}
	}()
}
