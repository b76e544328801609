package domain_test

import (
	"testing"
	"time"

	"github.com/blossomkart/blossomkart/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

// Wednesday afternoon; the surrounding Sundays are Mar 9 and Mar 16.
var now = time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

func TestValidatePurchaseDate(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expError error
	}{
		{
			name:     "yesterday rejected",
			date:     time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			expError: domain.ErrPastDate,
		},
		{
			name:     "today accepted even with earlier time of day",
			date:     time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			expError: nil,
		},
		{
			name:     "tomorrow accepted",
			date:     time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
			expError: nil,
		},
		{
			name:     "upcoming sunday rejected",
			date:     time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
			expError: domain.ErrSundayNotAllowed,
		},
		{
			name:     "upcoming saturday accepted",
			date:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			expError: nil,
		},
		{
			name:     "past sunday reports past date first",
			date:     time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
			expError: domain.ErrPastDate,
		},
		{
			name:     "time of day is ignored on both sides",
			date:     time.Date(2025, 3, 12, 23, 59, 59, 0, time.UTC),
			expError: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := domain.ValidatePurchaseDate(test.date, now)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestValidatePurchaseDateAcrossTimezones(t *testing.T) {
	// A UTC-parsed request date must stay "today" even when the server
	// clock runs west of UTC.
	west := time.FixedZone("UTC-7", -7*60*60)

	tests := []struct {
		name     string
		date     time.Time
		now      time.Time
		expError error
	}{
		{
			name:     "same calendar day accepted on a western clock",
			date:     time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			now:      time.Date(2025, 3, 12, 15, 30, 0, 0, west),
			expError: nil,
		},
		{
			name:     "previous calendar day still rejected on a western clock",
			date:     time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			now:      time.Date(2025, 3, 12, 1, 0, 0, 0, west),
			expError: domain.ErrPastDate,
		},
		{
			name:     "next calendar day accepted on an eastern clock",
			date:     time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
			now:      time.Date(2025, 3, 12, 23, 0, 0, 0, time.FixedZone("UTC+5", 5*60*60)),
			expError: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := domain.ValidatePurchaseDate(test.date, test.now)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	d := domain.NormalizeDate(time.Date(2025, 3, 12, 18, 45, 12, 999, time.UTC))
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), d)
}

func TestDeliveryTimeValid(t *testing.T) {
	for _, slot := range domain.DeliverySlots {
		assert.True(t, slot.Valid())
	}
	assert.False(t, domain.DeliveryTime("9 AM").Valid())
	assert.False(t, domain.DeliveryTime("").Valid())
}

func TestValidDeliveryLocation(t *testing.T) {
	assert.True(t, domain.ValidDeliveryLocation("Colombo"))
	assert.True(t, domain.ValidDeliveryLocation("Nuwara Eliya"))
	assert.False(t, domain.ValidDeliveryLocation("colombo"))
	assert.False(t, domain.ValidDeliveryLocation("Atlantis"))
}

func TestOrderCancellable(t *testing.T) {
	order := domain.Order{Status: domain.OrderStatusPending}
	assert.True(t, order.Cancellable())

	for _, status := range []domain.OrderStatus{
		domain.OrderStatusConfirmed,
		domain.OrderStatusShipped,
		domain.OrderStatusDelivered,
		domain.OrderStatusCancelled,
	} {
		order.Status = status
		assert.False(t, order.Cancellable())
	}
}
