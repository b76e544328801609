package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type DeliveryTime string

const (
	DeliveryTime10AM DeliveryTime = "10 AM"
	DeliveryTime11AM DeliveryTime = "11 AM"
	DeliveryTime12PM DeliveryTime = "12 PM"
)

// DeliverySlots is the canonical slot order used by availability responses.
var DeliverySlots = []DeliveryTime{DeliveryTime10AM, DeliveryTime11AM, DeliveryTime12PM}

// SlotCapacity is the maximum number of orders per delivery slot per day.
const SlotCapacity = 5

const (
	MinOrderQuantity = 1
	MaxOrderQuantity = 10
	MaxMessageLength = 500
)

type Order struct {
	ID               string
	Username         string
	PurchaseDate     time.Time
	DeliveryTime     DeliveryTime
	DeliveryLocation string
	ProductName      string
	Quantity         int
	Message          string
	TotalAmount      decimal.Decimal
	Status           OrderStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (d DeliveryTime) Valid() bool {
	switch d {
	case DeliveryTime10AM, DeliveryTime11AM, DeliveryTime12PM:
		return true
	}
	return false
}

// Cancellable reports whether the order may still transition to cancelled.
// Every other status is already on its one-way path away from pending.
func (o *Order) Cancellable() bool {
	return o.Status == OrderStatusPending
}

// NormalizeDate strips the time-of-day so purchase dates compare date-only.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ValidatePurchaseDate applies the purchase-date policy: the date must be on
// or after today and must not fall on a Sunday. now is injected so callers
// control the clock. Days compare as calendar dates, each in its own
// location, so a UTC-parsed request date and a local server clock agree on
// what "today" is.
func ValidatePurchaseDate(date time.Time, now time.Time) error {
	if dayBefore(date, now) {
		return ErrPastDate
	}
	if date.Weekday() == time.Sunday {
		return ErrSundayNotAllowed
	}
	return nil
}

func dayBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
