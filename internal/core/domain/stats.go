package domain

import "github.com/govalues/decimal"

type StatusCount struct {
	Status      OrderStatus
	Count       int
	TotalAmount decimal.Decimal
}

type OrderStats struct {
	TotalOrders     int
	TotalSpent      decimal.Decimal
	StatusBreakdown []StatusCount
}
