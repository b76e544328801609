package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// Product is the catalog entry. Name is the catalog key the order engine
// resolves prices by.
type Product struct {
	ID          uint64
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Stock       int
	CreatedAt   time.Time
}
