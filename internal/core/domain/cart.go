package domain

// CartItem is one line of a user's cart. Product is populated on reads.
type CartItem struct {
	UserID    uint64
	ProductID uint64
	Quantity  int
	Product   *Product
}
