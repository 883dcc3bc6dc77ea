package order

import "context"

// Repository defines all database operations for orders.
type Repository interface {

	// CreateOrder persists the order and all of its items atomically:
	// either every row lands or none do. Fills in the generated ids.
	CreateOrder(ctx context.Context, order *Order) error

	// ListByUser returns the user's orders newest first, items populated.
	ListByUser(ctx context.Context, userID int) ([]*Order, error)
}
