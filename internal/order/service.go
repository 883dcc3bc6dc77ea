package order

import (
	"context"
	"errors"
	"log"
	"time"

	"bawarchi/internal/catalog"
)

var (
	ErrEmptyCart       = errors.New("please select at least one item to order")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrPlacementFailed = errors.New("an error occurred while placing your order, please try again")
)

type Service struct {
	repo    Repository
	catalog *catalog.Catalog
}

func NewService(repo Repository, cat *catalog.Catalog) *Service {
	return &Service{repo: repo, catalog: cat}
}

// PlaceOrder prices the selections against the catalog and persists the
// order with its items in one transaction.
//
// Selections with ids that are not in the catalog are skipped, but an
// order must end up with at least one line item: a cart that resolves to
// nothing is rejected instead of persisting a zero-total order.
func (s *Service) PlaceOrder(ctx context.Context, userID int, selections []Selection) (*Order, error) {
	if len(selections) == 0 {
		return nil, ErrEmptyCart
	}

	var (
		items []OrderItem
		total float64
	)

	for _, sel := range selections {
		if sel.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		menuItem, ok := s.catalog.Lookup(sel.ItemID)
		if !ok {
			continue
		}

		lineTotal := menuItem.Price * float64(sel.Quantity)
		total += lineTotal
		items = append(items, OrderItem{
			ItemID:     menuItem.ID,
			ItemName:   menuItem.Name,
			ItemPrice:  menuItem.Price,
			Quantity:   sel.Quantity,
			TotalPrice: lineTotal,
		})
	}

	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &Order{
		UserID:      userID,
		TotalAmount: total,
		OrderDate:   time.Now().UTC(),
		Status:      StatusPending,
		Items:       items,
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		log.Printf("error placing order for user %d: %v", userID, err)
		return nil, ErrPlacementFailed
	}

	return order, nil
}

// ListOrders returns the user's order history, newest first.
func (s *Service) ListOrders(ctx context.Context, userID int) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}
