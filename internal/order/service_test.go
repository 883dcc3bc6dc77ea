package order

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"bawarchi/internal/catalog"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	orders    []*Order
	createErr error
	nextID    int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{nextID: 1}
}

func (m *MockRepository) CreateOrder(_ context.Context, order *Order) error {
	if m.createErr != nil {
		return m.createErr
	}

	order.ID = m.nextID
	m.nextID++
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}

	m.orders = append(m.orders, order)
	return nil
}

func (m *MockRepository) ListByUser(_ context.Context, userID int) ([]*Order, error) {
	var result []*Order
	for i := len(m.orders) - 1; i >= 0; i-- {
		if m.orders[i].UserID == userID {
			result = append(result, m.orders[i])
		}
	}
	return result, nil
}

func newTestService() (*Service, *MockRepository) {
	repo := NewMockRepository()
	return NewService(repo, catalog.Default()), repo
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// --------------------------------------------------
// PlaceOrder
// --------------------------------------------------

func TestPlaceOrderComputesTotals(t *testing.T) {
	service, repo := newTestService()

	// Catalog: item 1 is 18.99, item 2 is 22.99.
	placed, err := service.PlaceOrder(context.Background(), 1, []Selection{
		{ItemID: 1, Quantity: 2},
		{ItemID: 2, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(placed.TotalAmount, 60.97) {
		t.Errorf("expected total 60.97, got %v", placed.TotalAmount)
	}
	if len(placed.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(placed.Items))
	}
	if !almostEqual(placed.Items[0].TotalPrice, 37.98) {
		t.Errorf("expected first line total 37.98, got %v", placed.Items[0].TotalPrice)
	}
	if !almostEqual(placed.Items[1].TotalPrice, 22.99) {
		t.Errorf("expected second line total 22.99, got %v", placed.Items[1].TotalPrice)
	}
	if placed.Items[0].ItemName != "Hyderabadi Chicken Biryani" {
		t.Errorf("expected name snapshot, got %q", placed.Items[0].ItemName)
	}
	if placed.Status != StatusPending {
		t.Errorf("expected status %q, got %q", StatusPending, placed.Status)
	}
	if len(repo.orders) != 1 {
		t.Fatalf("expected 1 persisted order, got %d", len(repo.orders))
	}
}

func TestPlaceOrderTotalMatchesLineSum(t *testing.T) {
	service, _ := newTestService()

	placed, err := service.PlaceOrder(context.Background(), 1, []Selection{
		{ItemID: 7, Quantity: 3},
		{ItemID: 22, Quantity: 4},
		{ItemID: 31, Quantity: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sum float64
	for _, item := range placed.Items {
		if !almostEqual(item.TotalPrice, item.ItemPrice*float64(item.Quantity)) {
			t.Errorf("line total mismatch for %s", item.ItemName)
		}
		sum += item.TotalPrice
	}
	if !almostEqual(placed.TotalAmount, sum) {
		t.Errorf("order total %v does not match line sum %v", placed.TotalAmount, sum)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	service, repo := newTestService()

	if _, err := service.PlaceOrder(context.Background(), 1, nil); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if len(repo.orders) != 0 {
		t.Fatalf("expected no order rows, got %d", len(repo.orders))
	}
}

func TestPlaceOrderAllUnknownItems(t *testing.T) {
	service, repo := newTestService()

	_, err := service.PlaceOrder(context.Background(), 1, []Selection{
		{ItemID: 900, Quantity: 1},
		{ItemID: 901, Quantity: 2},
	})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if len(repo.orders) != 0 {
		t.Fatalf("zero-item order was persisted")
	}
}

func TestPlaceOrderSkipsUnknownItems(t *testing.T) {
	service, _ := newTestService()

	placed, err := service.PlaceOrder(context.Background(), 1, []Selection{
		{ItemID: 900, Quantity: 1},
		{ItemID: 2, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(placed.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(placed.Items))
	}
	if placed.Items[0].ItemID != 2 {
		t.Errorf("expected item 2, got %d", placed.Items[0].ItemID)
	}
	if !almostEqual(placed.TotalAmount, 22.99) {
		t.Errorf("expected total 22.99, got %v", placed.TotalAmount)
	}
}

func TestPlaceOrderInvalidQuantity(t *testing.T) {
	service, repo := newTestService()

	for _, quantity := range []int{0, -1} {
		_, err := service.PlaceOrder(context.Background(), 1, []Selection{
			{ItemID: 1, Quantity: quantity},
		})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("quantity %d: expected ErrInvalidQuantity, got %v", quantity, err)
		}
	}
	if len(repo.orders) != 0 {
		t.Fatalf("expected no order rows, got %d", len(repo.orders))
	}
}

func TestPlaceOrderRepositoryFault(t *testing.T) {
	service, repo := newTestService()
	repo.createErr = errors.New("connection reset")

	_, err := service.PlaceOrder(context.Background(), 1, []Selection{
		{ItemID: 1, Quantity: 1},
	})
	if !errors.Is(err, ErrPlacementFailed) {
		t.Fatalf("expected ErrPlacementFailed, got %v", err)
	}
	if len(repo.orders) != 0 {
		t.Fatalf("expected no order rows after fault, got %d", len(repo.orders))
	}
}

// --------------------------------------------------
// ListOrders
// --------------------------------------------------

func TestListOrdersNewestFirstAndOwned(t *testing.T) {
	service, repo := newTestService()

	for i := 0; i < 3; i++ {
		if _, err := service.PlaceOrder(context.Background(), 1, []Selection{{ItemID: 1, Quantity: 1}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := service.PlaceOrder(context.Background(), 2, []Selection{{ItemID: 2, Quantity: 1}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Stagger the dates so order is observable.
	for i, o := range repo.orders {
		o.OrderDate = time.Date(2025, 1, 1+i, 12, 0, 0, 0, time.UTC)
	}

	orders, err := service.ListOrders(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders for user 1, got %d", len(orders))
	}
	for _, o := range orders {
		if o.UserID != 1 {
			t.Errorf("got an order owned by user %d", o.UserID)
		}
	}
	for i := 1; i < len(orders); i++ {
		if orders[i-1].OrderDate.Before(orders[i].OrderDate) {
			t.Fatalf("orders not sorted newest first")
		}
	}
}
