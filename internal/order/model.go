package order

import "time"

// StatusPending is the only status this system assigns. The column is
// free text so a fulfilment workflow can extend it later.
const StatusPending = "pending"

// Order owns one or more OrderItems. TotalAmount equals the sum of the
// item line totals at creation and is never recomputed.
type Order struct {
	ID          int         `json:"id"`
	UserID      int         `json:"user_id"`
	TotalAmount float64     `json:"total_amount"`
	OrderDate   time.Time   `json:"order_date"`
	Status      string      `json:"status"`
	Items       []OrderItem `json:"items"`
}

// OrderItem snapshots the catalog name and price at order time, so later
// menu edits never change historical orders.
type OrderItem struct {
	ID         int     `json:"id"`
	OrderID    int     `json:"order_id"`
	ItemID     int     `json:"item_id"`
	ItemName   string  `json:"item_name"`
	ItemPrice  float64 `json:"item_price"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

// Selection is one typed cart entry, parsed and validated at the request
// boundary before it reaches the service.
type Selection struct {
	ItemID   int
	Quantity int
}
