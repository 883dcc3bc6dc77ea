package catalog

import "sort"

// Item is a single orderable dish. The catalog is fixed at process start
// and never persisted; orders copy the name and price they were sold at.
type Item struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// Catalog is a read-only id -> Item mapping.
type Catalog struct {
	byID map[int]Item
}

func New(items []Item) *Catalog {
	byID := make(map[int]Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &Catalog{byID: byID}
}

// Default returns the catalog backed by the built-in menu.
func Default() *Catalog {
	return New(menuItems)
}

func (c *Catalog) Lookup(id int) (Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Items returns every item in ascending id order.
func (c *Catalog) Items() []Item {
	items := make([]Item, 0, len(c.byID))
	for _, item := range c.byID {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (c *Catalog) Len() int {
	return len(c.byID)
}
