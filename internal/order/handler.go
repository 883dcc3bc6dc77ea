package order

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type placeOrderRequest struct {
	Items []struct {
		ItemID   int  `json:"item_id"`
		Quantity *int `json:"quantity"`
	} `json:"items"`
}

// --------------------------------------------------
// POST /place_order
// --------------------------------------------------
//
// Accepts either a JSON body or the legacy form encoding (repeated
// "items" fields plus per-item "quantity_<id>" fields). Both are parsed
// into typed selections before the service runs.
func (h *Handler) PlaceOrder(c *gin.Context) {
	userID := c.GetInt("userID")

	selections, err := parseSelections(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	placed, err := h.service.PlaceOrder(c.Request.Context(), userID, selections)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": ErrPlacementFailed.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      fmt.Sprintf("Order #%d placed successfully! Total: $%.2f", placed.ID, placed.TotalAmount),
		"order_id":     placed.ID,
		"total_amount": placed.TotalAmount,
	})
}

// --------------------------------------------------
// GET /orders
// --------------------------------------------------
func (h *Handler) ListOrders(c *gin.Context) {
	userID := c.GetInt("userID")

	orders, err := h.service.ListOrders(c.Request.Context(), userID)
	if err != nil {
		log.Printf("error fetching orders for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an error occurred while fetching orders"})
		return
	}

	if orders == nil {
		orders = []*Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func parseSelections(c *gin.Context) ([]Selection, error) {
	if strings.HasPrefix(c.ContentType(), "application/json") {
		return parseJSONSelections(c)
	}
	return parseFormSelections(c)
}

func parseJSONSelections(c *gin.Context) ([]Selection, error) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errors.New("invalid request body")
	}

	selections := make([]Selection, 0, len(req.Items))
	for _, item := range req.Items {
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		if quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		selections = append(selections, Selection{ItemID: item.ItemID, Quantity: quantity})
	}
	return selections, nil
}

func parseFormSelections(c *gin.Context) ([]Selection, error) {
	ids := c.PostFormArray("items")

	selections := make([]Selection, 0, len(ids))
	for _, rawID := range ids {
		itemID, err := strconv.Atoi(rawID)
		if err != nil {
			return nil, errors.New("invalid item id")
		}

		quantity := 1
		if rawQty := c.PostForm("quantity_" + rawID); rawQty != "" {
			quantity, err = strconv.Atoi(rawQty)
			if err != nil || quantity <= 0 {
				return nil, ErrInvalidQuantity
			}
		}

		selections = append(selections, Selection{ItemID: itemID, Quantity: quantity})
	}
	return selections, nil
}
