package entity

import (
	"github.com/shopspring/decimal"
)

type OrderLine struct {
	MenuItemID int64 `json:"menuItemId"`
	Quantity   int   `json:"quantity"`
}

type OrderRequest struct {
	TableSessionID int64       `json:"tableSessionId"`
	Items          []OrderLine `json:"items"`
}

// SessionItem is an order item as observed from the served/unserved lists of a session.
type SessionItem struct {
	ItemID     int64           `json:"itemId"`
	MenuItemID int64           `json:"menuItemId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Served     bool            `json:"served"`
}

type PlacedOrder struct {
	OrderID   int64         `json:"orderId"`
	SessionID int64         `json:"sessionId"`
	Status    string        `json:"status"`
	CreatedAt string        `json:"createdAt"`
	Items     []SessionItem `json:"items"`
}

type Order struct {
	OrderID   int64         `json:"orderId"`
	SessionID int64         `json:"sessionId"`
	Status    string        `json:"status"`
	Items     []SessionItem `json:"orderItems"`
}

type KitchenItem struct {
	OrderItemID int64  `json:"orderItemId"`
	OrderID     int64  `json:"orderId"`
	TableNumber string `json:"tableNumber"`
	ItemName    string `json:"itemName"`
	Quantity    int    `json:"quantity"`
	Served      bool   `json:"served"`
}

type OrderStatus struct {
	OrderID        int64 `json:"orderId"`
	AllItemsServed bool  `json:"allItemsServed"`
	SomeServed     bool  `json:"someServed"`
	NoneServed     bool  `json:"noneServed"`
}

// SumTotals adds up TotalPrice without rounding.
func SumTotals(items []SessionItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalPrice)
	}

	return total
}
