package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

var centTolerance = decimal.New(1, -2)

type ItemSummary struct {
	OrderID       int64           `json:"orderId"`
	ItemID        int64           `json:"itemId"`
	ItemName      string          `json:"itemName"`
	TotalQuantity int             `json:"totalQuantity"`
	Served        bool            `json:"served"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

type CheckoutSummary struct {
	SessionID        int64           `json:"sessionId"`
	TableNumber      string          `json:"tableNumber"`
	TotalOrders      int64           `json:"totalOrders"`
	TotalItemOrdered int64           `json:"totalItemOrdered"`
	Items            []ItemSummary   `json:"items"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
}

// UnmarshalJSON accepts the total under both "totalAmount" and the backend's "totalAmont".
func (s *CheckoutSummary) UnmarshalJSON(b []byte) error {
	type plain CheckoutSummary

	aux := struct {
		plain
		TotalAmont *decimal.Decimal `json:"totalAmont"`
	}{}

	err := json.Unmarshal(b, &aux)
	if err != nil {
		return err
	}

	*s = CheckoutSummary(aux.plain)
	if aux.TotalAmont != nil && s.TotalAmount.IsZero() {
		s.TotalAmount = *aux.TotalAmont
	}

	return nil
}

// ItemsTotal is the exact sum of the line totals.
func (s CheckoutSummary) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.TotalPrice)
	}

	return total
}

// Consistent reports whether TotalAmount matches the line totals within one cent.
func (s CheckoutSummary) Consistent() bool {
	return s.TotalAmount.Sub(s.ItemsTotal()).Abs().LessThanOrEqual(centTolerance)
}
