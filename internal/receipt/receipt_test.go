package receipt_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
	"github.com/wl0182/Restaurant-Ordering-System/internal/receipt"
)

func summary() entity.CheckoutSummary {
	return entity.CheckoutSummary{
		SessionID:        42,
		TableNumber:      "T5",
		TotalOrders:      2,
		TotalItemOrdered: 3,
		Items: []entity.ItemSummary{
			{OrderID: 1, ItemID: 7, ItemName: "Burger", TotalQuantity: 2, TotalPrice: decimal.RequireFromString("25.98")},
			{OrderID: 2, ItemID: 9, ItemName: "Fries", TotalQuantity: 1, TotalPrice: decimal.RequireFromString("3.5")},
		},
		TotalAmount: decimal.RequireFromString("29.48"),
	}
}

func TestPayload(t *testing.T) {
	t.Parallel()

	require.Equal(t, "session:42|table:T5|items:3|total:29.48", receipt.Payload(summary()))
}

func TestRender(t *testing.T) {
	t.Parallel()

	doc, err := receipt.Render(summary(), time.Date(2024, 5, 3, 19, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
	require.Contains(t, string(doc), "%%EOF")
}

func TestRender_NoItems(t *testing.T) {
	t.Parallel()

	doc, err := receipt.Render(entity.CheckoutSummary{SessionID: 1, TableNumber: "T1"}, time.Now())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
}
