package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

func TestCheckoutSummary_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "backend spelling",
			body: `{"sessionId":4,"tableNumber":"T3","totalAmont":25.98,"items":[]}`,
			want: "25.98",
		},
		{
			name: "correct spelling",
			body: `{"sessionId":4,"tableNumber":"T3","totalAmount":25.98,"items":[]}`,
			want: "25.98",
		},
		{
			name: "missing total",
			body: `{"sessionId":4,"tableNumber":"T3"}`,
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var s entity.CheckoutSummary

			err := json.Unmarshal([]byte(tt.body), &s)
			require.NoError(t, err)
			require.Equal(t, int64(4), s.SessionID)
			require.Equal(t, "T3", s.TableNumber)
			require.True(t, decimal.RequireFromString(tt.want).Equal(s.TotalAmount), s.TotalAmount.String())
		})
	}
}

func TestCheckoutSummary_Consistent(t *testing.T) {
	t.Parallel()

	// 0.1 + 0.2 style inputs drift in binary floating point but not in decimal.
	items := []entity.ItemSummary{
		{ItemID: 1, TotalPrice: decimal.RequireFromString("0.1")},
		{ItemID: 2, TotalPrice: decimal.RequireFromString("0.2")},
		{ItemID: 3, TotalPrice: decimal.RequireFromString("12.99")},
	}

	s := entity.CheckoutSummary{Items: items, TotalAmount: decimal.RequireFromString("13.29")}
	require.True(t, s.Consistent())
	require.Equal(t, "13.29", s.ItemsTotal().StringFixed(2))

	s.TotalAmount = decimal.RequireFromString("13.30")
	require.True(t, s.Consistent())

	s.TotalAmount = decimal.RequireFromString("13.31")
	require.False(t, s.Consistent())
}

func TestGroupByCategory(t *testing.T) {
	t.Parallel()

	items := []entity.MenuItem{
		{ID: 1, Name: "Soup", Category: "Starters"},
		{ID: 2, Name: "Steak", Category: "Mains"},
		{ID: 3, Name: "Salad", Category: "Starters"},
	}

	groups := entity.GroupByCategory(items)
	require.Len(t, groups, 2)
	require.Equal(t, "Starters", groups[0].Name)
	require.Equal(t, []int64{1, 3}, []int64{groups[0].Items[0].ID, groups[0].Items[1].ID})
	require.Equal(t, "Mains", groups[1].Name)
}
