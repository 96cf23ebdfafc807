package workflow_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
	"github.com/wl0182/Restaurant-Ordering-System/internal/workflow"
)

func TestCart_DecrementFloorsAtZero(t *testing.T) {
	t.Parallel()

	c := workflow.NewCart()

	require.Equal(t, 0, c.Decrement(5))
	require.Equal(t, 0, c.Quantity(5))
	require.True(t, c.Empty())

	require.Equal(t, 1, c.Increment(5))
	require.Equal(t, 2, c.Increment(5))
	require.Equal(t, 1, c.Decrement(5))
	require.Equal(t, 0, c.Decrement(5))
	require.Equal(t, 0, c.Decrement(5))
	require.Empty(t, c.Lines())
}

func TestCart_IncrementDecrementRoundTrip(t *testing.T) {
	t.Parallel()

	var c workflow.Cart

	c.Increment(3)
	c.Increment(1)
	before := c.Lines()

	c.Increment(1)
	c.Decrement(1)

	require.Equal(t, before, c.Lines())
}

func TestCart_Lines(t *testing.T) {
	t.Parallel()

	c := workflow.CartFromLines([]entity.OrderLine{
		{MenuItemID: 9, Quantity: 1},
		{MenuItemID: 2, Quantity: 0},
		{MenuItemID: 4, Quantity: 3},
		{MenuItemID: 9, Quantity: 2},
		{MenuItemID: 6, Quantity: -1},
	})

	require.Equal(t, []entity.OrderLine{
		{MenuItemID: 4, Quantity: 3},
		{MenuItemID: 9, Quantity: 3},
	}, c.Lines())
	require.False(t, c.Empty())
}

func TestCart_Total(t *testing.T) {
	t.Parallel()

	c := workflow.CartFromLines([]entity.OrderLine{
		{MenuItemID: 1, Quantity: 2},
		{MenuItemID: 2, Quantity: 1},
		{MenuItemID: 99, Quantity: 4},
	})

	total := c.Total([]entity.MenuItem{
		{ID: 1, Price: decimal.RequireFromString("12.99")},
		{ID: 2, Price: decimal.RequireFromString("0.10")},
		{ID: 3, Price: decimal.RequireFromString("5.00")},
	})

	require.True(t, decimal.RequireFromString("26.08").Equal(total), total.String())
}
