package workflow

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

// Cart holds the quantities picked on the menu view before submission.
// Quantities never go below zero. The zero value is ready to use.
type Cart struct {
	qty map[int64]int
}

func NewCart() *Cart {
	return &Cart{qty: make(map[int64]int)}
}

// CartFromLines sums the quantities per item. Non-positive quantities are ignored.
func CartFromLines(lines []entity.OrderLine) *Cart {
	c := NewCart()

	for _, l := range lines {
		if l.Quantity > 0 {
			c.set(l.MenuItemID, c.Quantity(l.MenuItemID)+l.Quantity)
		}
	}

	return c
}

func (c *Cart) Increment(menuItemID int64) int {
	q := c.Quantity(menuItemID) + 1
	c.set(menuItemID, q)

	return q
}

// Decrement floors at zero.
func (c *Cart) Decrement(menuItemID int64) int {
	q := max(c.Quantity(menuItemID)-1, 0)
	c.set(menuItemID, q)

	return q
}

func (c *Cart) Quantity(menuItemID int64) int {
	return c.qty[menuItemID]
}

func (c *Cart) set(menuItemID int64, q int) {
	if c.qty == nil {
		c.qty = make(map[int64]int)
	}

	if q <= 0 {
		delete(c.qty, menuItemID)
		return
	}

	c.qty[menuItemID] = q
}

// Lines returns the lines with a positive quantity ordered by menu item id.
func (c *Cart) Lines() []entity.OrderLine {
	lines := make([]entity.OrderLine, 0, len(c.qty))

	for id, q := range c.qty {
		if q > 0 {
			lines = append(lines, entity.OrderLine{MenuItemID: id, Quantity: q})
		}
	}

	slices.SortFunc(lines, func(a, b entity.OrderLine) int {
		return cmp.Compare(a.MenuItemID, b.MenuItemID)
	})

	return lines
}

func (c *Cart) Empty() bool {
	return len(c.Lines()) == 0
}

// Total prices the cart against items. Items missing from the list count as zero.
func (c *Cart) Total(items []entity.MenuItem) decimal.Decimal {
	total := decimal.Zero

	for _, it := range items {
		if q := c.Quantity(it.ID); q > 0 {
			total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(q))))
		}
	}

	return total
}
