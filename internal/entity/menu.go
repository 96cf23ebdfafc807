package entity

import (
	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl"`
	Category  string          `json:"category"`
	Available bool            `json:"available"`
}

type MenuItemDraft struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
}

// MenuCategory is a display group of menu items sharing one category label.
type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// GroupByCategory keeps categories in the order they were first seen.
func GroupByCategory(items []MenuItem) []MenuCategory {
	idx := make(map[string]int)
	groups := make([]MenuCategory, 0)

	for _, item := range items {
		i, ok := idx[item.Category]
		if !ok {
			i = len(groups)
			idx[item.Category] = i
			groups = append(groups, MenuCategory{Name: item.Category})
		}

		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}
