package entity

import (
	"github.com/shopspring/decimal"
)

type MostOrderedItem struct {
	Name          string `json:"name"`
	TotalQuantity int64  `json:"totalQuantity"`
	OrderCount    int64  `json:"orderCount"`
}

type AverageRevenue struct {
	Date           string          `json:"date"`
	AverageRevenue decimal.Decimal `json:"averageRevenue"`
}

// Amount is one row of a label to amount revenue breakdown.
type Amount struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type Stats struct {
	RevenueByDate     []Amount          `json:"revenueByDate"`
	RevenueByMenuItem []Amount          `json:"revenueByMenuItem"`
	MostOrdered       []MostOrderedItem `json:"mostOrdered"`
	AverageRevenue    []AverageRevenue  `json:"averageRevenue"`
}
