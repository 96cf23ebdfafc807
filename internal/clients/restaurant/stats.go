package restaurant

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

func (c *Client) AddStaff(ctx context.Context, token string, s entity.Staff) (entity.StaffAdded, error) {
	var resp entity.StaffAdded

	err := c.do(ctx, "failed to add staff", http.MethodPost, "/api/staff/add", token, s, &resp)
	if err != nil {
		return entity.StaffAdded{}, err
	}

	return resp, nil
}

func (c *Client) RevenueByDate(ctx context.Context, token string) (map[string]decimal.Decimal, error) {
	var m map[string]decimal.Decimal

	err := c.do(ctx, "failed to fetch total revenue", http.MethodGet, "/api/stats/total-revenue", token, nil, &m)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (c *Client) RevenueByMenuItem(ctx context.Context, token string) (map[string]decimal.Decimal, error) {
	var m map[string]decimal.Decimal

	err := c.do(ctx, "failed to fetch revenue by menu item", http.MethodGet,
		"/api/stats/total-revenue-by-menu-item", token, nil, &m)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (c *Client) MostOrderedItems(ctx context.Context, token string) ([]entity.MostOrderedItem, error) {
	var items []entity.MostOrderedItem

	err := c.do(ctx, "failed to fetch most ordered items", http.MethodGet,
		"/api/stats/most-ordered-items", token, nil, &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (c *Client) AverageSessionRevenue(ctx context.Context, token string) ([]entity.AverageRevenue, error) {
	var rows []entity.AverageRevenue

	err := c.do(ctx, "failed to fetch average session revenue", http.MethodGet,
		"/api/stats/average-session-revenue-by-date", token, nil, &rows)
	if err != nil {
		return nil, err
	}

	return rows, nil
}
