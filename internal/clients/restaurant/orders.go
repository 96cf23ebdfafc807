package restaurant

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

func (c *Client) PlaceOrder(ctx context.Context, token string, req entity.OrderRequest) (entity.PlacedOrder, error) {
	var o entity.PlacedOrder

	err := c.do(ctx, "order failed", http.MethodPost, "/orders", token, req, &o)
	if err != nil {
		return entity.PlacedOrder{}, err
	}

	return o, nil
}

func (c *Client) Order(ctx context.Context, token string, id int64) (entity.Order, error) {
	var o entity.Order

	err := c.do(ctx, "failed to fetch order", http.MethodGet, fmt.Sprintf("/orders/%d", id), token, nil, &o)
	if err != nil {
		return entity.Order{}, err
	}

	return o, nil
}

func (c *Client) SessionOrders(ctx context.Context, token string, sessionID int64) ([]entity.Order, error) {
	var orders []entity.Order

	path := fmt.Sprintf("/orders/sessions/%d", sessionID)

	err := c.do(ctx, "failed to fetch session orders", http.MethodGet, path, token, nil, &orders)
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *Client) ServedItems(ctx context.Context, token string, sessionID int64) ([]entity.SessionItem, error) {
	var items []entity.SessionItem

	path := fmt.Sprintf("/orders/sessions/%d/served", sessionID)

	err := c.do(ctx, "failed to fetch served items", http.MethodGet, path, token, nil, &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (c *Client) UnservedItems(ctx context.Context, token string, sessionID int64) ([]entity.SessionItem, error) {
	var items []entity.SessionItem

	path := fmt.Sprintf("/orders/sessions/%d/unserved", sessionID)

	err := c.do(ctx, "failed to fetch unserved items", http.MethodGet, path, token, nil, &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (c *Client) KitchenQueue(ctx context.Context, token string) ([]entity.KitchenItem, error) {
	var items []entity.KitchenItem

	err := c.do(ctx, "failed to fetch kitchen queue", http.MethodGet, "/orders/kitchen/queue", token, nil, &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (c *Client) ServeOrder(ctx context.Context, token string, orderID int64) (entity.Order, error) {
	var o entity.Order

	path := fmt.Sprintf("/orders/%d/serve", orderID)

	err := c.do(ctx, "failed to mark order as served", http.MethodPost, path, token, nil, &o)
	if err != nil {
		return entity.Order{}, err
	}

	return o, nil
}

func (c *Client) ServeOrderItem(ctx context.Context, token string, orderItemID int64) error {
	path := fmt.Sprintf("/orders/orderItem/%d/serve", orderItemID)

	return c.do(ctx, "failed to mark as served", http.MethodPost, path, token, nil, nil)
}

func (c *Client) OrderStatus(ctx context.Context, token string, orderID int64) (entity.OrderStatus, error) {
	var s entity.OrderStatus

	path := fmt.Sprintf("/orders/%d/Items-status", orderID)

	err := c.do(ctx, "failed to fetch order status", http.MethodGet, path, token, nil, &s)
	if err != nil {
		return entity.OrderStatus{}, err
	}

	return s, nil
}
