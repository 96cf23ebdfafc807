package restaurant

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

func (c *Client) AvailableMenuItems(ctx context.Context, token string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem

	err := c.do(ctx, "failed to fetch menu", http.MethodGet, "/api/menu-items/available", token, nil, &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (c *Client) MenuItems(ctx context.Context, token string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem

	err := c.do(ctx, "failed to fetch menu items", http.MethodGet, "/api/menu-items", token, nil, &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (c *Client) MenuItem(ctx context.Context, token string, id int64) (entity.MenuItem, error) {
	var item entity.MenuItem

	err := c.do(ctx, "failed to fetch menu item", http.MethodGet, fmt.Sprintf("/api/menu-items/%d", id), token, nil, &item)
	if err != nil {
		return entity.MenuItem{}, err
	}

	return item, nil
}

func (c *Client) MenuItemsByCategory(ctx context.Context, token, category string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem

	path := "/api/menu-items/category/" + url.PathEscape(category)

	err := c.do(ctx, "failed to fetch menu items by category", http.MethodGet, path, token, nil, &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// ToggleAvailability flips the available flag of the item and returns its new state.
func (c *Client) ToggleAvailability(ctx context.Context, token string, id int64) (entity.MenuItem, error) {
	var item entity.MenuItem

	err := c.do(ctx, "failed to update availability", http.MethodPut, fmt.Sprintf("/api/menu-items/%d", id), token, nil, &item)
	if err != nil {
		return entity.MenuItem{}, err
	}

	return item, nil
}

func (c *Client) AddMenuItem(ctx context.Context, token string, draft entity.MenuItemDraft) (entity.MenuItem, error) {
	var item entity.MenuItem

	err := c.do(ctx, "failed to add menu item", http.MethodPost, "/api/menu-items/add", token, draft, &item)
	if err != nil {
		return entity.MenuItem{}, err
	}

	return item, nil
}

func (c *Client) UpdateMenuItemName(ctx context.Context, token string, id int64, name string) (entity.MenuItem, error) {
	return c.updateMenuItemField(ctx, "failed to update name", token, id, "name", name)
}

func (c *Client) UpdateMenuItemPrice(ctx context.Context, token string, id int64, price decimal.Decimal) (entity.MenuItem, error) {
	return c.updateMenuItemField(ctx, "failed to update price", token, id, "price", price.String())
}

func (c *Client) UpdateMenuItemCategory(ctx context.Context, token string, id int64, category string) (entity.MenuItem, error) {
	return c.updateMenuItemField(ctx, "failed to update category", token, id, "category", category)
}

func (c *Client) updateMenuItemField(ctx context.Context, op, token string, id int64, field, value string) (entity.MenuItem, error) {
	var item entity.MenuItem

	q := url.Values{}
	q.Set(field, value)

	path := fmt.Sprintf("/api/menu-items/%d/%s?%s", id, field, q.Encode())

	err := c.do(ctx, op, http.MethodPut, path, token, nil, &item)
	if err != nil {
		return entity.MenuItem{}, err
	}

	return item, nil
}
