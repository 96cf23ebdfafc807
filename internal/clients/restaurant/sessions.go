package restaurant

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

type startSessionRequest struct {
	TableNumber string `json:"tableNumber"`
}

func (c *Client) Tables(ctx context.Context, token string) ([]entity.Table, error) {
	var tables []entity.Table

	err := c.do(ctx, "failed to fetch tables", http.MethodGet, "/sessions/tables", token, nil, &tables)
	if err != nil {
		return nil, err
	}

	return tables, nil
}

func (c *Client) ActiveSessions(ctx context.Context, token string) ([]entity.TableSession, error) {
	var sessions []entity.TableSession

	err := c.do(ctx, "failed to fetch active sessions", http.MethodGet, "/sessions/active", token, nil, &sessions)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

func (c *Client) ActiveSession(ctx context.Context, token, table string) (entity.TableSession, error) {
	var s entity.TableSession

	path := "/sessions/active/" + url.PathEscape(table)

	err := c.do(ctx, "failed to fetch active session", http.MethodGet, path, token, nil, &s)
	if err != nil {
		return entity.TableSession{}, err
	}

	return s, nil
}

func (c *Client) StartSession(ctx context.Context, token, table string) (entity.StartedSession, error) {
	var s entity.StartedSession

	err := c.do(ctx, "failed to start session", http.MethodPost, "/sessions/start", token,
		startSessionRequest{TableNumber: table}, &s)
	if err != nil {
		return entity.StartedSession{}, err
	}

	return s, nil
}

func (c *Client) EndSession(ctx context.Context, token, table string) (entity.EndedSession, error) {
	var s entity.EndedSession

	path := "/sessions/" + url.PathEscape(table) + "/end"

	err := c.do(ctx, "failed to end session", http.MethodPut, path, token, nil, &s)
	if err != nil {
		return entity.EndedSession{}, err
	}

	return s, nil
}

func (c *Client) Session(ctx context.Context, token string, id int64) (entity.TableSession, error) {
	var s entity.TableSession

	err := c.do(ctx, "failed to fetch session", http.MethodGet, fmt.Sprintf("/sessions/%d", id), token, nil, &s)
	if err != nil {
		return entity.TableSession{}, err
	}

	return s, nil
}

func (c *Client) CheckoutSummary(ctx context.Context, token string, sessionID int64) (entity.CheckoutSummary, error) {
	var s entity.CheckoutSummary

	path := fmt.Sprintf("/sessions/%d/checkout-summary", sessionID)

	err := c.do(ctx, "failed to fetch checkout summary", http.MethodGet, path, token, nil, &s)
	if err != nil {
		return entity.CheckoutSummary{}, err
	}

	return s, nil
}

func (c *Client) ItemSummary(ctx context.Context, token string, sessionID int64) ([]entity.ItemSummary, error) {
	var items []entity.ItemSummary

	path := fmt.Sprintf("/sessions/%d/item-summary", sessionID)

	err := c.do(ctx, "failed to fetch item summary", http.MethodGet, path, token, nil, &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (c *Client) ItemNames(ctx context.Context, token string, sessionID int64) ([]string, error) {
	var names []string

	path := fmt.Sprintf("/sessions/%d/item-names", sessionID)

	err := c.do(ctx, "failed to fetch item names", http.MethodGet, path, token, nil, &names)
	if err != nil {
		return nil, err
	}

	return names, nil
}
