package restaurant_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/wl0182/Restaurant-Ordering-System/internal/clients/restaurant"
	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/config"
)

func newClient(t *testing.T, h http.Handler, retries int) *restaurant.Client {
	t.Helper()

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	return restaurant.NewClient(config.RestaurantAPI{BaseURL: server.URL + "/", RetryAttempts: retries})
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		body      string
		wantToken string
		wantErr   error
		wantMsg   string
	}{
		{
			name:      "success",
			status:    http.StatusOK,
			body:      `{"token":"a.b.c"}`,
			wantToken: "a.b.c",
		},
		{
			name:    "bad credentials",
			status:  http.StatusUnauthorized,
			body:    `{"status":401,"error":"Unauthorized","message":"Bad credentials"}`,
			wantErr: entity.ErrUnauthenticated,
			wantMsg: "login failed: Bad credentials",
		},
		{
			name:    "forbidden without body",
			status:  http.StatusForbidden,
			wantErr: entity.ErrForbidden,
			wantMsg: "login failed: forbidden",
		},
		{
			name:    "empty token",
			status:  http.StatusOK,
			body:    `{}`,
			wantMsg: "login failed: empty token in response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/auth/login", r.URL.Path)
				require.Empty(t, r.Header.Get("Authorization"))

				var cred entity.Credential
				require.NoError(t, json.NewDecoder(r.Body).Decode(&cred))
				require.Equal(t, entity.Credential{Email: "admin@example.com", Password: "password"}, cred)

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}), 0)

			token, err := c.Login(context.Background(), entity.Credential{Email: "admin@example.com", Password: "password"})
			if tt.wantMsg == "" {
				require.NoError(t, err)
				require.Equal(t, tt.wantToken, token)

				return
			}

			require.Empty(t, token)
			require.EqualError(t, err, tt.wantMsg)

			var apiErr *entity.APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, "login failed", apiErr.Op)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestClient_BearerAndErrors(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /orders/kitchen/queue", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"orderItemId":11,"orderId":3,"tableNumber":"T3","itemName":"Burger","quantity":2,"served":false}]`))
	})
	mux.HandleFunc("GET /sessions/active/{table}", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Table 1", r.PathValue("table"))
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"error":"Not Found","message":"No active session for table Table 1"}`))
	})
	mux.HandleFunc("GET /orders/sessions/5/served", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"itemId":1,`))
	})
	mux.HandleFunc("GET /orders/sessions/5/unserved", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`internal failure`))
	})

	c := newClient(t, mux, 0)
	ctx := context.Background()

	queue, err := c.KitchenQueue(ctx, "token-1")
	require.NoError(t, err)
	require.Equal(t, []entity.KitchenItem{
		{OrderItemID: 11, OrderID: 3, TableNumber: "T3", ItemName: "Burger", Quantity: 2},
	}, queue)

	_, err = c.ActiveSession(ctx, "token-1", "Table 1")
	require.ErrorIs(t, err, entity.ErrNotFound)
	require.EqualError(t, err, "failed to fetch active session: No active session for table Table 1")

	served, err := c.ServedItems(ctx, "token-1", 5)
	require.Nil(t, served)
	require.ErrorContains(t, err, "failed to fetch served items: decode response")

	unserved, err := c.UnservedItems(ctx, "token-1", 5)
	require.Nil(t, unserved)
	require.ErrorIs(t, err, entity.ErrUnexpectedStatus)
	require.EqualError(t, err, "failed to fetch unserved items: internal failure")
}

func TestClient_CheckoutSummary(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sessions/9/checkout-summary", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"sessionId": 9,
			"tableNumber": "T3",
			"totalOrders": 1,
			"totalItemOrdered": 2,
			"totalAmont": 25.98,
			"items": [{"orderId": 4, "itemId": 7, "itemName": "Burger", "totalQuantity": 2, "served": true, "totalPrice": 25.98}]
		}`))
	}), 0)

	s, err := c.CheckoutSummary(context.Background(), "t", 9)
	require.NoError(t, err)
	require.Equal(t, int64(2), s.TotalItemOrdered)
	require.Equal(t, "25.98", s.TotalAmount.StringFixed(2))
	require.True(t, s.Consistent())
}

func TestClient_UpdateMenuItemPrice(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/menu-items/7/price", r.URL.Path)
		require.Equal(t, "14.5", r.URL.Query().Get("price"))
		_, _ = w.Write([]byte(`{"id":7,"name":"Burger","price":14.5,"category":"Mains","available":true}`))
	}), 0)

	item, err := c.UpdateMenuItemPrice(context.Background(), "t", 7, decimal.RequireFromString("14.50"))
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("14.5").Equal(item.Price))
}

func TestClient_PlaceOrder(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req entity.OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, entity.OrderRequest{
			TableSessionID: 9,
			Items:          []entity.OrderLine{{MenuItemID: 7, Quantity: 2}},
		}, req)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"orderId":4,"sessionId":9,"status":"PLACED","items":[]}`))
	}), 0)

	o, err := c.PlaceOrder(context.Background(), "t", entity.OrderRequest{
		TableSessionID: 9,
		Items:          []entity.OrderLine{{MenuItemID: 7, Quantity: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(4), o.OrderID)
}

// dropFirst closes the connection of the first request without responding.
func dropFirst(calls *atomic.Int32, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			conn, _, err := w.(http.Hijacker).Hijack()
			if err == nil {
				_ = conn.Close()
			}

			return
		}

		_, _ = w.Write([]byte(body))
	}
}

func TestClient_RetriesOnlyIdempotentTransportErrors(t *testing.T) {
	t.Parallel()

	t.Run("get is retried", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		c := newClient(t, dropFirst(&calls, `[{"tableName":"T1"}]`), 1)

		tables, err := c.Tables(context.Background(), "t")
		require.NoError(t, err)
		require.Equal(t, []entity.Table{{Name: "T1"}}, tables)
		require.Equal(t, int32(2), calls.Load())
	})

	t.Run("post is not retried", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		c := newClient(t, dropFirst(&calls, `{"id":1,"tableNumber":"T1"}`), 1)

		_, err := c.StartSession(context.Background(), "t", "T1")
		require.ErrorContains(t, err, "failed to start session: send request")
		require.Equal(t, int32(1), calls.Load())
	})

	t.Run("status is not retried", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}), 3)

		_, err := c.Tables(context.Background(), "t")

		var apiErr *entity.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
		require.Equal(t, int32(1), calls.Load())
	})
}
