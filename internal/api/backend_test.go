package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

// backend is an in-memory stand-in for the restaurant REST service.
type backend struct {
	mu sync.Mutex

	tokens   map[string]string // email -> token
	menu     []entity.MenuItem
	sessions map[string]int64 // table -> active session id
	items    map[int64][]*entity.KitchenItem
	nextID   int64
	orders   int
}

func newBackend(t *testing.T) (*backend, *httptest.Server) {
	t.Helper()

	b := &backend{
		tokens: map[string]string{
			"admin@example.com": sign(t, jwt.MapClaims{"sub": "admin@example.com", "authorities": []any{"ROLE_ADMIN"}}),
			"cook@example.com":  sign(t, jwt.MapClaims{"sub": "cook@example.com", "authorities": []any{"ROLE_USER"}}),
		},
		menu: []entity.MenuItem{
			{ID: 7, Name: "Burger", Price: decimal.RequireFromString("12.99"), Category: "Mains", Available: true},
			{ID: 9, Name: "Lemonade", Price: decimal.RequireFromString("3.50"), Category: "Drinks", Available: true},
		},
		sessions: make(map[string]int64),
		items:    make(map[int64][]*entity.KitchenItem),
		nextID:   41,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", b.login)
	mux.HandleFunc("GET /sessions/tables", b.authorized(b.tables))
	mux.HandleFunc("GET /sessions/active", b.authorized(b.active))
	mux.HandleFunc("GET /sessions/active/{table}", b.authorized(b.activeOne))
	mux.HandleFunc("POST /sessions/start", b.authorized(b.start))
	mux.HandleFunc("PUT /sessions/{table}/end", b.authorized(b.end))
	mux.HandleFunc("GET /sessions/{id}/{view}", b.authorized(b.sessionView))
	mux.HandleFunc("GET /api/menu-items/available", b.authorized(b.available))
	mux.HandleFunc("POST /orders", b.authorized(b.placeOrder))
	mux.HandleFunc("GET /orders/sessions/{id}/served", b.authorized(b.sessionItems(true)))
	mux.HandleFunc("GET /orders/sessions/{id}/unserved", b.authorized(b.sessionItems(false)))
	mux.HandleFunc("GET /orders/kitchen/queue", b.authorized(b.queue))
	mux.HandleFunc("POST /orders/orderItem/{id}/serve", b.authorized(b.serveItem))
	mux.HandleFunc("GET /api/stats/total-revenue", b.authorized(b.emptyMap))
	mux.HandleFunc("GET /api/stats/total-revenue-by-menu-item", b.authorized(b.emptyMap))
	mux.HandleFunc("GET /api/stats/most-ordered-items", b.authorized(b.emptyList))
	mux.HandleFunc("GET /api/stats/average-session-revenue-by-date", b.authorized(b.emptyList))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return b, srv
}

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	return token
}

func write(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func fail(w http.ResponseWriter, code int, msg string) {
	write(w, code, map[string]any{"status": code, "message": msg})
}

func (b *backend) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		b.mu.Lock()
		defer b.mu.Unlock()

		for _, t := range b.tokens {
			if t == token {
				next(w, r)
				return
			}
		}

		fail(w, http.StatusUnauthorized, "Full authentication is required")
	}
}

func (b *backend) login(w http.ResponseWriter, r *http.Request) {
	var cred entity.Credential
	_ = json.NewDecoder(r.Body).Decode(&cred)

	b.mu.Lock()
	token, ok := b.tokens[cred.Email]
	b.mu.Unlock()

	if !ok || cred.Password != "password" {
		fail(w, http.StatusUnauthorized, "Bad credentials")
		return
	}

	write(w, http.StatusOK, map[string]string{"token": token})
}

func (b *backend) tables(w http.ResponseWriter, _ *http.Request) {
	write(w, http.StatusOK, []entity.Table{{Name: "T1"}, {Name: "T2"}, {Name: "T3"}})
}

func (b *backend) active(w http.ResponseWriter, _ *http.Request) {
	res := make([]entity.TableSession, 0, len(b.sessions))
	for table, id := range b.sessions {
		res = append(res, entity.TableSession{ID: id, TableNumber: table})
	}

	write(w, http.StatusOK, res)
}

func (b *backend) activeOne(w http.ResponseWriter, r *http.Request) {
	table := r.PathValue("table")

	id, ok := b.sessions[table]
	if !ok {
		fail(w, http.StatusNotFound, "No active session for table "+table)
		return
	}

	write(w, http.StatusOK, entity.TableSession{ID: id, TableNumber: table})
}

func (b *backend) start(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TableNumber string `json:"tableNumber"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	if _, ok := b.sessions[req.TableNumber]; ok {
		fail(w, http.StatusConflict, "Table already has an active session")
		return
	}

	b.nextID++
	b.sessions[req.TableNumber] = b.nextID

	write(w, http.StatusOK, entity.StartedSession{ID: b.nextID, TableNumber: req.TableNumber, Active: true})
}

func (b *backend) end(w http.ResponseWriter, r *http.Request) {
	table := r.PathValue("table")

	if _, ok := b.sessions[table]; !ok {
		fail(w, http.StatusNotFound, "No active session for table "+table)
		return
	}

	delete(b.sessions, table)

	write(w, http.StatusOK, entity.EndedSession{Message: "Session ended", TableNumber: table})
}

func (b *backend) available(w http.ResponseWriter, _ *http.Request) {
	write(w, http.StatusOK, b.menu)
}

func (b *backend) price(menuItemID int64) (entity.MenuItem, bool) {
	for _, m := range b.menu {
		if m.ID == menuItemID {
			return m, true
		}
	}

	return entity.MenuItem{}, false
}

func (b *backend) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req entity.OrderRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	table := ""

	for t, id := range b.sessions {
		if id == req.TableSessionID {
			table = t
		}
	}

	if table == "" {
		fail(w, http.StatusNotFound, "Session not found")
		return
	}

	b.orders++
	orderID := int64(b.orders)
	placed := entity.PlacedOrder{OrderID: orderID, SessionID: req.TableSessionID, Status: "PENDING"}

	for _, l := range req.Items {
		m, ok := b.price(l.MenuItemID)
		if !ok {
			fail(w, http.StatusBadRequest, "Menu item not found")
			return
		}

		b.nextID++
		b.items[req.TableSessionID] = append(b.items[req.TableSessionID], &entity.KitchenItem{
			OrderItemID: b.nextID,
			OrderID:     orderID,
			TableNumber: table,
			ItemName:    m.Name,
			Quantity:    l.Quantity,
		})

		placed.Items = append(placed.Items, entity.SessionItem{
			ItemID:     b.nextID,
			MenuItemID: m.ID,
			Name:       m.Name,
			Quantity:   l.Quantity,
			UnitPrice:  m.Price,
			TotalPrice: m.Price.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}

	write(w, http.StatusOK, placed)
}

func (b *backend) sessionItem(it *entity.KitchenItem) entity.SessionItem {
	res := entity.SessionItem{ItemID: it.OrderItemID, Name: it.ItemName, Quantity: it.Quantity, Served: it.Served}

	for _, m := range b.menu {
		if m.Name == it.ItemName {
			res.MenuItemID = m.ID
			res.UnitPrice = m.Price
			res.TotalPrice = m.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		}
	}

	return res
}

func (b *backend) sessionItems(served bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)

		res := make([]entity.SessionItem, 0)

		for _, it := range b.items[id] {
			if it.Served == served {
				res = append(res, b.sessionItem(it))
			}
		}

		write(w, http.StatusOK, res)
	}
}

func (b *backend) queue(w http.ResponseWriter, _ *http.Request) {
	res := make([]entity.KitchenItem, 0)

	for _, items := range b.items {
		for _, it := range items {
			if !it.Served {
				res = append(res, *it)
			}
		}
	}

	write(w, http.StatusOK, res)
}

func (b *backend) serveItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)

	for _, items := range b.items {
		for _, it := range items {
			if it.OrderItemID == id {
				it.Served = true
				w.WriteHeader(http.StatusOK)

				return
			}
		}
	}

	fail(w, http.StatusNotFound, "Order item not found")
}

func (b *backend) sessionView(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("view") != "checkout-summary" {
		fail(w, http.StatusNotFound, "Not found")
		return
	}

	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
	b.checkout(w, id)
}

// checkout answers with the backend's own spelling of the total.
func (b *backend) checkout(w http.ResponseWriter, id int64) {
	table := ""
	orders := map[int64]struct{}{}
	total := decimal.Zero
	quantity := 0
	lines := make([]entity.ItemSummary, 0)

	for _, it := range b.items[id] {
		table = it.TableNumber
		orders[it.OrderID] = struct{}{}

		si := b.sessionItem(it)
		total = total.Add(si.TotalPrice)
		quantity += it.Quantity

		lines = append(lines, entity.ItemSummary{
			OrderID:       it.OrderID,
			ItemID:        it.OrderItemID,
			ItemName:      it.ItemName,
			TotalQuantity: it.Quantity,
			Served:        it.Served,
			TotalPrice:    si.TotalPrice,
		})
	}

	write(w, http.StatusOK, map[string]any{
		"sessionId":        id,
		"tableNumber":      table,
		"totalOrders":      len(orders),
		"totalItemOrdered": quantity,
		"items":            lines,
		"totalAmont":       total,
	})
}

func (b *backend) emptyMap(w http.ResponseWriter, _ *http.Request) {
	write(w, http.StatusOK, map[string]float64{})
}

func (b *backend) emptyList(w http.ResponseWriter, _ *http.Request) {
	write(w, http.StatusOK, []any{})
}

func (b *backend) activeCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.sessions)
}

func (b *backend) orderCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.orders
}
