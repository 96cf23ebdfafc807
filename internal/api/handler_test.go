package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/wl0182/Restaurant-Ordering-System/internal/api"
	"github.com/wl0182/Restaurant-Ordering-System/internal/clients/restaurant"
	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
	"github.com/wl0182/Restaurant-Ordering-System/internal/service"
	"github.com/wl0182/Restaurant-Ordering-System/internal/workflow"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/config"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/storage"
)

type gateway struct {
	t       *testing.T
	url     string
	http    *http.Client
	backend *backend
}

func newGateway(t *testing.T) *gateway {
	t.Helper()

	b, backendSrv := newBackend(t)

	client := restaurant.NewClient(config.RestaurantAPI{BaseURL: backendSrv.URL})

	handler := api.NewHandler(workflow.New(client, nil), service.New(client))
	mw := api.NewMiddleware(client, storage.NewMemory(), config.HTTP{CORSOrigins: []string{"http://localhost:3000"}})

	srv := httptest.NewServer(api.NewRouter(handler, mw))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &gateway{
		t:       t,
		url:     srv.URL,
		http:    &http.Client{Jar: jar},
		backend: b,
	}
}

// call sends body as JSON and decodes the response into out when it is not nil.
func (g *gateway) call(method, path string, body, out any) *http.Response {
	g.t.Helper()

	var r io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(g.t, err)

		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, g.url+path, r)
	require.NoError(g.t, err)

	resp, err := g.http.Do(req)
	require.NoError(g.t, err)

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(g.t, err)

	resp.Body = io.NopCloser(bytes.NewReader(raw))

	if out != nil {
		require.NoError(g.t, json.Unmarshal(raw, out), string(raw))
	}

	return resp
}

func (g *gateway) login(email string) {
	g.t.Helper()

	var res api.LoginResponse

	resp := g.call(http.MethodPost, "/api/login", entity.Credential{Email: email, Password: "password"}, &res)
	require.Equal(g.t, http.StatusOK, resp.StatusCode)
	require.Equal(g.t, entity.RouteHome, res.Location.Route)
}

func TestGateway_TableLifecycle(t *testing.T) {
	t.Parallel()

	g := newGateway(t)

	var denied api.RedirectResponse

	resp := g.call(http.MethodGet, "/api/server/tables", nil, &denied)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, entity.RouteLogin, denied.Redirect)
	require.Equal(t, entity.RouteLogin, resp.Header.Get("Location"))

	var failed api.ErrorResponse

	resp = g.call(http.MethodPost, "/api/login", entity.Credential{Email: "admin@example.com", Password: "wrong"}, &failed)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Bad credentials", failed.Message)

	var login api.LoginResponse

	resp = g.call(http.MethodPost, "/api/login", entity.Credential{Email: "admin@example.com", Password: "password"}, &login)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ADMIN", login.Role)

	var me api.MeResponse

	g.call(http.MethodGet, "/api/me", nil, &me)
	require.Equal(t, api.MeResponse{Authenticated: true, Role: "ADMIN"}, me)

	var tables []workflow.TableStatus

	resp = g.call(http.MethodGet, "/api/server/tables", nil, &tables)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, tables, 3)
	require.Equal(t, workflow.StateIdle, tables[2].State)

	var loc entity.Location

	resp = g.call(http.MethodPost, "/api/server/tables/T3/select", api.ConfirmRequest{Confirm: false}, &loc)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, entity.Location{Route: entity.RouteServer}, loc)
	require.Equal(t, 0, g.backend.activeCount())

	resp = g.call(http.MethodPost, "/api/server/tables/T3/select", api.ConfirmRequest{Confirm: true}, &loc)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, entity.RouteOrderView, loc.Route)
	require.NotNil(t, loc.State)

	ref := *loc.State
	require.Equal(t, "T3", ref.TableNumber)
	require.Positive(t, ref.SessionID)

	var again entity.Location

	g.call(http.MethodPost, "/api/server/tables/T3/select", api.ConfirmRequest{Confirm: true}, &again)
	require.Equal(t, loc, again)
	require.Equal(t, 1, g.backend.activeCount())

	resp = g.call(http.MethodPost, "/api/order-view/menu", api.RefRequest{SessionID: ref.SessionID, TableNumber: ref.TableNumber}, &loc)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, entity.RouteMenu, loc.Route)

	var menu []entity.MenuCategory

	g.call(http.MethodGet, "/api/menu", nil, &menu)
	require.Len(t, menu, 2)

	resp = g.call(http.MethodPost, "/api/menu/order", api.SubmitOrderRequest{
		SessionID:   ref.SessionID,
		TableNumber: ref.TableNumber,
		Items:       []entity.OrderLine{{MenuItemID: 7, Quantity: 0}},
	}, &failed)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "please select at least one item", failed.Message)
	require.Equal(t, 0, g.backend.orderCount())

	resp = g.call(http.MethodPost, "/api/menu/order", api.SubmitOrderRequest{
		SessionID:   ref.SessionID,
		TableNumber: ref.TableNumber,
		Items:       []entity.OrderLine{{MenuItemID: 7, Quantity: 2}},
	}, &loc)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, entity.Navigate(entity.RouteOrderView, ref), loc)

	orderView := "/api/order-view?sessionId=" + itoa(ref.SessionID) + "&tableNumber=T3"

	var view workflow.OrderView

	g.call(http.MethodGet, orderView, nil, &view)
	require.Empty(t, view.Served)
	require.Len(t, view.Unserved, 1)
	require.Equal(t, 2, view.Unserved[0].Quantity)
	require.True(t, decimal.RequireFromString("25.98").Equal(view.Total), view.Total.String())

	var queue []entity.KitchenItem

	g.call(http.MethodGet, "/api/kitchen", nil, &queue)
	require.Len(t, queue, 1)
	require.Equal(t, "T3", queue[0].TableNumber)

	resp = g.call(http.MethodPost, "/api/kitchen/items/"+itoa(queue[0].OrderItemID)+"/serve", nil, &queue)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, queue)

	g.call(http.MethodGet, orderView, nil, &view)
	require.Len(t, view.Served, 1)
	require.Empty(t, view.Unserved)
	require.True(t, view.Served[0].Served)

	resp = g.call(http.MethodPost, "/api/order-view/end", api.RefRequest{SessionID: ref.SessionID, TableNumber: "T3"}, &loc)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, entity.RouteOrderView, loc.Route)

	g.call(http.MethodPost, "/api/order-view/end", api.RefRequest{SessionID: ref.SessionID, TableNumber: "T3", Confirm: true}, &loc)
	require.Equal(t, entity.Navigate(entity.RouteReceipt, ref), loc)

	receiptQuery := "?sessionId=" + itoa(ref.SessionID) + "&tableNumber=T3"

	var rec workflow.Receipt

	resp = g.call(http.MethodGet, "/api/receipt"+receiptQuery, nil, &rec)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, int64(2), rec.Summary.TotalItemOrdered)
	require.True(t, decimal.RequireFromString("25.98").Equal(rec.Summary.TotalAmount), rec.Summary.TotalAmount.String())
	require.True(t, rec.Consistent)

	resp = g.call(http.MethodGet, "/api/receipt/pdf"+receiptQuery, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	doc, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))

	resp = g.call(http.MethodPost, "/api/receipt/close", api.RefRequest{SessionID: ref.SessionID, TableNumber: "T3"}, &loc)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, entity.Location{Route: entity.RouteServer}, loc)
	require.Equal(t, 0, g.backend.activeCount())

	resp = g.call(http.MethodPost, "/api/receipt/close", api.RefRequest{SessionID: ref.SessionID, TableNumber: "T3"}, &failed)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "No active session for table T3", failed.Message)

	resp = g.call(http.MethodPost, "/api/logout", nil, &loc)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, entity.RouteLogin, loc.Route)

	resp = g.call(http.MethodGet, "/api/admin/stats", nil, &denied)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, entity.RouteLogin, denied.Redirect)
	require.Equal(t, entity.RouteLogin, resp.Header.Get("Location"))
}

func TestGateway_Cart(t *testing.T) {
	t.Parallel()

	g := newGateway(t)
	g.login("cook@example.com")

	var view workflow.CartView

	resp := g.call(http.MethodPost, "/api/menu/cart", api.CartRequest{
		Items:      []entity.OrderLine{{MenuItemID: 7, Quantity: 1}},
		MenuItemID: 7,
		Action:     api.CartIncrement,
	}, &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []entity.OrderLine{{MenuItemID: 7, Quantity: 2}}, view.Lines)
	require.Equal(t, "25.98", view.Total.StringFixed(2))
	require.False(t, view.Empty)

	resp = g.call(http.MethodPost, "/api/menu/cart", api.CartRequest{
		MenuItemID: 9,
		Action:     api.CartDecrement,
	}, &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, view.Lines)
	require.True(t, view.Total.IsZero())
	require.True(t, view.Empty)

	var failed api.ErrorResponse

	resp = g.call(http.MethodPost, "/api/menu/cart", api.CartRequest{MenuItemID: 7, Action: "double"}, &failed)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = g.call(http.MethodPost, "/api/menu/cart", api.CartRequest{Action: api.CartIncrement}, &failed)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGateway_MissingSessionRef(t *testing.T) {
	t.Parallel()

	g := newGateway(t)
	g.login("cook@example.com")

	var failed api.ErrorResponse

	resp := g.call(http.MethodGet, "/api/order-view", nil, &failed)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, entity.ErrNoSession.Error(), failed.Message)

	resp = g.call(http.MethodGet, "/api/receipt?sessionId=abc&tableNumber=T1", nil, &failed)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGateway_AdminGuard(t *testing.T) {
	t.Parallel()

	anonymous := newGateway(t)

	var denied api.RedirectResponse

	resp := anonymous.call(http.MethodGet, "/api/admin/stats", nil, &denied)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, entity.RouteLogin, denied.Redirect)
	require.Equal(t, "Login required", denied.Message)

	user := newGateway(t)
	user.login("cook@example.com")

	resp = user.call(http.MethodGet, "/api/admin/stats", nil, &denied)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, entity.RouteHome, denied.Redirect)
	require.Equal(t, "Admin access required", denied.Message)

	resp = user.call(http.MethodGet, "/api/kitchen", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	admin := newGateway(t)
	admin.login("admin@example.com")

	var stats entity.Stats

	resp = admin.call(http.MethodGet, "/api/admin/stats?limit=5", nil, &stats)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, stats.MostOrdered)

	var failed api.ErrorResponse

	resp = admin.call(http.MethodGet, "/api/admin/stats?limit=-1", nil, &failed)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGateway_BrowsersAreIsolated(t *testing.T) {
	t.Parallel()

	g := newGateway(t)
	g.login("admin@example.com")

	other := &http.Client{}

	resp, err := other.Get(g.url + "/api/me")
	require.NoError(t, err)

	defer resp.Body.Close()

	var me api.MeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	require.Equal(t, api.MeResponse{Authenticated: false, Role: "none"}, me)
}

func TestGateway_Register(t *testing.T) {
	t.Parallel()

	g := newGateway(t)

	var failed api.ErrorResponse

	resp := g.call(http.MethodPost, "/api/register", entity.Registration{
		Name:            "Sam",
		Email:           "sam@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret2",
		EmployeeID:      7,
	}, &failed)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "passwords do not match", failed.Message)
}

func TestGateway_CORSPreflight(t *testing.T) {
	t.Parallel()

	g := newGateway(t)

	req, err := http.NewRequest(http.MethodOptions, g.url+"/api/login", nil)
	require.NoError(t, err)

	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
