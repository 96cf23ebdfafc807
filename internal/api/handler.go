package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/wl0182/Restaurant-Ordering-System/internal/auth"
	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
	"github.com/wl0182/Restaurant-Ordering-System/internal/receipt"
	"github.com/wl0182/Restaurant-Ordering-System/internal/service"
	"github.com/wl0182/Restaurant-Ordering-System/internal/workflow"
)

type Workflow interface {
	Tables(ctx context.Context, v workflow.Viewer) ([]workflow.TableStatus, error)
	SelectTable(ctx context.Context, v workflow.Viewer, table string, confirm entity.Confirmer) (entity.Location, error)
	OrderView(ctx context.Context, v workflow.Viewer, ref entity.SessionRef) (workflow.OrderView, error)
	GoToMenu(ref entity.SessionRef) (entity.Location, error)
	Menu(ctx context.Context, v workflow.Viewer) ([]entity.MenuCategory, error)
	PreviewCart(ctx context.Context, v workflow.Viewer, cart *workflow.Cart) (workflow.CartView, error)
	SubmitOrder(ctx context.Context, v workflow.Viewer, ref entity.SessionRef, cart *workflow.Cart) (entity.Location, error)
	RequestEnd(ctx context.Context, ref entity.SessionRef, confirm entity.Confirmer) (entity.Location, error)
	Receipt(ctx context.Context, v workflow.Viewer, ref entity.SessionRef) (workflow.Receipt, error)
	CloseSession(ctx context.Context, v workflow.Viewer, ref entity.SessionRef) (entity.Location, error)
}

type BackOffice interface {
	KitchenQueue(ctx context.Context, ts service.TokenSource) ([]entity.KitchenItem, error)
	ServeItem(ctx context.Context, ts service.TokenSource, orderItemID int64) ([]entity.KitchenItem, error)
	ServeOrder(ctx context.Context, ts service.TokenSource, orderID int64) (entity.Order, error)

	MenuItems(ctx context.Context, ts service.TokenSource, category string) ([]entity.MenuItem, error)
	MenuItem(ctx context.Context, ts service.TokenSource, id int64) (entity.MenuItem, error)
	CreateMenuItem(ctx context.Context, ts service.TokenSource, draft entity.MenuItemDraft) (entity.MenuItem, error)
	ToggleAvailability(ctx context.Context, ts service.TokenSource, id int64, confirm entity.Confirmer) (entity.MenuItem, error)
	RenameMenuItem(ctx context.Context, ts service.TokenSource, id int64, name string) (entity.MenuItem, error)
	RepriceMenuItem(ctx context.Context, ts service.TokenSource, id int64, price decimal.Decimal) (entity.MenuItem, error)
	RecategorizeMenuItem(ctx context.Context, ts service.TokenSource, id int64, category string) (entity.MenuItem, error)

	AddStaff(ctx context.Context, ts service.TokenSource, staff entity.Staff) (entity.StaffAdded, error)
	Stats(ctx context.Context, ts service.TokenSource, limit int) (entity.Stats, error)
	SessionDetail(ctx context.Context, ts service.TokenSource, id int64) (service.SessionDetail, error)
	OrderDetail(ctx context.Context, ts service.TokenSource, id int64) (service.OrderDetail, error)
}

type Handler struct {
	wf  Workflow
	bo  BackOffice
	now func() time.Time
}

func NewHandler(wf Workflow, bo BackOffice) *Handler {
	return &Handler{
		wf:  wf,
		bo:  bo,
		now: time.Now,
	}
}

var errNoSession = errors.New("no session in context")

// session fails only when the Session middleware did not run.
func session(ctx context.Context) (*auth.Session, error) {
	s := auth.SessionFromCtx(ctx)
	if s == nil {
		return nil, errNoSession
	}

	return s, nil
}

type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

type RefRequest struct {
	SessionID   int64  `json:"sessionId"`
	TableNumber string `json:"tableNumber"`
	Confirm     bool   `json:"confirm"`
}

func (r RefRequest) ref() entity.SessionRef {
	return entity.SessionRef{SessionID: r.SessionID, TableNumber: r.TableNumber}
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("OK\n"))
}

type LoginResponse struct {
	Role     string          `json:"role"`
	Location entity.Location `json:"location"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.Credential

	err := decodeBody(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	token, err := s.Login(ctx, req)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, LoginResponse{
		Role:     auth.RoleOf(token).String(),
		Location: entity.Location{Route: entity.RouteHome},
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	err = s.Logout(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, entity.Location{Route: entity.RouteLogin})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.Registration

	err := decodeBody(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	err = s.Register(ctx, req)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, entity.Location{Route: entity.RouteLogin})
}

type MeResponse struct {
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role"`
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, MeResponse{
		Authenticated: s.HasToken(ctx),
		Role:          s.CurrentRole(ctx).String(),
	})
}

func (h *Handler) KitchenQueue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	queue, err := h.bo.KitchenQueue(ctx, s)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, queue)
}

func (h *Handler) ServeItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid order item id")
		return
	}

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	queue, err := h.bo.ServeItem(ctx, s, id)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, queue)
}

func (h *Handler) ServeOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid order id")
		return
	}

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	order, err := h.bo.ServeOrder(ctx, s, id)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, order)
}

func (h *Handler) Tables(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	tables, err := h.wf.Tables(ctx, s)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, tables)
}

func (h *Handler) SelectTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ConfirmRequest

	err := decodeBody(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	loc, err := h.wf.SelectTable(ctx, s, chi.URLParam(r, "table"), entity.Confirmed(req.Confirm))
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, loc)
}

func (h *Handler) OrderView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	view, err := h.wf.OrderView(ctx, s, queryRef(r))
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, view)
}

func (h *Handler) GoToMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RefRequest

	err := decodeBody(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	loc, err := h.wf.GoToMenu(req.ref())
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, loc)
}

func (h *Handler) RequestEnd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RefRequest

	err := decodeBody(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	loc, err := h.wf.RequestEnd(ctx, req.ref(), entity.Confirmed(req.Confirm))
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, loc)
}

func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	menu, err := h.wf.Menu(ctx, s)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, menu)
}

const (
	CartIncrement = "increment"
	CartDecrement = "decrement"
)

// CartRequest carries the cart held by the menu view and an optional step
// applied to one item before pricing.
type CartRequest struct {
	Items      []entity.OrderLine `json:"items"`
	MenuItemID int64              `json:"menuItemId"`
	Action     string             `json:"action"`
}

func (h *Handler) Cart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CartRequest

	err := decodeBody(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	cart := workflow.CartFromLines(req.Items)

	if req.Action != "" && req.MenuItemID <= 0 {
		sendErr(ctx, w, fmt.Errorf("%w: menuItemId is required", entity.ErrInvalidArgument))
		return
	}

	switch req.Action {
	case "":
	case CartIncrement:
		cart.Increment(req.MenuItemID)
	case CartDecrement:
		cart.Decrement(req.MenuItemID)
	default:
		sendErr(ctx, w, fmt.Errorf("%w: unknown cart action %q", entity.ErrInvalidArgument, req.Action))
		return
	}

	view, err := h.wf.PreviewCart(ctx, s, cart)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, view)
}

type SubmitOrderRequest struct {
	SessionID   int64              `json:"sessionId"`
	TableNumber string             `json:"tableNumber"`
	Items       []entity.OrderLine `json:"items"`
}

func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SubmitOrderRequest

	err := decodeBody(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	ref := entity.SessionRef{SessionID: req.SessionID, TableNumber: req.TableNumber}

	loc, err := h.wf.SubmitOrder(ctx, s, ref, workflow.CartFromLines(req.Items))
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, loc)
}

func (h *Handler) Receipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	rec, err := h.wf.Receipt(ctx, s, queryRef(r))
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, rec)
}

func (h *Handler) ReceiptPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	rec, err := h.wf.Receipt(ctx, s, queryRef(r))
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	doc, err := receipt.Render(rec.Summary, h.now())
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to print receipt")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.pdf", rec.Summary.SessionID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RefRequest

	err := decodeBody(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	loc, err := h.wf.CloseSession(ctx, s, req.ref())
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, loc)
}

type MenuResponse struct {
	Items      []entity.MenuItem `json:"items"`
	Categories []string          `json:"categories"`
}

func (h *Handler) AdminMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	items, err := h.bo.MenuItems(ctx, s, r.URL.Query().Get("category"))
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, MenuResponse{Items: items, Categories: service.Categories(items)})
}

func (h *Handler) AdminMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid menu item id")
		return
	}

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	item, err := h.bo.MenuItem(ctx, s, id)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, item)
}

func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.MenuItemDraft

	err := decodeBody(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	item, err := h.bo.CreateMenuItem(ctx, s, req)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, item)
}

func (h *Handler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid menu item id")
		return
	}

	var req ConfirmRequest

	err = decodeBody(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	item, err := h.bo.ToggleAvailability(ctx, s, id, entity.Confirmed(req.Confirm))
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, item)
}

type MenuItemFieldRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// UpdateMenuItem edits the single field named by the last path segment.
func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid menu item id")
		return
	}

	var req MenuItemFieldRequest

	err = decodeBody(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	var item entity.MenuItem

	switch field := chi.URLParam(r, "field"); field {
	case "name":
		item, err = h.bo.RenameMenuItem(ctx, s, id, req.Name)
	case "price":
		item, err = h.bo.RepriceMenuItem(ctx, s, id, req.Price)
	case "category":
		item, err = h.bo.RecategorizeMenuItem(ctx, s, id, req.Category)
	default:
		SendJSONErr(ctx, w, http.StatusNotFound, fmt.Errorf("unknown field %q", field), "Not found")
		return
	}

	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, item)
}

func (h *Handler) AddStaff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.Staff

	err := decodeBody(r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	added, err := h.bo.AddStaff(ctx, s, req)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, added)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			SendJSONErr(ctx, w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", v), "Invalid limit")
			return
		}

		limit = n
	}

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	stats, err := h.bo.Stats(ctx, s, limit)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, stats)
}

func (h *Handler) SessionDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid session id")
		return
	}

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	d, err := h.bo.SessionDetail(ctx, s, id)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, d)
}

func (h *Handler) OrderDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid order id")
		return
	}

	s, err := session(ctx)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	d, err := h.bo.OrderDetail(ctx, s, id)
	if err != nil {
		sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, d)
}
