package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/broker"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=workflow.go -destination=../mocks/workflow.go -package=mocks -typed

type FloorAPI interface {
	Tables(ctx context.Context, token string) ([]entity.Table, error)
	ActiveSessions(ctx context.Context, token string) ([]entity.TableSession, error)
	ActiveSession(ctx context.Context, token, table string) (entity.TableSession, error)
	StartSession(ctx context.Context, token, table string) (entity.StartedSession, error)
	EndSession(ctx context.Context, token, table string) (entity.EndedSession, error)
	ServedItems(ctx context.Context, token string, sessionID int64) ([]entity.SessionItem, error)
	UnservedItems(ctx context.Context, token string, sessionID int64) ([]entity.SessionItem, error)
	AvailableMenuItems(ctx context.Context, token string) ([]entity.MenuItem, error)
	PlaceOrder(ctx context.Context, token string, req entity.OrderRequest) (entity.PlacedOrder, error)
	CheckoutSummary(ctx context.Context, token string, sessionID int64) (entity.CheckoutSummary, error)
}

// Viewer is the auth state of the staff member driving the workflow.
type Viewer interface {
	Token(ctx context.Context) (string, error)
	Remember(ctx context.Context, table string, sessionID int64) error
	Forget(ctx context.Context, table string) error
}

type Publisher interface {
	SendWorkflowEvent(ctx context.Context, e broker.WorkflowEvent)
}

type TableStatus struct {
	Name      string `json:"tableName"`
	State     State  `json:"state"`
	SessionID int64  `json:"sessionId,omitempty"`
}

type OrderView struct {
	Ref      entity.SessionRef    `json:"ref"`
	Served   []entity.SessionItem `json:"served"`
	Unserved []entity.SessionItem `json:"unserved"`
	Total    decimal.Decimal      `json:"total"`
}

type CartView struct {
	Lines []entity.OrderLine `json:"lines"`
	Total decimal.Decimal    `json:"total"`
	Empty bool               `json:"empty"`
}

type Receipt struct {
	Summary    entity.CheckoutSummary `json:"summary"`
	Consistent bool                   `json:"consistent"`
}

// Workflow drives a table from IDLE through ordering and checkout back to IDLE.
// It keeps no per-table state: every decision is taken on freshly fetched backend data.
type Workflow struct {
	api    FloorAPI
	events Publisher
}

// New accepts a nil events publisher.
func New(api FloorAPI, events Publisher) *Workflow {
	return &Workflow{
		api:    api,
		events: events,
	}
}

// Tables joins the table catalog with the active sessions. Both are fetched concurrently.
func (w *Workflow) Tables(ctx context.Context, v Viewer) ([]TableStatus, error) {
	token, err := v.Token(ctx)
	if err != nil {
		return nil, err
	}

	var (
		tables []entity.Table
		active []entity.TableSession
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		tables, err = w.api.Tables(gctx, token)
		return err
	})

	g.Go(func() error {
		var err error
		active, err = w.api.ActiveSessions(gctx, token)
		return err
	})

	err = g.Wait()
	if err != nil {
		return nil, err
	}

	sessions := make(map[string]int64, len(active))
	for _, s := range active {
		sessions[s.TableNumber] = s.ID
	}

	res := make([]TableStatus, 0, len(tables))

	for _, t := range tables {
		st := TableStatus{Name: t.Name, State: StateIdle}
		if id, ok := sessions[t.Name]; ok {
			st.State = StateActive
			st.SessionID = id
		}

		res = append(res, st)
	}

	return res, nil
}

// SelectTable opens the order view of table. An active table is resumed without
// starting a new session. An idle table is started only after confirm agrees;
// otherwise the caller stays on the tables view.
func (w *Workflow) SelectTable(ctx context.Context, v Viewer, table string, confirm entity.Confirmer) (entity.Location, error) {
	if table == "" {
		return entity.Location{}, fmt.Errorf("%w: empty table", entity.ErrInvalidArgument)
	}

	token, err := v.Token(ctx)
	if err != nil {
		return entity.Location{}, err
	}

	active, err := w.api.ActiveSessions(ctx, token)
	if err != nil {
		return entity.Location{}, err
	}

	for _, s := range active {
		if s.TableNumber == table {
			return w.resume(ctx, token, table)
		}
	}

	if !confirm(fmt.Sprintf("Start session for %s?", table)) {
		return entity.Location{Route: entity.RouteServer}, nil
	}

	started, err := w.api.StartSession(ctx, token, table)
	if err != nil {
		return entity.Location{}, err
	}

	ref := entity.SessionRef{SessionID: started.ID, TableNumber: table}

	err = v.Remember(ctx, table, started.ID)
	if err != nil {
		slog.WarnContext(ctx, "remember table session", "table", table, "error", err)
	}

	w.transition(ctx, StateIdle, EventStart, ref, broker.EventSessionStarted, nil)

	return entity.Navigate(entity.RouteOrderView, ref), nil
}

func (w *Workflow) resume(ctx context.Context, token, table string) (entity.Location, error) {
	s, err := w.api.ActiveSession(ctx, token, table)
	if err != nil {
		return entity.Location{}, err
	}

	ref := entity.SessionRef{SessionID: s.ID, TableNumber: table}

	w.transition(ctx, StateActive, EventResume, ref, "", nil)

	return entity.Navigate(entity.RouteOrderView, ref), nil
}

// OrderView waits for both the served and unserved lists before computing the total.
func (w *Workflow) OrderView(ctx context.Context, v Viewer, ref entity.SessionRef) (OrderView, error) {
	if !ref.Valid() {
		return OrderView{}, entity.ErrNoSession
	}

	token, err := v.Token(ctx)
	if err != nil {
		return OrderView{}, err
	}

	view := OrderView{Ref: ref}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		view.Served, err = w.api.ServedItems(gctx, token, ref.SessionID)
		return err
	})

	g.Go(func() error {
		var err error
		view.Unserved, err = w.api.UnservedItems(gctx, token, ref.SessionID)
		return err
	})

	err = g.Wait()
	if err != nil {
		return OrderView{}, err
	}

	view.Total = entity.SumTotals(view.Served).Add(entity.SumTotals(view.Unserved))

	return view, nil
}

func (w *Workflow) GoToMenu(ref entity.SessionRef) (entity.Location, error) {
	if !ref.Valid() {
		return entity.Location{}, entity.ErrNoSession
	}

	return entity.Navigate(entity.RouteMenu, ref), nil
}

// Menu returns the orderable items grouped by category.
func (w *Workflow) Menu(ctx context.Context, v Viewer) ([]entity.MenuCategory, error) {
	token, err := v.Token(ctx)
	if err != nil {
		return nil, err
	}

	items, err := w.api.AvailableMenuItems(ctx, token)
	if err != nil {
		return nil, err
	}

	return entity.GroupByCategory(items), nil
}

// PreviewCart prices the cart against the currently available menu.
func (w *Workflow) PreviewCart(ctx context.Context, v Viewer, cart *Cart) (CartView, error) {
	token, err := v.Token(ctx)
	if err != nil {
		return CartView{}, err
	}

	items, err := w.api.AvailableMenuItems(ctx, token)
	if err != nil {
		return CartView{}, err
	}

	return CartView{
		Lines: cart.Lines(),
		Total: cart.Total(items),
		Empty: cart.Empty(),
	}, nil
}

// SubmitOrder places the cart against the session and returns to the order view.
// An empty cart is refused without contacting the backend.
func (w *Workflow) SubmitOrder(ctx context.Context, v Viewer, ref entity.SessionRef, cart *Cart) (entity.Location, error) {
	if !ref.Valid() {
		return entity.Location{}, entity.ErrNoSession
	}

	if cart.Empty() {
		return entity.Location{}, entity.ErrEmptyCart
	}

	lines := cart.Lines()

	token, err := v.Token(ctx)
	if err != nil {
		return entity.Location{}, err
	}

	order, err := w.api.PlaceOrder(ctx, token, entity.OrderRequest{
		TableSessionID: ref.SessionID,
		Items:          lines,
	})
	if err != nil {
		return entity.Location{}, err
	}

	quantity := 0
	for _, l := range lines {
		quantity += l.Quantity
	}

	w.transition(ctx, StateActive, EventOrder, ref, broker.EventOrderPlaced, func(e *broker.WorkflowEvent) {
		e.OrderID = order.OrderID
		e.Quantity = quantity
		e.Amount = entity.SumTotals(order.Items)
	})

	return entity.Navigate(entity.RouteOrderView, ref), nil
}

// RequestEnd moves to the receipt only when confirm agrees.
func (w *Workflow) RequestEnd(ctx context.Context, ref entity.SessionRef, confirm entity.Confirmer) (entity.Location, error) {
	if !ref.Valid() {
		return entity.Location{}, entity.ErrNoSession
	}

	if !confirm(fmt.Sprintf("End session for %s?", ref.TableNumber)) {
		return entity.Navigate(entity.RouteOrderView, ref), nil
	}

	w.transition(ctx, StateActive, EventRequestEnd, ref, broker.EventSessionEndRequested, nil)

	return entity.Navigate(entity.RouteReceipt, ref), nil
}

func (w *Workflow) Receipt(ctx context.Context, v Viewer, ref entity.SessionRef) (Receipt, error) {
	if !ref.Valid() {
		return Receipt{}, entity.ErrNoSession
	}

	token, err := v.Token(ctx)
	if err != nil {
		return Receipt{}, err
	}

	summary, err := w.api.CheckoutSummary(ctx, token, ref.SessionID)
	if err != nil {
		return Receipt{}, err
	}

	r := Receipt{Summary: summary, Consistent: summary.Consistent()}
	if !r.Consistent {
		slog.WarnContext(ctx, "checkout total differs from item totals",
			"session_id", ref.SessionID,
			"total", summary.TotalAmount.String(),
			"items_total", summary.ItemsTotal().String(),
		)
	}

	return r, nil
}

// CloseSession ends the table session and returns to the tables view. On failure
// the error is returned and the caller stays on the receipt.
func (w *Workflow) CloseSession(ctx context.Context, v Viewer, ref entity.SessionRef) (entity.Location, error) {
	if !ref.Valid() {
		return entity.Location{}, entity.ErrNoSession
	}

	token, err := v.Token(ctx)
	if err != nil {
		return entity.Location{}, err
	}

	_, err = w.api.EndSession(ctx, token, ref.TableNumber)
	if err != nil {
		return entity.Location{}, err
	}

	err = v.Forget(ctx, ref.TableNumber)
	if err != nil {
		slog.WarnContext(ctx, "forget table session", "table", ref.TableNumber, "error", err)
	}

	w.transition(ctx, StateCheckoutPending, EventEnd, ref, broker.EventSessionEnded, nil)
	w.transition(ctx, StateEnded, EventRelease, ref, "", nil)

	return entity.Location{Route: entity.RouteServer}, nil
}

// transition logs the state change and publishes typ when it is set.
func (w *Workflow) transition(
	ctx context.Context,
	from State,
	e Event,
	ref entity.SessionRef,
	typ broker.WorkflowEventType,
	fill func(*broker.WorkflowEvent),
) {
	to, err := Transition(from, e)
	if err != nil {
		slog.ErrorContext(ctx, "workflow transition", "error", err)
		return
	}

	slog.InfoContext(ctx, "table state changed",
		"table", ref.TableNumber,
		"session_id", ref.SessionID,
		"from", string(from),
		"to", string(to),
	)

	if typ == "" || w.events == nil {
		return
	}

	event := broker.WorkflowEvent{
		Type:        typ,
		SessionID:   ref.SessionID,
		TableNumber: ref.TableNumber,
	}
	if fill != nil {
		fill(&event)
	}

	w.events.SendWorkflowEvent(ctx, event)
}
