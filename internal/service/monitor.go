package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/broker"
)

// KitchenMonitor polls the kitchen queue with a service account and announces
// items that appeared since the previous poll. The first poll only records what
// is already queued.
type KitchenMonitor struct {
	api     BackOfficeAPI
	account Account
	events  KitchenPublisher

	mu     sync.Mutex
	primed bool
	seen   map[int64]struct{}
}

// NewKitchenMonitor accepts a nil events publisher; new items are then only logged.
func NewKitchenMonitor(api BackOfficeAPI, account Account, events KitchenPublisher) *KitchenMonitor {
	return &KitchenMonitor{
		api:     api,
		account: account,
		events:  events,
		seen:    make(map[int64]struct{}),
	}
}

func (m *KitchenMonitor) Poll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, err := m.account.Token(ctx)
	if err != nil {
		return err
	}

	queue, err := m.api.KitchenQueue(ctx, token)
	if err != nil {
		if errors.Is(err, entity.ErrUnauthenticated) || errors.Is(err, entity.ErrForbidden) {
			m.account.Invalidate(ctx)
		}

		return err
	}

	now := time.Now().UTC()
	current := make(map[int64]struct{}, len(queue))
	fresh := 0

	for _, item := range queue {
		if item.Served {
			continue
		}

		current[item.OrderItemID] = struct{}{}

		if _, ok := m.seen[item.OrderItemID]; ok || !m.primed {
			continue
		}

		fresh++

		slog.InfoContext(ctx, "kitchen item queued",
			"order_item_id", item.OrderItemID,
			"table", item.TableNumber,
			"item", item.ItemName,
			"quantity", item.Quantity,
		)

		if m.events != nil {
			m.events.SendKitchenItemQueued(ctx, broker.KitchenItemQueuedEvent{
				OrderItemID: item.OrderItemID,
				OrderID:     item.OrderID,
				TableNumber: item.TableNumber,
				ItemName:    item.ItemName,
				Quantity:    item.Quantity,
				QueuedAt:    now,
			})
		}
	}

	m.seen = current
	m.primed = true

	slog.DebugContext(ctx, "kitchen queue polled", "pending", len(current), "new", fresh)

	return nil
}

// Pending is the number of unserved items seen by the last poll.
func (m *KitchenMonitor) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.seen)
}
