package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

type SessionDetail struct {
	Session   entity.TableSession  `json:"session"`
	Orders    []entity.Order       `json:"orders"`
	Items     []entity.ItemSummary `json:"items"`
	ItemNames []string             `json:"itemNames"`
}

type OrderDetail struct {
	Order  entity.Order       `json:"order"`
	Status entity.OrderStatus `json:"status"`
}

// SessionDetail collects everything the admin sessions view shows about one session.
func (s *Service) SessionDetail(ctx context.Context, ts TokenSource, id int64) (SessionDetail, error) {
	token, err := ts.Token(ctx)
	if err != nil {
		return SessionDetail{}, err
	}

	var d SessionDetail

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		d.Session, err = s.api.Session(gctx, token, id)
		return err
	})

	g.Go(func() error {
		var err error
		d.Orders, err = s.api.SessionOrders(gctx, token, id)
		return err
	})

	g.Go(func() error {
		var err error
		d.Items, err = s.api.ItemSummary(gctx, token, id)
		return err
	})

	g.Go(func() error {
		var err error
		d.ItemNames, err = s.api.ItemNames(gctx, token, id)
		return err
	})

	err = g.Wait()
	if err != nil {
		return SessionDetail{}, err
	}

	return d, nil
}

func (s *Service) OrderDetail(ctx context.Context, ts TokenSource, id int64) (OrderDetail, error) {
	token, err := ts.Token(ctx)
	if err != nil {
		return OrderDetail{}, err
	}

	var d OrderDetail

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		d.Order, err = s.api.Order(gctx, token, id)
		return err
	})

	g.Go(func() error {
		var err error
		d.Status, err = s.api.OrderStatus(gctx, token, id)
		return err
	})

	err = g.Wait()
	if err != nil {
		return OrderDetail{}, err
	}

	return d, nil
}
