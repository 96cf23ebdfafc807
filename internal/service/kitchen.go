package service

import (
	"context"
	"fmt"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

func (s *Service) KitchenQueue(ctx context.Context, ts TokenSource) ([]entity.KitchenItem, error) {
	token, err := ts.Token(ctx)
	if err != nil {
		return nil, err
	}

	return s.api.KitchenQueue(ctx, token)
}

// ServeItem marks one order item served and returns the refreshed queue.
func (s *Service) ServeItem(ctx context.Context, ts TokenSource, orderItemID int64) ([]entity.KitchenItem, error) {
	if orderItemID <= 0 {
		return nil, fmt.Errorf("%w: order item id %d", entity.ErrInvalidArgument, orderItemID)
	}

	token, err := ts.Token(ctx)
	if err != nil {
		return nil, err
	}

	err = s.api.ServeOrderItem(ctx, token, orderItemID)
	if err != nil {
		return nil, err
	}

	return s.api.KitchenQueue(ctx, token)
}

func (s *Service) ServeOrder(ctx context.Context, ts TokenSource, orderID int64) (entity.Order, error) {
	if orderID <= 0 {
		return entity.Order{}, fmt.Errorf("%w: order id %d", entity.ErrInvalidArgument, orderID)
	}

	token, err := ts.Token(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	return s.api.ServeOrder(ctx, token, orderID)
}
