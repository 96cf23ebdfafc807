package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

// Stats fetches the four breakdowns concurrently. Dates are listed newest first,
// amounts and quantities largest first. A positive limit truncates every list.
func (s *Service) Stats(ctx context.Context, ts TokenSource, limit int) (entity.Stats, error) {
	token, err := ts.Token(ctx)
	if err != nil {
		return entity.Stats{}, err
	}

	var (
		byDate map[string]decimal.Decimal
		byItem map[string]decimal.Decimal
		stats  entity.Stats
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		byDate, err = s.api.RevenueByDate(gctx, token)
		return err
	})

	g.Go(func() error {
		var err error
		byItem, err = s.api.RevenueByMenuItem(gctx, token)
		return err
	})

	g.Go(func() error {
		var err error
		stats.MostOrdered, err = s.api.MostOrderedItems(gctx, token)
		return err
	})

	g.Go(func() error {
		var err error
		stats.AverageRevenue, err = s.api.AverageSessionRevenue(gctx, token)
		return err
	})

	err = g.Wait()
	if err != nil {
		return entity.Stats{}, err
	}

	stats.RevenueByDate = amounts(byDate)
	slices.SortFunc(stats.RevenueByDate, func(a, b entity.Amount) int {
		return cmp.Compare(b.Label, a.Label)
	})

	stats.RevenueByMenuItem = amounts(byItem)
	slices.SortFunc(stats.RevenueByMenuItem, func(a, b entity.Amount) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}

		return cmp.Compare(a.Label, b.Label)
	})

	slices.SortFunc(stats.MostOrdered, func(a, b entity.MostOrderedItem) int {
		if c := cmp.Compare(b.TotalQuantity, a.TotalQuantity); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	slices.SortFunc(stats.AverageRevenue, func(a, b entity.AverageRevenue) int {
		return cmp.Compare(b.Date, a.Date)
	})

	if limit > 0 {
		stats.RevenueByDate = truncate(stats.RevenueByDate, limit)
		stats.RevenueByMenuItem = truncate(stats.RevenueByMenuItem, limit)
		stats.MostOrdered = truncate(stats.MostOrdered, limit)
		stats.AverageRevenue = truncate(stats.AverageRevenue, limit)
	}

	return stats, nil
}

func amounts(m map[string]decimal.Decimal) []entity.Amount {
	res := make([]entity.Amount, 0, len(m))
	for k, v := range m {
		res = append(res, entity.Amount{Label: k, Amount: v})
	}

	return res
}

func truncate[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}

	return s
}
