package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

// MenuItems returns the full catalog, or only category when it is not empty.
func (s *Service) MenuItems(ctx context.Context, ts TokenSource, category string) ([]entity.MenuItem, error) {
	token, err := ts.Token(ctx)
	if err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return s.api.MenuItems(ctx, token)
	}

	return s.api.MenuItemsByCategory(ctx, token, category)
}

func (s *Service) MenuItem(ctx context.Context, ts TokenSource, id int64) (entity.MenuItem, error) {
	token, err := ts.Token(ctx)
	if err != nil {
		return entity.MenuItem{}, err
	}

	return s.api.MenuItem(ctx, token, id)
}

// Categories lists the distinct non-empty categories of items in sorted order.
func Categories(items []entity.MenuItem) []string {
	res := make([]string, 0)

	for _, it := range items {
		if it.Category != "" && !slices.Contains(res, it.Category) {
			res = append(res, it.Category)
		}
	}

	slices.Sort(res)

	return res
}

func (s *Service) CreateMenuItem(ctx context.Context, ts TokenSource, draft entity.MenuItemDraft) (entity.MenuItem, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Category = strings.TrimSpace(draft.Category)

	switch {
	case draft.Name == "":
		return entity.MenuItem{}, fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	case draft.Category == "":
		return entity.MenuItem{}, fmt.Errorf("%w: category is required", entity.ErrInvalidArgument)
	case draft.Price.IsNegative():
		return entity.MenuItem{}, fmt.Errorf("%w: price must not be negative", entity.ErrInvalidArgument)
	}

	token, err := ts.Token(ctx)
	if err != nil {
		return entity.MenuItem{}, err
	}

	return s.api.AddMenuItem(ctx, token, draft)
}

// ToggleAvailability asks confirm only before disabling an available item.
// A declined prompt returns the item unchanged.
func (s *Service) ToggleAvailability(ctx context.Context, ts TokenSource, id int64, confirm entity.Confirmer) (entity.MenuItem, error) {
	token, err := ts.Token(ctx)
	if err != nil {
		return entity.MenuItem{}, err
	}

	item, err := s.api.MenuItem(ctx, token, id)
	if err != nil {
		return entity.MenuItem{}, err
	}

	if item.Available && !confirm(fmt.Sprintf("Disable %s?", item.Name)) {
		return item, nil
	}

	return s.api.ToggleAvailability(ctx, token, id)
}

func (s *Service) RenameMenuItem(ctx context.Context, ts TokenSource, id int64, name string) (entity.MenuItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.MenuItem{}, fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	token, err := ts.Token(ctx)
	if err != nil {
		return entity.MenuItem{}, err
	}

	return s.api.UpdateMenuItemName(ctx, token, id, name)
}

func (s *Service) RepriceMenuItem(ctx context.Context, ts TokenSource, id int64, price decimal.Decimal) (entity.MenuItem, error) {
	if price.IsNegative() {
		return entity.MenuItem{}, fmt.Errorf("%w: price must not be negative", entity.ErrInvalidArgument)
	}

	token, err := ts.Token(ctx)
	if err != nil {
		return entity.MenuItem{}, err
	}

	return s.api.UpdateMenuItemPrice(ctx, token, id, price)
}

func (s *Service) RecategorizeMenuItem(ctx context.Context, ts TokenSource, id int64, category string) (entity.MenuItem, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return entity.MenuItem{}, fmt.Errorf("%w: category is required", entity.ErrInvalidArgument)
	}

	token, err := ts.Token(ctx)
	if err != nil {
		return entity.MenuItem{}, err
	}

	return s.api.UpdateMenuItemCategory(ctx, token, id, category)
}
