package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/domain/repository"
	"github.com/adiwira/kasirpos/pkg/apperror"
)

// CatalogService owns the menu catalog. Items are keyed by display name and
// held in memory, with every mutation written through to the repository.
type CatalogService struct {
	mu    sync.RWMutex
	items []entity.MenuItem
	repo  repository.InventoryRepository
}

func NewCatalogService(ctx context.Context, repo repository.InventoryRepository) (*CatalogService, error) {
	items, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &CatalogService{items: items, repo: repo}, nil
}

// List returns a snapshot of the catalog sorted by category then name.
func (s *CatalogService) List(ctx context.Context) []entity.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.MenuItem, len(s.items))
	copy(out, s.items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Find returns the item with the given name, or ErrUnknownItem.
func (s *CatalogService) Find(ctx context.Context, name string) (entity.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(name); idx >= 0 {
		return s.items[idx], nil
	}
	return entity.MenuItem{}, apperror.NewUnknownItemError(name)
}

// Add inserts a new catalog item. Names are unique case-insensitively.
func (s *CatalogService) Add(ctx context.Context, item entity.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return apperror.NewBadRequestError("item name is required")
	}
	if item.Price < 0 {
		return apperror.NewBadRequestError("price must not be negative")
	}
	if item.Stock < 0 {
		item.Stock = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(item.Name) >= 0 {
		return apperror.ErrDuplicateItem
	}

	s.items = append(s.items, item)
	if err := s.repo.Save(ctx, s.items); err != nil {
		s.items = s.items[:len(s.items)-1]
		return err
	}
	return nil
}

// UpdatePrice sets the unit price of an existing item. Lines already in a
// cart keep their captured price.
func (s *CatalogService) UpdatePrice(ctx context.Context, name string, price int64) error {
	if price < 0 {
		return apperror.NewBadRequestError("price must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(name)
	if idx < 0 {
		return apperror.NewUnknownItemError(name)
	}

	prev := s.items[idx].Price
	s.items[idx].Price = price
	if err := s.repo.Save(ctx, s.items); err != nil {
		s.items[idx].Price = prev
		return err
	}
	return nil
}

// AdjustStock applies a signed delta to an item's stock, clamping at zero.
func (s *CatalogService) AdjustStock(ctx context.Context, name string, delta int) (entity.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(name)
	if idx < 0 {
		return entity.MenuItem{}, apperror.NewUnknownItemError(name)
	}

	prev := s.items[idx].Stock
	next := prev + delta
	if next < 0 {
		next = 0
	}
	s.items[idx].Stock = next
	if err := s.repo.Save(ctx, s.items); err != nil {
		s.items[idx].Stock = prev
		return entity.MenuItem{}, err
	}
	return s.items[idx], nil
}

// Remove deletes an item from the catalog. Unknown names are a no-op.
func (s *CatalogService) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(name)
	if idx < 0 {
		return nil
	}

	prev := s.items
	s.items = append(append([]entity.MenuItem{}, s.items[:idx]...), s.items[idx+1:]...)
	if err := s.repo.Save(ctx, s.items); err != nil {
		s.items = prev
		return err
	}
	return nil
}

// Available reports how many units of the named item can still be sold.
// Unknown items have zero availability.
func (s *CatalogService) Available(ctx context.Context, name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(name); idx >= 0 {
		return s.items[idx].Stock
	}
	return 0
}

// Deduct removes the sold quantities from stock in one write, clamping each
// item at zero. Cart rules bound quantities at add-time; by commit-time the
// clamp only matters if stock was edited concurrently. A persistence failure
// leaves stock untouched.
func (s *CatalogService) Deduct(ctx context.Context, lines []entity.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := make([]entity.MenuItem, len(s.items))
	copy(prev, s.items)
	for _, line := range lines {
		idx := s.indexOf(line.Name)
		if idx < 0 {
			continue
		}
		next := s.items[idx].Stock - line.Quantity
		if next < 0 {
			next = 0
		}
		s.items[idx].Stock = next
	}
	if err := s.repo.Save(ctx, s.items); err != nil {
		s.items = prev
		return err
	}
	return nil
}

// Restock returns previously deducted quantities, used to compensate a
// failed checkout. Items removed from the catalog in between are skipped.
func (s *CatalogService) Restock(ctx context.Context, lines []entity.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := make([]entity.MenuItem, len(s.items))
	copy(prev, s.items)
	for _, line := range lines {
		if idx := s.indexOf(line.Name); idx >= 0 {
			s.items[idx].Stock += line.Quantity
		}
	}
	if err := s.repo.Save(ctx, s.items); err != nil {
		s.items = prev
		return err
	}
	return nil
}

// ReplaceAll swaps the full catalog, used by backup restore.
func (s *CatalogService) ReplaceAll(ctx context.Context, items []entity.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.items
	if items == nil {
		items = []entity.MenuItem{}
	}
	s.items = items
	if err := s.repo.Save(ctx, s.items); err != nil {
		s.items = prev
		return err
	}
	return nil
}

func (s *CatalogService) indexOf(name string) int {
	for i, item := range s.items {
		if strings.EqualFold(item.Name, name) {
			return i
		}
	}
	return -1
}
