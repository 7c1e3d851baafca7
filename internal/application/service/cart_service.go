package service

import (
	"context"
	"sync"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/pkg/apperror"
)

// CartService holds the in-progress selection for the active terminal. Lines
// keep insertion order and carry the price captured at add-time, so later
// catalog price edits do not affect a cart already being rung up. The cart is
// ephemeral and never persisted.
type CartService struct {
	mu      sync.Mutex
	cart    entity.Cart
	catalog *CatalogService
}

func NewCartService(catalog *CatalogService) *CartService {
	return &CartService{catalog: catalog}
}

// AddItem puts one unit of the named item into the cart. A repeated add for
// an item already present bumps its quantity by one. The catalog's current
// stock is the upper bound in both cases; refused adds leave the cart
// unchanged.
func (s *CartService) AddItem(ctx context.Context, name string) ([]entity.CartLine, error) {
	item, err := s.catalog.Find(ctx, name)
	if err != nil {
		return nil, err
	}
	if item.Stock <= 0 {
		return nil, apperror.ErrOutOfStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.cart.FindLine(item.Name); idx >= 0 {
		if s.cart.Lines[idx].Quantity+1 > item.Stock {
			return nil, apperror.ErrExceedsStock
		}
		s.cart.Lines[idx].Quantity++
	} else {
		s.cart.Lines = append(s.cart.Lines, entity.CartLine{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: 1,
		})
	}
	return s.cart.Clone().Lines, nil
}

// SetQuantity changes a line's quantity. Values below 1 are clamped to 1. A
// quantity above the item's current stock is refused with ExceedsStock and
// the line keeps its previous quantity.
func (s *CartService) SetQuantity(ctx context.Context, name string, quantity int) ([]entity.CartLine, error) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.cart.FindLine(name)
	if idx < 0 {
		return nil, apperror.NewUnknownItemError(name)
	}
	if quantity > s.catalog.Available(ctx, name) {
		return nil, apperror.ErrExceedsStock
	}
	s.cart.Lines[idx].Quantity = quantity
	return s.cart.Clone().Lines, nil
}

// SetNote attaches free text to a line, replacing any previous note.
func (s *CartService) SetNote(ctx context.Context, name, note string) ([]entity.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.cart.FindLine(name)
	if idx < 0 {
		return nil, apperror.NewUnknownItemError(name)
	}
	s.cart.Lines[idx].Note = note
	return s.cart.Clone().Lines, nil
}

// RemoveItem drops a line from the cart. Unknown names are a no-op.
func (s *CartService) RemoveItem(ctx context.Context, name string) []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.cart.FindLine(name); idx >= 0 {
		s.cart.Lines = append(s.cart.Lines[:idx], s.cart.Lines[idx+1:]...)
	}
	return s.cart.Clone().Lines
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Lines = nil
}

// Lines returns a copy of the cart in insertion order.
func (s *CartService) Lines(ctx context.Context) []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone().Lines
}

// take empties the cart and returns what it held, used by checkout so the
// committed lines and the cleared cart come from the same critical section.
func (s *CartService) take() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return nil
	}
	lines := s.cart.Clone().Lines
	s.cart.Lines = nil
	return lines
}

// restore puts back lines removed by take, used when a commit step fails
// after the cart was drained.
func (s *CartService) restore(lines []entity.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Lines = lines
}
