package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/domain/repository"
	"github.com/adiwira/kasirpos/pkg/apperror"
)

// LedgerService owns the append-only list of finalized sales, newest first.
// Sales are never deleted; the only mutation after append is the one-way
// void flag.
type LedgerService struct {
	mu    sync.RWMutex
	sales []entity.Sale
	repo  repository.SalesRepository
}

func NewLedgerService(ctx context.Context, repo repository.SalesRepository) (*LedgerService, error) {
	sales, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &LedgerService{sales: sales, repo: repo}, nil
}

// Append prepends a finalized sale and persists the ledger. A persistence
// failure reverts the in-memory list. Sale IDs come from a UUID source, so a
// duplicate means internal corruption rather than bad input.
func (s *LedgerService) Append(ctx context.Context, sale entity.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index(sale.ID) >= 0 {
		return fmt.Errorf("duplicate sale id %s", sale.ID)
	}

	s.sales = append([]entity.Sale{sale}, s.sales...)
	if err := s.repo.Save(ctx, s.sales); err != nil {
		s.sales = s.sales[1:]
		return err
	}
	return nil
}

// Void marks the sale cancelled. The record otherwise stays intact and the
// stock it consumed is not returned.
func (s *LedgerService) Void(ctx context.Context, id string) (entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return entity.Sale{}, apperror.ErrUnknownSale
	}
	if s.sales[idx].Voided {
		return entity.Sale{}, apperror.ErrAlreadyVoided
	}

	s.sales[idx].Voided = true
	if err := s.repo.Save(ctx, s.sales); err != nil {
		s.sales[idx].Voided = false
		return entity.Sale{}, err
	}
	return s.sales[idx], nil
}

// Get returns the sale with the given id.
func (s *LedgerService) Get(ctx context.Context, id string) (entity.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.index(id); idx >= 0 {
		return s.sales[idx], nil
	}
	return entity.Sale{}, apperror.ErrUnknownSale
}

// List returns a copy of the ledger, most recent first.
func (s *LedgerService) List(ctx context.Context) []entity.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// ReplaceAll swaps the full ledger, used by backup restore.
func (s *LedgerService) ReplaceAll(ctx context.Context, sales []entity.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.sales
	if sales == nil {
		sales = []entity.Sale{}
	}
	s.sales = sales
	if err := s.repo.Save(ctx, s.sales); err != nil {
		s.sales = prev
		return err
	}
	return nil
}

// discard removes the newest sale, compensating a checkout whose later
// commit step failed after the append had already been persisted. If the
// compensating write also fails, the persisted document keeps a sale the
// in-memory ledger no longer has; that divergence must be visible in the log.
func (s *LedgerService) discard(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sales) == 0 || s.sales[0].ID != id {
		return
	}
	s.sales = s.sales[1:]
	if err := s.repo.Save(ctx, s.sales); err != nil {
		log.Printf("ledger: discard of sale %s not persisted: %v", id, err)
	}
}

func (s *LedgerService) index(id string) int {
	for i, sale := range s.sales {
		if sale.ID == id {
			return i
		}
	}
	return -1
}
