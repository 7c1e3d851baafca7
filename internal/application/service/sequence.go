package service

import (
	"context"
	"log"
	"sync"

	"github.com/adiwira/kasirpos/internal/domain/repository"
)

// SequenceService issues the human-facing order numbers. The counter is
// process-wide, persisted on every advance, and never moves backwards except
// through rollback of a failed checkout commit.
type SequenceService struct {
	mu   sync.Mutex
	next int64
	repo repository.SequenceRepository
}

// NewSequenceService loads the persisted counter. A fresh install starts at
// the configured initial order number, never below 1.
func NewSequenceService(ctx context.Context, repo repository.SequenceRepository, initial int64) (*SequenceService, error) {
	n, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		n = initial
	}
	if n < 1 {
		n = 1
	}
	return &SequenceService{next: n, repo: repo}, nil
}

// Next returns the current order number and advances the counter by one. The
// advanced value is persisted before the caller sees the number; a failed
// write leaves the counter where it was.
func (s *SequenceService) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.next
	if err := s.repo.Save(ctx, n+1); err != nil {
		return 0, err
	}
	s.next = n + 1
	return n, nil
}

// Peek reports the number the next finalize would receive, without advancing.
func (s *SequenceService) Peek(ctx context.Context) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// rollback undoes a single advance when a later commit step fails. The
// persisted write is best effort; an unused gap in the sequence is harmless,
// a reused number is not, so the in-memory counter always steps back.
func (s *SequenceService) rollback(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next > 1 {
		s.next--
	}
	if err := s.repo.Save(ctx, s.next); err != nil {
		log.Printf("sequence: rollback to %d not persisted: %v", s.next, err)
	}
}
