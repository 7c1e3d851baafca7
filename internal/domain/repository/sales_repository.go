package repository

import (
	"context"

	"github.com/adiwira/kasirpos/internal/domain/entity"
)

// SalesRepository persists the sales ledger, most-recent-first.
type SalesRepository interface {
	Load(ctx context.Context) ([]entity.Sale, error)
	Save(ctx context.Context, sales []entity.Sale) error
}

// SequenceRepository persists the order sequence counter. The stored value is
// the next order number to hand out.
type SequenceRepository interface {
	Load(ctx context.Context) (int64, error)
	Save(ctx context.Context, next int64) error
}
