package repository

import (
	"context"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/domain/repository"
)

type salesRepository struct {
	store DocStore
}

// NewSalesRepository creates a sales ledger repository over the KV store
func NewSalesRepository(store DocStore) repository.SalesRepository {
	return &salesRepository{store: store}
}

func (r *salesRepository) Load(ctx context.Context) ([]entity.Sale, error) {
	var sales []entity.Sale
	ok, err := r.store.Get(ctx, KeySales, &sales)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return sales, nil
}

func (r *salesRepository) Save(ctx context.Context, sales []entity.Sale) error {
	if sales == nil {
		sales = []entity.Sale{}
	}
	return r.store.Put(ctx, KeySales, sales)
}

type sequenceRepository struct {
	store DocStore
}

// NewSequenceRepository creates an order sequence repository over the KV store
func NewSequenceRepository(store DocStore) repository.SequenceRepository {
	return &sequenceRepository{store: store}
}

// Load returns 0 when no sequence has been stored yet; the sequence generator
// falls back to its configured initial value.
func (r *sequenceRepository) Load(ctx context.Context) (int64, error) {
	var next int64
	ok, err := r.store.Get(ctx, KeySequence, &next)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return next, nil
}

func (r *sequenceRepository) Save(ctx context.Context, next int64) error {
	return r.store.Put(ctx, KeySequence, next)
}
