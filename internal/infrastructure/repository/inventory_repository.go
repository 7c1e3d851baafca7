package repository

import (
	"context"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/domain/repository"
)

type inventoryRepository struct {
	store DocStore
}

// NewInventoryRepository creates an inventory repository over the KV store
func NewInventoryRepository(store DocStore) repository.InventoryRepository {
	return &inventoryRepository{store: store}
}

func (r *inventoryRepository) Load(ctx context.Context) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	ok, err := r.store.Get(ctx, KeyInventory, &items)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return items, nil
}

func (r *inventoryRepository) Save(ctx context.Context, items []entity.MenuItem) error {
	if items == nil {
		items = []entity.MenuItem{}
	}
	return r.store.Put(ctx, KeyInventory, items)
}
