package repository

import (
	"context"

	"github.com/adiwira/kasirpos/internal/domain/entity"
)

// InventoryRepository persists the catalog projection. The catalog service is
// the in-memory authority for the current session; Save replaces the whole
// stored document after each committed mutation.
type InventoryRepository interface {
	Load(ctx context.Context) ([]entity.MenuItem, error)
	Save(ctx context.Context, items []entity.MenuItem) error
}
