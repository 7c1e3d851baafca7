package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	infraRepo "github.com/adiwira/kasirpos/internal/infrastructure/repository"
	"github.com/adiwira/kasirpos/pkg/apperror"
)

func TestCatalogAddAndFind(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, nil)

	require.NoError(t, e.catalog.Add(ctx, entity.MenuItem{Name: "Lele goreng", Price: 10000, Category: "Serba 10K", Stock: 30}))

	item, err := e.catalog.Find(ctx, "Lele goreng")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), item.Price)
	assert.Equal(t, 30, item.Stock)
}

func TestCatalogAddDuplicateRefused(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	err := e.catalog.Add(ctx, entity.MenuItem{Name: "ayam goreng", Price: 12000})
	assert.Equal(t, apperror.ErrDuplicateItem, err)
	assert.Len(t, e.catalog.List(ctx), len(testMenu()))
}

func TestCatalogFindUnknown(t *testing.T) {
	e := newTestEngine(t, testMenu())

	_, err := e.catalog.Find(context.Background(), "Nasi goreng")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCatalogUpdatePrice(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	require.NoError(t, e.catalog.UpdatePrice(ctx, "Es cendol ori", 8000))

	item, err := e.catalog.Find(ctx, "Es cendol ori")
	require.NoError(t, err)
	assert.Equal(t, int64(8000), item.Price)

	err = e.catalog.UpdatePrice(ctx, "Nasi goreng", 5000)
	assert.Error(t, err)
}

func TestCatalogAdjustStockClampsAtZero(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	item, err := e.catalog.AdjustStock(ctx, "Ayam goreng jumbo", -10)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Stock)

	item, err = e.catalog.AdjustStock(ctx, "Ayam goreng jumbo", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Stock)

	_, err = e.catalog.AdjustStock(ctx, "Nasi goreng", 1)
	assert.Error(t, err)
}

func TestCatalogRemoveUnknownIsNoOp(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	require.NoError(t, e.catalog.Remove(ctx, "Nasi goreng"))
	assert.Len(t, e.catalog.List(ctx), len(testMenu()))

	require.NoError(t, e.catalog.Remove(ctx, "Es cendol ori"))
	assert.Len(t, e.catalog.List(ctx), len(testMenu())-1)
}

func TestCatalogMutationsPersist(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	_, err := e.catalog.AdjustStock(ctx, "Ayam goreng", -20)
	require.NoError(t, err)

	// a fresh service over the same store sees the committed stock
	reloaded, err := NewCatalogService(ctx, infraRepo.NewInventoryRepository(e.store))
	require.NoError(t, err)

	item, err := reloaded.Find(ctx, "Ayam goreng")
	require.NoError(t, err)
	assert.Equal(t, 30, item.Stock)
}
