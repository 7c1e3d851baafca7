package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwira/kasirpos/pkg/apperror"
)

func TestCartAddItemSnapshotsPrice(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	lines, err := e.cart.AddItem(ctx, "Ayam goreng")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(10000), lines[0].Price)
	assert.Equal(t, 1, lines[0].Quantity)

	// a price edit after the add does not touch the captured line
	require.NoError(t, e.catalog.UpdatePrice(ctx, "Ayam goreng", 12000))
	lines = e.cart.Lines(ctx)
	assert.Equal(t, int64(10000), lines[0].Price)
}

func TestCartAddItemIncrementsExistingLine(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	_, err := e.cart.AddItem(ctx, "Es cendol ori")
	require.NoError(t, err)
	lines, err := e.cart.AddItem(ctx, "Es cendol ori")
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCartAddItemStockOne(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	lines, err := e.cart.AddItem(ctx, "Ayam goreng jumbo")
	require.NoError(t, err)
	assert.Equal(t, 1, lines[0].Quantity)

	_, err = e.cart.AddItem(ctx, "Ayam goreng jumbo")
	assert.Equal(t, apperror.ErrExceedsStock, err)

	// refused add leaves the cart unchanged
	lines = e.cart.Lines(ctx)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCartAddItemOutOfStock(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	_, err := e.catalog.AdjustStock(ctx, "Es cendol ori", -80)
	require.NoError(t, err)

	_, err = e.cart.AddItem(ctx, "Es cendol ori")
	assert.Equal(t, apperror.ErrOutOfStock, err)
	assert.Empty(t, e.cart.Lines(ctx))
}

func TestCartSetQuantityClampsToOne(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	_, err := e.cart.AddItem(ctx, "Ayam goreng")
	require.NoError(t, err)

	lines, err := e.cart.SetQuantity(ctx, "Ayam goreng", -3)
	require.NoError(t, err)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCartSetQuantityOverStockRefused(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	_, err := e.cart.AddItem(ctx, "Ayam goreng jumbo")
	require.NoError(t, err)

	_, err = e.cart.SetQuantity(ctx, "Ayam goreng jumbo", 5)
	assert.Equal(t, apperror.ErrExceedsStock, err)
	assert.Equal(t, 1, e.cart.Lines(ctx)[0].Quantity)
}

func TestCartSetNote(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	_, err := e.cart.AddItem(ctx, "Ayam goreng")
	require.NoError(t, err)

	lines, err := e.cart.SetNote(ctx, "Ayam goreng", "pedas")
	require.NoError(t, err)
	assert.Equal(t, "pedas", lines[0].Note)
}

func TestCartRemoveItem(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	_, err := e.cart.AddItem(ctx, "Ayam goreng")
	require.NoError(t, err)
	_, err = e.cart.AddItem(ctx, "Es cendol ori")
	require.NoError(t, err)

	lines := e.cart.RemoveItem(ctx, "Ayam goreng")
	require.Len(t, lines, 1)
	assert.Equal(t, "Es cendol ori", lines[0].Name)

	// removing an absent line is a no-op
	lines = e.cart.RemoveItem(ctx, "Ayam goreng")
	assert.Len(t, lines, 1)
}

func TestCartClear(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	_, err := e.cart.AddItem(ctx, "Ayam goreng")
	require.NoError(t, err)

	e.cart.Clear(ctx)
	assert.Empty(t, e.cart.Lines(ctx))
}

func TestCartMutationsNeverTouchStock(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	_, err := e.cart.AddItem(ctx, "Ayam goreng")
	require.NoError(t, err)
	_, err = e.cart.SetQuantity(ctx, "Ayam goreng", 5)
	require.NoError(t, err)
	e.cart.RemoveItem(ctx, "Ayam goreng")

	item, err := e.catalog.Find(ctx, "Ayam goreng")
	require.NoError(t, err)
	assert.Equal(t, 50, item.Stock)
}

func TestCartLinesMatchCaseInsensitively(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	_, err := e.cart.AddItem(ctx, "Ayam goreng")
	require.NoError(t, err)

	// a differently-cased add lands on the existing line, keeping the
	// catalog's canonical name
	lines, err := e.cart.AddItem(ctx, "AYAM GORENG")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Ayam goreng", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)

	lines, err = e.cart.SetQuantity(ctx, "ayam goreng", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, lines[0].Quantity)
}
