package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/domain/enum"
	infraRepo "github.com/adiwira/kasirpos/internal/infrastructure/repository"
	"github.com/adiwira/kasirpos/pkg/apperror"
)

func fillScenarioCart(t *testing.T, e *testEngine) {
	t.Helper()
	ctx := context.Background()

	_, err := e.cart.AddItem(ctx, "Ayam goreng")
	require.NoError(t, err)
	_, err = e.cart.SetQuantity(ctx, "Ayam goreng", 2)
	require.NoError(t, err)

	cfg := entity.PricingConfig{
		DiscountFlat: 1000,
		DiscountPct:  5,
		TaxEnabled:   true,
		CashTendered: 20000,
	}
	require.NoError(t, e.checkout.SetConfig(ctx, cfg, enum.PaymentCash))
}

func TestFinalizeCommitsSale(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())
	fillScenarioCart(t, e)

	sale, err := e.checkout.Finalize(ctx, "kasir")
	require.NoError(t, err)

	assert.NotEmpty(t, sale.ID)
	assert.Equal(t, int64(1), sale.OrderNo)
	assert.Equal(t, int64(20000), sale.SubTotal)
	assert.Equal(t, int64(1980), sale.Tax)
	assert.Equal(t, int64(19980), sale.Total)
	assert.Equal(t, int64(20), sale.Change)
	assert.Equal(t, enum.PaymentCash, sale.Method)
	assert.Equal(t, "kasir", sale.Cashier)
	assert.False(t, sale.Voided)

	// stock deducted, cart cleared, sequence advanced, ledger appended
	item, err := e.catalog.Find(ctx, "Ayam goreng")
	require.NoError(t, err)
	assert.Equal(t, 48, item.Stock)
	assert.Empty(t, e.cart.Lines(ctx))
	assert.Equal(t, int64(2), e.seq.Peek(ctx))
	assert.Len(t, e.ledger.List(ctx), 1)

	// pricing config resets to defaults
	cfg, method := e.checkout.Config(ctx)
	assert.Equal(t, entity.DefaultPricingConfig(), cfg)
	assert.Equal(t, enum.PaymentCash, method)
}

func TestFinalizeEmptyCart(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	_, err := e.checkout.Finalize(ctx, "kasir")
	assert.Equal(t, apperror.ErrEmptyCart, err)
	assert.Empty(t, e.ledger.List(ctx))
	assert.Equal(t, int64(1), e.seq.Peek(ctx))
}

func TestFinalizeInsufficientPayment(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())
	fillScenarioCart(t, e)

	cfg, _ := e.checkout.Config(ctx)
	cfg.CashTendered = 19979 // one rupiah short
	require.NoError(t, e.checkout.SetConfig(ctx, cfg, enum.PaymentCash))

	_, err := e.checkout.Finalize(ctx, "kasir")
	assert.Equal(t, apperror.ErrInsufficientPayment, err)

	// no mutation occurred
	assert.Empty(t, e.ledger.List(ctx))
	assert.Equal(t, int64(1), e.seq.Peek(ctx))
	assert.Len(t, e.cart.Lines(ctx), 1)
	item, err := e.catalog.Find(ctx, "Ayam goreng")
	require.NoError(t, err)
	assert.Equal(t, 50, item.Stock)
}

func TestVoidDoesNotRestoreStock(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())
	fillScenarioCart(t, e)

	sale, err := e.checkout.Finalize(ctx, "kasir")
	require.NoError(t, err)

	voided, err := e.ledger.Void(ctx, sale.ID)
	require.NoError(t, err)
	assert.True(t, voided.Voided)

	item, err := e.catalog.Find(ctx, "Ayam goreng")
	require.NoError(t, err)
	assert.Equal(t, 48, item.Stock)

	// voiding never touches the sequence
	assert.Equal(t, int64(2), e.seq.Peek(ctx))
}

func TestPreviewMutatesNothing(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())
	fillScenarioCart(t, e)

	sale, err := e.checkout.Preview(ctx)
	require.NoError(t, err)

	assert.Empty(t, sale.ID)
	assert.Equal(t, int64(1), sale.OrderNo)
	assert.Equal(t, int64(19980), sale.Total)

	assert.Empty(t, e.ledger.List(ctx))
	assert.Equal(t, int64(1), e.seq.Peek(ctx))
	assert.Len(t, e.cart.Lines(ctx), 1)
	item, err := e.catalog.Find(ctx, "Ayam goreng")
	require.NoError(t, err)
	assert.Equal(t, 50, item.Stock)

	// preview and finalize agree on the breakdown
	committed, err := e.checkout.Finalize(ctx, "kasir")
	require.NoError(t, err)
	assert.Equal(t, sale.Total, committed.Total)
	assert.Equal(t, sale.OrderNo, committed.OrderNo)
}

func TestPreviewEmptyCart(t *testing.T) {
	e := newTestEngine(t, testMenu())

	_, err := e.checkout.Preview(context.Background())
	assert.Equal(t, apperror.ErrEmptyCart, err)
}

func TestFinalizeSequenceAdvancesByOne(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, testMenu())

	for want := int64(1); want <= 3; want++ {
		_, err := e.cart.AddItem(ctx, "Es cendol ori")
		require.NoError(t, err)
		require.NoError(t, e.checkout.SetConfig(ctx, entity.PricingConfig{TaxEnabled: true, CashTendered: 10000}, enum.PaymentQRIS))

		sale, err := e.checkout.Finalize(ctx, "kasir")
		require.NoError(t, err)
		assert.Equal(t, want, sale.OrderNo)
	}
	assert.Equal(t, int64(4), e.seq.Peek(ctx))
}

func TestFinalizeCompensatesOnPersistFailure(t *testing.T) {
	ctx := context.Background()

	store := infraRepo.NewMemoryStore()
	require.NoError(t, store.Put(ctx, infraRepo.KeyInventory, testMenu()))

	catalog, err := NewCatalogService(ctx, infraRepo.NewInventoryRepository(store))
	require.NoError(t, err)
	salesRepo := &failingSalesRepo{inner: infraRepo.NewSalesRepository(store)}
	ledger, err := NewLedgerService(ctx, salesRepo)
	require.NoError(t, err)
	seq, err := NewSequenceService(ctx, infraRepo.NewSequenceRepository(store), 1)
	require.NoError(t, err)
	cart := NewCartService(catalog)
	checkout := NewCheckoutService(cart, catalog, seq, ledger)

	_, err = cart.AddItem(ctx, "Ayam goreng")
	require.NoError(t, err)
	require.NoError(t, checkout.SetConfig(ctx, entity.PricingConfig{TaxEnabled: true, CashTendered: 20000}, enum.PaymentCash))

	salesRepo.fail = true
	_, err = checkout.Finalize(ctx, "kasir")
	require.Error(t, err)

	// every commit step unwound: cart restored, sequence back, no sale, stock intact
	assert.Len(t, cart.Lines(ctx), 1)
	assert.Equal(t, int64(1), seq.Peek(ctx))
	assert.Empty(t, ledger.List(ctx))
	item, err := catalog.Find(ctx, "Ayam goreng")
	require.NoError(t, err)
	assert.Equal(t, 50, item.Stock)

	// the same checkout succeeds once storage recovers
	salesRepo.fail = false
	sale, err := checkout.Finalize(ctx, "kasir")
	require.NoError(t, err)
	assert.Equal(t, int64(1), sale.OrderNo)
}
