package service

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	infraRepo "github.com/adiwira/kasirpos/internal/infrastructure/repository"
)

// testEngine wires the services over an in-memory store for tests.
type testEngine struct {
	store    *infraRepo.MemoryStore
	catalog  *CatalogService
	cart     *CartService
	seq      *SequenceService
	ledger   *LedgerService
	checkout *CheckoutService
}

func newTestEngine(t *testing.T, items []entity.MenuItem) *testEngine {
	t.Helper()
	ctx := context.Background()

	store := infraRepo.NewMemoryStore()
	if items != nil {
		require.NoError(t, store.Put(ctx, infraRepo.KeyInventory, items))
	}

	catalog, err := NewCatalogService(ctx, infraRepo.NewInventoryRepository(store))
	require.NoError(t, err)
	ledger, err := NewLedgerService(ctx, infraRepo.NewSalesRepository(store))
	require.NoError(t, err)
	seq, err := NewSequenceService(ctx, infraRepo.NewSequenceRepository(store), 1)
	require.NoError(t, err)

	cart := NewCartService(catalog)
	checkout := NewCheckoutService(cart, catalog, seq, ledger)

	return &testEngine{
		store:    store,
		catalog:  catalog,
		cart:     cart,
		seq:      seq,
		ledger:   ledger,
		checkout: checkout,
	}
}

func testMenu() []entity.MenuItem {
	return []entity.MenuItem{
		{Name: "Ayam goreng", Price: 10000, Category: "Serba 10K", Stock: 50},
		{Name: "Es cendol ori", Price: 7000, Category: "Es cendol", Stock: 80},
		{Name: "Ayam goreng jumbo", Price: 21000, Category: "Penyetan", Stock: 1},
	}
}

// failingSalesRepo wraps a sales repository and fails every save once armed,
// used to exercise checkout compensation.
type failingSalesRepo struct {
	inner interface {
		Load(ctx context.Context) ([]entity.Sale, error)
		Save(ctx context.Context, sales []entity.Sale) error
	}
	fail bool
}

func (r *failingSalesRepo) Load(ctx context.Context) ([]entity.Sale, error) {
	return r.inner.Load(ctx)
}

func (r *failingSalesRepo) Save(ctx context.Context, sales []entity.Sale) error {
	if r.fail {
		return errors.New("storage unavailable")
	}
	return r.inner.Save(ctx, sales)
}

// failingSeqRepo is the sequence counterpart of failingSalesRepo.
type failingSeqRepo struct {
	inner interface {
		Load(ctx context.Context) (int64, error)
		Save(ctx context.Context, next int64) error
	}
	fail bool
}

func (r *failingSeqRepo) Load(ctx context.Context) (int64, error) {
	return r.inner.Load(ctx)
}

func (r *failingSeqRepo) Save(ctx context.Context, next int64) error {
	if r.fail {
		return errors.New("storage unavailable")
	}
	return r.inner.Save(ctx, next)
}

// captureLog redirects the standard logger into a buffer for one test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}
