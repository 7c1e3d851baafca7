package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/domain/enum"
	infraRepo "github.com/adiwira/kasirpos/internal/infrastructure/repository"
	"github.com/adiwira/kasirpos/pkg/apperror"
)

func testSale(id string, orderNo int64) entity.Sale {
	return entity.Sale{
		ID:       id,
		OrderNo:  orderNo,
		Time:     time.Now(),
		Items:    []entity.CartLine{{Name: "Ayam goreng", Price: 10000, Quantity: 1}},
		SubTotal: 10000,
		Total:    10000,
		Paid:     10000,
		Method:   enum.PaymentCash,
	}
}

func TestLedgerAppendIsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, nil)

	require.NoError(t, e.ledger.Append(ctx, testSale("a", 1)))
	require.NoError(t, e.ledger.Append(ctx, testSale("b", 2)))

	sales := e.ledger.List(ctx)
	require.Len(t, sales, 2)
	assert.Equal(t, "b", sales[0].ID)
	assert.Equal(t, "a", sales[1].ID)
}

func TestLedgerAppendDuplicateIDRefused(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, nil)

	require.NoError(t, e.ledger.Append(ctx, testSale("a", 1)))
	err := e.ledger.Append(ctx, testSale("a", 2))
	require.Error(t, err)
	assert.Len(t, e.ledger.List(ctx), 1)
}

func TestLedgerVoidFlipsOnlyTheFlag(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, nil)

	original := testSale("a", 1)
	require.NoError(t, e.ledger.Append(ctx, original))

	voided, err := e.ledger.Void(ctx, "a")
	require.NoError(t, err)
	assert.True(t, voided.Voided)

	sales := e.ledger.List(ctx)
	require.Len(t, sales, 1)
	assert.Equal(t, original.OrderNo, sales[0].OrderNo)
	assert.Equal(t, original.Total, sales[0].Total)
	assert.Equal(t, original.Items, sales[0].Items)
}

func TestLedgerVoidTwiceRefused(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, nil)

	require.NoError(t, e.ledger.Append(ctx, testSale("a", 1)))
	_, err := e.ledger.Void(ctx, "a")
	require.NoError(t, err)

	_, err = e.ledger.Void(ctx, "a")
	assert.Equal(t, apperror.ErrAlreadyVoided, err)
}

func TestLedgerVoidUnknownSale(t *testing.T) {
	e := newTestEngine(t, nil)

	_, err := e.ledger.Void(context.Background(), "missing")
	assert.Equal(t, apperror.ErrUnknownSale, err)
}

func TestLedgerGet(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, nil)

	require.NoError(t, e.ledger.Append(ctx, testSale("a", 1)))

	sale, err := e.ledger.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), sale.OrderNo)

	_, err = e.ledger.Get(ctx, "missing")
	assert.Equal(t, apperror.ErrUnknownSale, err)
}

func TestLedgerDiscardSurvivesFailedSave(t *testing.T) {
	ctx := context.Background()
	repo := &failingSalesRepo{inner: infraRepo.NewSalesRepository(infraRepo.NewMemoryStore())}
	ledger, err := NewLedgerService(ctx, repo)
	require.NoError(t, err)
	require.NoError(t, ledger.Append(ctx, testSale("a", 1)))

	// the compensating write fails; the in-memory ledger still drops the
	// sale and the divergence shows up in the log
	buf := captureLog(t)
	repo.fail = true
	ledger.discard(ctx, "a")

	assert.Empty(t, ledger.List(ctx))
	assert.Contains(t, buf.String(), "discard of sale a")
}
