package service

import (
	"context"
	"sync"
	"time"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/domain/enum"
	"github.com/adiwira/kasirpos/pkg/apperror"
	"github.com/adiwira/kasirpos/pkg/utils"
)

// CheckoutService composes cart, pricing, sequence, ledger and stock into
// the single pay-and-commit operation. It also owns the terminal's current
// pricing configuration and payment method, both of which reset to defaults
// after a successful finalize.
type CheckoutService struct {
	mu     sync.Mutex
	cfg    entity.PricingConfig
	method enum.PaymentMethod

	cart    *CartService
	catalog *CatalogService
	seq     *SequenceService
	ledger  *LedgerService

	now func() time.Time
}

func NewCheckoutService(cart *CartService, catalog *CatalogService, seq *SequenceService, ledger *LedgerService) *CheckoutService {
	return &CheckoutService{
		cfg:     entity.DefaultPricingConfig(),
		method:  enum.PaymentCash,
		cart:    cart,
		catalog: catalog,
		seq:     seq,
		ledger:  ledger,
		now:     time.Now,
	}
}

// Config returns the terminal's current pricing configuration and payment
// method.
func (s *CheckoutService) Config(ctx context.Context) (entity.PricingConfig, enum.PaymentMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg, s.method
}

// SetConfig replaces the pricing configuration. Negative amounts are
// rejected here so the pricing computation never sees them.
func (s *CheckoutService) SetConfig(ctx context.Context, cfg entity.PricingConfig, method enum.PaymentMethod) error {
	if cfg.DiscountFlat < 0 || cfg.DiscountPct < 0 || cfg.ServiceFee < 0 || cfg.CashTendered < 0 {
		return apperror.NewBadRequestError("discount, fee and tendered amounts must not be negative")
	}
	if !method.Valid() {
		return apperror.NewBadRequestError("unknown payment method")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.method = method
	return nil
}

// Totals prices the current cart under the current configuration.
func (s *CheckoutService) Totals(ctx context.Context) entity.Totals {
	s.mu.Lock()
	cfg := s.cfg
	s.mu.Unlock()
	return ComputeTotals(s.cart.Lines(ctx), cfg)
}

// Preview builds the receipt-shaped record a finalize of the current cart
// would produce, without touching the ledger, the stock or the sequence. The
// order number shown is the one the next finalize would receive.
func (s *CheckoutService) Preview(ctx context.Context) (entity.Sale, error) {
	s.mu.Lock()
	cfg := s.cfg
	method := s.method
	s.mu.Unlock()

	lines := s.cart.Lines(ctx)
	if len(lines) == 0 {
		return entity.Sale{}, apperror.ErrEmptyCart
	}
	return s.buildSale(lines, cfg, method, s.seq.Peek(ctx), "", ""), nil
}

// Finalize validates payment and commits the sale. The commit advances the
// order sequence, appends to the ledger and deducts stock as one unit: a
// failure in any step unwinds the steps already applied, including the
// drained cart. On success the cart is empty and the pricing configuration
// is back at its defaults.
func (s *CheckoutService) Finalize(ctx context.Context, cashier string) (entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cart.take()
	if len(lines) == 0 {
		return entity.Sale{}, apperror.ErrEmptyCart
	}

	totals := ComputeTotals(lines, s.cfg)
	if s.cfg.CashTendered < totals.Total {
		s.cart.restore(lines)
		return entity.Sale{}, apperror.ErrInsufficientPayment
	}

	orderNo, err := s.seq.Next(ctx)
	if err != nil {
		s.cart.restore(lines)
		return entity.Sale{}, err
	}

	sale := s.buildSale(lines, s.cfg, s.method, orderNo, utils.NewSaleID(), cashier)

	if err := s.ledger.Append(ctx, sale); err != nil {
		s.seq.rollback(ctx)
		s.cart.restore(lines)
		return entity.Sale{}, err
	}

	if err := s.catalog.Deduct(ctx, lines); err != nil {
		s.ledger.discard(ctx, sale.ID)
		s.seq.rollback(ctx)
		s.cart.restore(lines)
		return entity.Sale{}, err
	}

	s.cfg = entity.DefaultPricingConfig()
	s.method = enum.PaymentCash
	return sale, nil
}

func (s *CheckoutService) buildSale(lines []entity.CartLine, cfg entity.PricingConfig, method enum.PaymentMethod, orderNo int64, id, cashier string) entity.Sale {
	totals := ComputeTotals(lines, cfg)
	return entity.Sale{
		ID:           id,
		OrderNo:      orderNo,
		Time:         s.now(),
		Items:        lines,
		SubTotal:     totals.Subtotal,
		DiscountFlat: cfg.DiscountFlat,
		DiscountPct:  cfg.DiscountPct,
		Tax:          totals.Tax,
		ServiceFee:   cfg.ServiceFee,
		Total:        totals.Total,
		Paid:         cfg.CashTendered,
		Method:       method,
		Change:       totals.Change,
		Cashier:      cashier,
		Voided:       false,
	}
}
