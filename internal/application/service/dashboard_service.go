package service

import (
	"context"
	"time"

	"github.com/adiwira/kasirpos/internal/domain/entity"
)

// lowStockThreshold marks catalog items that need restocking soon.
const lowStockThreshold = 5

// DashboardStats is the at-a-glance view for the landing screen.
type DashboardStats struct {
	TodayRevenue  int64             `json:"today_revenue"`
	TodaySales    int               `json:"today_sales"`
	TotalSales    int               `json:"total_sales"`
	NextOrderNo   int64             `json:"next_order_no"`
	LowStockItems []entity.MenuItem `json:"low_stock_items"`
}

type DashboardService struct {
	catalog *CatalogService
	ledger  *LedgerService
	seq     *SequenceService
	now     func() time.Time
}

func NewDashboardService(catalog *CatalogService, ledger *LedgerService, seq *SequenceService) *DashboardService {
	return &DashboardService{
		catalog: catalog,
		ledger:  ledger,
		seq:     seq,
		now:     time.Now,
	}
}

// Stats composes today's takings with sequence and stock status. Voided
// sales count toward the sale totals but not the revenue.
func (s *DashboardService) Stats(ctx context.Context) DashboardStats {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats := DashboardStats{
		NextOrderNo:   s.seq.Peek(ctx),
		LowStockItems: []entity.MenuItem{},
	}

	for _, sale := range s.ledger.List(ctx) {
		stats.TotalSales++
		if sale.Time.Before(dayStart) {
			continue
		}
		stats.TodaySales++
		if !sale.Voided {
			stats.TodayRevenue += sale.Total
		}
	}

	for _, item := range s.catalog.List(ctx) {
		if item.Stock <= lowStockThreshold {
			stats.LowStockItems = append(stats.LowStockItems, item)
		}
	}
	return stats
}
