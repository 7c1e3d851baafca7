package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/adiwira/kasirpos/internal/domain/entity"
)

// reportColumns is the fixed export column order shared by the CSV and XLSX
// writers.
var reportColumns = []string{
	"id", "orderNo", "time", "items", "subtotal", "discountFlat",
	"discountPct", "tax", "serviceFee", "total", "paid", "change",
	"method", "cashier", "voided",
}

// ReportFilter narrows an export or summary to a date range. Zero bounds
// mean unbounded on that side.
type ReportFilter struct {
	From time.Time
	To   time.Time
}

func (f ReportFilter) matches(sale entity.Sale) bool {
	if !f.From.IsZero() && sale.Time.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !sale.Time.Before(f.To) {
		return false
	}
	return true
}

// ReportSummary aggregates the ledger for the dashboard and the report page.
// Revenue counts only non-voided sales; gross is before discount and tax,
// net is the charged total.
type ReportSummary struct {
	SaleCount    int              `json:"sale_count"`
	VoidedCount  int              `json:"voided_count"`
	GrossRevenue int64            `json:"gross_revenue"`
	NetRevenue   int64            `json:"net_revenue"`
	ItemsSold    int              `json:"items_sold"`
	ByMethod     map[string]int64 `json:"by_method"`
}

// ReportService turns the sales ledger into tabular exports and aggregates.
type ReportService struct {
	ledger *LedgerService
}

func NewReportService(ledger *LedgerService) *ReportService {
	return &ReportService{ledger: ledger}
}

// Summary aggregates the filtered ledger.
func (s *ReportService) Summary(ctx context.Context, filter ReportFilter) ReportSummary {
	summary := ReportSummary{ByMethod: map[string]int64{}}
	for _, sale := range s.ledger.List(ctx) {
		if !filter.matches(sale) {
			continue
		}
		summary.SaleCount++
		if sale.Voided {
			summary.VoidedCount++
			continue
		}
		summary.GrossRevenue += sale.SubTotal
		summary.NetRevenue += sale.Total
		summary.ByMethod[sale.Method.String()] += sale.Total
		for _, line := range sale.Items {
			summary.ItemsSold += line.Quantity
		}
	}
	return summary
}

// ExportCSV writes the filtered ledger as CSV. The csv writer quotes the
// items column whenever the joined summary contains the field delimiter.
func (s *ReportService) ExportCSV(ctx context.Context, filter ReportFilter) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportColumns); err != nil {
		return nil, err
	}
	for _, sale := range s.ledger.List(ctx) {
		if !filter.matches(sale) {
			continue
		}
		if err := w.Write(reportRow(sale)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportXLSX writes the filtered ledger as a single-sheet workbook.
func (s *ReportService) ExportXLSX(ctx context.Context, filter ReportFilter) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sales"
	f.SetSheetName("Sheet1", sheet)

	for col, name := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}

	rowNo := 2
	for _, sale := range s.ledger.List(ctx) {
		if !filter.matches(sale) {
			continue
		}
		for col, value := range reportRow(sale) {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNo)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
		rowNo++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func reportRow(sale entity.Sale) []string {
	return []string{
		sale.ID,
		strconv.FormatInt(sale.OrderNo, 10),
		sale.Time.Format(time.RFC3339),
		itemsSummary(sale.Items),
		strconv.FormatInt(sale.SubTotal, 10),
		strconv.FormatInt(sale.DiscountFlat, 10),
		strconv.FormatFloat(sale.DiscountPct, 'f', -1, 64),
		strconv.FormatInt(sale.Tax, 10),
		strconv.FormatInt(sale.ServiceFee, 10),
		strconv.FormatInt(sale.Total, 10),
		strconv.FormatInt(sale.Paid, 10),
		strconv.FormatInt(sale.Change, 10),
		sale.Method.String(),
		sale.Cashier,
		strconv.FormatBool(sale.Voided),
	}
}

// itemsSummary flattens the line items into one field, one entry per line as
// "<name> x<quantity>".
func itemsSummary(lines []entity.CartLine) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = fmt.Sprintf("%s x%d", line.Name, line.Quantity)
	}
	return strings.Join(parts, " | ")
}
