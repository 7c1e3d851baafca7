package handler

import (
	"fmt"
	"time"

	"github.com/adiwira/kasirpos/internal/application/service"
	"github.com/adiwira/kasirpos/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary returns the aggregated view of the filtered ledger
func (h *ReportHandler) Summary(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	summary := h.reportService.Summary(c.Request.Context(), filter)
	response.OK(c, "Summary generated", summary)
}

// ExportCSV streams the filtered ledger as a CSV attachment
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	data, err := h.reportService.ExportCSV(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=sales-%s.csv", time.Now().Format("20060102")))
	c.Data(200, "text/csv", data)
}

// ExportXLSX streams the filtered ledger as a workbook attachment
func (h *ReportHandler) ExportXLSX(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	data, err := h.reportService.ExportXLSX(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=sales-%s.xlsx", time.Now().Format("20060102")))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// parseFilter reads the optional from/to date bounds. Dates are inclusive
// calendar days in the server's timezone; "to" covers the whole named day.
func parseFilter(c *gin.Context) (service.ReportFilter, error) {
	var filter service.ReportFilter

	if from := c.Query("from"); from != "" {
		t, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid from date, expected YYYY-MM-DD")
		}
		filter.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid to date, expected YYYY-MM-DD")
		}
		filter.To = t.AddDate(0, 0, 1)
	}
	return filter, nil
}
