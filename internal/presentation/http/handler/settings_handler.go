package handler

import (
	"github.com/adiwira/kasirpos/internal/application/service"
	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/domain/enum"
	"github.com/adiwira/kasirpos/internal/presentation/http/dto/request"
	"github.com/adiwira/kasirpos/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles shop settings and theme HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the shop settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings := h.settingsService.Get(c.Request.Context())
	response.OK(c, "Settings retrieved successfully", settings)
}

// Update replaces the shop settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.settingsService.Update(c.Request.Context(), entity.ShopSettings{
		ShopName:       req.ShopName,
		Address:        req.Address,
		Footer:         req.Footer,
		LogoData:       req.LogoData,
		PrinterThermal: req.PrinterThermal,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings updated successfully", nil)
}

// GetTheme returns the display theme preference
func (h *SettingsHandler) GetTheme(c *gin.Context) {
	theme := h.settingsService.Theme(c.Request.Context())
	response.OK(c, "Theme retrieved successfully", gin.H{"theme": theme})
}

// SetTheme switches the display theme
func (h *SettingsHandler) SetTheme(c *gin.Context) {
	var req request.SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.settingsService.SetTheme(c.Request.Context(), enum.Theme(req.Theme)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Theme updated successfully", nil)
}
