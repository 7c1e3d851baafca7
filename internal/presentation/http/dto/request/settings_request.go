package request

// UpdateSettingsRequest replaces the shop identity shown on receipts
type UpdateSettingsRequest struct {
	ShopName       string `json:"shopName" binding:"required"`
	Address        string `json:"address"`
	Footer         string `json:"footer"`
	LogoData       string `json:"logoData"`
	PrinterThermal bool   `json:"printerThermal"`
}

// SetThemeRequest switches the display theme
type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}
