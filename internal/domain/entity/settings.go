package entity

// ShopSettings holds the shop identity printed on receipts plus the thermal
// printer flag. LogoData carries the uploaded logo as a data string; the
// engine stores it opaquely for the external renderer.
type ShopSettings struct {
	ShopName       string `json:"shopName"`
	Address        string `json:"address"`
	Footer         string `json:"footer"`
	LogoData       string `json:"logoData,omitempty"`
	PrinterThermal bool   `json:"printerThermal"`
}

// DefaultShopSettings returns the first-run shop settings
func DefaultShopSettings() ShopSettings {
	return ShopSettings{
		ShopName: "Sambelan Caping Gunung",
		Address:  "Jalan Contoh No.1",
		Footer:   "Terima kasih - Sampai jumpa lagi",
	}
}
