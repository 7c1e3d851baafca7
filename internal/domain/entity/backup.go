package entity

// BackupDocument is the single JSON object exported by backup and accepted by
// restore. A nil field means the key was absent from the document; restore
// applies only the keys that are present.
type BackupDocument struct {
	Settings  *ShopSettings `json:"settings,omitempty"`
	Inventory []MenuItem    `json:"inventory,omitempty"`
	Users     []User        `json:"users,omitempty"`
	Sales     []Sale        `json:"sales,omitempty"`
}

// IsEmpty reports whether the document carries none of the four sections
func (d *BackupDocument) IsEmpty() bool {
	return d.Settings == nil && d.Inventory == nil && d.Users == nil && d.Sales == nil
}
