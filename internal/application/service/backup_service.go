package service

import (
	"context"
	"encoding/json"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/pkg/apperror"
)

// BackupService exports the persisted state as one JSON document and applies
// such a document back over the running services.
type BackupService struct {
	catalog  *CatalogService
	ledger   *LedgerService
	auth     *AuthService
	settings *SettingsService
}

func NewBackupService(catalog *CatalogService, ledger *LedgerService, auth *AuthService, settings *SettingsService) *BackupService {
	return &BackupService{
		catalog:  catalog,
		ledger:   ledger,
		auth:     auth,
		settings: settings,
	}
}

// Export captures settings, inventory, users and sales into one document.
// Password hashes are included so a restore reproduces working accounts.
func (s *BackupService) Export(ctx context.Context) entity.BackupDocument {
	settings := s.settings.Get(ctx)
	return entity.BackupDocument{
		Settings:  &settings,
		Inventory: s.catalog.List(ctx),
		Users:     s.auth.Users(ctx),
		Sales:     s.ledger.List(ctx),
	}
}

// Restore applies a backup document. A document that does not parse, or that
// carries none of the four sections, is refused with InvalidBackup before
// any state changes. A partial document applies only the sections present.
func (s *BackupService) Restore(ctx context.Context, data []byte) error {
	var doc entity.BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return apperror.ErrInvalidBackup
	}
	if doc.IsEmpty() {
		return apperror.ErrInvalidBackup
	}

	if doc.Settings != nil {
		if err := s.settings.Replace(ctx, *doc.Settings); err != nil {
			return err
		}
	}
	if doc.Inventory != nil {
		if err := s.catalog.ReplaceAll(ctx, doc.Inventory); err != nil {
			return err
		}
	}
	if doc.Users != nil {
		if err := s.auth.ReplaceAll(ctx, doc.Users); err != nil {
			return err
		}
	}
	if doc.Sales != nil {
		if err := s.ledger.ReplaceAll(ctx, doc.Sales); err != nil {
			return err
		}
	}
	return nil
}
