package repository

import (
	"context"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/domain/enum"
)

// SettingsRepository persists the shop settings. Load returns (nil, nil) when
// nothing has been stored yet.
type SettingsRepository interface {
	Load(ctx context.Context) (*entity.ShopSettings, error)
	Save(ctx context.Context, settings *entity.ShopSettings) error
}

// ThemeRepository persists the display theme preference.
type ThemeRepository interface {
	Load(ctx context.Context) (enum.Theme, error)
	Save(ctx context.Context, theme enum.Theme) error
}
