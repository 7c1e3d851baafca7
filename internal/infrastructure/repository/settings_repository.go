package repository

import (
	"context"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/domain/enum"
	"github.com/adiwira/kasirpos/internal/domain/repository"
)

type settingsRepository struct {
	store DocStore
}

// NewSettingsRepository creates a settings repository over the KV store
func NewSettingsRepository(store DocStore) repository.SettingsRepository {
	return &settingsRepository{store: store}
}

func (r *settingsRepository) Load(ctx context.Context) (*entity.ShopSettings, error) {
	var settings entity.ShopSettings
	ok, err := r.store.Get(ctx, KeySettings, &settings)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *entity.ShopSettings) error {
	return r.store.Put(ctx, KeySettings, settings)
}

type themeRepository struct {
	store DocStore
}

// NewThemeRepository creates a theme preference repository over the KV store
func NewThemeRepository(store DocStore) repository.ThemeRepository {
	return &themeRepository{store: store}
}

func (r *themeRepository) Load(ctx context.Context) (enum.Theme, error) {
	var theme enum.Theme
	ok, err := r.store.Get(ctx, KeyTheme, &theme)
	if err != nil {
		return "", err
	}
	if !ok {
		return enum.ThemeLight, nil
	}
	return theme, nil
}

func (r *themeRepository) Save(ctx context.Context, theme enum.Theme) error {
	return r.store.Put(ctx, KeyTheme, theme)
}
