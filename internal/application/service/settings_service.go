package service

import (
	"context"
	"strings"
	"sync"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/domain/enum"
	"github.com/adiwira/kasirpos/internal/domain/repository"
	"github.com/adiwira/kasirpos/pkg/apperror"
)

// SettingsService owns the shop identity shown on receipts and the display
// theme preference.
type SettingsService struct {
	mu        sync.RWMutex
	settings  entity.ShopSettings
	theme     enum.Theme
	repo      repository.SettingsRepository
	themeRepo repository.ThemeRepository
}

func NewSettingsService(ctx context.Context, repo repository.SettingsRepository, themeRepo repository.ThemeRepository) (*SettingsService, error) {
	stored, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	settings := entity.DefaultShopSettings()
	if stored != nil {
		settings = *stored
	}

	theme, err := themeRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !theme.Valid() {
		theme = enum.ThemeLight
	}

	return &SettingsService{
		settings:  settings,
		theme:     theme,
		repo:      repo,
		themeRepo: themeRepo,
	}, nil
}

// Get returns the current shop settings.
func (s *SettingsService) Get(ctx context.Context) entity.ShopSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update replaces the shop settings. The shop name cannot be blank.
func (s *SettingsService) Update(ctx context.Context, settings entity.ShopSettings) error {
	settings.ShopName = strings.TrimSpace(settings.ShopName)
	if settings.ShopName == "" {
		return apperror.NewBadRequestError("shop name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.settings
	s.settings = settings
	if err := s.repo.Save(ctx, &s.settings); err != nil {
		s.settings = prev
		return err
	}
	return nil
}

// Theme returns the current display theme.
func (s *SettingsService) Theme(ctx context.Context) enum.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme switches the display theme.
func (s *SettingsService) SetTheme(ctx context.Context, theme enum.Theme) error {
	if !theme.Valid() {
		return apperror.NewBadRequestError("theme must be light or dark")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.theme
	s.theme = theme
	if err := s.themeRepo.Save(ctx, theme); err != nil {
		s.theme = prev
		return err
	}
	return nil
}

// Replace swaps the shop settings without validation, used by backup restore.
func (s *SettingsService) Replace(ctx context.Context, settings entity.ShopSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.settings
	s.settings = settings
	if err := s.repo.Save(ctx, &s.settings); err != nil {
		s.settings = prev
		return err
	}
	return nil
}
