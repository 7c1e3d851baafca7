package database

import (
	"context"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/adiwira/kasirpos/internal/config"
	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/domain/enum"
	"github.com/adiwira/kasirpos/internal/infrastructure/repository"
	"github.com/adiwira/kasirpos/pkg/utils"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate creates the kv_records projection table
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(&repository.KVRecord{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// defaultMenu is the first-run catalog
var defaultMenu = []entity.MenuItem{
	{Name: "Ayam goreng", Price: 10000, Category: "Serba 10K", Stock: 50},
	{Name: "Telur dadar", Price: 10000, Category: "Serba 10K", Stock: 100},
	{Name: "Lele goreng", Price: 10000, Category: "Serba 10K", Stock: 50},
	{Name: "Ayam goreng jumbo", Price: 21000, Category: "Penyetan", Stock: 20},
	{Name: "Tahu tempe goreng", Price: 10000, Category: "Penyetan", Stock: 40},
	{Name: "Es cendol ori", Price: 7000, Category: "Es cendol", Stock: 80},
	{Name: "Jus alpukat", Price: 10000, Category: "Jus buah", Stock: 60},
}

// SeedDefaultData writes first-run documents for every key that has never
// been stored: the default menu, the admin/kasir accounts, shop settings and
// the order sequence. Existing documents are left untouched.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	log.Println("Seeding default data...")

	ctx := context.Background()
	store := repository.NewKVStore(db)

	var items []entity.MenuItem
	if ok, err := store.Get(ctx, repository.KeyInventory, &items); err != nil {
		return err
	} else if !ok {
		if err := store.Put(ctx, repository.KeyInventory, defaultMenu); err != nil {
			return fmt.Errorf("failed to seed inventory: %w", err)
		}
	}

	var users []entity.User
	if ok, err := store.Get(ctx, repository.KeyUsers, &users); err != nil {
		return err
	} else if !ok {
		adminHash, err := utils.HashPassword(cfg.Shop.AdminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		kasirHash, err := utils.HashPassword(cfg.Shop.KasirPassword)
		if err != nil {
			return fmt.Errorf("failed to hash kasir password: %w", err)
		}
		defaults := []entity.User{
			{Username: "admin", PasswordHash: adminHash, Role: enum.RoleAdmin},
			{Username: "kasir", PasswordHash: kasirHash, Role: enum.RoleKasir},
		}
		if err := store.Put(ctx, repository.KeyUsers, defaults); err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
	}

	var settings entity.ShopSettings
	if ok, err := store.Get(ctx, repository.KeySettings, &settings); err != nil {
		return err
	} else if !ok {
		defaults := entity.DefaultShopSettings()
		if err := store.Put(ctx, repository.KeySettings, &defaults); err != nil {
			return fmt.Errorf("failed to seed settings: %w", err)
		}
	}

	var next int64
	if ok, err := store.Get(ctx, repository.KeySequence, &next); err != nil {
		return err
	} else if !ok {
		initial := cfg.Shop.InitialOrderNo
		if initial < 1 {
			initial = 1
		}
		if err := store.Put(ctx, repository.KeySequence, initial); err != nil {
			return fmt.Errorf("failed to seed order sequence: %w", err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
