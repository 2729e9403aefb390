package infra

import (
	"fmt"

	"gestionpro/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed credentials for the fixed administrator account. Inserted once, on the
// first bootstrap of an empty store.
const (
	AdminUsername = "admin"
	AdminPassword = "123456"
	AdminRol      = "administrator"
)

// NewDatabase opens (or creates) the embedded SQLite store at path, applies the
// required pragmas, runs AutoMigrate for the users/productos/ventas tables and
// seeds the administrator account if it does not exist yet.
//
// Idempotent: re-running on an existing store is a no-op beyond the open.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey and can be mapped to domain failures by the repositories.
func NewDatabase(path string, verbose bool) (*gorm.DB, error) {
	logMode := logger.Silent
	if verbose {
		logMode = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logMode),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; one connection for the process lifetime
	// also serializes concurrent sale transactions.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Producto{},
		&model.Venta{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := seedAdmin(db); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	return db, nil
}

func applyPragmas(db *gorm.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// seedAdmin inserts the fixed administrator account iff no user with that
// username exists yet.
func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Usuario{}).
		Where("username = ?", AdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	admin := &model.Usuario{
		Username: AdminUsername,
		Password: AdminPassword,
		Rol:      AdminRol,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	log.Info().Str("username", AdminUsername).Msg("usuario administrador inicial creado")
	return nil
}
