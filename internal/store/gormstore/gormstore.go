// Package gormstore implements the repositories on gorm, over Postgres in
// production and SQLite for local runs and tests.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
}

// OpenPostgres connects to the Postgres database at dsn.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// OpenSQLite opens (or creates) the SQLite database at path with foreign keys
// enforced. Use ":memory:" for a throwaway database.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&_pragma=foreign_keys(1)"
	} else {
		dsn += "?_pragma=foreign_keys(1)"
	}
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases alive and serialises writers.
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Patient{},
		&models.Appointment{},
		&models.Staff{},
		&models.InventoryItem{},
		&models.BillingRecord{},
		&models.BillingService{},
		&models.Todo{},
		&models.User{},
	)
}

// New wraps db in the store contracts.
func New(db *gorm.DB) *store.Store {
	return &store.Store{
		Patients:     &patientRepo{db},
		Appointments: &appointmentRepo{db},
		Staff:        &staffRepo{db},
		Inventory:    &inventoryRepo{db},
		Billing:      &billingRepo{db},
		Todos:        &todoRepo{db},
		Users:        &userRepo{db},
		Stats:        &statsRepo{db},
		Close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

// wrap turns gorm errors into store errors, keeping the operation in the message.
func wrap(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "UNIQUE constraint failed"),
		strings.Contains(err.Error(), "duplicate key value violates unique constraint"):
		return store.ErrDuplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}

// deleteByID removes the row of model with the given id, reporting ErrNotFound
// when nothing matched.
func deleteByID(ctx context.Context, db *gorm.DB, model any, id, op string) error {
	res := db.WithContext(ctx).Delete(model, "id = ?", id)
	if res.Error != nil {
		return wrap(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
