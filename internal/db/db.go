package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Retention is the expiry window stamped on every slot write.
const Retention = 365 * 24 * time.Hour

// Slot is a named persisted value with an expiry hint.
type Slot struct {
	Name      string `gorm:"primarykey"`
	Value     string
	ExpiresAt time.Time `gorm:"index"`
}

// DB wraps the SQLite connection holding the persisted slots.
type DB struct {
	conn *gorm.DB
}

// Open connects to the slot database at path and runs migrations
func Open(path string) (*DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create tarefa directory: %w", err)
		}
	}

	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := conn.AutoMigrate(&Slot{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &DB{conn: conn}, nil
}

// DefaultPath returns the path to the SQLite database file
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".tarefa", "tarefa.db"), nil
}

// Get reads the value of a named slot. An absent or expired slot reads
// as no value.
func (d *DB) Get(name string) (string, bool, error) {
	var slot Slot
	err := d.conn.Where("name = ?", name).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if time.Now().After(slot.ExpiresAt) {
		return "", false, nil
	}
	return slot.Value, true, nil
}

// Put writes a named slot, refreshing its expiry to now+Retention
func (d *DB) Put(name, value string) error {
	slot := Slot{
		Name:      name,
		Value:     value,
		ExpiresAt: time.Now().Add(Retention),
	}
	return d.conn.Clauses(clause.OnConflict{UpdateAll: true}).Create(&slot).Error
}

// Close closes the database connection
func (d *DB) Close() error {
	sqlDB, err := d.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
