// Package dbtest opens seeded in-memory databases for tests.
package dbtest

import (
	"testing"
	"time"

	"rental-server/db"
	"rental-server/seed"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const memoryDSN = "file::memory:?_pragma=foreign_keys(1)"

// OpenEmpty returns a fresh database with no tables.
func OpenEmpty(t testing.TB) db.Database {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(memoryDSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// Every connection to :memory: is its own database.
	sqlDB.SetMaxOpenConns(1)

	database := &db.GormDatabase{DB: gdb}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// Open returns a fresh database loaded with the embedded seed dataset.
func Open(t testing.TB) db.Database {
	t.Helper()

	database := OpenEmpty(t)
	data, err := seed.LoadData()
	if err != nil {
		t.Fatalf("load seed data: %v", err)
	}
	if err := seed.Run(database, data); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return database
}
