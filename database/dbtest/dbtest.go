// Package dbtest provides an in-memory SQLite gateway with the application
// schema for tests.
package dbtest

import (
	_ "embed"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"mktrading-backend/database"
)

//go:embed schema.sql
var schema string

// New opens a fresh, isolated database and returns a gateway over it. The
// database is closed when the test ends.
func New(t testing.TB) *database.Gateway {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec(schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	gw := database.NewGateway(db)
	t.Cleanup(func() { gw.Close() })
	return gw
}
