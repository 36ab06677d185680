// Package database executes parameterized statements against the relational
// store through a single shared connection pool.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"mktrading-backend/apperr"
)

// Gateway runs statements with bound parameters. Placeholders are written as
// `?` and rewritten by the dialector for the target database. Every failure is
// returned as an *apperr.StoreError.
type Gateway struct {
	db *gorm.DB
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// Select scans every row of query into dest, which must point to a slice.
func (g *Gateway) Select(ctx context.Context, op string, dest interface{}, query string, args ...interface{}) error {
	if err := g.db.WithContext(ctx).Raw(query, args...).Scan(dest).Error; err != nil {
		return apperr.Store(op, err)
	}
	return nil
}

// Get scans the first row of query into dest and reports whether a row existed.
func (g *Gateway) Get(ctx context.Context, op string, dest interface{}, query string, args ...interface{}) (bool, error) {
	result := g.db.WithContext(ctx).Raw(query, args...).Scan(dest)
	if result.Error != nil {
		return false, apperr.Store(op, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Insert runs an INSERT ... RETURNING id statement and returns the new id.
func (g *Gateway) Insert(ctx context.Context, op string, query string, args ...interface{}) (int64, error) {
	var id int64
	result := g.db.WithContext(ctx).Raw(query, args...).Scan(&id)
	if result.Error != nil {
		return 0, apperr.Store(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, apperr.Store(op, fmt.Errorf("insert returned no id"))
	}
	return id, nil
}

// Exec runs a statement that returns no rows and reports the rows affected.
func (g *Gateway) Exec(ctx context.Context, op string, query string, args ...interface{}) (int64, error) {
	result := g.db.WithContext(ctx).Exec(query, args...)
	if result.Error != nil {
		return 0, apperr.Store(op, result.Error)
	}
	return result.RowsAffected, nil
}

// Ping checks connectivity with a round trip to the store.
func (g *Gateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return apperr.Store("ping", err)
	}
	return apperr.Store("ping", sqlDB.PingContext(ctx))
}

// Stats reports connection pool statistics.
func (g *Gateway) Stats() sql.DBStats {
	sqlDB, err := g.db.DB()
	if err != nil {
		return sql.DBStats{}
	}
	return sqlDB.Stats()
}

// Close releases the pool.
func (g *Gateway) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
