// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
)

type txKey struct{}

// conn returns the transaction bound to ctx, or db when none is active.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// transactionManager implements the adapter.TransactionManager interface.
type transactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new transaction manager instance.
func NewTransactionManager(db *gorm.DB) adapter.TransactionManager {
	return &transactionManager{
		db: db,
	}
}

// WithinTransaction runs fn inside a database transaction. Nested calls join the outer transaction.
func (m *transactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
