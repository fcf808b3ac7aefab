// Package db carries the gorm transaction plumbing shared by the
// repository layer.
package db

import (
	"context"

	"gorm.io/gorm"
)

// ctxTxKey marks the active transaction inside a context. Repositories
// never see it directly; they go through GetTxFromContext.
type ctxTxKey struct{}

// TransactionManager wraps multi-repository writes in a single gorm
// transaction. Ticket creation and FAQ rating both touch two tables and
// must not leave half of the write behind.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside one transaction. The transaction is
// committed when fn returns nil and rolled back otherwise. Repository
// calls made with the context passed to fn join the same transaction.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, ctxTxKey{}, tx))
	})
}

// GetTxFromContext returns the transaction carried by ctx, or defaultDB
// bound to ctx when the caller is not inside RunInTransaction. Every
// repository query goes through this so use cases decide transaction
// boundaries, not the repositories themselves.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(ctxTxKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
