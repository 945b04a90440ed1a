package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a gorm handle scoped to ctx. When tx is non-nil every query
// issued through the handle runs inside that transaction, so services can
// own the transaction with database/sql while repositories keep using gorm.
func Bind(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	conn := db.WithContext(ctx)
	if tx != nil {
		conn.Statement.ConnPool = tx
	}
	return conn
}
