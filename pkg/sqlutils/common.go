package sqlutils

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
)

var AvailableBackends = map[string]SQLBackend{
	"sqlite":   SQLiteBackend{},
	"mysql":    MySQLBackend{},
	"postgres": PostgresBackend{},
}

// Queryer is the one thing the rest of the code needs from a database:
// run a query, get rows back. Both *sqlx.DB and LogQueryer satisfy it,
// so query logging can be bolted on without anyone noticing.
type Queryer interface {
	Query(query string, args ...any) (*sql.Rows, error)
	Rebind(query string) string
}

var _ Queryer = (*sqlx.DB)(nil)

// Column describes a single column of a table
type Column struct {
	Name       string
	PrimaryKey bool
}

// SQLBackend covers the parts of schema browsing that differ between
// dialects. Everything that is the same SQL everywhere lives in the
// shared helpers instead.
type SQLBackend interface {
	OpenDB(dsn string) (*sqlx.DB, error)

	// ListTables returns the names of all base tables. Views, indexes
	// and other schema objects are excluded.
	ListTables(db Queryer) ([]string, error)

	// ListColumns returns the columns of table in the store's order.
	ListColumns(db Queryer, table string) ([]Column, error)

	// RowIDColumn is the implicit row identifier used for tables
	// without a single-column primary key.
	RowIDColumn() string

	// LengthExpr is the dialect's expression for the length of a
	// column value, used so stat never has to fetch the value itself.
	LengthExpr(column string) string
}
