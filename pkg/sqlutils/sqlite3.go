package sqlutils

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteBackend struct{}

var _ SQLBackend = (*SQLiteBackend)(nil)

func (s SQLiteBackend) OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// one shared connection for the whole process; requests are served
	// one at a time so a pool buys nothing
	db.SetMaxOpenConns(1)

	return db, nil
}

// ListTables returns all base tables from sqlite_master. Indexes, views
// and triggers have a different type there.
func (s SQLiteBackend) ListTables(db Queryer) ([]string, error) {
	rows, err := db.Query(`
        select name from sqlite_master
            where type = 'table'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	return tables, rows.Err()
}

// ListColumns reads the table_info pragma. Pragma arguments can't be
// bound, so the table name goes into the statement like any other
// identifier. A table that doesn't exist yields zero columns, not an
// error.
func (s SQLiteBackend) ListColumns(db Queryer, table string) ([]Column, error) {
	rows, err := db.Query(fmt.Sprintf("pragma table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var (
			cid     int64
			name    string
			ctype   string
			notnull int64
			dflt    sql.NullString
			pk      int64
		)
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return nil, err
		}

		// pk is the 1-based position within the primary key, 0 for
		// non-key columns
		cols = append(cols, Column{Name: name, PrimaryKey: pk > 0})
	}

	return cols, rows.Err()
}

// RowIDColumn is sqlite's implicit rowid. Tables declared WITHOUT ROWID
// don't have one and aren't supported as fallback targets.
func (s SQLiteBackend) RowIDColumn() string {
	return "rowid"
}

// LengthExpr uses length(), which counts bytes for blobs but characters
// for text values. The two only agree for ASCII.
func (s SQLiteBackend) LengthExpr(column string) string {
	return fmt.Sprintf("length(%s)", column)
}
