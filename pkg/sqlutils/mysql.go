package sqlutils

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type MySQLBackend struct{}

var _ SQLBackend = (*MySQLBackend)(nil)

func (m MySQLBackend) OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetConnMaxLifetime(time.Minute * 3)
	db.SetMaxOpenConns(1)

	return db, nil
}

// ListTables returns the base tables of the connected schema.
func (m MySQLBackend) ListTables(db Queryer) ([]string, error) {
	rows, err := db.Query(`
        select table_name from information_schema.tables
            where table_schema = database()
            and table_type = 'BASE TABLE'`)
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

// ListColumns flags primary-key membership via column_key, which is
// 'PRI' for every column of the primary key.
func (m MySQLBackend) ListColumns(db Queryer, table string) ([]Column, error) {
	rows, err := db.Query(db.Rebind(`
        select column_name, column_key from information_schema.columns
            where table_schema = database()
            and table_name = ?
            order by ordinal_position`), table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var name, key string
		if err := rows.Scan(&name, &key); err != nil {
			return nil, err
		}
		cols = append(cols, Column{Name: name, PrimaryKey: key == "PRI"})
	}

	return cols, rows.Err()
}

// RowIDColumn is mysql's _rowid alias. It only resolves for tables with
// an integer unique key, so fallback rows on tables without one fail
// their listing.
func (m MySQLBackend) RowIDColumn() string {
	return "_rowid"
}

func (m MySQLBackend) LengthExpr(column string) string {
	return fmt.Sprintf("length(%s)", column)
}
