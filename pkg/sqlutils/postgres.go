package sqlutils

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type PostgresBackend struct{}

var _ SQLBackend = (*PostgresBackend)(nil)

func (p PostgresBackend) OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", "postgres://"+dsn+"?sslmode=disable")
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	return db, nil
}

// ListTables returns the base tables of the public schema.
func (p PostgresBackend) ListTables(db Queryer) ([]string, error) {
	rows, err := db.Query(`
        select table_name from information_schema.tables
            where table_schema = 'public'
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

// ListColumns joins the primary-key constraint's key_column_usage onto
// the column list to flag key membership.
func (p PostgresBackend) ListColumns(db Queryer, table string) ([]Column, error) {
	rows, err := db.Query(db.Rebind(`
        select c.column_name, (k.column_name is not null)
            from information_schema.columns c
            left join (
                select kcu.column_name
                    from information_schema.table_constraints tc
                    join information_schema.key_column_usage kcu
                        on kcu.constraint_name = tc.constraint_name
                    where tc.constraint_type = 'PRIMARY KEY'
                    and tc.table_schema = 'public'
                    and tc.table_name = ?
            ) k on k.column_name = c.column_name
            where c.table_schema = 'public'
            and c.table_name = ?
            order by c.ordinal_position`), table, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var (
			name string
			pk   bool
		)
		if err := rows.Scan(&name, &pk); err != nil {
			return nil, err
		}
		cols = append(cols, Column{Name: name, PrimaryKey: pk})
	}

	return cols, rows.Err()
}

// RowIDColumn is the ctid system column. A ctid names a live tuple
// version; it can move on vacuum or rewrite, which is fine as long as
// nobody writes to the store while it is mounted.
func (p PostgresBackend) RowIDColumn() string {
	return "ctid"
}

// LengthExpr casts to text first so the expression works for every
// column type. For bytea that measures the escaped form, not the raw
// bytes.
func (p PostgresBackend) LengthExpr(column string) string {
	return fmt.Sprintf("octet_length(%s::text)", column)
}
