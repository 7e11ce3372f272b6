package sqlutils

import (
	"database/sql"
	"fmt"
)

// EffectivePrimaryKey returns the single column rows of table are
// addressed by: the primary-key column if there is exactly one, the
// backend's implicit rowid column in every other case (no primary key,
// composite primary key).
func EffectivePrimaryKey(db Queryer, backend SQLBackend, table string) (string, error) {
	cols, err := backend.ListColumns(db, table)
	if err != nil {
		return "", err
	}

	var pks []string
	for _, col := range cols {
		if col.PrimaryKey {
			pks = append(pks, col.Name)
		}
	}

	if len(pks) == 1 {
		return pks[0], nil
	}
	return backend.RowIDColumn(), nil
}

// ListRowRefs returns the effective-primary-key value of every row in
// table, as strings, in whatever order the store hands them out.
//
// NOTE: table and key names are interpolated into the query text, here
// and below. Identifiers can't be bound as parameters, so names taken
// from the schema end up in the SQL verbatim.
func ListRowRefs(db Queryer, backend SQLBackend, table string) ([]string, error) {
	pk, err := EffectivePrimaryKey(db, backend, table)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf("select %s from %s", pk, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []string
	for rows.Next() {
		var ref []byte
		if err := rows.Scan(&ref); err != nil {
			return nil, err
		}
		refs = append(refs, string(ref))
	}

	return refs, rows.Err()
}

// ColumnSize returns the length of one column value, addressed by the
// effective primary key.
func ColumnSize(db Queryer, backend SQLBackend, table, ref, column string) (int64, error) {
	pk, err := EffectivePrimaryKey(db, backend, table)
	if err != nil {
		return 0, err
	}

	var size int64
	query := fmt.Sprintf("select %s from %s where %s = ?", backend.LengthExpr(column), table, pk)
	if err := queryExactlyOne(db, query, []any{ref}, &size); err != nil {
		return 0, err
	}

	return size, nil
}

// ColumnContent returns the stored value of one column as bytes: blobs
// come back unchanged, everything else in its textual form
// (database/sql converts when scanning into []byte).
func ColumnContent(db Queryer, backend SQLBackend, table, ref, column string) ([]byte, error) {
	pk, err := EffectivePrimaryKey(db, backend, table)
	if err != nil {
		return nil, err
	}

	var content []byte
	query := fmt.Sprintf("select %s from %s where %s = ?", column, table, pk)
	if err := queryExactlyOne(db, query, []any{ref}, &content); err != nil {
		return nil, err
	}

	return content, nil
}

// queryExactlyOne runs a query that must match exactly one row and
// scans that row into dest. No rows yields sql.ErrNoRows; more than one
// row means the row reference stopped identifying a single row, which
// is reported as an error instead of silently taking the first match.
func queryExactlyOne(db Queryer, query string, args []any, dest ...any) error {
	rows, err := db.Query(db.Rebind(query), args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return sql.ErrNoRows
	}
	if err := rows.Scan(dest...); err != nil {
		return err
	}
	if rows.Next() {
		return fmt.Errorf("query %q matched more than one row", normalizeQuery(query))
	}

	return rows.Err()
}
