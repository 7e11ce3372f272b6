package entry

import (
	"github.com/yoogottamk/blobfs/pkg/sqlutils"
)

// Root lists one directory per table.
type Root struct {
	r *Resolver
}

var _ Directory = (*Root)(nil)

func (e *Root) Stat() (Stat, error) {
	return dirStat(), nil
}

func (e *Root) List() ([]string, error) {
	return e.r.backend.ListTables(e.r.db)
}

// Table lists one directory per row, named by the string form of the
// row's effective-primary-key value.
type Table struct {
	r    *Resolver
	Name string
}

var _ Directory = (*Table)(nil)

func (e *Table) Stat() (Stat, error) {
	return dirStat(), nil
}

// List resolves the effective primary key and queries it for every
// row, on every call. Nothing is remembered between listings.
func (e *Table) List() ([]string, error) {
	return sqlutils.ListRowRefs(e.r.db, e.r.backend, e.Name)
}

// Row lists one file per column. The names come from the table's
// metadata, so every row of a table lists the same set.
type Row struct {
	r     *Resolver
	Table string
	Ref   string
}

var _ Directory = (*Row)(nil)

func (e *Row) Stat() (Stat, error) {
	return dirStat(), nil
}

func (e *Row) List() ([]string, error) {
	cols, err := e.r.backend.ListColumns(e.r.db, e.Table)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name
	}

	return names, nil
}
