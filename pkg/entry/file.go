package entry

import (
	"database/sql"
	"errors"

	"github.com/yoogottamk/blobfs/pkg/sqlutils"
)

// Column is a regular file whose content is the value stored in one
// column of one row. Meant for blob columns, but any type works:
// non-binary values are served in their textual form.
type Column struct {
	r     *Resolver
	Table string
	Ref   string
	Name  string
}

var _ RegularFile = (*Column)(nil)

// Stat fills in the size from a length query; the value itself is not
// fetched until someone reads it.
func (e *Column) Stat() (Stat, error) {
	size, err := sqlutils.ColumnSize(e.r.db, e.r.backend, e.Table, e.Ref, e.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return Stat{}, ErrNotExist
	}
	if err != nil {
		return Stat{}, err
	}

	st := fileStat()
	st.Size = size

	return st, nil
}

// ReadAll fetches the entire stored value. Runs the query again on
// every call; nothing carries over from a stat to the read after it.
func (e *Column) ReadAll() ([]byte, error) {
	content, err := sqlutils.ColumnContent(e.r.db, e.r.backend, e.Table, e.Ref, e.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotExist
	}

	return content, err
}
