// Package entry implements the virtual tree a relational database is
// browsed through: the root lists tables, a table is a directory of
// rows named by their effective primary key, a row is a directory of
// columns, and a column is a regular file holding the stored value.
//
// Entries are rebuilt from their path on every call and hold nothing
// but identifiers; every listing, stat and read goes back to the
// database.
package entry

import (
	"errors"
	"os"
	"time"
)

var (
	// ErrNotExist: the path can't name an entry (too deep) or names a
	// row the store doesn't have.
	ErrNotExist = errors.New("entry does not exist")

	// ErrNotDir: a directory operation reached a column file.
	ErrNotDir = errors.New("entry is not a directory")

	// ErrNotFile: a read reached an entry with no content.
	ErrNotFile = errors.New("entry is not a regular file")
)

// Stat is the metadata synthesized for an entry. None of it is stored
// anywhere: timestamps are the time of the call, ownership is left to
// the mount.
type Stat struct {
	Mode  os.FileMode
	Nlink uint32
	Size  int64

	Atime time.Time
	Mtime time.Time
	Ctime time.Time
}

// Entry is a node in the virtual tree.
type Entry interface {
	Stat() (Stat, error)
}

// Directory is an entry whose children can be listed. List returns the
// real children only; readdir adds the dot entries.
type Directory interface {
	Entry
	List() ([]string, error)
}

// RegularFile is an entry with readable content.
type RegularFile interface {
	Entry
	ReadAll() ([]byte, error)
}

func dirStat() Stat {
	now := time.Now()
	return Stat{
		Mode:  os.ModeDir | 0755,
		Nlink: 2,
		Atime: now,
		Mtime: now,
		Ctime: now,
	}
}

func fileStat() Stat {
	now := time.Now()
	return Stat{
		Mode:  0644,
		Nlink: 1,
		Atime: now,
		Mtime: now,
		Ctime: now,
	}
}
