package entry

import (
	"strings"

	"github.com/yoogottamk/blobfs/pkg/sqlutils"
)

// Resolver turns paths into entries. It carries the two things every
// entry needs: the database connection (behind the Queryer interface,
// so query logging can be layered in) and the backend for the store's
// SQL dialect.
type Resolver struct {
	db      sqlutils.Queryer
	backend sqlutils.SQLBackend
}

func NewResolver(db sqlutils.Queryer, backend sqlutils.SQLBackend) *Resolver {
	return &Resolver{db: db, backend: backend}
}

// Resolve classifies a path purely by its depth and binds the segments
// as identifiers. Segments pass through verbatim; whether a table or
// column of that name exists isn't checked until a query needs it.
func (r *Resolver) Resolve(path string) (Entry, error) {
	segments := splitPath(path)

	switch len(segments) {
	case 0:
		return &Root{r: r}, nil
	case 1:
		return &Table{r: r, Name: segments[0]}, nil
	case 2:
		return &Row{r: r, Table: segments[0], Ref: segments[1]}, nil
	case 3:
		return &Column{r: r, Table: segments[0], Ref: segments[1], Name: segments[2]}, nil
	}

	return nil, ErrNotExist
}

// Getattr synthesizes metadata for the entry at path.
func (r *Resolver) Getattr(path string) (Stat, error) {
	e, err := r.Resolve(path)
	if err != nil {
		return Stat{}, err
	}

	return e.Stat()
}

// Readdir lists the entry at path: ".", "..", then the real children
// in the store's order.
func (r *Resolver) Readdir(path string) ([]string, error) {
	e, err := r.Resolve(path)
	if err != nil {
		return nil, err
	}

	dir, ok := e.(Directory)
	if !ok {
		return nil, ErrNotDir
	}

	children, err := dir.List()
	if err != nil {
		return nil, err
	}

	return append([]string{".", ".."}, children...), nil
}

// Read returns up to size bytes of the file at path starting at
// offset. The whole value is fetched and then sliced: the store can't
// serve byte ranges of arbitrary column values, so reads near the end
// just come back short or empty.
func (r *Resolver) Read(path string, size int, offset int64) ([]byte, error) {
	e, err := r.Resolve(path)
	if err != nil {
		return nil, err
	}

	file, ok := e.(RegularFile)
	if !ok {
		return nil, ErrNotFile
	}

	content, err := file.ReadAll()
	if err != nil {
		return nil, err
	}

	if offset >= int64(len(content)) {
		return nil, nil
	}

	end := offset + int64(size)
	if end > int64(len(content)) {
		end = int64(len(content))
	}

	return content[offset:end], nil
}

func splitPath(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	return segments
}
