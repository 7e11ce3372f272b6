package entry

import (
	"errors"
	"testing"
)

// Path classification never touches the database, so a nil connection
// is fine for these.

func TestResolveRoot(t *testing.T) {
	r := NewResolver(nil, nil)

	for _, path := range []string{"/", ""} {
		e, err := r.Resolve(path)
		if err != nil {
			t.Fatalf("Couldn't resolve `%s`: %v", path, err)
		}
		if _, ok := e.(*Root); !ok {
			t.Fatalf("Got %T for `%s`, expected *Root", e, path)
		}
	}
}

func TestResolveTable(t *testing.T) {
	r := NewResolver(nil, nil)

	e, err := r.Resolve("/people")
	if err != nil {
		t.Fatalf("Couldn't resolve: %v", err)
	}

	table, ok := e.(*Table)
	if !ok {
		t.Fatalf("Got %T, expected *Table", e)
	}
	if table.Name != "people" {
		t.Fatalf("Got table[%s], expected[people]", table.Name)
	}
}

func TestResolveRow(t *testing.T) {
	r := NewResolver(nil, nil)

	e, err := r.Resolve("/people/42")
	if err != nil {
		t.Fatalf("Couldn't resolve: %v", err)
	}

	row, ok := e.(*Row)
	if !ok {
		t.Fatalf("Got %T, expected *Row", e)
	}
	if row.Table != "people" || row.Ref != "42" {
		t.Fatalf("Got row[%s/%s], expected[people/42]", row.Table, row.Ref)
	}
}

func TestResolveColumn(t *testing.T) {
	r := NewResolver(nil, nil)

	e, err := r.Resolve("/people/42/name")
	if err != nil {
		t.Fatalf("Couldn't resolve: %v", err)
	}

	col, ok := e.(*Column)
	if !ok {
		t.Fatalf("Got %T, expected *Column", e)
	}
	if col.Table != "people" || col.Ref != "42" || col.Name != "name" {
		t.Fatalf("Got column[%s/%s/%s], expected[people/42/name]", col.Table, col.Ref, col.Name)
	}
}

func TestResolveTooDeep(t *testing.T) {
	r := NewResolver(nil, nil)

	for _, path := range []string{"/a/b/c/d", "/a/b/c/d/e"} {
		if _, err := r.Resolve(path); !errors.Is(err, ErrNotExist) {
			t.Fatalf("Got err[%v] for `%s`, expected ErrNotExist", err, path)
		}
	}
}

func TestResolveIgnoresExtraSlashes(t *testing.T) {
	r := NewResolver(nil, nil)

	e, err := r.Resolve("//people///42/")
	if err != nil {
		t.Fatalf("Couldn't resolve: %v", err)
	}

	row, ok := e.(*Row)
	if !ok {
		t.Fatalf("Got %T, expected *Row", e)
	}
	if row.Table != "people" || row.Ref != "42" {
		t.Fatalf("Got row[%s/%s], expected[people/42]", row.Table, row.Ref)
	}
}

func TestReaddirOnColumnFile(t *testing.T) {
	r := NewResolver(nil, nil)

	// the type check fires before any query runs
	if _, err := r.Readdir("/people/42/name"); !errors.Is(err, ErrNotDir) {
		t.Fatalf("Got err[%v], expected ErrNotDir", err)
	}
}

func TestReadOnDirectory(t *testing.T) {
	r := NewResolver(nil, nil)

	for _, path := range []string{"/", "/people", "/people/42"} {
		if _, err := r.Read(path, 16, 0); !errors.Is(err, ErrNotFile) {
			t.Fatalf("Got err[%v] for `%s`, expected ErrNotFile", err, path)
		}
	}
}

func TestGetattrTooDeep(t *testing.T) {
	r := NewResolver(nil, nil)

	if _, err := r.Getattr("/a/b/c/d"); !errors.Is(err, ErrNotExist) {
		t.Fatalf("Got err[%v], expected ErrNotExist", err)
	}
}
