package fuse

import (
	"io/ioutil"
	"os"
	"reflect"
	"sort"
	"testing"

	"bazil.org/fuse"
	"bazil.org/fuse/fs/fstestutil"

	"github.com/yoogottamk/blobfs/pkg/entry"
	"github.com/yoogottamk/blobfs/pkg/sqlutils"
)

// requireFUSE skips mount tests on hosts that can't mount (no
// /dev/fuse, which is most CI containers).
func requireFUSE(t *testing.T) {
	t.Helper()

	if _, err := os.Stat("/dev/fuse"); err != nil {
		t.Skipf("Skipping mount test: %v", err)
	}
}

func assertFileSizeIs(t *testing.T, filepath string, expectedSize int64) {
	t.Helper()

	fileinfo, err := os.Stat(filepath)
	if err != nil {
		t.Fatalf("Couldn't stat file: %v", err)
	}

	fsSize := fileinfo.Size()
	if fsSize != expectedSize {
		t.Fatalf("Size on fs[%d] doesn't match expected size[%d]", fsSize, expectedSize)
	}
}

func assertDirLists(t *testing.T, dir string, expected []string) {
	t.Helper()

	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		t.Fatalf("Couldn't list dir[%s]: %v", dir, err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	expectedSorted := append([]string{}, expected...)
	sort.Strings(expectedSorted)

	if !reflect.DeepEqual(names, expectedSorted) {
		t.Fatalf("Dir[%s] lists %v, expected %v", dir, names, expectedSorted)
	}
}

func getMountedFS(t *testing.T, backend sqlutils.SQLBackend, dsn string, stmts ...string) *fstestutil.Mount {
	t.Logf("Using dsn '%s'", dsn)

	db, err := backend.OpenDB(dsn)
	if err != nil {
		t.Fatalf("Couldn't open db[%s]: %v", dsn, err)
	}
	t.Cleanup(func() { db.Close() })

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Couldn't exec `%s`: %v", stmt, err)
		}
	}

	filesys := NewFS(entry.NewResolver(db, backend))

	mnt, err := fstestutil.MountedT(t, filesys, nil, fuse.ReadOnly())
	if err != nil {
		t.Fatalf("Couldn't mount blobfs: %v", err)
	}

	return mnt
}
