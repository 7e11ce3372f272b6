// Package fuse adapts the entry tree to the kernel. It translates
// lookup/stat/readdir/read requests into resolver calls and entry
// errors into errnos; everything else (open, flush, release) is left
// to the library's defaults, which makes open a no-op in particular.
package fuse

import (
	"errors"
	"strings"
	"sync"
	"syscall"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	"github.com/yoogottamk/blobfs/pkg/entry"
)

// FS is the mounted filesystem. The mutex serializes every operation
// so requests hit the shared connection one at a time.
type FS struct {
	resolver *entry.Resolver
	mu       sync.Mutex
}

func NewFS(resolver *entry.Resolver) *FS {
	return &FS{resolver: resolver}
}

var _ fs.FS = (*FS)(nil)

// Root returns the root directory node.
func (f *FS) Root() (fs.Node, error) {
	return &Dir{fs: f, path: "/"}, nil
}

// Dir is the node for the root, table and row directories.
type Dir struct {
	fs   *FS
	path string
}

// File is the node for column files.
type File struct {
	fs   *FS
	path string
}

// toFuseErr maps entry errors onto errnos. Anything unexpected, query
// failures included, is an I/O error.
func toFuseErr(err error) error {
	switch {
	case errors.Is(err, entry.ErrNotExist):
		return fuse.ENOENT
	case errors.Is(err, entry.ErrNotDir):
		return fuse.Errno(syscall.ENOTDIR)
	case errors.Is(err, entry.ErrNotFile):
		return fuse.Errno(syscall.EBADF)
	}

	return fuse.EIO
}

func pathDepth(path string) int {
	depth := 0
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			depth++
		}
	}

	return depth
}
