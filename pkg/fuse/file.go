package fuse

import (
	"context"
	"log"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
)

// file read
//
// The file node doubles as its own handle: with no NodeOpener the
// library opens the node as-is, which keeps open free of side effects.
var _ = fs.HandleReader(&File{})

// Read fetches the whole column value and returns the requested slice.
// Offsets at or past the end yield an empty read, not an error.
func (f *File) Read(ctx context.Context, req *fuse.ReadRequest, res *fuse.ReadResponse) error {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()

	data, err := f.fs.resolver.Read(f.path, req.Size, req.Offset)
	if err != nil {
		log.Printf("Couldn't read %s: %v", f.path, err)
		return toFuseErr(err)
	}

	res.Data = data
	return nil
}
