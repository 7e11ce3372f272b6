package fuse

import (
	"context"
	"log"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	"github.com/yoogottamk/blobfs/pkg/entry"
)

var _ fs.Node = (*Dir)(nil)
var _ fs.Node = (*File)(nil)

// setAttrFromStat fills the fuse attr object from synthesized entry
// metadata
func setAttrFromStat(st entry.Stat, attr *fuse.Attr) {
	attr.Mode = st.Mode
	attr.Nlink = st.Nlink
	attr.Size = uint64(st.Size)

	attr.Atime = st.Atime
	attr.Mtime = st.Mtime
	attr.Ctime = st.Ctime
}

// Attr retrieves metadata for the directory
func (d *Dir) Attr(ctx context.Context, attr *fuse.Attr) error {
	d.fs.mu.Lock()
	defer d.fs.mu.Unlock()

	st, err := d.fs.resolver.Getattr(d.path)
	if err != nil {
		log.Printf("Couldn't stat %s: %v", d.path, err)
		return toFuseErr(err)
	}

	setAttrFromStat(st, attr)
	return nil
}

// Attr retrieves metadata for the file. This is where the size query
// happens; the column value itself stays in the database.
func (f *File) Attr(ctx context.Context, attr *fuse.Attr) error {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()

	st, err := f.fs.resolver.Getattr(f.path)
	if err != nil {
		log.Printf("Couldn't stat %s: %v", f.path, err)
		return toFuseErr(err)
	}

	setAttrFromStat(st, attr)
	return nil
}
