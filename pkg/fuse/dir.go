package fuse

import (
	"context"
	"log"
	gopath "path"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	"github.com/yoogottamk/blobfs/pkg/entry"
)

// directory read
var _ = fs.HandleReadDirAller(&Dir{})

// ReadDirAll lists the directory. Children of the root and of table
// directories are directories themselves; children of a row directory
// are the column files.
func (d *Dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	d.fs.mu.Lock()
	defer d.fs.mu.Unlock()

	names, err := d.fs.resolver.Readdir(d.path)
	if err != nil {
		log.Printf("Couldn't list %s: %v", d.path, err)
		return nil, toFuseErr(err)
	}

	childType := fuse.DT_Dir
	if pathDepth(d.path) == 2 {
		childType = fuse.DT_File
	}

	dirents := make([]fuse.Dirent, 0, len(names))
	for _, name := range names {
		t := childType
		if name == "." || name == ".." {
			t = fuse.DT_Dir
		}
		dirents = append(dirents, fuse.Dirent{Name: name, Type: t})
	}

	return dirents, nil
}

// directory lookup
var _ = fs.NodeRequestLookuper(&Dir{})

// Lookup resolves one child by name. Like the resolver itself it
// classifies purely by depth; a name that matches no table or row only
// fails once a listing or read queries for it.
func (d *Dir) Lookup(ctx context.Context, req *fuse.LookupRequest, res *fuse.LookupResponse) (fs.Node, error) {
	d.fs.mu.Lock()
	defer d.fs.mu.Unlock()

	childPath := gopath.Join(d.path, req.Name)

	e, err := d.fs.resolver.Resolve(childPath)
	if err != nil {
		return nil, toFuseErr(err)
	}

	switch e.(type) {
	case entry.Directory:
		return &Dir{fs: d.fs, path: childPath}, nil
	case entry.RegularFile:
		return &File{fs: d.fs, path: childPath}, nil
	}

	return nil, fuse.ENOENT
}
