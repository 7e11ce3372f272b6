package fuse

import (
	"log"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	"github.com/yoogottamk/blobfs/pkg/entry"
	"github.com/yoogottamk/blobfs/pkg/sqlutils"
)

// MountFS opens the database, mounts the read-only view at mountpoint
// and serves it in the foreground until the fs is unmounted. The
// connection is closed on the way out, however serving ends.
func MountFS(backend sqlutils.SQLBackend, dsn, mountpoint string, queryLog *log.Logger) error {
	db, err := backend.OpenDB(dsn)
	if err != nil {
		log.Println("Couldn't open DB!")
		return err
	}
	defer db.Close()

	c, err := fuse.Mount(
		mountpoint,
		fuse.FSName("blobfs"),
		fuse.Subtype("blobfs"),
		fuse.ReadOnly(),
	)
	if err != nil {
		log.Println("Couldn't mount FS!")
		return err
	}
	defer c.Close()

	resolver := entry.NewResolver(sqlutils.NewLogQueryer(db, queryLog), backend)

	err = fs.Serve(c, NewFS(resolver))
	if err != nil {
		return err
	}

	// check if the mount process has an error to report
	<-c.Ready
	if err := c.MountError; err != nil {
		return err
	}

	return nil
}
