package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/yoogottamk/blobfs/pkg/fuse"
)

// mountCmd represents the mount command
var mountCmd = &cobra.Command{
	Use:   "mount MOUNTPOINT",
	Short: "Mount the database as a read-only FUSE fs",
	Long: `Mounts the database as a read-only FUSE fs on MOUNTPOINT and
serves it in the foreground until it is unmounted. The database
connection is closed on exit.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := fuse.MountFS(sqlBackend, sqlDSN, args[0], queryLogger()); err != nil {
			log.Fatalf("Couldn't serve FS: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(mountCmd)
}
