package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/yoogottamk/blobfs/pkg/entry"
	"github.com/yoogottamk/blobfs/pkg/sqlutils"
)

// catCmd represents the cat command
var catCmd = &cobra.Command{
	Use:   "cat TABLE ROW COLUMN",
	Short: "Print a single column value without mounting",
	Long: `Prints the bytes the file TABLE/ROW/COLUMN would serve, without
mounting anything. Handy for checking what a path resolves to and for
debugging backends.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		db, err := sqlBackend.OpenDB(sqlDSN)
		if err != nil {
			log.Fatalf("Couldn't open DB: %v", err)
		}
		defer db.Close()

		resolver := entry.NewResolver(sqlutils.NewLogQueryer(db, queryLogger()), sqlBackend)

		e, err := resolver.Resolve("/" + args[0] + "/" + args[1] + "/" + args[2])
		if err != nil {
			log.Fatalf("Couldn't resolve path: %v", err)
		}

		file, ok := e.(entry.RegularFile)
		if !ok {
			log.Fatalf("Path doesn't name a column file")
		}

		content, err := file.ReadAll()
		if err != nil {
			log.Fatalf("Couldn't read column: %v", err)
		}

		if _, err := cmd.OutOrStdout().Write(content); err != nil {
			log.Fatalf("Couldn't write contents: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
}
