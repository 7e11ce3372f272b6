package cmd

import (
	"io"
	"log"
	"os"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/yoogottamk/blobfs/pkg/sqlutils"
)

var (
	sqlBackendName string
	sqlDSN         string
	verbose        bool

	sqlBackend sqlutils.SQLBackend
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blobfs",
	Short: "Browse a SQL database as a read-only filesystem",
	Long: `blobfs presents a SQL database as a read-only FUSE filesystem:
every table is a directory, every row a subdirectory named by the row's
primary key and every column a file holding the stored value.`,
	PersistentPreRun: setBackendFromFlags,
}

// set sql backend from flags
func setBackendFromFlags(cmd *cobra.Command, args []string) {
	backend, ok := sqlutils.AvailableBackends[sqlBackendName]
	if !ok {
		log.Fatalf("Unknown backend `%s`. Available backends: %s",
			sqlBackendName,
			reflect.ValueOf(sqlutils.AvailableBackends).MapKeys())
	}

	sqlBackend = backend
}

// queryLogger returns the logger the query decorator writes to: stderr
// with --verbose, discarded otherwise.
func queryLogger() *log.Logger {
	out := io.Discard
	if verbose {
		out = os.Stderr
	}

	return log.New(out, "", 0)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&sqlBackendName, "backend", "b", "sqlite", "SQL backend to use [sqlite|mysql|postgres]")
	rootCmd.PersistentFlags().StringVarP(&sqlDSN, "dsn", "d", "blobs.sqlite3", "The DSN for connecting to the sql backend")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every query along with its bound args")
}
