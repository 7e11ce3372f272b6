package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/yoogottamk/blobfs/pkg/sqlutils"
)

// tablesCmd represents the tables command
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List tables and the column their row directories are named by",
	Long: `Lists every table in the database along with its effective primary
key: the single primary-key column if the table has exactly one, the
backend's rowid column otherwise. Row directories under a table are
named by that column's values.`,
	Run: func(cmd *cobra.Command, args []string) {
		db, err := sqlBackend.OpenDB(sqlDSN)
		if err != nil {
			log.Fatalf("Couldn't open DB: %v", err)
		}
		defer db.Close()

		q := sqlutils.NewLogQueryer(db, queryLogger())

		tables, err := sqlBackend.ListTables(q)
		if err != nil {
			log.Fatalf("Couldn't list tables: %v", err)
		}

		for _, table := range tables {
			pk, err := sqlutils.EffectivePrimaryKey(q, sqlBackend, table)
			if err != nil {
				log.Fatalf("Couldn't get primary key for %s: %v", table, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", table, pk)
		}
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
