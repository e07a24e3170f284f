package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mutagenyx/mutagenyx/internal/store"
)

var historyOpts struct {
	dbPath    string
	inputFile string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List mutants recorded by prior `mutate --history-db` runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := store.Open(historyOpts.dbPath)
		if err != nil {
			return err
		}
		defer ledger.Close()

		records, err := ledger.History(historyOpts.inputFile)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("no recorded mutants")
			return nil
		}
		for _, r := range records {
			fmt.Printf("%s\t%s\t%s\tseed=%d\t%s\n", r.RunAt.Format("2006-01-02T15:04:05Z"), r.InputFile, r.Algorithm, r.Seed, r.OutputPath)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyOpts.dbPath, "history-db", "mutagenyx-history.db", "path to the sqlite ledger")
	historyCmd.Flags().StringVar(&historyOpts.inputFile, "file", "", "restrict to mutants generated from this input file")
	rootCmd.AddCommand(historyCmd)
}
