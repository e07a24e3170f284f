package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mutagenyx/mutagenyx/internal/mutation"
)

var (
	algorithmsListDetail bool
	algorithmsLanguage   string
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the mutation algorithms mutagenyx implements",
	RunE: func(cmd *cobra.Command, args []string) error {
		descriptions := mutation.All()
		if algorithmsLanguage != "" {
			descriptions = mutation.ForLanguage(algorithmsLanguage)
		}
		for _, d := range descriptions {
			fmt.Printf("%s\t%s\n", d.Tag, d.Summary)
			if algorithmsListDetail {
				if len(d.Operators) > 0 {
					fmt.Printf("  operators: %v\n", d.Operators)
				}
				if d.Details != "" {
					fmt.Printf("  %s\n", d.Details)
				}
				if d.Example != "" {
					fmt.Printf("  example: %s\n", d.Example)
				}
			}
		}
		return nil
	},
}

func init() {
	algorithmsCmd.Flags().BoolVarP(&algorithmsListDetail, "detail", "d", false, "print operator sets and a before/after example for each algorithm")
	algorithmsCmd.Flags().BoolP("list", "l", true, "list algorithm tags and summaries")
	algorithmsCmd.Flags().StringVar(&algorithmsLanguage, "language", "", "restrict to algorithms usable against this language")
	rootCmd.AddCommand(algorithmsCmd)
}
