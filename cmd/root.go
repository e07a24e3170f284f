// Package cmd wires mutagenyx's cobra command tree: algorithms, mutate,
// pretty-print, history, and mcp-serve, over the mutation engine in
// internal/generate, internal/language, and internal/recognizer.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mutagenyx/mutagenyx/internal/language"
	"github.com/mutagenyx/mutagenyx/internal/language/solidity"
	"github.com/mutagenyx/mutagenyx/internal/language/vyper"
)

var rootCmd = &cobra.Command{
	Use:   "mutagenyx",
	Short: "Mutation testing for Solidity and Vyper smart contracts",
	Long: `mutagenyx rewrites Solidity and Vyper programs at the AST level,
producing semantics-altering but syntactically valid mutants for use in
mutation testing pipelines.`,
	SilenceUsage: true,
}

// languages returns the registry of every supported language binding.
// Adding a new language means writing internal/language/<name> and
// registering it here.
func languages() *language.Registry {
	return language.NewRegistry(solidity.New(), vyper.New())
}

// Execute runs the root command, exiting non-zero on any fatal error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
