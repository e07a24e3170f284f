package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mutagenyx/mutagenyx/internal/jsonast"
	"github.com/mutagenyx/mutagenyx/internal/mgxerr"
	"github.com/mutagenyx/mutagenyx/internal/recognizer"
)

var prettyPrintCmd = &cobra.Command{
	Use:   "pretty-print [file]",
	Short: "Render a JSON AST file back to source, unmodified",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		rec, ok := recognizer.Recognize(file)
		if !ok || rec.Kind != recognizer.KindAST {
			return fmt.Errorf("%w: %s is not a recognized AST file", mgxerr.ErrUnrecognizedInputFile, file)
		}
		lang, ok := languages().Get(rec.Language)
		if !ok {
			return fmt.Errorf("%w: %s", mgxerr.ErrUnsupportedLanguage, rec.Language)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		ast, err := jsonast.Decode(data)
		if err != nil {
			return err
		}
		out, err := lang.PrettyPrint(context.Background(), ast)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(prettyPrintCmd)
}
