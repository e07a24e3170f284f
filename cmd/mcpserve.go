package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/mutagenyx/mutagenyx/internal/compiler"
	"github.com/mutagenyx/mutagenyx/internal/generate"
	"github.com/mutagenyx/mutagenyx/internal/jsonast"
	"github.com/mutagenyx/mutagenyx/internal/mgxerr"
	"github.com/mutagenyx/mutagenyx/internal/mutation"
	"github.com/mutagenyx/mutagenyx/internal/recognizer"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Serve mutagenyx's tools over MCP on stdio, for driving mutation runs from an agent",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := server.NewMCPServer("mutagenyx", "1.0.0")
		s.AddTool(listAlgorithmsTool(), handleListAlgorithms)
		s.AddTool(generateMutantsTool(), handleGenerateMutants)
		return server.ServeStdio(s)
	},
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func listAlgorithmsTool() mcp.Tool {
	return mcp.NewTool("list_algorithms",
		mcp.WithDescription("List the mutation algorithms mutagenyx supports, optionally filtered to one language"),
		mcp.WithString("language", mcp.Description("solidity or vyper; omit for every language")),
	)
}

func handleListAlgorithms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lang, _ := req.GetArguments()["language"].(string)

	var descriptors []mutation.Description
	if lang != "" {
		descriptors = mutation.ForLanguage(lang)
	} else {
		descriptors = mutation.All()
	}

	var b strings.Builder
	for _, d := range descriptors {
		fmt.Fprintf(&b, "%s\t%s\n", d.Tag, d.Summary)
	}
	if b.Len() == 0 {
		return mcp.NewToolResultText("no algorithms match that language"), nil
	}
	return mcp.NewToolResultText(b.String()), nil
}

func generateMutantsTool() mcp.Tool {
	return mcp.NewTool("generate_mutants",
		mcp.WithDescription("Generate mutants for a Solidity or Vyper source or AST file and write them to an output directory"),
		mcp.WithString("file", mcp.Required(), mcp.Description("path to the source or compact-JSON AST file")),
		mcp.WithString("mutations", mcp.Description("comma-separated algorithm tags; omit to use every algorithm the language supports")),
		mcp.WithString("num_mutants", mcp.Description("number of mutants to generate, default 1")),
		mcp.WithString("seed", mcp.Description("PRNG seed, default 0")),
		mcp.WithString("output_directory", mcp.Description("directory mutants are written to, default the current directory")),
		mcp.WithBoolean("validate_mutants", mcp.Description("recompile each mutant and discard ones that fail")),
	)
}

func handleGenerateMutants(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file, _ := req.GetArguments()["file"].(string)
	if file == "" {
		return mcp.NewToolResultError("file is required"), nil
	}

	rec, ok := recognizer.Recognize(file)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("%v: %s", mgxerr.ErrUnrecognizedInputFile, file)), nil
	}
	lang, ok := languages().Get(rec.Language)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("%v: %s", mgxerr.ErrUnsupportedLanguage, rec.Language)), nil
	}

	var ast map[string]any
	var err error
	if rec.Kind == recognizer.KindAST {
		var data []byte
		data, err = os.ReadFile(file)
		if err == nil {
			ast, err = jsonast.Decode(data)
		}
	} else {
		bin, args := lang.CompileArgs(file)
		var res compiler.Result
		res, err = compiler.Invoke(ctx, bin, args, nil)
		if err == nil {
			if !res.OK {
				err = &mgxerr.CompilerError{Path: bin, Stderr: res.Stderr}
			} else {
				ast, err = jsonast.Decode([]byte(res.Stdout))
			}
		}
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := generate.Options{
		NumMutants: 1,
		OutputDir:  ".",
	}
	if v, ok := req.GetArguments()["mutations"].(string); ok && v != "" {
		opts.Algorithms = strings.Split(v, ",")
	}
	if v, ok := req.GetArguments()["num_mutants"].(string); ok && v != "" {
		if n, convErr := strconv.Atoi(v); convErr == nil {
			opts.NumMutants = n
		}
	}
	if v, ok := req.GetArguments()["seed"].(string); ok && v != "" {
		if n, convErr := strconv.ParseInt(v, 10, 64); convErr == nil {
			opts.Seed = n
		}
	}
	if v, ok := req.GetArguments()["output_directory"].(string); ok && v != "" {
		opts.OutputDir = v
	}
	if v, ok := req.GetArguments()["validate_mutants"].(bool); ok {
		opts.ValidateMutants = v
	}

	gen, err := generate.New(64)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := gen.Generate(ctx, file, ast, lang, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := generate.Write(result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	for _, w := range result.Warnings {
		fmt.Fprintf(&b, "warning: %v\n", w)
	}
	for _, m := range result.Mutants {
		fmt.Fprintf(&b, "%s\t%s\n", m.Algorithm, m.OutputPath)
	}
	if b.Len() == 0 {
		b.WriteString("no mutants produced")
	}
	return mcp.NewToolResultText(b.String()), nil
}
