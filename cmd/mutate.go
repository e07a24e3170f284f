package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mutagenyx/mutagenyx/internal/compiler"
	"github.com/mutagenyx/mutagenyx/internal/config"
	"github.com/mutagenyx/mutagenyx/internal/generate"
	"github.com/mutagenyx/mutagenyx/internal/jsonast"
	"github.com/mutagenyx/mutagenyx/internal/language"
	"github.com/mutagenyx/mutagenyx/internal/mgxerr"
	"github.com/mutagenyx/mutagenyx/internal/mutation"
	"github.com/mutagenyx/mutagenyx/internal/recognizer"
	"github.com/mutagenyx/mutagenyx/internal/store"
)

type mutateFlags struct {
	files           []string
	configPath      string
	allAlgorithms   bool
	mutations       []string
	numMutants      int
	seed            int64
	saveConfigFiles bool
	validateMutants bool
	outputDir       string
	useStdout       bool
	printOriginal   bool
	functions       []string

	solidityCompiler   string
	solidityBasePath   string
	solidityIncludes   []string
	solidityAllowPaths []string
	solidityRemappings []string

	vyperCompiler string
	vyperRootPath string

	ledgerPath string
}

var mutateOpts mutateFlags

var mutateCmd = &cobra.Command{
	Use:   "mutate",
	Short: "Generate mutants for one or more source or AST files",
	RunE:  runMutate,
}

func init() {
	f := mutateCmd.Flags()
	f.StringArrayVar(&mutateOpts.files, "file", nil, "input source or AST file (repeatable)")
	f.StringVar(&mutateOpts.configPath, "config", "", "path to a .mgnx configuration file; its values override flags")
	f.BoolVarP(&mutateOpts.allAlgorithms, "all", "a", false, "use every algorithm the language supports (wins over --mutation)")
	f.StringArrayVar(&mutateOpts.mutations, "mutation", nil, "algorithm tag to use (repeatable)")
	f.IntVar(&mutateOpts.numMutants, "num-mutants", 1, "number of mutants to generate per file")
	f.Int64Var(&mutateOpts.seed, "rng-seed", 0, "seed for the deterministic mutant PRNG")
	f.BoolVar(&mutateOpts.saveConfigFiles, "save-config-files", false, "write a sibling .mgnx capturing the effective invocation")
	f.BoolVar(&mutateOpts.validateMutants, "validate-mutants", false, "recompile every mutant and discard ones that fail")
	f.StringVarP(&mutateOpts.outputDir, "output-directory", "o", ".", "directory mutants are written to")
	f.BoolVar(&mutateOpts.useStdout, "stdout", false, "write mutants to stdout instead of files (wins over -o)")
	f.BoolVar(&mutateOpts.printOriginal, "print-original", false, "also write a pretty-printed copy of the unmodified input")
	f.StringArrayVar(&mutateOpts.functions, "function", nil, "restrict mutation to this function name (repeatable)")

	f.StringVar(&mutateOpts.solidityCompiler, "solidity-compiler", "solc", "path to the solc binary")
	f.StringVar(&mutateOpts.solidityBasePath, "solidity-base-path", "", "solc --base-path")
	f.StringArrayVar(&mutateOpts.solidityIncludes, "solidity-include-path", nil, "solc --include-path (repeatable)")
	f.StringArrayVar(&mutateOpts.solidityAllowPaths, "solidity-allow-path", nil, "solc --allow-paths entry (repeatable, comma-joined)")
	f.StringArrayVar(&mutateOpts.solidityRemappings, "solidity-remapping", nil, "solc import remapping context:prefix=path (repeatable)")

	f.StringVar(&mutateOpts.vyperCompiler, "vyper-compiler", "vyper", "path to the vyper binary")
	f.StringVar(&mutateOpts.vyperRootPath, "vyper-root-path", "", "vyper -p root path")

	f.StringVar(&mutateOpts.ledgerPath, "history-db", "", "record generated mutants to this sqlite ledger")

	rootCmd.AddCommand(mutateCmd)
}

func runMutate(cmd *cobra.Command, args []string) error {
	opts := mutateOpts
	if opts.configPath != "" {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		applyConfig(&opts, cfg)
	}
	if len(opts.files) == 0 {
		return fmt.Errorf("no input files: pass --file or a --config with filenames")
	}
	if !opts.allAlgorithms {
		for _, m := range opts.mutations {
			if _, ok := mutation.Find(mutation.Tag(m)); !ok {
				return fmt.Errorf("%w: unknown mutation algorithm %q", mgxerr.ErrConfigParse, m)
			}
		}
	}

	reg := languages()
	gen, err := generate.New(256)
	if err != nil {
		return err
	}

	var ledger *store.Ledger
	if opts.ledgerPath != "" {
		ledger, err = store.Open(opts.ledgerPath)
		if err != nil {
			return err
		}
		defer ledger.Close()
	}

	ctx := context.Background()
	failed := false

	for _, file := range opts.files {
		if err := mutateOneFile(ctx, reg, gen, ledger, file, opts); err != nil {
			log.Printf("%s: %v", file, err)
			failed = true
		}
	}

	if failed {
		return fmt.Errorf("one or more input files failed to produce mutants")
	}
	return nil
}

func applyConfig(opts *mutateFlags, cfg config.File) {
	if len(cfg.Mutations) > 0 {
		opts.mutations = cfg.Mutations
	}
	if cfg.NumMutants > 0 {
		opts.numMutants = cfg.NumMutants
	}
	if cfg.Seed != nil {
		opts.seed = *cfg.Seed
	}
	if cfg.OutputDirectory != "" {
		opts.outputDir = cfg.OutputDirectory
	}
	if cfg.ValidateMutants {
		opts.validateMutants = true
	}
	if len(cfg.Functions) > 0 {
		opts.functions = cfg.Functions
	}
	if cfg.PrintOriginal {
		opts.printOriginal = true
	}
	if cfg.SaveConfigFiles {
		opts.saveConfigFiles = true
	}
	if cfg.CompilerDetails != nil {
		d := cfg.CompilerDetails
		switch cfg.Language {
		case "solidity":
			if d.Path != "" {
				opts.solidityCompiler = d.Path
			}
			opts.solidityBasePath = d.BasePath
			opts.solidityIncludes = d.IncludePaths
			opts.solidityAllowPaths = d.AllowPaths
			opts.solidityRemappings = d.Remappings
		case "vyper":
			if d.Path != "" {
				opts.vyperCompiler = d.Path
			}
			opts.vyperRootPath = d.RootPath
		}
	}
	opts.files = cfg.FileNames
}

func mutateOneFile(ctx context.Context, reg *language.Registry, gen *generate.Generator, ledger *store.Ledger, file string, opts mutateFlags) error {
	rec, ok := recognizer.Recognize(file)
	if !ok {
		return mgxerr.ErrUnrecognizedInputFile
	}

	lang, ok := reg.Get(rec.Language)
	if !ok {
		return fmt.Errorf("%w: %s", mgxerr.ErrUnsupportedLanguage, rec.Language)
	}

	ast, err := loadAST(ctx, lang, rec, file, opts)
	if err != nil {
		return err
	}

	if opts.printOriginal {
		original, err := lang.PrettyPrint(ctx, ast)
		if err != nil {
			log.Printf("%s: print-original: %v", file, err)
		} else {
			origPath := filepath.Join(opts.outputDir, stem(file)+"_original"+filepath.Ext(file))
			if err := os.WriteFile(origPath, original, 0o644); err != nil {
				log.Printf("%s: write original: %v", file, err)
			}
		}
	}

	genOpts := generate.Options{
		Algorithms:      algorithmSelection(opts, rec.Language),
		NumMutants:      opts.numMutants,
		Seed:            opts.seed,
		OnlyFunctions:   opts.functions,
		ValidateMutants: opts.validateMutants,
		PrintOriginal:   opts.printOriginal,
		OutputDir:       opts.outputDir,
		UseStdout:       opts.useStdout,
	}

	result, err := gen.Generate(ctx, file, ast, lang, genOpts)
	for _, w := range result.Warnings {
		log.Print(w)
	}
	if err != nil {
		return err
	}

	if opts.useStdout {
		for _, m := range result.Mutants {
			fmt.Printf("// mutant %d (%s)\n%s\n", m.Index, m.Algorithm, m.Source)
		}
	} else {
		if err := generate.Write(result); err != nil {
			return err
		}
		for _, m := range result.Mutants {
			fmt.Printf("%s used to create mutant written to %s\n", m.Algorithm, m.OutputPath)
			if opts.saveConfigFiles {
				seed := m.Seed
				sideCfg := config.File{
					FileNames:       []string{file},
					Language:        rec.Language,
					Mutations:       genOpts.Algorithms,
					NumMutants:      genOpts.NumMutants,
					Seed:            &seed,
					OutputDirectory: opts.outputDir,
					ValidateMutants: opts.validateMutants,
				}
				_ = config.Save(strings.TrimSuffix(m.OutputPath, filepath.Ext(m.OutputPath))+".mgnx", sideCfg)
			}
		}
	}

	if ledger != nil {
		if err := ledger.Record(time.Now(), result); err != nil {
			log.Printf("%s: history: %v", file, err)
		}
	}

	return nil
}

func algorithmSelection(opts mutateFlags, lang string) []string {
	if opts.allAlgorithms || len(opts.mutations) == 0 {
		return nil
	}
	valid := make([]string, 0, len(opts.mutations))
	for _, m := range opts.mutations {
		if _, ok := mutation.Find(mutation.Tag(m)); ok {
			valid = append(valid, m)
		}
	}
	return valid
}

func loadAST(ctx context.Context, lang language.MutableLanguage, rec recognizer.Result, file string, opts mutateFlags) (map[string]any, error) {
	if rec.Kind == recognizer.KindAST {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		return jsonast.Decode(data)
	}

	bin, args := sourceCompileArgs(rec.Language, file, opts)
	res, err := compiler.Invoke(ctx, bin, args, nil)
	if err != nil {
		return nil, err
	}
	if !res.OK {
		return nil, &mgxerr.CompilerError{Path: bin, Stderr: res.Stderr}
	}
	ast, err := jsonast.Decode([]byte(res.Stdout))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mgxerr.ErrMalformedAst, err)
	}
	return ast, nil
}

// sourceCompileArgs builds the compiler invocation for turning source into
// a JSON AST, honoring the per-language path/include/remapping flags §6.4
// names. This is the one place mutate needs a richer invocation than
// language.MutableLanguage.CompileArgs, which only checks a mutant compiles.
func sourceCompileArgs(lang, file string, opts mutateFlags) (string, []string) {
	switch lang {
	case "solidity":
		args := []string{"--ast-compact-json"}
		if opts.solidityBasePath != "" {
			args = append(args, "--base-path", opts.solidityBasePath)
		}
		for _, p := range opts.solidityIncludes {
			args = append(args, "--include-path", p)
		}
		if len(opts.solidityAllowPaths) > 0 {
			args = append(args, "--allow-paths", strings.Join(opts.solidityAllowPaths, ","))
		}
		args = append(args, opts.solidityRemappings...)
		args = append(args, file)
		return opts.solidityCompiler, args
	case "vyper":
		args := []string{"-f", "ast"}
		if opts.vyperRootPath != "" {
			args = append(args, "-p", opts.vyperRootPath)
		}
		args = append(args, file)
		return opts.vyperCompiler, args
	default:
		return lang, []string{file}
	}
}

func stem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext)
}
