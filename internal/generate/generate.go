// Package generate implements the two-pass mutant generation algorithm:
// count every legal mutation site for the requested algorithms, then draw
// sites without replacement from a seeded random stream until the
// requested mutant count is reached or the AST runs out of sites.
package generate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/RoaringBitmap/roaring"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/mutagenyx/mutagenyx/internal/astkit"
	"github.com/mutagenyx/mutagenyx/internal/compiler"
	"github.com/mutagenyx/mutagenyx/internal/jsonast"
	"github.com/mutagenyx/mutagenyx/internal/language"
	"github.com/mutagenyx/mutagenyx/internal/mgxerr"
	"github.com/mutagenyx/mutagenyx/internal/visitor"
	"github.com/mutagenyx/mutagenyx/internal/writeback"
)

// Options configures one call to Generate. It mirrors the fields a .mgnx
// config file or the `mutate` CLI flags can supply.
type Options struct {
	// Algorithms restricts mutation to these tags. Empty means every
	// algorithm the language supports.
	Algorithms []string

	NumMutants int
	Seed       int64

	// OnlyFunctions restricts mutation sites to these function names.
	// Empty means no restriction.
	OnlyFunctions []string

	ValidateMutants bool
	PrintOriginal   bool

	// OutputDir names the directory mutant files are written to. Ignored
	// when UseStdout is true.
	OutputDir string
	UseStdout bool
}

// MutantRecord describes one generated mutant.
type MutantRecord struct {
	InputFile  string
	Algorithm  string
	Seed       int64
	Index      int
	Comment    string
	Source     []byte
	OutputPath string // empty when written to stdout
}

// FileResult carries everything Generate produced for one input file,
// including non-fatal warnings the caller should surface (a reduced mutant
// count, a dropped comment, a discarded invalid mutant).
type FileResult struct {
	InputFile string
	Mutants   []MutantRecord
	Warnings  []string
}

// Generator runs the mutation pipeline against a decoded AST. It owns a
// validate-mutants recompile cache shared across every file in a batch, so
// two mutants that happen to render identical source text only pay for one
// compiler invocation.
type Generator struct {
	validateCache *lru.Cache[string, bool]
}

// New builds a Generator. validateCacheSize bounds how many distinct mutant
// source hashes it remembers the compile result for.
func New(validateCacheSize int) (*Generator, error) {
	if validateCacheSize <= 0 {
		validateCacheSize = 256
	}
	cache, err := lru.New[string, bool](validateCacheSize)
	if err != nil {
		return nil, err
	}
	return &Generator{validateCache: cache}, nil
}

// Generate runs the full pipeline for a single input file's AST: count
// mutable nodes, sample sites without replacement, mutate a clone per
// draw, insert a comment, pretty-print, and optionally validate by
// recompiling. inputFile is used only to derive output file names and
// populate MutantRecord.InputFile.
func (g *Generator) Generate(ctx context.Context, inputFile string, ast map[string]any, lang language.MutableLanguage, opts Options) (FileResult, error) {
	result := FileResult{InputFile: inputFile}

	algorithms := selectAlgorithms(lang.Algorithms(), opts.Algorithms)

	perm := astkit.Permissions{
		OnlyFunctions: toSet(opts.OnlyFunctions),
	}

	counter := visitor.NewMutableNodesCounter(lang.Namer(), lang.Id(), lang.Permit(), algorithms)
	sites := counter.Count(ast, perm)
	if len(sites) == 0 {
		return result, mgxerr.ErrNoMutableNodes
	}
	logSiteBreakdown(sites)

	target := opts.NumMutants
	if target > len(sites) {
		msg := fmt.Sprintf("reached the limit of mutable nodes in the AST, lowering requested mutants by %d to %d", target-len(sites), len(sites))
		log.Print(msg)
		result.Warnings = append(result.Warnings, msg)
		target = len(sites)
	}
	if target <= 0 {
		return result, nil
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	// remaining holds the index, into sites, of every site not yet drawn.
	// Each draw picks a uniformly random rank among the bits still set and
	// selects the site at that rank, giving sampling without replacement
	// over an arbitrarily large site count without ever materializing a
	// permutation of all of them up front.
	remaining := roaring.New()
	for i := range sites {
		remaining.Add(uint32(i))
	}

	maker := visitor.NewMutationMaker(lang.Namer(), lang.Id(), algorithms)
	finder := lang.NodeFinder()
	commenters := lang.Commenters()

	seenSource := make(map[string]bool)
	maxAttempts := 10 * target
	attempts := 0
	produced := 0

	stem := stemOf(inputFile)
	ext := filepath.Ext(inputFile)
	if ext == "" && len(lang.Extensions()) > 0 {
		ext = lang.Extensions()[0]
	}

	var retryIdx uint32
	retrying := false

	for produced < target && !remaining.IsEmpty() && attempts < maxAttempts {
		var idx uint32
		if retrying {
			idx = retryIdx
			retrying = false
		} else {
			rank := uint32(rng.Intn(int(remaining.GetCardinality())))
			selected, err := remaining.Select(rank)
			if err != nil {
				break
			}
			idx = selected
		}
		site := sites[idx]

		cloned, ok := jsonast.DeepClone(ast).(map[string]any)
		if !ok {
			remaining.Remove(idx)
			attempts++
			continue
		}

		steps, description, ok := maker.Make(cloned, site, rng)
		if !ok || description == "" {
			remaining.Remove(idx)
			attempts++
			continue
		}

		commentText := fmt.Sprintf("%s Mutator: %s", site.Algorithm, description)
		if !jsonast.InsertCommentByPath(steps, commentText, finder, lang.Namer(), commenters) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", site.Algorithm, mgxerr.ErrNoLegalCommentSite))
		}

		source, err := lang.PrettyPrint(ctx, cloned)
		if err != nil {
			remaining.Remove(idx)
			attempts++
			continue
		}

		key := hashSource(source)
		if seenSource[key] {
			// A SiteMultiplicity algorithm (e.g. LinesSwap) may represent
			// one node as several sites; a draw landing on an outcome
			// already produced doesn't mean the site is exhausted, so
			// retry it rather than removing it from the pool.
			retryIdx = idx
			retrying = true
			attempts++
			continue
		}

		if opts.ValidateMutants {
			if err := g.validate(ctx, lang, source, key); err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("discarded mutant: %v", err))
				remaining.Remove(idx)
				attempts++
				continue
			}
		}

		seenSource[key] = true
		remaining.Remove(idx)

		record := MutantRecord{
			InputFile: inputFile,
			Algorithm: site.Algorithm,
			Seed:      opts.Seed,
			Index:     produced,
			Comment:   commentText,
			Source:    source,
		}
		if !opts.UseStdout {
			record.OutputPath = filepath.Join(opts.OutputDir, fmt.Sprintf("%s_%s_%d%s", stem, site.Algorithm, produced, ext))
		}
		result.Mutants = append(result.Mutants, record)
		produced++
	}

	if opts.ValidateMutants && produced < target && attempts >= maxAttempts {
		return result, mgxerr.ErrValidationExhausted
	}

	return result, nil
}

// Write flushes every mutant in result to disk (or stdout, handled by the
// caller before this if UseStdout was requested) using an atomic
// temp-file-then-rename write, so a reader never observes a half-written
// mutant file.
func Write(result FileResult) error {
	for _, m := range result.Mutants {
		if m.OutputPath == "" {
			continue
		}
		if err := writeback.WriteFile(m.OutputPath, m.Source, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) validate(ctx context.Context, lang language.MutableLanguage, source []byte, key string) error {
	if ok, hit := g.validateCache.Get(key); hit {
		if ok {
			return nil
		}
		return &mgxerr.SourceDoesNotCompileError{Path: "<cached>"}
	}

	scratch, err := os.MkdirTemp("", "mgx-validate-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratch)

	fs := osfs.New(scratch)
	name := "candidate" + candidateExt(lang)
	if err := util.WriteFile(fs, name, source, 0o644); err != nil {
		return err
	}

	bin, args := lang.CompileArgs(filepath.Join(scratch, name))
	err = compiler.Validate(ctx, bin, args, fs)
	g.validateCache.Add(key, err == nil)
	return err
}

func candidateExt(lang language.MutableLanguage) string {
	if exts := lang.Extensions(); len(exts) > 0 {
		return exts[0]
	}
	return ""
}

func hashSource(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}

func selectAlgorithms(all []visitor.Algorithm, requested []string) []visitor.Algorithm {
	if len(requested) == 0 {
		return all
	}
	want := toSet(requested)
	out := make([]visitor.Algorithm, 0, len(all))
	for _, a := range all {
		if want[a.Tag()] {
			out = append(out, a)
		}
	}
	return out
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	out := make(map[string]bool, len(items))
	for _, s := range items {
		out[s] = true
	}
	return out
}

// logSiteBreakdown reports how many sites each algorithm found.
func logSiteBreakdown(sites []visitor.Site) {
	byAlgorithm := make(map[string]int)
	for _, s := range sites {
		byAlgorithm[s.Algorithm]++
	}
	log.Printf("AST supports %d candidate mutations across %d algorithms", len(sites), len(byAlgorithm))
	for algorithm, count := range byAlgorithm {
		log.Printf("  %s: %d site(s)", algorithm, count)
	}
}

func stemOf(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return base[:len(base)-len(ext)]
}
