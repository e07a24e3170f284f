// Package compiler invokes a language's compiler binary against a
// candidate mutant's source file, the way tools/fuzz-gen shelled out to
// `go test -fuzz` against a mutated Go file: a context-bounded
// os/exec.CommandContext with captured stdout/stderr.
package compiler

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/go-git/go-billy/v5"

	"github.com/mutagenyx/mutagenyx/internal/mgxerr"
)

// DefaultTimeout bounds a single compiler invocation, so a hung compiler
// process (or a compiler that spins on a maliciously mutated input) can't
// stall an entire mutation-generation run.
const DefaultTimeout = 30 * time.Second

// Result carries a compiler invocation's outcome.
type Result struct {
	OK     bool
	Stdout string
	Stderr string
}

// Invoke runs bin with args, using scratch's root as the working directory
// when scratch is non-nil; it writes no files there itself. It returns
// mgxerr.ErrCompilerNotFound if bin can't be located.
func Invoke(ctx context.Context, bin string, args []string, scratch billy.Filesystem) (Result, error) {
	if _, err := exec.LookPath(bin); err != nil {
		return Result{}, fmt.Errorf("%w: %s", mgxerr.ErrCompilerNotFound, bin)
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, args...)
	if scratch != nil {
		cmd.Dir = scratch.Root()
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{OK: err == nil, Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		return res, fmt.Errorf("compiler %s timed out after %s", bin, DefaultTimeout)
	}
	return res, nil
}

// Validate runs bin/args and turns a non-zero exit into a
// mgxerr.CompilerError carrying the captured stderr.
func Validate(ctx context.Context, bin string, args []string, scratch billy.Filesystem) error {
	res, err := Invoke(ctx, bin, args, scratch)
	if err != nil {
		return err
	}
	if !res.OK {
		return &mgxerr.CompilerError{Path: bin, Stderr: res.Stderr}
	}
	return nil
}
