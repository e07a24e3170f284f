// Package mgxerr collects the named error kinds the mutation engine and its
// collaborators can produce, mirroring the MutagenyxError enumeration this
// tool's design is grounded on.
package mgxerr

import "fmt"

var (
	// ErrUnrecognizedInputFile is returned when the recognizer cannot map a
	// path to a known language, AST, or config file.
	ErrUnrecognizedInputFile = fmt.Errorf("unrecognized input file")

	// ErrUnsupportedLanguage is returned when a language tag has no
	// registered MutableLanguage.
	ErrUnsupportedLanguage = fmt.Errorf("unsupported language")

	// ErrCompilerNotFound is returned when the configured compiler binary
	// cannot be located or executed.
	ErrCompilerNotFound = fmt.Errorf("compiler not found")

	// ErrMalformedAst is returned when compiler JSON output does not parse
	// or does not have the shape a language binding expects.
	ErrMalformedAst = fmt.Errorf("malformed AST")

	// ErrNoMutableNodes is returned when an AST has zero mutation sites for
	// the requested algorithm set.
	ErrNoMutableNodes = fmt.Errorf("AST does not contain any mutable node for requested mutations")

	// ErrUnsupportedNodeKind names a node kind a printer has no case for.
	// The Solidity and Vyper printers skip such nodes and do not return it.
	ErrUnsupportedNodeKind = fmt.Errorf("unsupported node kind")

	// ErrMissingNodeId names an AST node that carries no id. astkit.Id
	// reports that case with a false result, so raising this error is left
	// to the caller.
	ErrMissingNodeId = fmt.Errorf("AST node has no id")

	// ErrNoLegalCommentSite is a non-fatal condition: no ancestor between the
	// AST root and the mutated node offered a legal comment insertion point.
	ErrNoLegalCommentSite = fmt.Errorf("no legal comment insertion site")

	// ErrValidationExhausted is returned when --validate-mutants retries are
	// exhausted without producing a compiling mutant.
	ErrValidationExhausted = fmt.Errorf("validation retries exhausted")

	// ErrConfigParse is returned when a .mgnx file fails to decode.
	ErrConfigParse = fmt.Errorf("configuration parse error")

	// ErrConfigExtensionRejected is returned when a file offered as a config
	// file does not carry the .mgnx extension.
	ErrConfigExtensionRejected = fmt.Errorf("configuration file extension rejected")
)

// CompilerError wraps the stderr output of a failed compiler invocation.
type CompilerError struct {
	Path   string
	Stderr string
}

func (e *CompilerError) Error() string {
	return fmt.Sprintf("compiler error running %s: %s", e.Path, e.Stderr)
}

// AlgorithmNotSupportedError indicates a language binding has no mutator for
// the requested algorithm tag.
type AlgorithmNotSupportedError struct {
	Tag      string
	Language string
}

func (e *AlgorithmNotSupportedError) Error() string {
	return fmt.Sprintf("language %s does not support mutation algorithm %s", e.Language, e.Tag)
}

// SourceDoesNotCompileError indicates a mutant failed the --validate-mutants
// recompile check.
type SourceDoesNotCompileError struct {
	Path string
}

func (e *SourceDoesNotCompileError) Error() string {
	return fmt.Sprintf("source file %s would not compile", e.Path)
}

// ConfigMissingKeyError indicates a required key was absent from a decoded
// config file.
type ConfigMissingKeyError struct {
	Path string
	Keys []string
}

func (e *ConfigMissingKeyError) Error() string {
	return fmt.Sprintf("configuration file %s does not have keys: %v", e.Path, e.Keys)
}
