// Package language defines the MutableLanguage contract every supported
// smart contract language implements, and the small registry mutagenyx
// dispatches through once a file has been recognized.
package language

import (
	"context"

	"github.com/mutagenyx/mutagenyx/internal/astkit"
	"github.com/mutagenyx/mutagenyx/internal/jsonast"
	"github.com/mutagenyx/mutagenyx/internal/visitor"
)

// MutableLanguage bundles everything the mutation pipeline needs to work
// with one compiler's AST: how to name and identify nodes, how to gate
// visiting and mutating them, which mutation algorithms it supports, and
// how to turn a mutated AST back into source text.
type MutableLanguage interface {
	// Name is the language tag used in config files and CLI flags, e.g.
	// "solidity" or "vyper".
	Name() string

	// Extensions lists the source file extensions this language claims,
	// e.g. [".sol"].
	Extensions() []string

	Namer() astkit.Namer
	Id() astkit.Id
	Permit() astkit.Permit

	// Algorithms returns every mutation algorithm this language supports,
	// generic and language-specific.
	Algorithms() []visitor.Algorithm

	// PrettyPrint renders a decoded AST back to source text.
	PrettyPrint(ctx context.Context, ast map[string]any) ([]byte, error)

	// CompileArgs builds the compiler invocation for validating a
	// candidate mutant's source file at path.
	CompileArgs(path string) (bin string, args []string)

	// NodeFinder locates the statement-list field a comment can be
	// spliced into for a given ancestor node kind.
	NodeFinder() jsonast.NodeFinder

	// Commenters resolves the Commenter for a given ancestor node kind.
	Commenters() jsonast.CommenterFactory
}

// Registry looks up a MutableLanguage by name.
type Registry struct {
	byName map[string]MutableLanguage
}

// NewRegistry builds a Registry from the given languages.
func NewRegistry(languages ...MutableLanguage) *Registry {
	r := &Registry{byName: make(map[string]MutableLanguage, len(languages))}
	for _, l := range languages {
		r.byName[l.Name()] = l
	}
	return r
}

// Get returns the MutableLanguage registered under name.
func (r *Registry) Get(name string) (MutableLanguage, bool) {
	l, ok := r.byName[name]
	return l, ok
}

// ExtensionOf returns the language whose Extensions() contains ext
// (dot-prefixed, e.g. ".sol").
func (r *Registry) ExtensionOf(ext string) (MutableLanguage, bool) {
	for _, l := range r.byName {
		for _, e := range l.Extensions() {
			if e == ext {
				return l, true
			}
		}
	}
	return nil, false
}
