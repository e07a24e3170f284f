// Package recognizer maps an input path to the language and file kind
// mutagenyx should treat it as: an extension table first, with a light
// content sniff for files an extension can't resolve.
package recognizer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// FileKind distinguishes the two kinds of input mutagenyx accepts: raw
// source it must compile to JSON itself, or an already-compiled JSON AST.
type FileKind int

const (
	KindUnknown FileKind = iota
	KindSource
	KindAST
	KindConfig
)

// Result names what Recognize found.
type Result struct {
	Language string // "solidity" or "vyper"
	Kind     FileKind
}

var extLanguage = map[string]string{
	".sol": "solidity",
	".vy":  "vyper",
}

var astExt = map[string]string{
	".solast":  "solidity",
	".vyast":   "vyper",
	".ast.json": "",
}

// Recognize inspects path's extension, and failing that its content, to
// decide what language and file kind it represents. It returns ok=false
// (mgxerr.ErrUnrecognizedInputFile is the caller's to raise) when neither
// resolves it.
func Recognize(path string) (Result, bool) {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".mgnx" {
		return Result{Kind: KindConfig}, true
	}
	if lang, ok := extLanguage[ext]; ok {
		return Result{Language: lang, Kind: KindSource}, true
	}
	if lang, ok := astExt[ext]; ok && lang != "" {
		return Result{Language: lang, Kind: KindAST}, true
	}
	if ext == ".json" {
		if lang, ok := sniffJSON(path); ok {
			return Result{Language: lang, Kind: KindAST}, true
		}
	}

	// No extension match: sniff the first few hundred bytes for a
	// language-identifying pragma, the same way a tree-sitter-backed
	// walker would fall back to grammar detection for an extensionless
	// file.
	if lang, ok := sniffSource(path); ok {
		return Result{Language: lang, Kind: KindSource}, true
	}

	return Result{}, false
}

func sniffSource(path string) (string, bool) {
	head, err := readHead(path, 4096)
	if err != nil {
		return "", false
	}
	switch {
	case bytes.Contains(head, []byte("pragma solidity")):
		return "solidity", true
	case bytes.Contains(head, []byte("@version")) && bytes.Contains(head, []byte("def ")):
		return "vyper", true
	}
	return "", false
}

func sniffJSON(path string) (string, bool) {
	head, err := readHead(path, 4096)
	if err != nil {
		return "", false
	}
	switch {
	case bytes.Contains(head, []byte(`"nodeType"`)) && bytes.Contains(head, []byte(`"SourceUnit"`)):
		return "solidity", true
	case bytes.Contains(head, []byte(`"ast_type"`)) && bytes.Contains(head, []byte(`"Module"`)):
		return "vyper", true
	}
	return "", false
}

func readHead(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf := make([]byte, n)
	m, err := f.Read(buf)
	if err != nil && m == 0 {
		return nil, err
	}
	return buf[:m], nil
}
