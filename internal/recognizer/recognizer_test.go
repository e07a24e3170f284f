package recognizer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRecognizeByExtension(t *testing.T) {
	cases := []struct {
		path string
		want Result
	}{
		{"Token.sol", Result{Language: "solidity", Kind: KindSource}},
		{"token.vy", Result{Language: "vyper", Kind: KindSource}},
		{"run.mgnx", Result{Kind: KindConfig}},
		{"Token.solast", Result{Language: "solidity", Kind: KindAST}},
		{"token.vyast", Result{Language: "vyper", Kind: KindAST}},
	}
	for _, c := range cases {
		got, ok := Recognize(c.path)
		if !ok {
			t.Fatalf("Recognize(%q): expected ok=true", c.path)
		}
		if got != c.want {
			t.Fatalf("Recognize(%q) = %+v, want %+v", c.path, got, c.want)
		}
	}
}

func TestRecognizeUnknownExtensionFails(t *testing.T) {
	if _, ok := Recognize("notes.txt"); ok {
		t.Fatal("expected Recognize to fail on an unrecognized extension with no matching content")
	}
}

func TestRecognizeSniffsSolidityPragma(t *testing.T) {
	path := writeTemp(t, "contract", "pragma solidity ^0.8.0;\ncontract C {}\n")
	got, ok := Recognize(path)
	if !ok || got.Language != "solidity" || got.Kind != KindSource {
		t.Fatalf("Recognize(%q) = %+v, %v, want solidity source", path, got, ok)
	}
}

func TestRecognizeSniffsVyperSource(t *testing.T) {
	path := writeTemp(t, "contract", "# @version 0.3.7\ndef transfer():\n    pass\n")
	got, ok := Recognize(path)
	if !ok || got.Language != "vyper" || got.Kind != KindSource {
		t.Fatalf("Recognize(%q) = %+v, %v, want vyper source", path, got, ok)
	}
}

func TestRecognizeSniffsSolidityCompactJSON(t *testing.T) {
	path := writeTemp(t, "ast", `{"nodeType": "SourceUnit", "nodes": []}`)
	renamed := path[:len(path)-len(filepath.Ext(path))] + ".json"
	if err := os.Rename(path, renamed); err != nil {
		t.Fatalf("rename: %v", err)
	}
	got, ok := Recognize(renamed)
	if !ok || got.Language != "solidity" || got.Kind != KindAST {
		t.Fatalf("Recognize(%q) = %+v, %v, want solidity AST", renamed, got, ok)
	}
}

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}
