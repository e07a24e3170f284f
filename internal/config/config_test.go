package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "run.mgnx")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}
	return path
}

func TestLoadRejectsNonMgnxExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")
	_ = os.WriteFile(path, []byte(`{"filenames": ["a.sol"]}`), 0o644)

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error loading a non-.mgnx file")
	}
}

func TestLoadParsesFullDocument(t *testing.T) {
	path := writeConfig(t, `{
		"filenames": ["Token.sol"],
		"functions": ["transfer"],
		"language": "solidity",
		"mutations": ["ArithmeticBinaryOp", "Integer"],
		"num-mutants": 5,
		"seed": 42,
		"validate-mutants": true,
		"compiler-details": {
			"path": "solc",
			"base-path": ".",
			"include-paths": ["node_modules"]
		}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.FileNames) != 1 || cfg.FileNames[0] != "Token.sol" {
		t.Fatalf("unexpected filenames: %v", cfg.FileNames)
	}
	if len(cfg.Functions) != 1 || cfg.Functions[0] != "transfer" {
		t.Fatalf("unexpected functions: %v", cfg.Functions)
	}
	if cfg.NumMutants != 5 {
		t.Fatalf("unexpected num-mutants: %d", cfg.NumMutants)
	}
	if cfg.Seed == nil || *cfg.Seed != 42 {
		t.Fatalf("unexpected seed: %v", cfg.Seed)
	}
	if !cfg.ValidateMutants {
		t.Fatal("expected validate-mutants to be true")
	}
	if cfg.CompilerDetails == nil || cfg.CompilerDetails.Path != "solc" {
		t.Fatalf("unexpected compiler-details: %+v", cfg.CompilerDetails)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `{"filenames": ["a.sol"], "not-a-real-key": true}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error decoding a config with an unknown key")
	}
}

func TestLoadRequiresFileNames(t *testing.T) {
	path := writeConfig(t, `{"language": "solidity"}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error decoding a config with no filenames")
	}
}

func TestLoadRejectsMgnxAsInputFile(t *testing.T) {
	path := writeConfig(t, `{"filenames": ["other.mgnx"]}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error when filenames includes a .mgnx file")
	}
}

func TestSaveRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.mgnx")
	seed := int64(7)
	original := File{
		FileNames:  []string{"Token.sol"},
		Mutations:  []string{"Integer"},
		NumMutants: 3,
		Seed:       &seed,
	}

	if err := Save(path, original); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if loaded.NumMutants != 3 || *loaded.Seed != 7 {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}
