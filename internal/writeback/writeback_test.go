package writeback

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileCreatesDirectoriesAndContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "mutant.sol")

	if err := WriteFile(path, []byte("contract C {}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "contract C {}\n" {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestWriteFileOverwritesExistingContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mutant.sol")

	if err := WriteFile(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := WriteFile(path, []byte("second"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("expected overwritten content, got %q", data)
	}
}

func TestWriteFileLeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mutant.sol")

	if err := WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "mutant.sol" {
		t.Fatalf("expected only mutant.sol in %s, got %v", dir, entries)
	}
}
