// Package config loads mutagenyx's .mgnx configuration files: JSON
// documents that can supply every flag `mutagenyx mutate` also accepts on
// the command line, so a mutation run is reproducible without retyping a
// long argument list.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mutagenyx/mutagenyx/internal/mgxerr"
)

// CompilerDetails carries the compiler-details object §6.2 describes:
// a path common to every language, plus Solidity- or Vyper-specific
// extras. Fields irrelevant to the configured language are left zero.
type CompilerDetails struct {
	Path         string   `json:"path,omitempty"`
	BasePath     string   `json:"base-path,omitempty"`
	IncludePaths []string `json:"include-paths,omitempty"`
	AllowPaths   []string `json:"allow-paths,omitempty"`
	Remappings   []string `json:"remappings,omitempty"`
	RootPath     string   `json:"root-path,omitempty"`
}

// File is the decoded shape of a .mgnx file. Its fields mirror the
// `mutagenyx mutate` flags; a key set in a config file overrides the same
// flag passed on the command line.
type File struct {
	CompilerDetails *CompilerDetails `json:"compiler-details,omitempty"`
	FileNames       []string         `json:"filenames"`
	Functions       []string         `json:"functions,omitempty"`
	Language        string           `json:"language,omitempty"`
	Mutations       []string         `json:"mutations,omitempty"`
	NumMutants      int              `json:"num-mutants,omitempty"`
	Seed            *int64           `json:"seed,omitempty"`
	ValidateMutants bool             `json:"validate-mutants,omitempty"`

	// The remaining keys aren't part of §6.2's table but round-trip the
	// rest of a `mutate` invocation so --save-config-files reproduces it
	// exactly.
	OutputDirectory string `json:"output-directory,omitempty"`
	PrintOriginal   bool   `json:"print-original,omitempty"`
	SaveConfigFiles bool   `json:"save-config-files,omitempty"`
}

// Load decodes path as a .mgnx file, rejecting the extension and unknown
// keys the same way the CLI rejects a malformed invocation.
func Load(path string) (File, error) {
	if strings.ToLower(filepath.Ext(path)) != ".mgnx" {
		return File{}, fmt.Errorf("%w: %s", mgxerr.ErrConfigExtensionRejected, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("%w: %v", mgxerr.ErrConfigParse, err)
	}
	defer f.Close()
	return decode(f, path)
}

func decode(r io.Reader, path string) (File, error) {
	var cfg File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return File{}, fmt.Errorf("%w: %s: %v", mgxerr.ErrConfigParse, path, err)
	}
	if len(cfg.FileNames) == 0 {
		return File{}, &mgxerr.ConfigMissingKeyError{Path: path, Keys: []string{"filenames"}}
	}
	for _, name := range cfg.FileNames {
		if strings.ToLower(filepath.Ext(name)) == ".mgnx" {
			return File{}, fmt.Errorf("%w: filenames must not include a .mgnx file", mgxerr.ErrConfigParse)
		}
	}
	return cfg, nil
}

// Save writes cfg back to path as a .mgnx file, used by
// --save-config-files so a generated mutant carries the exact
// configuration that produced it.
func Save(path string, cfg File) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
