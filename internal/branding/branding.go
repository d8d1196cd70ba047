// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml at the repo root, then run `make build`.
// The Makefile syncs branding.yaml into this package before compilation,
// and Go's //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	RepoURL     string `yaml:"repo_url"`
	SlicerName  string `yaml:"slicer_name"`
}

func load() {
	once.Do(func() {
		defaults = loadBrand(rawBranding)
	})
}

// loadBrand overlays YAML values onto the hard-coded defaults, so the
// binary still has an identity when the embedded file is missing or empty.
func loadBrand(raw []byte) brand {
	b := brand{
		CLIName:     "filadex",
		DisplayName: "Filadex",
		Description: "Filament profile manager for Bambu Studio",
		HomeDir:     ".filadex",
		EnvPrefix:   "FILADEX",
		GoModule:    "github.com/filadex-labs/filadex",
		GitHubRepo:  "filadex-labs/filadex",
		RepoURL:     "https://github.com/filadex-labs/filadex",
		SlicerName:  "BambuStudio",
	}
	_ = yaml.Unmarshal(raw, &b)
	return b
}

// CLIName returns the root command name (e.g., "filadex").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Filadex").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".filadex").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "FILADEX").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by scripts/rebrand.sh — not
// consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string (e.g., "filadex-labs/filadex").
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// RepoURL returns the canonical repository URL. Profiles whose provenance
// metadata carries this URL are recognized as managed.
func RepoURL() string { load(); return defaults.RepoURL }

// SlicerName returns the slicer application's data directory name
// (e.g., "BambuStudio").
func SlicerName() string { load(); return defaults.SlicerName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "FILADEX_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
