// Package meta reads the provenance metadata block optionally embedded in
// managed profile files. A present block is a higher-confidence ownership
// signal than wildcard name matching, but it never replaces the registry's
// declared profile lists for reconciliation.
package meta

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/filadex-labs/filadex/internal/branding"
)

// Key is the fixed top-level field under which managed profiles carry
// their provenance block.
const Key = "filadex_metadata"

// Block is the provenance record written into managed profile files.
type Block struct {
	Repository    string `json:"repository"`
	RepositoryURL string `json:"repository_url"`
	Version       string `json:"version"`
	Printer       string `json:"printer"`
	Vendor        string `json:"vendor"`
	LastUpdated   string `json:"last_updated"`
	Tested        string `json:"tested"`
}

// Read parses the profile file at path and returns its provenance block,
// or (nil, nil) when the file carries none. An unparsable file is an error;
// a missing block is not.
func Read(path string) (*Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	blockRaw, ok := raw[Key]
	if !ok {
		return nil, nil
	}

	var b Block
	if err := json.Unmarshal(blockRaw, &b); err != nil {
		return nil, fmt.Errorf("parsing %s block in %s: %w", Key, path, err)
	}
	return &b, nil
}

// Managed reports whether the block names this repository as the profile's
// managing repository, by either the "owner/repo" form or the full URL.
func (b *Block) Managed() bool {
	if b == nil {
		return false
	}
	return b.Repository == branding.GitHubRepo() || b.RepositoryURL == branding.RepoURL()
}

// OlderThan reports whether the block's version is older than the given
// build version. Both sides tolerate a leading "v". Non-semver versions
// (including the "dev" build default) report an error and the caller
// treats the profile as current.
func (b *Block) OlderThan(buildVersion string) (bool, error) {
	bv, err := parseSemver(b.Version)
	if err != nil {
		return false, fmt.Errorf("parsing profile version %q: %w", b.Version, err)
	}
	cv, err := parseSemver(buildVersion)
	if err != nil {
		return false, fmt.Errorf("parsing build version %q: %w", buildVersion, err)
	}
	return bv.LessThan(cv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
