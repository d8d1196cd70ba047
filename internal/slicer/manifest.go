package slicer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/filadex-labs/filadex/internal/platform"
)

// filamentListKey is the only top-level manifest field this tool touches.
const filamentListKey = "filament_list"

// Entry is one registered profile in the slicer manifest: a display name
// and a path relative to the slicer data directory.
type Entry struct {
	Name    string `json:"name"`
	SubPath string `json:"sub_path"`
}

// Manifest holds the slicer's filament list plus every other top-level
// field as raw JSON, so a load/save cycle preserves fields this tool does
// not understand.
type Manifest struct {
	FilamentList []Entry

	extra map[string]json.RawMessage
}

// ManifestPath returns the manifest file location under appDataDir.
func ManifestPath(appDataDir string) string {
	return filepath.Join(appDataDir, ManifestFileName)
}

// LoadManifest reads the slicer manifest from appDataDir. Absence is a hard
// failure (errors.Is(err, fs.ErrNotExist)): without the manifest there is
// no installed state to reconcile against.
func LoadManifest(appDataDir string) (*Manifest, error) {
	path := ManifestPath(appDataDir)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading slicer manifest %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing slicer manifest %s: %w", path, err)
	}

	m := &Manifest{extra: raw}
	if list, ok := raw[filamentListKey]; ok {
		if err := json.Unmarshal(list, &m.FilamentList); err != nil {
			return nil, fmt.Errorf("parsing %s in %s: %w", filamentListKey, path, err)
		}
		delete(raw, filamentListKey)
	}
	return m, nil
}

// Save writes the manifest back to appDataDir, re-attaching the untouched
// top-level fields verbatim.
func (m *Manifest) Save(appDataDir string) error {
	raw := make(map[string]json.RawMessage, len(m.extra)+1)
	for k, v := range m.extra {
		raw[k] = v
	}

	list, err := json.Marshal(m.FilamentList)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filamentListKey, err)
	}
	raw[filamentListKey] = list

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling slicer manifest: %w", err)
	}
	data = append(data, '\n')

	path := ManifestPath(appDataDir)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing slicer manifest %s: %w", path, err)
	}
	return nil
}

// HasName reports whether any entry carries the given profile name.
func (m *Manifest) HasName(name string) bool {
	for _, e := range m.FilamentList {
		if e.Name == name {
			return true
		}
	}
	return false
}

// Resolve joins an entry's sub_path onto the slicer data directory.
func (e Entry) Resolve(appDataDir string) string {
	return filepath.Join(appDataDir, filepath.FromSlash(e.SubPath))
}

// Exists reports whether the entry's resolved file is present on disk.
func (e Entry) Exists(appDataDir string) bool {
	return platform.FileExists(e.Resolve(appDataDir))
}
