package reconcile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/filadex-labs/filadex/internal/registry"
	"github.com/filadex-labs/filadex/internal/slicer"
)

// OrphanedFile is a file sitting in a vendor's destination directory,
// matching that vendor's filename glob, that no manifest entry references.
type OrphanedFile struct {
	Printer string
	Vendor  string
	Path    string
}

// OrphanedFiles sweeps every vendor entry's destination directory for files
// matching the vendor's filename glob that are not referenced by any
// installed profile. The set difference is O(files × installed) per vendor,
// which is fine at tens of files.
func OrphanedFiles(doc registry.Document, man *slicer.Manifest, appDataDir string) ([]OrphanedFile, error) {
	installed := Installed(doc, man, appDataDir, Filter{})

	referenced := make(map[string]bool, len(installed))
	for _, p := range installed {
		referenced[p.Path] = true
	}

	var orphans []OrphanedFile
	for _, e := range doc.AllEntries() {
		destDir := filepath.Join(appDataDir, filepath.FromSlash(e.DestinationPath))

		files, err := os.ReadDir(destDir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading destination %s: %w", destDir, err)
		}

		glob := e.FileGlob()
		for _, f := range files {
			if f.IsDir() || !registry.MatchesPattern(glob, f.Name()) {
				continue
			}
			path := filepath.Join(destDir, f.Name())
			if referenced[path] {
				continue
			}
			orphans = append(orphans, OrphanedFile{
				Printer: e.Printer,
				Vendor:  e.Vendor,
				Path:    path,
			})
		}
	}
	return orphans, nil
}
