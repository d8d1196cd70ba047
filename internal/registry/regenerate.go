package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/filadex-labs/filadex/internal/report"
)

// excludedDirNames are top-level directories never treated as printers.
var excludedDirNames = map[string]bool{
	"testdata": true,
}

func excludedDir(name string) bool {
	return excludedDirNames[name] || strings.HasPrefix(name, ".")
}

// RegenerateFromDisk rescans the profile tree rooted at profilesRoot and
// folds the result into doc. Every non-excluded subdirectory is a printer,
// every subdirectory of a printer is a vendor, and a vendor counts only if
// it carries a bbl_json_entries.json file. Existing entries get their count
// and profiles refreshed with every other field preserved; unknown vendors
// get a new entry with auto-derived wildcard patterns. Vendors that vanish
// from disk are NOT pruned: rescan only ever accrues.
//
// Warnings (unreadable vendor dirs, missing entries files) go to sum/w and
// do not stop the scan.
func RegenerateFromDisk(profilesRoot string, doc Document, sum *report.Summary, w io.Writer) (Document, error) {
	if doc == nil {
		doc = Document{}
	}

	printers, err := os.ReadDir(profilesRoot)
	if err != nil {
		return nil, fmt.Errorf("reading profiles root %s: %w", profilesRoot, err)
	}

	for _, printerDir := range printers {
		if !printerDir.IsDir() || excludedDir(printerDir.Name()) {
			continue
		}
		printer := printerDir.Name()

		vendors, err := os.ReadDir(filepath.Join(profilesRoot, printer))
		if err != nil {
			sum.Warnf(w, "skipping printer %s: %v", printer, err)
			continue
		}

		for _, vendorDir := range vendors {
			if !vendorDir.IsDir() || excludedDir(vendorDir.Name()) {
				continue
			}
			vendor := vendorDir.Name()

			entriesPath := filepath.Join(profilesRoot, printer, vendor, EntriesFileName)
			ef, err := ParseEntriesFile(entriesPath)
			if err != nil {
				if os.IsNotExist(err) {
					sum.Warnf(w, "%s/%s has no %s, skipping", printer, vendor, EntriesFileName)
				} else {
					sum.Warnf(w, "%s/%s: %v", printer, vendor, err)
				}
				continue
			}

			names := make([]string, 0, len(ef.Entries))
			for _, rec := range ef.Entries {
				names = append(names, rec.Name)
			}

			if doc[printer] == nil {
				doc[printer] = map[string]VendorEntry{}
			}

			entry, ok := doc[printer][vendor]
			if !ok {
				entry = VendorEntry{
					Description:      fmt.Sprintf("%s filament profiles for %s", vendor, printer),
					EntriesFile:      filepath.ToSlash(filepath.Join(printer, vendor, EntriesFileName)),
					NamePattern:      fmt.Sprintf("*@BBL %s*", printer),
					SettingIDPattern: fmt.Sprintf("*_%s*", printer),
					DestinationPath:  DefaultDestination,
				}
			}
			entry.Count = len(names)
			entry.Profiles = names
			doc[printer][vendor] = entry
		}
	}

	return doc, nil
}

// ParseEntriesFile reads and parses one per-vendor entries file.
func ParseEntriesFile(path string) (*EntriesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var ef EntriesFile
	if err := json.Unmarshal(data, &ef); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &ef, nil
}
