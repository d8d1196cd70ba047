package reconcile

import (
	"encoding/json"
	"os"

	"github.com/filadex-labs/filadex/internal/registry"
	"github.com/filadex-labs/filadex/internal/slicer"
)

// Filter optionally narrows reconciliation to one printer, or one
// printer+vendor pair. Zero values mean "all".
type Filter struct {
	Printer string
	Vendor  string
}

// InstalledProfile is one manifest entry claimed by a registry vendor
// entry, with its on-disk existence resolved. Transient: recomputed on
// every scan, never persisted.
type InstalledProfile struct {
	Printer     string
	Vendor      string
	ProfileName string
	Path        string // resolved absolute path
	Exists      bool
}

// Installed cross-references the registry against the slicer manifest and
// returns, in manifest order, every manifest entry whose name appears in a
// selected vendor entry's declared profile list. A name declared by more
// than one selected vendor entry is emitted once per match; nothing
// deduplicates that, matching the source data's expectation that it never
// happens.
func Installed(doc registry.Document, man *slicer.Manifest, appDataDir string, f Filter) []InstalledProfile {
	entries := doc.Filtered(f.Printer, f.Vendor)
	if len(entries) == 0 {
		return nil
	}

	var installed []InstalledProfile
	for _, me := range man.FilamentList {
		for i := range entries {
			e := &entries[i]
			if !e.IsDeclaredMember(me.Name) {
				continue
			}
			installed = append(installed, InstalledProfile{
				Printer:     e.Printer,
				Vendor:      e.Vendor,
				ProfileName: me.Name,
				Path:        me.Resolve(appDataDir),
				Exists:      me.Exists(appDataDir),
			})
		}
	}
	return installed
}

// OrphanedEntries returns the installed profiles whose file is missing:
// listed in the manifest, absent on disk.
func OrphanedEntries(installed []InstalledProfile) []InstalledProfile {
	var orphans []InstalledProfile
	for _, p := range installed {
		if !p.Exists {
			orphans = append(orphans, p)
		}
	}
	return orphans
}

// CustomProfile is a manifest entry no vendor entry declares but whose name
// or on-disk setting_id matches a registry pattern: a hand-installed profile
// that looks like it belongs to a known vendor.
type CustomProfile struct {
	Printer     string
	Vendor      string
	ProfileName string
	Path        string
}

// CustomProfiles classifies the manifest entries no vendor entry declares.
// An undeclared entry is custom when its name matches a registry name
// pattern, or failing that, when the profile file on disk carries a
// setting_id matching a registry setting-id pattern. Declared membership
// always wins: a declared profile never appears here.
func CustomProfiles(doc registry.Document, man *slicer.Manifest, appDataDir string) []CustomProfile {
	entries := doc.AllEntries()
	var custom []CustomProfile

	for _, me := range man.FilamentList {
		if declaredByAny(entries, me.Name) {
			continue
		}
		path := me.Resolve(appDataDir)
		for i := range entries {
			e := &entries[i]
			if !e.MatchesNamePattern(me.Name) && !matchesSettingID(e, path) {
				continue
			}
			custom = append(custom, CustomProfile{
				Printer:     e.Printer,
				Vendor:      e.Vendor,
				ProfileName: me.Name,
				Path:        path,
			})
			break
		}
	}
	return custom
}

func declaredByAny(entries []registry.Entry, name string) bool {
	for i := range entries {
		if entries[i].IsDeclaredMember(name) {
			return true
		}
	}
	return false
}

// matchesSettingID reads the profile file's setting_id field and matches it
// against the entry's setting-id pattern. Missing or unparseable files never
// match.
func matchesSettingID(e *registry.Entry, path string) bool {
	if e.SettingIDPattern == "" {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var profile struct {
		SettingID string `json:"setting_id"`
	}
	if err := json.Unmarshal(data, &profile); err != nil || profile.SettingID == "" {
		return false
	}
	return e.MatchesSettingIDPattern(profile.SettingID)
}

// VendorGroup collects a vendor's installed profiles for display.
type VendorGroup struct {
	Printer  string
	Vendor   string
	Profiles []InstalledProfile
}

// GroupByVendor buckets installed profiles by (printer, vendor) in
// first-seen order.
func GroupByVendor(installed []InstalledProfile) []VendorGroup {
	index := make(map[[2]string]int)
	var groups []VendorGroup

	for _, p := range installed {
		key := [2]string{p.Printer, p.Vendor}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, VendorGroup{Printer: p.Printer, Vendor: p.Vendor})
		}
		groups[i].Profiles = append(groups[i].Profiles, p)
	}
	return groups
}
