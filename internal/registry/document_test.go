package registry

import (
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"testing"
)

func sampleDocument() Document {
	return Document{
		"H2D": {
			"SUNLU": VendorEntry{
				Description:      "SUNLU filament profiles for H2D",
				Count:            2,
				EntriesFile:      "H2D/SUNLU/bbl_json_entries.json",
				Materials:        []string{"PLA", "PETG"},
				NamePattern:      "*@BBL H2D*",
				SettingIDPattern: "*_H2D*",
				DestinationPath:  "user/default/filament",
				Profiles:         []string{"SUNLU PLA @BBL H2D", "SUNLU PETG @BBL H2D"},
			},
			"Polymaker": VendorEntry{
				Description:      "Polymaker filament profiles for H2D",
				Count:            1,
				EntriesFile:      "H2D/Polymaker/bbl_json_entries.json",
				NamePattern:      "*@BBL H2D*",
				SettingIDPattern: "*_H2D*",
				DestinationPath:  "user/default/filament",
				Profiles:         []string{"Polymaker ASA @BBL H2D"},
			},
		},
		"X1C": {
			"SUNLU": VendorEntry{
				Description:      "SUNLU filament profiles for X1C",
				Count:            1,
				EntriesFile:      "X1C/SUNLU/bbl_json_entries.json",
				NamePattern:      "*@BBL X1C*",
				SettingIDPattern: "*_X1C*",
				DestinationPath:  "user/default/filament",
				Profiles:         []string{"SUNLU PLA @BBL X1C"},
			},
		},
	}
}

func TestLoadMissingRegistry(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "registry.json"))
	if err == nil {
		t.Fatal("expected error for missing registry")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should satisfy fs.ErrNotExist, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	doc := sampleDocument()

	if err := Save(path, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(doc, loaded) {
		t.Errorf("round trip changed document:\n got %+v\nwant %+v", loaded, doc)
	}
}

func TestAllEntriesSorted(t *testing.T) {
	doc := sampleDocument()
	entries := doc.AllEntries()

	if len(entries) != 3 {
		t.Fatalf("AllEntries returned %d entries, want 3", len(entries))
	}

	wantOrder := [][2]string{
		{"H2D", "Polymaker"},
		{"H2D", "SUNLU"},
		{"X1C", "SUNLU"},
	}
	for i, want := range wantOrder {
		if entries[i].Printer != want[0] || entries[i].Vendor != want[1] {
			t.Errorf("entries[%d] = %s/%s, want %s/%s", i, entries[i].Printer, entries[i].Vendor, want[0], want[1])
		}
	}
}

func TestEntriesForUnknownPrinter(t *testing.T) {
	doc := sampleDocument()
	if entries := doc.EntriesForPrinter("A1"); len(entries) != 0 {
		t.Errorf("unknown printer yielded %d entries, want 0", len(entries))
	}
	if _, ok := doc.EntryForVendor("H2D", "Overture"); ok {
		t.Error("unknown vendor reported as found")
	}
}

func TestFiltered(t *testing.T) {
	doc := sampleDocument()

	if got := len(doc.Filtered("", "")); got != 3 {
		t.Errorf("unfiltered: %d entries, want 3", got)
	}
	if got := len(doc.Filtered("H2D", "")); got != 2 {
		t.Errorf("printer filter: %d entries, want 2", got)
	}
	if got := len(doc.Filtered("H2D", "SUNLU")); got != 1 {
		t.Errorf("printer+vendor filter: %d entries, want 1", got)
	}
	// Vendor-only filter matches that vendor under every printer.
	if got := len(doc.Filtered("", "SUNLU")); got != 2 {
		t.Errorf("vendor filter: %d entries, want 2", got)
	}
}
