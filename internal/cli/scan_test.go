package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/filadex-labs/filadex/internal/slicer"
)

func TestScanJSON(t *testing.T) {
	fixture(t)

	if out, err := execute(t, "install", "-p", "H2D", "-v", "SUNLU", "--select", "all", "--yes"); err != nil {
		t.Fatalf("install: %v\n%s", err, out)
	}

	out, err := execute(t, "scan", "--orphans", "--json")
	if err != nil {
		t.Fatalf("scan: %v\n%s", err, out)
	}

	// The JSON payload starts at the first brace; anything before it is
	// human-oriented noise from earlier steps.
	payload := out[strings.Index(out, "{"):]
	var result struct {
		Installed []struct {
			ProfileName string `json:"ProfileName"`
			Exists      bool   `json:"Exists"`
		} `json:"installed"`
		OrphanedEntries []json.RawMessage `json:"orphaned_entries"`
		OrphanedFiles   []json.RawMessage `json:"orphaned_files"`
	}
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatalf("scan output unparsable: %v\n%s", err, payload)
	}

	if len(result.Installed) != 2 {
		t.Fatalf("scan reported %d installed, want 2", len(result.Installed))
	}
	for _, p := range result.Installed {
		if !p.Exists {
			t.Errorf("%s reported missing right after install", p.ProfileName)
		}
	}
	if len(result.OrphanedEntries) != 0 || len(result.OrphanedFiles) != 0 {
		t.Errorf("unexpected orphans: %d entries, %d files", len(result.OrphanedEntries), len(result.OrphanedFiles))
	}
}

func TestScanWarnsUnknownPrinterAndVendor(t *testing.T) {
	fixture(t)

	out, err := execute(t, "scan", "-p", "Nonexistent")
	if err != nil {
		t.Fatalf("scan: %v\n%s", err, out)
	}
	if !strings.Contains(out, `printer "Nonexistent" not found in registry`) {
		t.Errorf("missing unknown-printer warning:\n%s", out)
	}

	out, err = execute(t, "scan", "-p", "H2D", "-v", "Nonexistent")
	if err != nil {
		t.Fatalf("scan: %v\n%s", err, out)
	}
	if !strings.Contains(out, `vendor "Nonexistent" not found in registry`) {
		t.Errorf("missing unknown-vendor warning:\n%s", out)
	}
}

func TestScanReportsCustomProfiles(t *testing.T) {
	_, appDataDir := fixture(t)

	// A manifest entry no vendor declares, but the SUNLU name pattern
	// claims it.
	man, err := slicer.LoadManifest(appDataDir)
	if err != nil {
		t.Fatal(err)
	}
	man.FilamentList = append(man.FilamentList, slicer.Entry{
		Name:    "SUNLU ABS @BBL H2D",
		SubPath: "user/default/filament/SUNLU ABS @BBL H2D.json",
	})
	if err := man.Save(appDataDir); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "scan")
	if err != nil {
		t.Fatalf("scan: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Custom profiles") || !strings.Contains(out, "SUNLU ABS @BBL H2D") {
		t.Errorf("custom profile not reported:\n%s", out)
	}
	// "Generic PLA" matches no pattern and must stay unclassified.
	if strings.Contains(out, "Generic PLA (looks like") {
		t.Errorf("unrelated profile classified as custom:\n%s", out)
	}

	// Filtered scans stay scoped to declared membership.
	out, err = execute(t, "scan", "-p", "H2D", "-v", "SUNLU")
	if err != nil {
		t.Fatalf("scan: %v\n%s", err, out)
	}
	if strings.Contains(out, "Custom profiles") {
		t.Errorf("filtered scan reported custom profiles:\n%s", out)
	}
}

func TestScanFilterExcludesForeignProfiles(t *testing.T) {
	fixture(t)

	out, err := execute(t, "scan", "-p", "H2D", "-v", "SUNLU")
	if err != nil {
		t.Fatalf("scan: %v\n%s", err, out)
	}
	if strings.Contains(out, "Generic PLA") {
		t.Errorf("scan listed a profile no vendor declares:\n%s", out)
	}
}
