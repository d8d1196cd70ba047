package cli

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/filadex-labs/filadex/internal/registry"
	"github.com/filadex-labs/filadex/internal/report"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		input        string
		max          int
		want         []int
		wantWarnings int
	}{
		{"all", 3, []int{0, 1, 2}, 0},
		{"ALL", 2, []int{0, 1}, 0},
		{"1,3", 3, []int{0, 2}, 0},
		{"1 3", 3, []int{0, 2}, 0},
		{"2, 1", 3, []int{1, 0}, 0},
		{"1,1,2", 3, []int{0, 1}, 0}, // duplicates collapse
		{"1,x,2", 3, []int{0, 1}, 1}, // bad token skipped
		{"0,4,2", 3, []int{1}, 2},    // out of range skipped
		{"x y", 3, nil, 2},           // nothing valid
		{"", 3, nil, 0},
	}

	for _, tt := range tests {
		var sum report.Summary
		var buf bytes.Buffer
		got := parseSelection(tt.input, tt.max, &buf, &sum)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseSelection(%q, %d) = %v, want %v", tt.input, tt.max, got, tt.want)
		}
		if sum.Warnings != tt.wantWarnings {
			t.Errorf("parseSelection(%q) produced %d warnings, want %d", tt.input, sum.Warnings, tt.wantWarnings)
		}
	}
}

func TestProfileMenuGroupsByMaterial(t *testing.T) {
	entry := registry.Entry{
		VendorEntry: registry.VendorEntry{Materials: []string{"PLA", "PETG"}},
	}
	names := []string{
		"SUNLU PETG @BBL H2D",
		"SUNLU PLA @BBL H2D",
		"SUNLU Mystery @BBL H2D",
	}

	var buf bytes.Buffer
	display := profileMenu(&buf, entry, names)

	if len(display) != 3 {
		t.Fatalf("menu displayed %d items, want 3", len(display))
	}

	// Groups print in sorted material order: Other, PETG, PLA.
	out := buf.String()
	other := strings.Index(out, "Other")
	petg := strings.Index(out, "PETG\n")
	pla := strings.Index(out, "PLA\n")
	if other < 0 || petg < 0 || pla < 0 || !(other < petg && petg < pla) {
		t.Errorf("group headers out of order in menu output:\n%s", out)
	}

	// Menu numbers map back to names.
	if display[0] != "SUNLU Mystery @BBL H2D" {
		t.Errorf("display[0] = %q", display[0])
	}
}

func TestMaterialOf(t *testing.T) {
	entry := registry.Entry{VendorEntry: registry.VendorEntry{Materials: []string{"PLA", "PETG"}}}

	if got := materialOf(entry, "SUNLU PETG @BBL H2D"); got != "PETG" {
		t.Errorf("materialOf = %q, want PETG", got)
	}
	if got := materialOf(entry, "SUNLU TPU @BBL H2D"); got != "Other" {
		t.Errorf("materialOf = %q, want Other", got)
	}
}

func TestConfirm(t *testing.T) {
	var buf bytes.Buffer
	if !confirm(strings.NewReader("\n"), &buf, "go?") {
		t.Error("empty answer should default to yes")
	}
	if !confirm(strings.NewReader("y\n"), &buf, "go?") {
		t.Error("y should confirm")
	}
	if confirm(strings.NewReader("n\n"), &buf, "go?") {
		t.Error("n should decline")
	}
}
