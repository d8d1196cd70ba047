package reconcile

import (
	"path/filepath"
	"testing"

	"github.com/filadex-labs/filadex/internal/slicer"
)

func TestOrphanedFiles(t *testing.T) {
	appDataDir := t.TempDir()
	doc := sunluDoc()

	// PLA is installed and referenced; ABS matches the vendor glob but no
	// manifest entry points at it.
	touch(t, appDataDir, "user/default/filament/SUNLU PLA @BBL H2D.json")
	touch(t, appDataDir, "user/default/filament/SUNLU ABS @BBL H2D.json")
	// A file outside the vendor's glob is not the vendor's problem.
	touch(t, appDataDir, "user/default/filament/Generic PLA.json")

	man := manifestWith(slicer.Entry{
		Name:    "SUNLU PLA @BBL H2D",
		SubPath: "user/default/filament/SUNLU PLA @BBL H2D.json",
	})

	orphans, err := OrphanedFiles(doc, man, appDataDir)
	if err != nil {
		t.Fatalf("OrphanedFiles: %v", err)
	}

	if len(orphans) != 1 {
		t.Fatalf("got %d orphaned files, want 1: %+v", len(orphans), orphans)
	}
	o := orphans[0]
	if o.Printer != "H2D" || o.Vendor != "SUNLU" {
		t.Errorf("orphan attributed to %s/%s", o.Printer, o.Vendor)
	}
	if want := "SUNLU ABS @BBL H2D.json"; filepath.Base(o.Path) != want {
		t.Errorf("orphan path = %q, want basename %q", o.Path, want)
	}
}

func TestOrphanedFilesMissingDestination(t *testing.T) {
	// No destination directory at all: nothing to sweep, no error.
	orphans, err := OrphanedFiles(sunluDoc(), manifestWith(), t.TempDir())
	if err != nil {
		t.Fatalf("OrphanedFiles: %v", err)
	}
	if len(orphans) != 0 {
		t.Errorf("got %d orphans from an empty tree", len(orphans))
	}
}
