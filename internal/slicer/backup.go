package slicer

import (
	"fmt"
	"time"

	"github.com/filadex-labs/filadex/internal/platform"
)

// BackupManifest copies the manifest in appDataDir to a timestamped sibling
// (BambuStudio.conf.bak.20060102-150405) before any mutation. Existing
// backups are never overwritten: on a name collision a numeric suffix is
// appended. Backups are never pruned. Returns the backup path.
func BackupManifest(appDataDir string) (string, error) {
	return backupManifestAt(appDataDir, time.Now())
}

func backupManifestAt(appDataDir string, now time.Time) (string, error) {
	src := ManifestPath(appDataDir)
	stamp := now.Format("20060102-150405")

	dst := fmt.Sprintf("%s.bak.%s", src, stamp)
	for n := 1; platform.FileExists(dst); n++ {
		dst = fmt.Sprintf("%s.bak.%s-%d", src, stamp, n)
	}

	if err := platform.CopyFile(src, dst); err != nil {
		return "", fmt.Errorf("backing up manifest to %s: %w", dst, err)
	}
	return dst, nil
}
