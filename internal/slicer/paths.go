package slicer

import (
	"fmt"
	"os"

	"github.com/filadex-labs/filadex/internal/branding"
	"github.com/filadex-labs/filadex/internal/config"
	"github.com/filadex-labs/filadex/internal/platform"
	"github.com/spf13/viper"
)

// ManifestFileName is the slicer's configuration file holding filament_list.
const ManifestFileName = "BambuStudio.conf"

// DataDir returns the slicer's per-user data directory. Resolution order:
// FILADEX_APP_DATA_DIR, the app_data_dir config key, then the platform
// default for the branded slicer name.
func DataDir() (string, error) {
	if v := os.Getenv(branding.EnvVar("APP_DATA_DIR")); v != "" {
		return v, nil
	}
	if v := viper.GetString(config.KeyAppDataDir); v != "" {
		return v, nil
	}
	return platform.AppDataDir(branding.SlicerName())
}

// RequireDataDir resolves the data directory and fails when it does not
// exist — the slicer has never been run, so there is nothing to reconcile.
func RequireDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if !platform.DirExists(dir) {
		return "", fmt.Errorf("slicer data directory %s not found (has %s been run?)", dir, branding.SlicerName())
	}
	return dir, nil
}
