// Package config manages the ~/.filadex/config.yaml file through Viper.
// It resolves the two paths everything else hangs off: the repository
// profile tree (profiles_root) and the slicer's per-user data directory
// (app_data_dir). Environment variables with the FILADEX_ prefix override
// file values.
package config
