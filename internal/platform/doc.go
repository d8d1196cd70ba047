// Package platform wraps the OS-specific details the rest of the tool
// needs: locating the slicer's per-user configuration directory on each
// GOOS and copying profile files with their permission bits intact.
package platform
