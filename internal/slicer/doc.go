// Package slicer reads and writes the slicer application's per-user state:
// its data directory location, its filament manifest (the single JSON file
// listing every registered profile), and timestamped backups of that
// manifest. The slicer owns these files; this package only ever does a
// read-modify-write of filament_list and passes every other top-level
// field through untouched.
package slicer
