// Package reconcile joins the repository registry against the slicer's
// manifest and the files on disk: which declared profiles are actually
// installed, which manifest entries point at missing files, and which files
// sit in a destination directory without a manifest entry.
//
// Exact membership in a vendor entry's declared profile list is the
// authoritative classifier. Wildcard pattern matching is advisory only and
// never overrides a declared-membership result.
package reconcile
