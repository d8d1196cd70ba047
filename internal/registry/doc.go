// Package registry owns the repository-local registry document that
// declares, per printer and vendor, which filament profiles this
// repository manages. It loads and saves the document, answers lookup
// queries, regenerates entries from the on-disk profile tree, validates
// registry and vendor-entries files against embedded JSON Schemas, and
// provides the two profile classifiers: authoritative exact-list
// membership and advisory wildcard matching.
package registry
