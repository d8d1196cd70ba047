package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Load reads a registry document from path. When the file is absent the
// error satisfies errors.Is(err, fs.ErrNotExist); callers that can treat
// an uninitialized registry as empty should check for that.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing registry %s: %w", path, err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// Save writes the document to path. Output is deterministic (indented JSON
// with sorted keys) so an unchanged document round-trips byte-identically.
func Save(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling registry: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing registry %s: %w", path, err)
	}
	return nil
}

// Printers returns the document's printer names in sorted order.
func (d Document) Printers() []string {
	printers := make([]string, 0, len(d))
	for p := range d {
		printers = append(printers, p)
	}
	sort.Strings(printers)
	return printers
}

// AllEntries flattens the document into (printer, vendor, entry) tuples,
// sorted by printer then vendor.
func (d Document) AllEntries() []Entry {
	var entries []Entry
	for _, printer := range d.Printers() {
		entries = append(entries, d.EntriesForPrinter(printer)...)
	}
	return entries
}

// EntriesForPrinter returns the entries for one printer, sorted by vendor.
// An unknown printer yields an empty slice; the caller decides whether that
// is a warning or an abort.
func (d Document) EntriesForPrinter(printer string) []Entry {
	vendors := d[printer]
	if len(vendors) == 0 {
		return nil
	}

	names := make([]string, 0, len(vendors))
	for v := range vendors {
		names = append(names, v)
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, v := range names {
		entries = append(entries, Entry{Printer: printer, Vendor: v, VendorEntry: vendors[v]})
	}
	return entries
}

// EntryForVendor looks up one (printer, vendor) pair. The second return is
// false when either level is absent.
func (d Document) EntryForVendor(printer, vendor string) (Entry, bool) {
	ve, ok := d[printer][vendor]
	if !ok {
		return Entry{}, false
	}
	return Entry{Printer: printer, Vendor: vendor, VendorEntry: ve}, true
}

// Filtered returns the entries matching an optional printer and vendor
// narrowing. Empty selectors mean "all". A vendor selector without a
// printer selector matches that vendor under every printer.
func (d Document) Filtered(printer, vendor string) []Entry {
	var entries []Entry
	switch {
	case printer == "":
		entries = d.AllEntries()
	default:
		entries = d.EntriesForPrinter(printer)
	}

	if vendor == "" {
		return entries
	}

	var narrowed []Entry
	for _, e := range entries {
		if e.Vendor == vendor {
			narrowed = append(narrowed, e)
		}
	}
	return narrowed
}
