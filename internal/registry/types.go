package registry

// EntriesFileName is the fixed name of the per-vendor manifest file that
// lists the profiles shipped in a vendor directory.
const EntriesFileName = "bbl_json_entries.json"

// DefaultDestination is the slicer-relative directory new registry entries
// point their installed profiles at.
const DefaultDestination = "user/default/filament"

// VendorEntry describes one (printer, vendor) group of managed profiles.
type VendorEntry struct {
	Description      string   `json:"description"`
	Count            int      `json:"count"`
	EntriesFile      string   `json:"entries_file"`
	Materials        []string `json:"materials,omitempty"`
	NamePattern      string   `json:"name_pattern"`
	SettingIDPattern string   `json:"setting_id_pattern"`
	DestinationPath  string   `json:"destination_path"`
	Profiles         []string `json:"profiles"`
}

// Document is the registry root: printer name → vendor name → entry.
type Document map[string]map[string]VendorEntry

// Entry is a flattened (printer, vendor, VendorEntry) tuple.
type Entry struct {
	Printer string
	Vendor  string
	VendorEntry
}

// EntriesFile mirrors the per-vendor bbl_json_entries.json shape.
type EntriesFile struct {
	Entries []EntryRecord `json:"entries"`
}

// EntryRecord is one profile listed in a vendor entries file: the profile
// name and its source path relative to the vendor directory.
type EntryRecord struct {
	Name    string `json:"name"`
	SubPath string `json:"sub_path"`
}
