package registry

import (
	"path"
	"strings"
)

// IsDeclaredMember reports whether name appears in the entry's declared
// profile list. This is the authoritative classifier: a profile is managed
// by this repository exactly when some vendor entry declares it.
func (e *VendorEntry) IsDeclaredMember(name string) bool {
	for _, p := range e.Profiles {
		if p == name {
			return true
		}
	}
	return false
}

// MatchesNamePattern reports whether name matches the entry's wildcard
// name pattern. Advisory only: it classifies profiles that lack an explicit
// registry listing and never overrides a declared-membership result.
func (e *VendorEntry) MatchesNamePattern(name string) bool {
	return MatchesPattern(e.NamePattern, name)
}

// MatchesSettingIDPattern reports whether id matches the entry's wildcard
// setting-id pattern. Advisory, like MatchesNamePattern.
func (e *VendorEntry) MatchesSettingIDPattern(id string) bool {
	return MatchesPattern(e.SettingIDPattern, id)
}

// MatchesPattern matches s against a '*'-wildcard pattern, case
// insensitively. '*' matches any run of characters including none; every
// other character matches literally.
func MatchesPattern(pattern, s string) bool {
	if pattern == "" {
		return false
	}
	pattern = strings.ToLower(pattern)
	s = strings.ToLower(s)

	parts := strings.Split(pattern, "*")

	// No wildcard: exact match.
	if len(parts) == 1 {
		return pattern == s
	}

	if parts[0] != "" {
		if !strings.HasPrefix(s, parts[0]) {
			return false
		}
		s = s[len(parts[0]):]
	}

	last := parts[len(parts)-1]
	if last != "" {
		if !strings.HasSuffix(s, last) {
			return false
		}
		s = s[:len(s)-len(last)]
	}

	for _, part := range parts[1 : len(parts)-1] {
		if part == "" {
			continue
		}
		idx := strings.Index(s, part)
		if idx < 0 {
			return false
		}
		s = s[idx+len(part):]
	}
	return true
}

// FileGlob returns the filename-shape glob used when sweeping a vendor's
// destination directory for orphaned files: the entry's name pattern with
// any directory components stripped.
func (e *VendorEntry) FileGlob() string {
	return path.Base(strings.ReplaceAll(e.NamePattern, "\\", "/"))
}
