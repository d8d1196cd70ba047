package cli

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/filadex-labs/filadex/internal/registry"
	"github.com/filadex-labs/filadex/internal/report"
)

// parseSelection turns user input into 0-based indices into a menu of max
// items. Input is "all" or a comma/space-separated list of 1-based menu
// numbers. Individually invalid tokens (non-numeric, out of range) are
// skipped with a warning; duplicates collapse to the first occurrence. An
// empty result means nothing valid was selected.
func parseSelection(input string, max int, w io.Writer, sum *report.Summary) []int {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, "all") {
		indices := make([]int, max)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	seen := make(map[int]bool)
	var indices []int
	for _, tok := range strings.FieldsFunc(input, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			sum.Warnf(w, "ignoring invalid selection %q", tok)
			continue
		}
		if n < 1 || n > max {
			sum.Warnf(w, "ignoring out-of-range selection %d (valid: 1-%d)", n, max)
			continue
		}
		if !seen[n-1] {
			seen[n-1] = true
			indices = append(indices, n-1)
		}
	}
	return indices
}

// profileMenu prints a material-grouped numbered menu of profile names and
// returns the names in displayed order, so menu number n maps to index n-1.
func profileMenu(w io.Writer, entry registry.Entry, names []string) []string {
	grouped := make(map[string][]string)
	var order []string
	for _, name := range names {
		mat := materialOf(entry, name)
		if _, ok := grouped[mat]; !ok {
			order = append(order, mat)
		}
		grouped[mat] = append(grouped[mat], name)
	}
	sort.Strings(order)

	var display []string
	for _, mat := range order {
		fmt.Fprintf(w, "\n  %s\n", mat)
		for _, name := range grouped[mat] {
			display = append(display, name)
			fmt.Fprintf(w, "  %3d) %s\n", len(display), name)
		}
	}
	fmt.Fprintln(w)
	return display
}

// materialOf buckets a profile name under one of the vendor's declared
// materials by case-insensitive substring match, falling back to "Other".
func materialOf(entry registry.Entry, name string) string {
	lower := strings.ToLower(name)
	for _, mat := range entry.Materials {
		if strings.Contains(lower, strings.ToLower(mat)) {
			return mat
		}
	}
	return "Other"
}

// readLine reads one line of user input, trimmed.
func readLine(in io.Reader) (string, error) {
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// confirm asks a yes/no question, defaulting to yes on empty input.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "? %s (Y/n) ", prompt)
	answer, err := readLine(in)
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "" || answer == "y" || answer == "yes"
}

// pickFromList prints a numbered list and reads one selection.
func pickFromList(in io.Reader, out io.Writer, label string, items []string) (string, error) {
	fmt.Fprintf(out, "Available %ss:\n", label)
	for i, item := range items {
		fmt.Fprintf(out, "  %3d) %s\n", i+1, item)
	}
	fmt.Fprintf(out, "? Select a %s (1-%d): ", label, len(items))

	answer, err := readLine(in)
	if err != nil {
		return "", fmt.Errorf("reading %s selection: %w", label, err)
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(items) {
		return "", fmt.Errorf("invalid %s selection %q", label, answer)
	}
	return items[n-1], nil
}

// resolveTarget fills in missing printer/vendor selectors interactively
// from the registry's contents.
func resolveTarget(doc registry.Document, in io.Reader, out io.Writer, printer, vendor string) (registry.Entry, error) {
	if printer == "" {
		printers := doc.Printers()
		if len(printers) == 0 {
			return registry.Entry{}, fmt.Errorf("registry has no printers")
		}
		var err error
		printer, err = pickFromList(in, out, "printer", printers)
		if err != nil {
			return registry.Entry{}, err
		}
	}

	if vendor == "" {
		entries := doc.EntriesForPrinter(printer)
		if len(entries) == 0 {
			return registry.Entry{}, fmt.Errorf("printer %q not found in registry", printer)
		}
		vendors := make([]string, len(entries))
		for i, e := range entries {
			vendors[i] = e.Vendor
		}
		var err error
		vendor, err = pickFromList(in, out, "vendor", vendors)
		if err != nil {
			return registry.Entry{}, err
		}
	}

	entry, ok := doc.EntryForVendor(printer, vendor)
	if !ok {
		return registry.Entry{}, fmt.Errorf("no registry entry for printer %q vendor %q", printer, vendor)
	}
	return entry, nil
}
