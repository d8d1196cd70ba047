package cli

import (
	"encoding/json"
	"fmt"

	"github.com/filadex-labs/filadex/internal/meta"
	"github.com/filadex-labs/filadex/internal/reconcile"
	"github.com/filadex-labs/filadex/internal/report"
	"github.com/filadex-labs/filadex/internal/slicer"
	"github.com/spf13/cobra"
)

var (
	scanPrinter string
	scanVendor  string
	scanOrphans bool
	scanJSON    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Show which managed profiles are installed",
	Long: `Cross-reference the registry against the slicer manifest and the files on
disk. Read-only: scan never mutates slicer state. With --orphans it also
reports manifest entries whose file is missing and files no manifest entry
references.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanPrinter, "printer", "p", "", "Limit the scan to one printer")
	scanCmd.Flags().StringVarP(&scanVendor, "vendor", "v", "", "Limit the scan to one vendor")
	scanCmd.Flags().BoolVar(&scanOrphans, "orphans", false, "Also report orphaned manifest entries and files")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(scanCmd)
}

// scanResult is the machine-readable scan output.
type scanResult struct {
	Installed       []reconcile.InstalledProfile `json:"installed"`
	Custom          []reconcile.CustomProfile    `json:"custom,omitempty"`
	OrphanedEntries []reconcile.InstalledProfile `json:"orphaned_entries,omitempty"`
	OrphanedFiles   []reconcile.OrphanedFile     `json:"orphaned_files,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	var sum report.Summary

	doc, err := loadRegistry(false)
	if err != nil {
		return err
	}
	if scanPrinter != "" && len(doc.EntriesForPrinter(scanPrinter)) == 0 {
		sum.Warnf(errOut, "printer %q not found in registry", scanPrinter)
	} else if scanVendor != "" && len(doc.Filtered(scanPrinter, scanVendor)) == 0 {
		sum.Warnf(errOut, "vendor %q not found in registry", scanVendor)
	}

	appDataDir, err := slicer.RequireDataDir()
	if err != nil {
		return err
	}
	man, err := slicer.LoadManifest(appDataDir)
	if err != nil {
		return err
	}

	installed := reconcile.Installed(doc, man, appDataDir, reconcile.Filter{
		Printer: scanPrinter,
		Vendor:  scanVendor,
	})

	result := scanResult{Installed: installed}
	if scanPrinter == "" && scanVendor == "" {
		result.Custom = reconcile.CustomProfiles(doc, man, appDataDir)
	}
	if scanOrphans {
		result.OrphanedEntries = reconcile.OrphanedEntries(installed)
		result.OrphanedFiles, err = reconcile.OrphanedFiles(doc, man, appDataDir)
		if err != nil {
			return err
		}
	}

	if scanJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling scan result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(installed) == 0 {
		fmt.Fprintln(out, "No managed profiles are installed.")
	}

	outdated := 0
	for _, group := range reconcile.GroupByVendor(installed) {
		fmt.Fprintf(out, "%s / %s (%d installed)\n", group.Printer, group.Vendor, len(group.Profiles))
		for _, p := range group.Profiles {
			mark := "✓"
			note := ""
			if !p.Exists {
				mark = "✗"
				note = " (file missing)"
			} else if block, err := meta.Read(p.Path); err == nil && block.Managed() {
				if older, err := block.OlderThan(buildVersion); err == nil && older {
					note = fmt.Sprintf(" (tagged %s, older than %s)", block.Version, buildVersion)
					outdated++
				}
			}
			fmt.Fprintf(out, "  %s %s%s\n", mark, p.ProfileName, note)
		}
	}

	if len(result.Custom) > 0 {
		fmt.Fprintf(out, "\nCustom profiles (pattern match, no registry listing): %d\n", len(result.Custom))
		for _, c := range result.Custom {
			fmt.Fprintf(out, "  %s (looks like %s / %s)\n", c.ProfileName, c.Printer, c.Vendor)
		}
	}

	if scanOrphans {
		fmt.Fprintf(out, "\nOrphaned manifest entries (file missing): %d\n", len(result.OrphanedEntries))
		for _, p := range result.OrphanedEntries {
			fmt.Fprintf(out, "  %s (%s)\n", p.ProfileName, p.Path)
		}
		fmt.Fprintf(out, "Orphaned files (no manifest entry): %d\n", len(result.OrphanedFiles))
		for _, f := range result.OrphanedFiles {
			fmt.Fprintf(out, "  %s\n", f.Path)
		}
	}
	if outdated > 0 {
		fmt.Fprintf(out, "\n%d profile(s) were tagged by an older release.\n", outdated)
	}
	return nil
}
