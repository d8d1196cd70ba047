package cli

import (
	"fmt"
	"os"

	"github.com/filadex-labs/filadex/internal/reconcile"
	"github.com/filadex-labs/filadex/internal/report"
	"github.com/filadex-labs/filadex/internal/slicer"
	"github.com/spf13/cobra"
)

var (
	uninstallPrinter string
	uninstallVendor  string
	uninstallAll     bool
	uninstallSelect  string
	uninstallDryRun  bool
	uninstallYes     bool
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove installed filament profiles from the slicer",
	Long: `Remove a vendor's installed filament profiles: delete the profile files
from the slicer data directory and drop their entries from the slicer
manifest. The manifest is backed up before any change.`,
	Args: cobra.NoArgs,
	RunE: runUninstall,
}

func init() {
	uninstallCmd.Flags().StringVarP(&uninstallPrinter, "printer", "p", "", "Printer to remove profiles for")
	uninstallCmd.Flags().StringVarP(&uninstallVendor, "vendor", "v", "", "Vendor to remove profiles for")
	uninstallCmd.Flags().BoolVar(&uninstallAll, "all", false, "Remove every installed profile without a selection menu")
	uninstallCmd.Flags().StringVar(&uninstallSelect, "select", "", "Non-interactive selection (e.g. \"1,3 5\" or \"all\")")
	uninstallCmd.Flags().BoolVar(&uninstallDryRun, "dry-run", false, "Print the plan without deleting files or writing the manifest")
	uninstallCmd.Flags().BoolVarP(&uninstallYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	var sum report.Summary

	doc, err := loadRegistry(true)
	if err != nil {
		return err
	}

	entry, err := resolveTarget(doc, cmd.InOrStdin(), out, uninstallPrinter, uninstallVendor)
	if err != nil {
		return err
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
		Printer: entry.Printer,
		Vendor:  entry.Vendor,
	})
	if len(installed) == 0 {
		fmt.Fprintf(out, "No %s/%s profiles are installed. Nothing to do.\n", entry.Printer, entry.Vendor)
		return nil
	}

	names := make([]string, len(installed))
	for i, p := range installed {
		names[i] = p.ProfileName
	}

	selected, err := selectProfiles(cmd, entry, names, uninstallAll, uninstallSelect, &sum)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return fmt.Errorf("no valid profiles selected")
	}

	removing := make(map[string]bool, len(selected))
	for _, name := range selected {
		removing[name] = true
	}

	fmt.Fprintf(out, "Removing %d profile(s) for %s/%s:\n", len(selected), entry.Printer, entry.Vendor)
	for _, name := range selected {
		fmt.Fprintf(out, "  %s\n", name)
	}

	if uninstallDryRun {
		fmt.Fprintln(out, "Dry run — no files deleted, manifest unchanged.")
		return nil
	}

	if !uninstallYes && !confirm(cmd.InOrStdin(), out, "Proceed with removal?") {
		fmt.Fprintln(out, "Removal cancelled.")
		return nil
	}

	backup, err := slicer.BackupManifest(appDataDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Backed up manifest to %s\n", backup)

	// Delete the files. Already-missing files are not an error.
	for _, p := range installed {
		if !removing[p.ProfileName] {
			continue
		}
		if err := os.Remove(p.Path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("deleting %s: %w", p.Path, err)
		}
		fmt.Fprintf(out, "  \u2713 %s\n", p.ProfileName)
	}

	// Drop the selected names from the manifest, keeping everything else
	// in its original order.
	kept := man.FilamentList[:0]
	removed := 0
	for _, e := range man.FilamentList {
		if removing[e.Name] {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	man.FilamentList = kept

	if removed == 0 {
		fmt.Fprintln(out, "No manifest entries removed — manifest not written.")
		return nil
	}

	if err := man.Save(appDataDir); err != nil {
		return err
	}
	fmt.Fprintf(out, "\u2713 Removed %d entries from the slicer manifest.\n", removed)
	return nil
}
