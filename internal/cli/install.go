package cli

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/filadex-labs/filadex/internal/config"
	"github.com/filadex-labs/filadex/internal/platform"
	"github.com/filadex-labs/filadex/internal/registry"
	"github.com/filadex-labs/filadex/internal/report"
	"github.com/filadex-labs/filadex/internal/slicer"
	"github.com/spf13/cobra"
)

var (
	installPrinter string
	installVendor  string
	installAll     bool
	installSelect  string
	installForce   bool
	installDryRun  bool
	installYes     bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install filament profiles into the slicer",
	Long: `Install a vendor's filament profiles: copy the profile files into the
slicer data directory and register them in the slicer manifest. The manifest
is backed up before any change.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installPrinter, "printer", "p", "", "Printer to install profiles for")
	installCmd.Flags().StringVarP(&installVendor, "vendor", "v", "", "Vendor to install profiles for")
	installCmd.Flags().BoolVar(&installAll, "all", false, "Install every declared profile without a selection menu")
	installCmd.Flags().StringVar(&installSelect, "select", "", "Non-interactive selection (e.g. \"1,3 5\" or \"all\")")
	installCmd.Flags().BoolVarP(&installForce, "force", "f", false, "Overwrite profile files already present at the destination")
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "Print the plan without copying files or writing the manifest")
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(installCmd)
}

// installItem is one planned profile installation.
type installItem struct {
	Name    string
	Src     string
	Dst     string
	SubPath string // manifest sub_path, slash-separated
}

func runInstall(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	var sum report.Summary

	doc, err := loadRegistry(true)
	if err != nil {
		return err
	}

	entry, err := resolveTarget(doc, cmd.InOrStdin(), out, installPrinter, installVendor)
	if err != nil {
		return err
	}
	if len(entry.Profiles) == 0 {
		fmt.Fprintf(out, "No profiles declared for %s/%s. Nothing to do.\n", entry.Printer, entry.Vendor)
		return nil
	}

	appDataDir, err := slicer.RequireDataDir()
	if err != nil {
		return err
	}
	man, err := slicer.LoadManifest(appDataDir)
	if err != nil {
		return err
	}

	selected, err := selectProfiles(cmd, entry, entry.Profiles, installAll, installSelect, &sum)
	if err != nil {
		return err
	}

	items, err := buildInstallItems(entry, selected, appDataDir, errOut, &sum)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no valid profiles selected")
	}

	fmt.Fprintf(out, "Installing %d profile(s) for %s/%s:\n", len(items), entry.Printer, entry.Vendor)
	for _, it := range items {
		fmt.Fprintf(out, "  %s\n", it.Name)
	}

	if installDryRun {
		fmt.Fprintln(out, "Dry run — no files copied, manifest unchanged.")
		return nil
	}

	if !installYes && !confirm(cmd.InOrStdin(), out, "Proceed with installation?") {
		fmt.Fprintln(out, "Installation cancelled.")
		return nil
	}

	backup, err := slicer.BackupManifest(appDataDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Backed up manifest to %s\n", backup)

	destDir := filepath.Join(appDataDir, filepath.FromSlash(entry.DestinationPath))
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("creating destination %s: %w", destDir, err)
	}

	appended := 0
	for _, it := range items {
		if platform.FileExists(it.Dst) && !installForce {
			fmt.Fprintf(out, "  - %s: file exists, not overwriting (use --force)\n", it.Name)
		} else {
			if err := platform.CopyFile(it.Src, it.Dst); err != nil {
				return fmt.Errorf("copying %s: %w", it.Name, err)
			}
			fmt.Fprintf(out, "  \u2713 %s\n", it.Name)
		}

		if man.HasName(it.Name) {
			sum.Warnf(errOut, "%s is already in the slicer manifest, skipping entry", it.Name)
			continue
		}
		man.FilamentList = append(man.FilamentList, slicer.Entry{Name: it.Name, SubPath: it.SubPath})
		appended++
	}

	if appended == 0 {
		fmt.Fprintln(out, "No new manifest entries — manifest not written.")
		return nil
	}

	if err := man.Save(appDataDir); err != nil {
		return err
	}
	fmt.Fprintf(out, "\u2713 Registered %d profile(s) in the slicer manifest.\n", appended)
	return nil
}

// selectProfiles resolves the user's profile selection, via flags or the
// interactive material-grouped menu.
func selectProfiles(cmd *cobra.Command, entry registry.Entry, names []string, all bool, preset string, sum *report.Summary) ([]string, error) {
	out := cmd.OutOrStdout()

	if all {
		return names, nil
	}

	input := preset
	display := names
	if input == "" {
		display = profileMenu(out, entry, names)
		fmt.Fprintf(out, "? Select profiles (e.g. \"1,3 5\" or \"all\"): ")
		var err error
		input, err = readLine(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading selection: %w", err)
		}
	}

	indices := parseSelection(input, len(display), cmd.ErrOrStderr(), sum)
	selected := make([]string, 0, len(indices))
	for _, i := range indices {
		selected = append(selected, display[i])
	}
	return selected, nil
}

// buildInstallItems maps selected profile names to source files via the
// vendor's entries file. Names without an entries record are skipped with
// a warning.
func buildInstallItems(entry registry.Entry, selected []string, appDataDir string, errOut io.Writer, sum *report.Summary) ([]installItem, error) {
	entriesPath := filepath.Join(config.ProfilesRoot(), filepath.FromSlash(entry.EntriesFile))
	ef, err := registry.ParseEntriesFile(entriesPath)
	if err != nil {
		return nil, fmt.Errorf("loading vendor entries: %w", err)
	}

	subPaths := make(map[string]string, len(ef.Entries))
	for _, rec := range ef.Entries {
		subPaths[rec.Name] = rec.SubPath
	}

	vendorDir := filepath.Dir(entriesPath)
	var items []installItem
	for _, name := range selected {
		sub, ok := subPaths[name]
		if !ok {
			sum.Warnf(errOut, "%s has no record in %s, skipping", name, registry.EntriesFileName)
			continue
		}
		base := path.Base(sub)
		items = append(items, installItem{
			Name:    name,
			Src:     filepath.Join(vendorDir, filepath.FromSlash(sub)),
			Dst:     filepath.Join(appDataDir, filepath.FromSlash(entry.DestinationPath), base),
			SubPath: path.Join(entry.DestinationPath, base),
		})
	}
	return items, nil
}
