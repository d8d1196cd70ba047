package cli

import (
	"fmt"

	"github.com/filadex-labs/filadex/internal/config"
	"github.com/filadex-labs/filadex/internal/registry"
	"github.com/filadex-labs/filadex/internal/report"
	"github.com/spf13/cobra"
)

var updateDryRun bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Regenerate the registry from the profile tree",
	Long: `Rescan the repository profile tree and refresh the registry: every vendor
directory carrying a ` + registry.EntriesFileName + ` gets its profile list and count
updated (or a new entry created). Vendors no longer on disk keep their
registry entries — rescanning only ever accrues.`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&updateDryRun, "dry-run", false, "Scan and report without writing the registry")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	var sum report.Summary

	doc, err := loadRegistry(false)
	if err != nil {
		return err
	}

	before := len(doc.AllEntries())
	doc, err = registry.RegenerateFromDisk(config.ProfilesRoot(), doc, &sum, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	entries := doc.AllEntries()

	profiles := 0
	for _, e := range entries {
		profiles += len(e.Profiles)
	}
	fmt.Fprintf(out, "Scanned %s: %d vendor entries (%d new), %d profiles.\n",
		config.ProfilesRoot(), len(entries), len(entries)-before, profiles)

	if updateDryRun {
		fmt.Fprintln(out, "Dry run — registry not written.")
		return nil
	}

	if err := registry.Save(registryPath(), doc); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Wrote %s\n", registryPath())
	sum.Print(out)
	return nil
}
