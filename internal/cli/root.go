package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/filadex-labs/filadex/internal/branding"
	"github.com/filadex-labs/filadex/internal/config"
	"github.com/filadex-labs/filadex/internal/registry"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// registryFileName is the registry document's fixed name under the
// profiles root.
const registryFileName = "registry.json"

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` installs, removes, and audits third-party filament
configuration profiles for Bambu Studio. A repository-local registry declares
which profiles belong to which printer and vendor; install, uninstall, and
scan reconcile that registry against the slicer's own manifest and the files
on disk.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
// Cobra's own error printing is silenced, so fatal errors are reported
// here before the caller exits non-zero.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

// registryPath returns the registry document location under the profiles root.
func registryPath() string {
	return filepath.Join(config.ProfilesRoot(), registryFileName)
}

// loadRegistry loads the registry document. When required is false an
// absent registry file yields an empty document; when true it is an error,
// since the caller has nothing to act on.
func loadRegistry(required bool) (registry.Document, error) {
	doc, err := registry.Load(registryPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if !required {
				return registry.Document{}, nil
			}
			return nil, fmt.Errorf("registry %s not found (run `%s update` to generate it)", registryPath(), branding.CLIName())
		}
		return nil, err
	}
	return doc, nil
}
