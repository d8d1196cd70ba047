// Package cli defines the Cobra command tree for the filadex CLI. Each file
// in this package registers one top-level command (install, uninstall, scan,
// etc.) with the root command. Command implementations delegate to internal
// packages for the reconciliation logic and only handle flag parsing, menu
// I/O, and confirmation prompts.
package cli
