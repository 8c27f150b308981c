/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE loads the catalog lazily - only commands that
// need templates trigger extension init. This lets bootstrap commands
// (guide, config, version) work before any templates.yaml exists. The
// noCatalogCommands map controls which commands skip initialisation.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/safercmd/internal/config"
	"github.com/jpl-au/safercmd/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "safercmd",
	Short: "Fill command templates with validated values",
	Long: `Builds command argument lists from fixed templates. Untrusted values may only
fill declared placeholders, and each must pass that placeholder's validator.
safercmd prints the result; it never runs it.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Initialise extensions for commands that need the catalog
		cmdName := topLevelCmdName(cmd)
		if !noCatalogCommands[cmdName] {
			if err := initExtensions(); err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
				}
				return fmt.Errorf("initialise extensions: %w", err)
			}
		}

		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "safercmd fill grep ...", returns "fill".
func topLevelCmdName(cmd *cobra.Command) string {
	// Walk up until we find a command whose parent has no parent (the root)
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging when enabled, registers extensions and executes the
// command. Exit code 1 indicates error.
func Execute() {
	openAudit()
	registerExtensions()
	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		os.Exit(1)
	}
}

// openAudit starts the audit logger unless config turns it off. A config
// that fails to load leaves auditing on; the command itself will report the
// config error if it needs config.
func openAudit() {
	if cfg, err := config.Load(); err == nil && !cfg.AuditEnabled() {
		return
	}
	// Warn if it fails, but continue
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		return
	}
	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
