// audit.go implements "safercmd audit" for reading and pruning the audit log.
//
// Design: audit is catalogless - the log outlives any one catalog and must
// be readable when the catalog is broken. Prune supports --dry-run and
// always needs --older-than; there is no "delete everything" form.

package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jpl-au/safercmd/cmd"
	"github.com/jpl-au/safercmd/extension"
	"github.com/jpl-au/safercmd/internal/duration"
	"github.com/jpl-au/safercmd/internal/log"
	"github.com/spf13/cobra"
)

func newAuditCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "audit",
		Short: "Read or prune the audit log",
		Long: `Read or prune the audit log at ~/.safercmd/log/safercmd-log.db.

Values are stored as short hashes; the log never holds a replacement value.`,
	}
	c.AddCommand(newAuditLsCmd(), newAuditPruneCmd())
	return c
}

func newAuditLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls",
		Short: "Show recent audit entries",
		Args:  cobra.NoArgs,
		RunE:  runAuditLs,
	}
	c.Flags().IntP(extension.FlagLimit, "n", 20, "Number of entries")
	c.Flags().StringP(extension.FlagTemplate, "t", "", "Only this template")
	c.Flags().Bool(extension.FlagFailed, false, "Only failed operations")
	return c
}

func runAuditLs(c *cobra.Command, _ []string) error {
	var q log.Query
	q.Limit, _ = c.Flags().GetInt(extension.FlagLimit)
	q.Template, _ = c.Flags().GetString(extension.FlagTemplate)
	q.Failed, _ = c.Flags().GetBool(extension.FlagFailed)

	records, err := log.Recent(q)
	if errors.Is(err, log.ErrClosed) {
		err = fmt.Errorf("%w (audit.enabled is false or the log could not be opened)", err)
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("audit ls: %w", err))
	}

	if cmd.JSON() {
		if records == nil {
			records = []log.Record{}
		}
		return cmd.PrintJSON(records)
	}
	for _, r := range records {
		status := "ok"
		if !r.Success {
			status = "FAIL " + r.Error
		}
		fmt.Fprintf(cmd.Out(), "%s  %-18s %-10s %-12s %-24s %s\n",
			time.Unix(r.Start, 0).Format(time.DateTime),
			r.Source, r.Action, r.Template, strings.Join(r.Names, ","), status)
	}
	return nil
}

func newAuditPruneCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "prune",
		Short: "Delete old audit entries",
		Long: `Delete audit entries older than a duration.

Duration formats: 12h, 7d (days), 4w (weeks), 3m (months), 1y (years)`,
		Args: cobra.NoArgs,
		RunE: runAuditPrune,
	}
	c.Flags().String(extension.FlagOlderThan, "", "Delete entries older than duration (required)")
	c.Flags().BoolP(extension.FlagDryRun, "n", false, "Show how many entries would be deleted")
	_ = c.MarkFlagRequired(extension.FlagOlderThan)
	return c
}

func runAuditPrune(c *cobra.Command, _ []string) error {
	olderThan, _ := c.Flags().GetString(extension.FlagOlderThan)
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)

	d, err := duration.Parse(olderThan)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("parse duration %q: %w", olderThan, err))
	}
	cutoff := time.Now().Add(-d).Unix()

	n, err := log.Prune(cutoff, dryRun)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("audit prune: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"deleted": n, "dry_run": dryRun})
	}
	if dryRun {
		fmt.Fprintf(cmd.Out(), "would delete %d entries\n", n)
		return nil
	}
	fmt.Fprintf(cmd.Out(), "deleted %d entries\n", n)
	return nil
}
