// check.go implements the "safercmd check" command, which validates a whole
// replacement set and reports the first problem.

package template

import (
	"errors"
	"io"

	"github.com/jpl-au/safercmd/cmd"
	"github.com/jpl-au/safercmd/extension"
	"github.com/jpl-au/safercmd/internal/fill"
	"github.com/jpl-au/safercmd/internal/log"
	"github.com/jpl-au/safercmd/shellcmd"
	"github.com/spf13/cobra"
)

func (e *Extension) newCheckCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check <template> [name=value...]",
		Short: "Check a complete set of replacements",
		Long: `Check a complete set of replacements. Prints "ok", or fails with the reason:
an unknown placeholder, a rejected value, two synonyms for one position, or a
missing placeholder.`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runCheck,
	}
	c.Flags().Bool(extension.FlagStdin, false, "Also read name=value lines from stdin")
	return c
}

func (e *Extension) runCheck(c *cobra.Command, args []string) error {
	tmpl := args[0]

	var err error
	l := log.Event("template:check", "check").Template(tmpl)
	defer func() { l.Write(err) }()

	r, err := replacements(c, args[1:])
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	l.Replacements(r)

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := fill.Check(w, e.cat, tmpl, r)
	if cmd.JSON() && (err == nil || errors.Is(err, shellcmd.ErrInvalidReplacements)) {
		if jsonErr := cmd.PrintJSON(result); jsonErr != nil {
			return jsonErr
		}
		if err != nil {
			c.Root().SilenceErrors = true
		}
		return err
	}
	return cmd.PrintJSONError(err)
}
