// validate.go implements the "safercmd validate" command, which checks one
// value for one placeholder. A rejected value exits non-zero so the command
// can gate a shell script.

package template

import (
	"io"

	"github.com/jpl-au/safercmd/cmd"
	"github.com/jpl-au/safercmd/extension"
	"github.com/jpl-au/safercmd/internal/fill"
	"github.com/jpl-au/safercmd/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newValidateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "validate <template> <name> <value>",
		Short: "Check one value for one placeholder",
		Long: `Check one value for one placeholder. Prints "valid" or "rejected";
exits 1 when rejected. Unknown placeholder names are always rejected.

Flags must come before the template name, so values starting with "-"
are taken as values:

  safercmd validate -q grep switch -i`,
		Args: cobra.ExactArgs(3),
		RunE: e.runValidate,
	}
	c.Flags().BoolP(extension.FlagQuiet, "q", false, "Print nothing; use the exit status")
	c.Flags().SetInterspersed(false)
	return c
}

func (e *Extension) runValidate(c *cobra.Command, args []string) error {
	tmpl, name, value := args[0], args[1], args[2]

	quiet, _ := c.Flags().GetBool(extension.FlagQuiet)
	w := cmd.Out()
	if quiet || cmd.JSON() {
		w = io.Discard
	}

	result, err := fill.Validate(w, e.cat, tmpl, name, value)

	log.Event("template:validate", "validate").
		Template(tmpl).
		Detail("name", name).
		Value("value", value).
		Write(err)

	if cmd.JSON() {
		if jsonErr := cmd.PrintJSON(result); jsonErr != nil {
			return jsonErr
		}
	}
	if err != nil {
		if quiet {
			c.Root().SilenceErrors = true
		}
		return cmd.PrintJSONError(err)
	}
	return nil
}
