// fill.go implements the "safercmd fill" command.
//
// Design: The default output is one argument per line, the form an
// exec-style caller should consume. --line joins them for a human to read
// and does no quoting. Nothing is ever executed.

package template

import (
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/safercmd/cmd"
	"github.com/jpl-au/safercmd/extension"
	"github.com/jpl-au/safercmd/internal/fill"
	"github.com/jpl-au/safercmd/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (e *Extension) newFillCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "fill <template> [name=value...]",
		Short: "Fill a template and print the arguments",
		Long: `Fill a template and print the resulting arguments, one per line.

  safercmd fill grep switch=-i pattern=root file=notes
  safercmd fill grep switch=-i pattern=root file=notes --line
  safercmd fill grep switch=-i pattern=root file=notes --preview

Nothing is printed unless every replacement is valid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runFill,
	}
	c.Flags().Bool(extension.FlagLine, false, "Print the arguments joined with spaces (no quoting)")
	c.Flags().BoolP(extension.FlagPreview, "p", false, "Show the template skeleton against the filled arguments")
	c.Flags().Bool(extension.FlagNoColour, false, "Disable colour in --preview")
	c.Flags().Bool(extension.FlagStdin, false, "Also read name=value lines from stdin")
	return c
}

func (e *Extension) runFill(c *cobra.Command, args []string) error {
	tmpl := args[0]

	var err error
	l := log.Event("template:fill", "fill").Template(tmpl)
	defer func() { l.Write(err) }()

	r, err := replacements(c, args[1:])
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	l.Replacements(r)

	opts := fill.Options{}
	opts.Line, _ = c.Flags().GetBool(extension.FlagLine)
	opts.Preview, _ = c.Flags().GetBool(extension.FlagPreview)
	noColour, _ := c.Flags().GetBool(extension.FlagNoColour)
	opts.Colour = !noColour && term.IsTerminal(int(os.Stdout.Fd()))

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := fill.Run(w, e.cat, tmpl, r, opts)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("fill %q: %w", tmpl, err))
	}
	l.Detail("positions", len(result.Tokens))
	return cmd.PrintJSON(result)
}
