// ls.go implements the "safercmd ls" command for listing templates.

package template

import (
	"fmt"
	"io"

	"github.com/jpl-au/safercmd/cmd"
	"github.com/jpl-au/safercmd/extension"
	"github.com/jpl-au/safercmd/internal/log"
	"github.com/jpl-au/safercmd/internal/ls"
	"github.com/spf13/cobra"
)

func (e *Extension) newLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls [filter]",
		Short: "List templates",
		Long: `List catalog templates, optionally filtered by name prefix or glob.

  safercmd ls           # all templates
  safercmd ls git       # names starting with git
  safercmd ls '*-log'   # names ending in -log`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  e.runLs,
	}
	c.Flags().BoolP(extension.FlagLong, "l", false, "Show each template's skeleton")
	return c
}

func (e *Extension) runLs(c *cobra.Command, args []string) error {
	opts := ls.Options{}
	if len(args) > 0 {
		opts.Filter = args[0]
	}
	opts.Long, _ = c.Flags().GetBool(extension.FlagLong)

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := ls.Run(w, e.cat, opts)

	log.Event("template:ls", "list").
		Detail("filter", opts.Filter).
		Detail("count", result.Count()).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("ls %q: %w", opts.Filter, err))
	}
	return cmd.PrintJSON(result.ToJSON())
}
