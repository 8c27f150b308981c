// show.go implements the "safercmd show" command.
//
// Show lists every placeholder name with the position it fills, its
// synonyms, and whether it has its own rules or falls back to the
// template's default.

package template

import (
	"io"

	"github.com/jpl-au/safercmd/cmd"
	"github.com/jpl-au/safercmd/internal/log"
	"github.com/jpl-au/safercmd/internal/ls"
	"github.com/spf13/cobra"
)

func (e *Extension) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <template>",
		Short: "Show a template's placeholders",
		Args:  cobra.ExactArgs(1),
		RunE:  e.runShow,
	}
}

func (e *Extension) runShow(_ *cobra.Command, args []string) error {
	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	d, err := ls.Show(w, e.cat, args[0])
	log.Event("template:show", "show").Template(args[0]).Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	return cmd.PrintJSON(d)
}
