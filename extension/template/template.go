// Package template provides the template extension: listing catalog
// templates, validating values and filling templates.
// Registers commands: ls, show, validate, check, fill.
//
// Each command file is separated to isolate its flag handling and output
// formatting. The work itself is done by internal/ls and internal/fill,
// which the MCP server shares.
package template

import (
	"bufio"
	"io"
	"strings"

	"github.com/jpl-au/safercmd/extension"
	"github.com/jpl-au/safercmd/internal/catalog"
	"github.com/jpl-au/safercmd/internal/fill"
	"github.com/jpl-au/safercmd/shellcmd"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the template extension.
type Extension struct {
	cat *catalog.Catalog
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "template".
func (e *Extension) Name() string { return "template" }

// Init takes the loaded catalog from the shared context.
func (e *Extension) Init(ctx extension.Context) error {
	e.cat = ctx.Catalog()
	return nil
}

// Commands returns the catalog commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newLsCmd(),
		e.newShowCmd(),
		e.newValidateCmd(),
		e.newCheckCmd(),
		e.newFillCmd(),
	}
}

// MCPTools returns nil - template MCP tools are provided by internal/mcp package.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// replacements parses name=value arguments, plus one pair per non-empty
// line of stdin when --stdin is set.
func replacements(c *cobra.Command, args []string) (shellcmd.Replacements, error) {
	fromStdin, _ := c.Flags().GetBool(extension.FlagStdin)
	if fromStdin {
		lines, err := readLines(c.InOrStdin())
		if err != nil {
			return nil, err
		}
		args = append(args, lines...)
	}
	return fill.ParseArgs(args)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
