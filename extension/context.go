// context.go defines the Context interface for extension access to safercmd internals.
//
// Separated from extension.go to isolate dependency injection concerns.
// The Context provides a controlled surface area for extensions - they can
// reach the loaded catalog and config without knowing where either came from.
//
// Design: Extensions receive Context during Init(), not at construction, to
// support the two-phase initialization pattern where extensions register
// before the catalog has been located and parsed.

package extension

import (
	"github.com/jpl-au/safercmd/internal/catalog"
	"github.com/jpl-au/safercmd/internal/config"
)

// Context provides extensions controlled access to safercmd internals.
type Context interface {
	// Catalog returns the loaded template catalog.
	Catalog() *catalog.Catalog

	// Config returns user configuration for respecting user preferences.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	cat *catalog.Catalog
	cfg *config.Config
}

// NewContext creates a new extension context.
func NewContext(cat *catalog.Catalog, cfg *config.Config) Context {
	return &extContext{
		cat: cat,
		cfg: cfg,
	}
}

// Catalog returns the template catalog all commands and tools fill from.
func (c *extContext) Catalog() *catalog.Catalog {
	return c.cat
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
