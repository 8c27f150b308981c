/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config, locates and parses the template catalog, and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern allows extensions to
// declare commands before the catalog is known. The catalog is loaded once
// and shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/safercmd/extension"
	"github.com/jpl-au/safercmd/internal/catalog"
	"github.com/jpl-au/safercmd/internal/config"
)

// noCatalogCommands lists commands that bypass automatic catalog loading.
// Built dynamically from bootstrap commands plus extension-declared
// catalogless commands.
var noCatalogCommands map[string]bool

// buildNoCatalogCommands creates the set of commands that skip catalog loading.
//
// There are two categories:
//
//  1. Bootstrap commands provided by cobra itself (help, completion).
//
//  2. Extension-declared catalogless commands - Extensions implement the
//     Catalogless interface to declare commands that work before any
//     templates.yaml exists, such as guide and config.
func buildNoCatalogCommands() map[string]bool {
	cmds := map[string]bool{
		"help":       true,
		"completion": true,
		"__complete": true,
	}

	for _, ext := range extension.All() {
		if c, ok := ext.(extension.Catalogless); ok {
			for _, name := range c.NoCatalogCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads config and the catalog and injects them into extensions.
//
// The catalog is parsed once per process. Templates are built from it on
// demand, so one broken template does not stop the others from being used.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		path, err := catalog.Resolve(Templates(), cfg)
		if err != nil {
			initErr = err
			return
		}
		cat, err := catalog.Load(path, cfg.MaxValue())
		if err != nil {
			initErr = err
			return
		}
		extContext = extension.NewContext(cat, cfg)

		// Inject the shared context into all Initializable extensions.
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		// Build noCatalogCommands after all extensions are registered
		noCatalogCommands = buildNoCatalogCommands()
	})
}
