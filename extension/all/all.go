// Package all imports all core safercmd extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/safercmd/extension/core"
	_ "github.com/jpl-au/safercmd/extension/template"
)
