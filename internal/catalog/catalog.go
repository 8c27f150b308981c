// Package catalog loads named command templates from a YAML file and builds
// shellcmd templates from them.
//
// A catalog file looks like:
//
//	templates:
//	  grep:
//	    description: Search a file
//	    skeleton:
//	      - grep
//	      - slot: switch
//	      - slot: pattern
//	      - slot: [file, path]
//	    validators:
//	      switch:
//	        - one_of: ["-i", "-n"]
//
// Plain strings are fixed tokens. A mapping with a "slot" key is a
// placeholder; a list of names declares synonyms.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/jpl-au/safercmd/internal/config"
	"github.com/jpl-au/safercmd/internal/validate"
	"github.com/jpl-au/safercmd/shellcmd"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownTemplate is returned when a template name is not in the catalog.
	ErrUnknownTemplate = errors.New("unknown template")
	// ErrInvalidCatalog is returned when the catalog file cannot be used.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrNoCatalog is returned when no catalog file could be found.
	ErrNoCatalog = errors.New("no template catalog found")
)

// FileName is the catalog file name looked up in the local and global
// config directories.
const FileName = "templates.yaml"

// EnvPath overrides every other catalog location when set.
const EnvPath = "SAFERCMD_TEMPLATES"

// Entry is one named template as written in the catalog.
type Entry struct {
	Description string                     `yaml:"description,omitempty"`
	Skeleton    Skeleton                   `yaml:"skeleton"`
	Validators  map[string][]validate.Rule `yaml:"validators,omitempty"`
	Fallback    []validate.Rule            `yaml:"fallback,omitempty"`
}

// Catalog is a set of named templates plus the limits applied to all of them.
type Catalog struct {
	Templates map[string]Entry `yaml:"templates"`

	path     string
	maxValue int
}

// Parse decodes a catalog from YAML. maxValue caps every replacement
// value; zero means config.DefaultMaxValue.
func Parse(data []byte, maxValue int) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if maxValue == 0 {
		maxValue = config.DefaultMaxValue
	}
	c.maxValue = maxValue
	return &c, nil
}

// Load reads and parses the catalog at path.
func Load(path string, maxValue int) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoCatalog, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := Parse(data, maxValue)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	c.path = path
	return c, nil
}

// Resolve returns the catalog path to use.
//
// Priority: explicit path (--templates flag) > SAFERCMD_TEMPLATES >
// catalog.path from config > .safercmd/templates.yaml > ~/.safercmd/templates.yaml.
// The local and global defaults are only returned if they exist; with
// nothing found Resolve returns ErrNoCatalog.
func Resolve(explicit string, cfg *config.Config) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	if cfg != nil && cfg.Catalog.Path != "" {
		return cfg.Catalog.Path, nil
	}

	candidates := []string{filepath.Join(config.Dir, FileName)}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, config.Dir, FileName))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w (looked in %v; set --templates or %s)", ErrNoCatalog, candidates, EnvPath)
}

// Path returns the file the catalog was loaded from, if any.
func (c *Catalog) Path() string { return c.path }

// Names returns the template names in sorted order.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.Templates))
}

// Entry returns the raw catalog entry for name.
func (c *Catalog) Entry(name string) (Entry, error) {
	e, ok := c.Templates[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return e, nil
}

// Template builds the named template.
//
// Every slot, whether it has explicit rules or uses the fallback, also
// rejects NUL bytes, invalid UTF-8 and values longer than the catalog's
// max value.
func (c *Catalog) Template(name string) (*shellcmd.Template, error) {
	e, err := c.Entry(name)
	if err != nil {
		return nil, err
	}
	t, err := e.Build(c.maxValue)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", name, err)
	}
	return t, nil
}

// Validate builds every template and returns the first error found.
func (c *Catalog) Validate() error {
	for _, name := range c.Names() {
		if _, err := c.Template(name); err != nil {
			return err
		}
	}
	return nil
}

// Build turns the entry into a shellcmd.Template.
func (e Entry) Build(maxValue int) (*shellcmd.Template, error) {
	if len(e.Skeleton) == 0 {
		return nil, fmt.Errorf("%w: empty skeleton", ErrInvalidCatalog)
	}
	limit, err := validate.MaxLen(maxValue)
	if err != nil {
		return nil, err
	}
	guard := []shellcmd.Predicate{validate.NoNullByte, validate.UTF8, limit}

	positions := make([]shellcmd.Position, len(e.Skeleton))
	for i, el := range e.Skeleton {
		positions[i] = el.Position()
	}

	validators := make(map[string]shellcmd.Validator, len(e.Validators))
	for slot, rules := range e.Validators {
		v, err := validate.Compile(rules)
		if err != nil {
			return nil, fmt.Errorf("%w: validator %q: %w", ErrInvalidCatalog, slot, err)
		}
		validators[slot] = shellcmd.All(append(slices.Clone(guard), v.Valid)...)
	}

	fallback := shellcmd.Predicate(shellcmd.Token)
	if len(e.Fallback) > 0 {
		v, err := validate.Compile(e.Fallback)
		if err != nil {
			return nil, fmt.Errorf("%w: fallback: %w", ErrInvalidCatalog, err)
		}
		fallback = v.Valid
	}
	fallback = shellcmd.All(append(slices.Clone(guard), fallback)...).Valid

	return shellcmd.New(positions,
		shellcmd.WithValidators(validators),
		shellcmd.WithFallback(fallback))
}
