package shellcmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Position is one element of a command skeleton: a fixed token or a
// placeholder. Build positions with Fixed and Placeholder.
type Position struct {
	token string
	names []string
	slot  bool
}

// Fixed returns a trusted position copied verbatim into every filled
// command.
func Fixed(token string) Position {
	return Position{token: token}
}

// Placeholder returns a position filled from a replacement set. All names
// are synonyms: a value supplied under any one of them fills the position.
// A placeholder needs at least one name; New rejects one without.
func Placeholder(names ...string) Position {
	ns := make([]string, len(names))
	copy(ns, names)
	return Position{names: ns, slot: true}
}

// IsPlaceholder reports whether the position is filled from replacements.
func (p Position) IsPlaceholder() bool { return p.slot }

// Token returns the fixed token. It is empty for placeholders.
func (p Position) Token() string { return p.token }

// Names returns a copy of the placeholder names.
func (p Position) Names() []string { return slices.Clone(p.names) }

// Replacements maps placeholder names to candidate values.
type Replacements map[string]string

// Template is a validated command skeleton. It is immutable after New and
// safe for concurrent use.
type Template struct {
	skeleton   []string         // fixed tokens; placeholder positions left empty
	slots      map[string]int   // placeholder name -> position index
	targets    map[int]struct{} // every placeholder position
	validators map[string]Validator
	fallback   Predicate
}

// Option configures New.
type Option func(*options)

type options struct {
	validators map[string]Validator
	fallback   Predicate
}

// WithValidators registers explicit validators keyed by placeholder name.
// Names without an entry use the fallback. Later options add to, and may
// replace entries from, earlier ones.
func WithValidators(v map[string]Validator) Option {
	return func(o *options) {
		if o.validators == nil {
			o.validators = make(map[string]Validator, len(v))
		}
		maps.Copy(o.validators, v)
	}
}

// WithValidator registers a single explicit validator.
func WithValidator(name string, v Validator) Option {
	return WithValidators(map[string]Validator{name: v})
}

// WithFallback sets the predicate used for names without an explicit
// validator. A nil predicate keeps the default, Token.
func WithFallback(p Predicate) Option {
	return func(o *options) {
		o.fallback = p
	}
}

// New builds a Template from a skeleton.
//
// Every placeholder position becomes a target which Fill must see exactly
// once. If a name appears in more than one placeholder, the last one wins.
// Every explicit validator must name a declared placeholder.
func New(skeleton []Position, opts ...Option) (*Template, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	t := &Template{
		skeleton:   make([]string, len(skeleton)),
		slots:      make(map[string]int),
		targets:    make(map[int]struct{}),
		validators: make(map[string]Validator, len(o.validators)),
		fallback:   o.fallback,
	}

	for i, p := range skeleton {
		if !p.slot {
			t.skeleton[i] = p.token
			continue
		}
		if len(p.names) == 0 {
			return nil, fmt.Errorf("%w: %w at position %d", ErrConstruction, ErrEmptyPlaceholder, i)
		}
		t.targets[i] = struct{}{}
		for _, name := range p.names {
			t.slots[name] = i
		}
	}

	for _, name := range slices.Sorted(maps.Keys(o.validators)) {
		v := o.validators[name]
		if _, ok := t.slots[name]; !ok {
			return nil, fmt.Errorf("%w: %w: %q", ErrConstruction, ErrUnmappedValidator, name)
		}
		if !v.wellFormed() {
			return nil, fmt.Errorf("%w: %w: validator for %q has no usable predicate", ErrConstruction, ErrMalformedValidators, name)
		}
		t.validators[name] = v
	}

	if t.fallback == nil {
		t.fallback = Token
	}
	return t, nil
}

// MustNew is like New but panics on error. It is meant for templates
// declared as package-level variables.
func MustNew(skeleton []Position, opts ...Option) *Template {
	t, err := New(skeleton, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// validatorFor returns the explicit validator for name, or the fallback.
func (t *Template) validatorFor(name string) Validator {
	if v, ok := t.validators[name]; ok {
		return v
	}
	return Single(t.fallback)
}

// Len returns the number of positions in the skeleton.
func (t *Template) Len() int { return len(t.skeleton) }

// Names returns every placeholder name in sorted order.
func (t *Template) Names() []string {
	return slices.Sorted(maps.Keys(t.slots))
}

// Slot returns the position index a placeholder name fills.
func (t *Template) Slot(name string) (int, bool) {
	i, ok := t.slots[name]
	return i, ok
}

// Targets returns the placeholder position indices in ascending order.
func (t *Template) Targets() []int {
	return slices.Sorted(maps.Keys(t.targets))
}

// Synonyms returns every name that fills the same position as name,
// including name itself, sorted. It is nil for unknown names.
func (t *Template) Synonyms(name string) []string {
	i, ok := t.slots[name]
	if !ok {
		return nil
	}
	return t.namesAt(i)
}

// HasValidator reports whether name has an explicit validator rather than
// the fallback.
func (t *Template) HasValidator(name string) bool {
	_, ok := t.validators[name]
	return ok
}

func (t *Template) namesAt(i int) []string {
	var names []string
	for name, idx := range t.slots {
		if idx == i {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Display returns the skeleton tokens with each placeholder shown as
// {name}, or {a|b} for synonyms.
func (t *Template) Display() []string {
	parts := make([]string, len(t.skeleton))
	for i, tok := range t.skeleton {
		if _, ok := t.targets[i]; ok {
			parts[i] = "{" + strings.Join(t.namesAt(i), "|") + "}"
			continue
		}
		parts[i] = tok
	}
	return parts
}

// String renders Display as a single line.
func (t *Template) String() string {
	return JoinCommandLine(t.Display())
}
