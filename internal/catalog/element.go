// element.go decodes skeleton elements.
//
// A skeleton element is written either as a plain scalar (a fixed token) or
// as a mapping with a "slot" key holding one name or a list of names. The
// explicit mapping keeps placeholders visible in the file; nothing about a
// plain string is ever treated as a placeholder.

package catalog

import (
	"fmt"

	"github.com/jpl-au/safercmd/shellcmd"
	"gopkg.in/yaml.v3"
)

// Skeleton is the ordered list of elements of one template.
type Skeleton []Element

// UnmarshalYAML implements yaml.Unmarshaler. Elements are decoded here
// rather than by the yaml package because it never hands a null node to
// Element.UnmarshalYAML, and a bare "-" would otherwise become an empty
// fixed argument.
func (s *Skeleton) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: line %d: skeleton must be a list", ErrInvalidCatalog, n.Line)
	}
	out := make(Skeleton, len(n.Content))
	for i, c := range n.Content {
		if err := out[i].UnmarshalYAML(c); err != nil {
			return err
		}
	}
	*s = out
	return nil
}

// Element is one skeleton entry: a fixed token or a slot.
type Element struct {
	Token  string
	Slot   []string
	IsSlot bool
}

type slotNode struct {
	Slot yaml.Node `yaml:"slot"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Element) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return fmt.Errorf("%w: line %d: skeleton element is null; quote it if a fixed token is meant", ErrInvalidCatalog, n.Line)
		}
		*e = Element{Token: n.Value}
		return nil

	case yaml.MappingNode:
		var s slotNode
		if err := n.Decode(&s); err != nil {
			return err
		}
		if len(n.Content) != 2 || s.Slot.Kind == 0 {
			return fmt.Errorf("%w: line %d: skeleton mapping must have exactly one key, \"slot\"", ErrInvalidCatalog, n.Line)
		}
		var names []string
		switch s.Slot.Kind {
		case yaml.ScalarNode:
			if s.Slot.Tag != "!!null" {
				names = []string{s.Slot.Value}
			}
		case yaml.SequenceNode:
			if err := s.Slot.Decode(&names); err != nil {
				return fmt.Errorf("%w: line %d: slot names: %w", ErrInvalidCatalog, n.Line, err)
			}
		default:
			return fmt.Errorf("%w: line %d: slot must be a name or a list of names", ErrInvalidCatalog, n.Line)
		}
		*e = Element{Slot: names, IsSlot: true}
		return nil

	default:
		return fmt.Errorf("%w: line %d: skeleton element must be a string or a slot mapping", ErrInvalidCatalog, n.Line)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (e Element) MarshalYAML() (any, error) {
	if !e.IsSlot {
		return e.Token, nil
	}
	if len(e.Slot) == 1 {
		return map[string]string{"slot": e.Slot[0]}, nil
	}
	return map[string][]string{"slot": e.Slot}, nil
}

// Position converts the element for shellcmd.New. An empty slot list is
// passed through so New reports it.
func (e Element) Position() shellcmd.Position {
	if e.IsSlot {
		return shellcmd.Placeholder(e.Slot...)
	}
	return shellcmd.Fixed(e.Token)
}
