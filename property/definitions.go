package property

import (
	"iter"
	"strings"

	"github.com/0xalexb/hjarta-dfprop/omap"
	"github.com/0xalexb/hjarta-dfprop/tree"
)

// Attributes is the validated attribute map of one definition.
type Attributes = omap.Map[string]

// Definitions is a validated "name -> (attribute -> value)" table.
type Definitions struct {
	group   string
	entries *omap.Map[*Attributes]
}

// ParseDefinitions validates a two-level mapping rooted at node.
//
// Every top-level value must be a mapping and every inner value a string;
// absent inner values are dropped. With fold set, definition names compare
// case-insensitively.
func ParseDefinitions(group string, node tree.Node, fold bool) (*Definitions, error) {
	return parseDefinitions(group, nil, node, fold)
}

// Definitions validates the two-level mapping stored under key.
func (a *Accessor) Definitions(key string, fold bool) (*Definitions, error) {
	return parseDefinitions(a.group, a.keyPath(key), a.Node(key), fold)
}

func parseDefinitions(group string, path []string, node tree.Node, fold bool) (*Definitions, error) {
	entries := omap.New[*Attributes]()
	if fold {
		entries = omap.NewFold[*Attributes]()
	}

	defs := &Definitions{group: group, entries: entries}

	root, err := newAccessor(group, path, node)
	if err != nil {
		return nil, err
	}

	for name, value := range root.m.All() {
		attrs, err := parseAttributes(group, root.keyPath(name), value)
		if err != nil {
			return nil, err
		}

		entries.Set(name, attrs)
	}

	return defs, nil
}

func parseAttributes(group string, path []string, node tree.Node) (*Attributes, error) {
	m, ok := node.Mapping()
	if !ok {
		return nil, newShapeError(group, path, tree.KindMapping.String(), node)
	}

	attrs := omap.New[string]()

	for key, value := range m.All() {
		if value.IsAbsent() {
			continue
		}

		s, ok := value.Str()
		if !ok {
			innerPath := make([]string, 0, len(path)+1)
			innerPath = append(innerPath, path...)

			return nil, newShapeError(group, append(innerPath, key), tree.KindString.String(), value)
		}

		attrs.Set(key, strings.TrimSpace(s))
	}

	return attrs, nil
}

// Group returns the property group name.
func (d *Definitions) Group() string {
	return d.group
}

// Names returns the definition names in order.
func (d *Definitions) Names() []string {
	return d.entries.Keys()
}

// Len returns the number of definitions.
func (d *Definitions) Len() int {
	return d.entries.Len()
}

// All iterates over the definitions in order.
func (d *Definitions) All() iter.Seq2[string, *Attributes] {
	return d.entries.All()
}

// Lookup returns the attributes of the named definition.
func (d *Definitions) Lookup(name string) (*Attributes, bool) {
	return d.entries.Get(name)
}

// Find returns the attributes of the named definition, failing with
// UnknownDefinitionError when no definition has that name.
func (d *Definitions) Find(name, option string) (*Attributes, error) {
	attrs, ok := d.entries.Get(name)
	if !ok {
		return nil, NewUnknownDefinitionError(d.group, name, option)
	}

	return attrs, nil
}

// Attribute returns one attribute value of the named definition. An absent
// attribute is the empty string; an unknown definition is an error.
func (d *Definitions) Attribute(name, attr string) (string, error) {
	attrs, err := d.Find(name, attr)
	if err != nil {
		return "", err
	}

	v, _ := attrs.Get(attr)

	return v, nil
}
