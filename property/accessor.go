// Package property provides typed, shape-checked access to a property group
// tree and the shared validation of "name -> attribute map" definitions.
//
// Every shape mismatch is reported as a *ShapeError carrying the group name,
// the key path, the actual kind and the actual value. Lookups of unknown
// logical names report *UnknownDefinitionError.
package property

import (
	"strings"

	"github.com/0xalexb/hjarta-dfprop/tree"
)

// Accessor reads typed values from one mapping of a property group.
type Accessor struct {
	group string
	path  []string
	m     *tree.Mapping
}

// NewAccessor creates an accessor over the root of a property group.
// An absent root is treated as an empty group.
func NewAccessor(group string, root tree.Node) (*Accessor, error) {
	return newAccessor(group, nil, root)
}

func newAccessor(group string, path []string, node tree.Node) (*Accessor, error) {
	if node.IsAbsent() {
		return &Accessor{group: group, path: path, m: tree.NewMapping()}, nil
	}

	m, ok := node.Mapping()
	if !ok {
		if len(path) == 0 {
			path = []string{"(root)"}
		}

		return nil, newShapeError(group, path, tree.KindMapping.String(), node)
	}

	return &Accessor{group: group, path: path, m: m}, nil
}

// Group returns the property group name.
func (a *Accessor) Group() string {
	return a.group
}

// Keys returns the keys of the underlying mapping in order.
func (a *Accessor) Keys() []string {
	return a.m.Keys()
}

// Node returns the raw node stored under key.
func (a *Accessor) Node(key string) tree.Node {
	n, _ := a.m.Get(key)

	return n
}

func (a *Accessor) keyPath(keys ...string) []string {
	path := make([]string, 0, len(a.path)+len(keys))
	path = append(path, a.path...)

	return append(path, keys...)
}

// str returns the trimmed string under key; ok is false when absent or blank.
func (a *Accessor) str(key string) (string, bool, error) {
	n := a.Node(key)
	if n.IsAbsent() {
		return "", false, nil
	}

	s, ok := n.Str()
	if !ok {
		return "", false, newShapeError(a.group, a.keyPath(key), tree.KindString.String(), n)
	}

	s = strings.TrimSpace(s)

	return s, s != "", nil
}

// RequireString returns the trimmed string under key, failing when it is absent or blank.
func (a *Accessor) RequireString(key string) (string, error) {
	s, ok, err := a.str(key)
	if err != nil {
		return "", err
	}

	if !ok {
		return "", &MissingError{Group: a.group, Path: a.keyPath(key)}
	}

	return s, nil
}

// String returns the trimmed string under key, or def when absent or blank.
func (a *Accessor) String(key, def string) (string, error) {
	s, ok, err := a.str(key)
	if err != nil {
		return "", err
	}

	if !ok {
		return def, nil
	}

	return s, nil
}

// Bool returns true only when the value under key is "true" ignoring case.
// Any other value, including "false", yields def.
func (a *Accessor) Bool(key string, def bool) (bool, error) {
	s, ok, err := a.str(key)
	if err != nil {
		return false, err
	}

	if !ok {
		return def, nil
	}

	return IsTrue(s, def), nil
}

// Map returns an accessor for the nested mapping under key.
// An absent value yields an empty accessor.
func (a *Accessor) Map(key string) (*Accessor, error) {
	return newAccessor(a.group, a.keyPath(key), a.Node(key))
}

// List returns the trimmed string items of the sequence under key.
// An absent value yields nil.
func (a *Accessor) List(key string) ([]string, error) {
	n := a.Node(key)
	if n.IsAbsent() {
		return nil, nil
	}

	items, ok := n.Sequence()
	if !ok {
		return nil, newShapeError(a.group, a.keyPath(key), tree.KindSequence.String(), n)
	}

	list := make([]string, 0, len(items))

	for _, item := range items {
		if item.IsAbsent() {
			continue
		}

		s, ok := item.Str()
		if !ok {
			return nil, newShapeError(a.group, a.keyPath(key), "list of "+tree.KindString.String(), item)
		}

		list = append(list, strings.TrimSpace(s))
	}

	return list, nil
}

// SlashList returns the slash-delimited string under key split into its parts.
func (a *Accessor) SlashList(key string) ([]string, error) {
	s, _, err := a.str(key)
	if err != nil {
		return nil, err
	}

	return SplitSlash(s), nil
}

// IsTrue applies the default-biased boolean rule: "true" ignoring case and
// surrounding spaces is true, anything else is def.
func IsTrue(value string, def bool) bool {
	if strings.EqualFold(strings.TrimSpace(value), "true") {
		return true
	}

	return def
}

// SplitSlash splits "a/b/c" into its trimmed parts in order.
// A blank input yields nil, never an empty or single-blank list.
func SplitSlash(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	parts := strings.Split(value, "/")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
