// Package tree defines the typed value tree a property group is resolved from.
//
// A tree is produced by an external parser (see config/parser/yaml) and
// read by the property package; it is never mutated after construction.
package tree

import (
	"strings"

	"github.com/0xalexb/hjarta-dfprop/omap"
)

// Kind discriminates the variants of Node.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindString
	KindMapping
	KindSequence
)

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindMapping:
		return "map"
	case KindSequence:
		return "list"
	default:
		return "unknown"
	}
}

// Mapping is an insertion-ordered, case-preserving map of child nodes.
type Mapping = omap.Map[Node]

// Node is one value of the tree: absent, a string, a mapping or a sequence.
// The zero value is an absent node.
type Node struct {
	kind    Kind
	str     string
	mapping *Mapping
	seq     []Node
}

// Absent returns the absent node.
func Absent() Node {
	return Node{}
}

// String returns a string node.
func String(s string) Node {
	return Node{kind: KindString, str: s}
}

// Map wraps m as a mapping node. A nil m becomes an empty mapping.
func Map(m *Mapping) Node {
	if m == nil {
		m = NewMapping()
	}

	return Node{kind: KindMapping, mapping: m}
}

// Seq returns a sequence node of items.
func Seq(items ...Node) Node {
	seq := make([]Node, len(items))
	copy(seq, items)

	return Node{kind: KindSequence, seq: seq}
}

// NewMapping creates an empty mapping.
func NewMapping() *Mapping {
	return omap.New[Node]()
}

// Entry is a key/value pair for MapOf.
type Entry struct {
	Key   string
	Value Node
}

// KV builds an Entry.
func KV(key string, value Node) Entry {
	return Entry{Key: key, Value: value}
}

// MapOf builds a mapping node from entries in order.
func MapOf(entries ...Entry) Node {
	m := NewMapping()
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}

	return Map(m)
}

// Strings builds a sequence node of string items.
func Strings(items ...string) Node {
	seq := make([]Node, 0, len(items))
	for _, item := range items {
		seq = append(seq, String(item))
	}

	return Node{kind: KindSequence, seq: seq}
}

// Kind returns the variant of n.
func (n Node) Kind() Kind {
	return n.kind
}

// IsAbsent reports whether n carries no value.
func (n Node) IsAbsent() bool {
	return n.kind == KindAbsent
}

// Str returns the string value when n is a string node.
func (n Node) Str() (string, bool) {
	return n.str, n.kind == KindString
}

// Mapping returns the mapping when n is a mapping node.
func (n Node) Mapping() (*Mapping, bool) {
	return n.mapping, n.kind == KindMapping
}

// Sequence returns the items when n is a sequence node.
func (n Node) Sequence() ([]Node, bool) {
	return n.seq, n.kind == KindSequence
}

// String renders n in the dfprop literal style, e.g. map:{ ; a = b }.
// It is used for the actual value in shape diagnostics.
func (n Node) String() string {
	var sb strings.Builder
	n.render(&sb)

	return sb.String()
}

func (n Node) render(sb *strings.Builder) {
	switch n.kind {
	case KindAbsent:
		sb.WriteString("null")
	case KindString:
		sb.WriteString(n.str)
	case KindMapping:
		sb.WriteString("map:{")

		for key, value := range n.mapping.All() {
			sb.WriteString(" ; ")
			sb.WriteString(key)
			sb.WriteString(" = ")
			value.render(sb)
		}

		sb.WriteString(" }")
	case KindSequence:
		sb.WriteString("list:{")

		for _, item := range n.seq {
			sb.WriteString(" ; ")
			item.render(sb)
		}

		sb.WriteString(" }")
	}
}
