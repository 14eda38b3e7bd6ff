package yaml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-dfprop/config"
	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// ErrEmptyData is returned when the input data is empty. It wraps config.ErrAbsent.
var ErrEmptyData = fmt.Errorf("empty data: %w", config.ErrAbsent)

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
// It wraps config.ErrAbsent.
var ErrPathNotFound = fmt.Errorf("path not found: %w", config.ErrAbsent)

// documentSubject names the shape error subject for keys rejected at the document boundary.
const documentSubject = "(document)"

// Parser implements config.Parser interface for YAML data.
// It uses goccy/go-yaml PathString for path navigation and builds the tree
// from the syntax tree, so mapping order and the source text of every scalar
// survive: "0123" stays "0123" and "1.10" stays "1.10".
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses YAML data into a tree.
// The path parameter specifies a navigation path using colon (:) as separator.
// Empty path parses the entire document.
func (p *Parser) Parse(data []byte, path string) (tree.Node, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return tree.Absent(), ErrEmptyData
	}

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return tree.Absent(), fmt.Errorf("unmarshal error: %w", err)
	}

	conv := newConverter(file)

	if path == "" {
		if len(file.Docs) == 0 {
			return tree.Absent(), nil
		}

		return conv.toNode(nil, file.Docs[0].Body)
	}

	yamlPath := convertToYAMLPath(path)

	pathObj, err := yaml.PathString(yamlPath)
	if err != nil {
		return tree.Absent(), fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := pathObj.FilterFile(file)
	if err != nil {
		if isKeyNotFoundError(err) {
			return tree.Absent(), fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return tree.Absent(), fmt.Errorf("reading path %q: %w", path, err)
	}

	return conv.toNode(strings.Split(path, ":"), node)
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "databaseInfoMap:variousMap" -> "$.databaseInfoMap.variousMap"
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, ":")

	return "$." + strings.Join(parts, ".")
}

// isKeyNotFoundError checks if the error indicates a key was not found.
func isKeyNotFoundError(err error) bool {
	return yaml.IsNotFoundNodeError(err)
}

var (
	errNonScalarKey    = errors.New("mapping key must be a scalar")
	errUnknownAlias    = errors.New("alias refers to an unknown anchor")
	errUnsupportedNode = errors.New("unsupported yaml node")
)

// converter turns syntax nodes into tree nodes, resolving aliases against
// every anchor of the file.
type converter struct {
	anchors map[string]ast.Node
}

func newConverter(file *ast.File) *converter {
	c := &converter{anchors: map[string]ast.Node{}}

	for _, doc := range file.Docs {
		c.collect(doc.Body)
	}

	return c
}

func (c *converter) collect(node ast.Node) {
	switch n := node.(type) {
	case *ast.AnchorNode:
		c.anchors[n.Name.GetToken().Value] = n.Value
		c.collect(n.Value)
	case *ast.TagNode:
		c.collect(n.Value)
	case *ast.MappingNode:
		for _, item := range n.Values {
			c.collect(item)
		}
	case *ast.MappingValueNode:
		c.collect(n.Key)
		c.collect(n.Value)
	case *ast.SequenceNode:
		for _, item := range n.Values {
			c.collect(item)
		}
	}
}

// scalarText returns the text of a scalar as written, without decoding it.
func scalarText(node ast.Node) (string, bool) {
	switch n := node.(type) {
	case *ast.StringNode:
		return n.Value, true
	case *ast.LiteralNode:
		return n.Value.Value, true
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		return node.GetToken().Value, true
	default:
		return "", false
	}
}

// toNode converts a syntax node into a tree node. Scalars keep their source
// text; null becomes absent.
func (c *converter) toNode(path []string, node ast.Node) (tree.Node, error) {
	if text, ok := scalarText(node); ok {
		return tree.String(text), nil
	}

	switch n := node.(type) {
	case nil, *ast.NullNode, *ast.CommentGroupNode:
		return tree.Absent(), nil
	case *ast.TagNode:
		return c.toNode(path, n.Value)
	case *ast.AnchorNode:
		return c.toNode(path, n.Value)
	case *ast.AliasNode:
		target, err := c.resolve(n)
		if err != nil {
			return tree.Absent(), err
		}

		return c.toNode(path, target)
	case *ast.MappingNode:
		m := tree.NewMapping()

		for _, item := range n.Values {
			if err := c.setEntry(m, path, item); err != nil {
				return tree.Absent(), err
			}
		}

		return tree.Map(m), nil
	case *ast.MappingValueNode:
		m := tree.NewMapping()

		if err := c.setEntry(m, path, n); err != nil {
			return tree.Absent(), err
		}

		return tree.Map(m), nil
	case *ast.SequenceNode:
		items := make([]tree.Node, 0, len(n.Values))

		for _, item := range n.Values {
			child, err := c.toNode(path, item)
			if err != nil {
				return tree.Absent(), err
			}

			items = append(items, child)
		}

		return tree.Seq(items...), nil
	default:
		return tree.Absent(), fmt.Errorf("%w: %s at %s", errUnsupportedNode, node.Type(), strings.Join(path, "."))
	}
}

func (c *converter) resolve(alias *ast.AliasNode) (ast.Node, error) {
	name := alias.Value.GetToken().Value

	target, ok := c.anchors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownAlias, name)
	}

	return target, nil
}

// setEntry stores one mapping entry. A merge key ("<<") adds the entries of
// the merged mappings that are not set yet.
func (c *converter) setEntry(m *tree.Mapping, path []string, item *ast.MappingValueNode) error {
	if _, ok := item.Key.(*ast.MergeKeyNode); ok {
		return c.merge(m, path, item.Value)
	}

	key, err := keyString(path, item.Key)
	if err != nil {
		return err
	}

	child, err := c.toNode(append(append([]string{}, path...), key), item.Value)
	if err != nil {
		return err
	}

	m.Set(key, child)

	return nil
}

func (c *converter) merge(m *tree.Mapping, path []string, value ast.Node) error {
	merged, err := c.toNode(path, value)
	if err != nil {
		return err
	}

	sources := []tree.Node{merged}
	if items, ok := merged.Sequence(); ok {
		sources = items
	}

	for _, source := range sources {
		entries, ok := source.Mapping()
		if !ok {
			return keyShapeError(path, source.Kind(), "<<")
		}

		for key, child := range entries.All() {
			if !m.Has(key) {
				m.Set(key, child)
			}
		}
	}

	return nil
}

// keyString accepts scalar keys only; a mapping, sequence or null key is a shape error.
func keyString(path []string, key ast.Node) (string, error) {
	for {
		switch k := key.(type) {
		case *ast.TagNode:
			key = k.Value

			continue
		case *ast.AnchorNode:
			key = k.Value

			continue
		case *ast.MappingKeyNode:
			key = k.Value

			continue
		}

		break
	}

	if text, ok := scalarText(key); ok {
		return text, nil
	}

	switch key.(type) {
	case *ast.MappingNode, *ast.MappingValueNode:
		return "", keyShapeError(path, tree.KindMapping, key.String())
	case *ast.SequenceNode:
		return "", keyShapeError(path, tree.KindSequence, key.String())
	default:
		return "", keyShapeError(path, tree.KindAbsent, fmt.Sprint(key))
	}
}

func keyShapeError(path []string, actual tree.Kind, key string) error {
	shapeErr := &property.ShapeError{
		Group:    documentSubject,
		Path:     append(append([]string{}, path...), "(key)"),
		Expected: "string key",
		Actual:   actual,
		Value:    key,
	}

	return fmt.Errorf("%w: %w", errNonScalarKey, shapeErr)
}
