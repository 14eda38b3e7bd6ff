// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml with ordered map decoding, so
// the resulting tree keeps the key order of the document, and native
// PathString support for navigating to a single property group. The parser
// converts colon-separated paths (e.g., "databaseInfoMap:variousMap") to
// YAML path format (e.g., "$.databaseInfoMap.variousMap") internally.
//
// Usage:
//
//	parser := yaml.NewParser()
//	node, err := parser.Parse(data, "additionalForeignKeyMap")
//
// Value conversion:
//   - mappings -> tree mapping (document order)
//   - sequences -> tree sequence
//   - scalars -> tree string (numbers and booleans keep their text form)
//   - null -> absent
//
// Mapping keys must be scalars; a mapping or sequence used as a key is
// rejected with a *property.ShapeError.
package yaml
