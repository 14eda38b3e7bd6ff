// Package config loads property group trees from raw documents.
//
// The package uses an interface-based design with three extension points:
//   - Parser: turns raw data into a tree.Node, with path navigation support
//   - DataFetcher: retrieves the raw document of a named source (file, memory, etc.)
//   - Validator: validates a resolved group after it is built
//
// # Layouts
//
// Provider supports two document layouts:
//
//	Provider("")        -> one document per group, fetched by group name
//	Provider("dfprop")  -> one document "dfprop" whose top-level keys are groups
//
// A group whose document or key does not exist is reported as an absent
// tree, so its resolver applies defaults.
//
// # Example
//
//	parser := yamlparser.NewParser()
//	fetcher, err := filefetcher.NewFetcher("./dfprop", "ut")()
//	source := config.Provider("")(parser, fetcher)
//	node, err := source("basicInfoMap")
package config
