package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-dfprop/tree"
)

// ErrAbsent is wrapped by parsers and fetchers when a property group is not
// configured at all. Provider turns it into an absent tree.
var ErrAbsent = errors.New("property group absent")

// Parser defines an interface for parsing raw configuration data into a value tree.
//
// The path parameter specifies a navigation path within the document using
// colon (:) as the separator for nested keys. For example:
//   - "basicInfoMap" navigates to doc["basicInfoMap"]
//   - "databaseInfoMap:variousMap" navigates two levels deep
//   - "" (empty path) means parse the entire document
//
// Parser implementations are responsible for path navigation internally.
// See config/parser/yaml for an example using goccy/go-yaml PathString.
type Parser interface {
	Parse(data []byte, path string) (tree.Node, error)
}

// DataFetcher defines an interface for reading the raw document of a named source.
type DataFetcher interface {
	Fetch(name string) ([]byte, error)
}

// Validator defines an interface for validating a resolved property group.
type Validator interface {
	Validate() error
}

// Source loads the raw tree of one named property group.
type Source func(group string) (tree.Node, error)

// Provider returns a function that builds a Source from a parser and a fetcher.
//
// With an empty document every group is read from its own document fetched
// under the group name. Otherwise the single named document is fetched and
// each group is navigated to by its name.
func Provider(document string) func(Parser, DataFetcher) Source {
	return func(parser Parser, fetcher DataFetcher) Source {
		return func(group string) (tree.Node, error) {
			name, path := group, ""
			if document != "" {
				name, path = document, group
			}

			data, err := fetcher.Fetch(name)
			if err != nil {
				if errors.Is(err, ErrAbsent) {
					slog.Debug("property group absent", slog.String("group", group))

					return tree.Absent(), nil
				}

				return tree.Absent(), fmt.Errorf("reading data error: %w", err)
			}

			node, err := parser.Parse(data, path)
			if err != nil {
				if errors.Is(err, ErrAbsent) {
					slog.Debug("property group absent", slog.String("group", group))

					return tree.Absent(), nil
				}

				return tree.Absent(), fmt.Errorf("parsing error: %w", err)
			}

			slog.Debug("property group loaded",
				slog.String("group", group),
				slog.String("kind", node.Kind().String()))

			return node, nil
		}
	}
}

// Static returns a Source serving pre-built trees; unknown groups are absent.
func Static(groups map[string]tree.Node) Source {
	return func(group string) (tree.Node, error) {
		return groups[group], nil
	}
}

// Validate runs target's Validate method when it implements Validator.
func Validate(name string, target any) error {
	validatable, ok := target.(Validator)
	if !ok {
		return nil
	}

	err := validatable.Validate()
	if err != nil {
		return fmt.Errorf("validating %s error: %w", name, err)
	}

	return nil
}
