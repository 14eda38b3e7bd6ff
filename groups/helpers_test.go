package groups_test

import (
	"testing"

	yamlparser "github.com/0xalexb/hjarta-dfprop/config/parser/yaml"
	"github.com/0xalexb/hjarta-dfprop/tree"

	"github.com/stretchr/testify/require"
)

// parse decodes one YAML document into a tree.
func parse(t *testing.T, doc string) tree.Node {
	t.Helper()

	node, err := yamlparser.NewParser().Parse([]byte(doc), "")
	require.NoError(t, err)

	return node
}
