package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/0xalexb/hjarta-dfprop/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockParser struct {
	parseFunc func(data []byte, path string) (tree.Node, error)
}

func (m *mockParser) Parse(data []byte, path string) (tree.Node, error) {
	return m.parseFunc(data, path)
}

type mockDataFetcher struct {
	fetchFunc func(name string) ([]byte, error)
}

func (m *mockDataFetcher) Fetch(name string) ([]byte, error) {
	return m.fetchFunc(name)
}

type validated struct {
	err error
}

func (v *validated) Validate() error {
	return v.err
}

func TestProvider_PerGroupDocuments(t *testing.T) {
	t.Parallel()

	var fetched, parsedPath string

	parser := &mockParser{
		parseFunc: func(data []byte, path string) (tree.Node, error) {
			parsedPath = path

			return tree.String(string(data)), nil
		},
	}
	fetcher := &mockDataFetcher{
		fetchFunc: func(name string) ([]byte, error) {
			fetched = name

			return []byte("data of " + name), nil
		},
	}

	source := Provider("")(parser, fetcher)

	node, err := source("basicInfoMap")
	require.NoError(t, err)

	s, _ := node.Str()
	assert.Equal(t, "data of basicInfoMap", s)
	assert.Equal(t, "basicInfoMap", fetched)
	assert.Empty(t, parsedPath)
}

func TestProvider_SingleDocument(t *testing.T) {
	t.Parallel()

	var fetched, parsedPath string

	parser := &mockParser{
		parseFunc: func(_ []byte, path string) (tree.Node, error) {
			parsedPath = path

			return tree.MapOf(), nil
		},
	}
	fetcher := &mockDataFetcher{
		fetchFunc: func(name string) ([]byte, error) {
			fetched = name

			return []byte("data"), nil
		},
	}

	source := Provider("dfprop")(parser, fetcher)

	_, err := source("typeMappingMap")
	require.NoError(t, err)
	assert.Equal(t, "dfprop", fetched)
	assert.Equal(t, "typeMappingMap", parsedPath)
}

func TestProvider_AbsentFetchYieldsAbsentTree(t *testing.T) {
	t.Parallel()

	parser := &mockParser{
		parseFunc: func(_ []byte, _ string) (tree.Node, error) {
			t.Fatal("parser must not be called")

			return tree.Absent(), nil
		},
	}
	fetcher := &mockDataFetcher{
		fetchFunc: func(name string) ([]byte, error) {
			return nil, fmt.Errorf("no %s: %w", name, ErrAbsent)
		},
	}

	node, err := Provider("")(parser, fetcher)("sequenceDefinitionMap")
	require.NoError(t, err)
	assert.True(t, node.IsAbsent())
}

func TestProvider_AbsentPathYieldsAbsentTree(t *testing.T) {
	t.Parallel()

	parser := &mockParser{
		parseFunc: func(_ []byte, path string) (tree.Node, error) {
			return tree.Absent(), fmt.Errorf("%s: %w", path, ErrAbsent)
		},
	}
	fetcher := &mockDataFetcher{
		fetchFunc: func(_ string) ([]byte, error) {
			return []byte("data"), nil
		},
	}

	node, err := Provider("dfprop")(parser, fetcher)("commonColumnMap")
	require.NoError(t, err)
	assert.True(t, node.IsAbsent())
}

func TestProvider_FetchError(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("permission denied")
	parser := &mockParser{
		parseFunc: func(_ []byte, _ string) (tree.Node, error) {
			return tree.Absent(), nil
		},
	}
	fetcher := &mockDataFetcher{
		fetchFunc: func(_ string) ([]byte, error) {
			return nil, fetchErr
		},
	}

	_, err := Provider("")(parser, fetcher)("basicInfoMap")

	require.Error(t, err)
	require.ErrorIs(t, err, fetchErr)
	assert.Contains(t, err.Error(), "reading data error")
}

func TestProvider_ParseError(t *testing.T) {
	t.Parallel()

	parseErr := errors.New("bad yaml")
	parser := &mockParser{
		parseFunc: func(_ []byte, _ string) (tree.Node, error) {
			return tree.Absent(), parseErr
		},
	}
	fetcher := &mockDataFetcher{
		fetchFunc: func(_ string) ([]byte, error) {
			return []byte("data"), nil
		},
	}

	_, err := Provider("")(parser, fetcher)("basicInfoMap")

	require.Error(t, err)
	require.ErrorIs(t, err, parseErr)
	assert.Contains(t, err.Error(), "parsing error")
}

func TestStatic(t *testing.T) {
	t.Parallel()

	source := Static(map[string]tree.Node{
		"basicInfoMap": tree.MapOf(tree.KV("project", tree.String("x"))),
	})

	node, err := source("basicInfoMap")
	require.NoError(t, err)
	assert.Equal(t, tree.KindMapping, node.Kind())

	node, err = source("other")
	require.NoError(t, err)
	assert.True(t, node.IsAbsent())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate("plain", struct{}{}))
	require.NoError(t, Validate("ok", &validated{}))

	validationErr := errors.New("invalid")
	err := Validate("databaseInfoMap", &validated{err: validationErr})

	require.ErrorIs(t, err, validationErr)
	assert.Contains(t, err.Error(), "validating databaseInfoMap error")
}
