package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/hjarta-dfprop/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, path string, content []byte) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, content, 0o600))
}

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := []byte(`
project: maihamadb
database: mysql
`)

	tmpDir := t.TempDir()
	writeDoc(t, filepath.Join(tmpDir, "basicInfoMap.yaml"), content)

	fetcher, err := NewFetcher(tmpDir, "")()
	require.NoError(t, err)

	data, err := fetcher.Fetch("basicInfoMap")

	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestFetcher_Fetch_YmlExtension(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeDoc(t, filepath.Join(tmpDir, "typeMappingMap.yml"), []byte("VARCHAR: String"))

	fetcher, err := NewFetcher(tmpDir, "")()
	require.NoError(t, err)

	data, err := fetcher.Fetch("typeMappingMap")
	require.NoError(t, err)
	assert.Equal(t, []byte("VARCHAR: String"), data)
}

func TestFetcher_Fetch_EnvironmentOverridesBase(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeDoc(t, filepath.Join(tmpDir, "databaseInfoMap.yaml"), []byte("url: base"))
	writeDoc(t, filepath.Join(tmpDir, "ut", "databaseInfoMap.yaml"), []byte("url: ut"))
	writeDoc(t, filepath.Join(tmpDir, "basicInfoMap.yaml"), []byte("project: base"))

	fetcher, err := NewFetcher(tmpDir, "ut")()
	require.NoError(t, err)

	data, err := fetcher.Fetch("databaseInfoMap")
	require.NoError(t, err)
	assert.Equal(t, []byte("url: ut"), data)

	data, err = fetcher.Fetch("basicInfoMap")
	require.NoError(t, err)
	assert.Equal(t, []byte("project: base"), data, "base document is used when the environment has none")
}

func TestFetcher_Fetch_NotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(t.TempDir(), "ut")()
	require.NoError(t, err)

	data, err := fetcher.Fetch("sequenceDefinitionMap")

	require.Error(t, err)
	assert.Nil(t, data)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, err, config.ErrAbsent)
	assert.Contains(t, err.Error(), "sequenceDefinitionMap")
}

func TestNewFetcher_DirectoryNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher("/nonexistent/path/dfprop", "")()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	assert.Contains(t, err.Error(), "stat directory")
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestNewFetcher_PathIsFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "dfprop.yaml")
	writeDoc(t, path, []byte("a: b"))

	fetcher, err := NewFetcher(path, "")()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, ErrPathIsNotDirectory)
}

func TestNewFetcher_ReturnsValidConstructor(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	constructor := NewFetcher(tmpDir+"/./", "it")

	assert.NotNil(t, constructor)

	fetcher, err := constructor()
	require.NoError(t, err)
	assert.NotNil(t, fetcher)
	assert.Equal(t, filepath.Clean(tmpDir), fetcher.dir)
	assert.Equal(t, "it", fetcher.env)
}

func TestFetcher_Fetch_CachesAndReturnsCopies(t *testing.T) {
	t.Parallel()

	content := []byte("project: maihamadb")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "basicInfoMap.yaml")
	writeDoc(t, path, content)

	fetcher, err := NewFetcher(tmpDir, "")()
	require.NoError(t, err)

	first, err := fetcher.Fetch("basicInfoMap")
	require.NoError(t, err)

	first[0] = 'X'

	require.NoError(t, os.Remove(path))

	second, err := fetcher.Fetch("basicInfoMap")
	require.NoError(t, err, "cached document survives removal")
	assert.Equal(t, content, second, "callers cannot mutate the cache")
}

func TestFetcher_Candidates(t *testing.T) {
	t.Parallel()

	f := &Fetcher{dir: "/p", env: "ut"}

	assert.Equal(t, []string{
		"/p/ut/x.yaml",
		"/p/ut/x.yml",
		"/p/x.yaml",
		"/p/x.yml",
	}, f.candidates("x"))

	f = &Fetcher{dir: "/p"}
	assert.Equal(t, []string{"/p/x.yaml", "/p/x.yml"}, f.candidates("x"))
}
