package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/0xalexb/hjarta-dfprop/config"
)

// ErrPathIsNotDirectory is returned when the property directory given to the Fetcher is a file.
var ErrPathIsNotDirectory = errors.New("path is not a directory")

// ErrNotFound is returned when no document exists for a name. It wraps config.ErrAbsent.
var ErrNotFound = fmt.Errorf("document not found: %w", config.ErrAbsent)

// Extensions lists the document extensions tried in order.
//
//nolint:gochecknoglobals // fixed lookup order.
var Extensions = []string{".yaml", ".yml"}

// Fetcher implements config.DataFetcher for a directory of property documents.
//
// A document named "basicInfoMap" is looked up as <dir>/<env>/basicInfoMap.yaml
// first when an environment is set, then as <dir>/basicInfoMap.yaml.
// Documents are read once and cached.
type Fetcher struct {
	dir   string
	env   string
	cache map[string][]byte
}

// NewFetcher returns a constructor function that creates a new directory-based
// Fetcher. The directory is validated at construction time.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// Returns an error if the directory cannot be read or if the path points to a file.
func NewFetcher(dir, env string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanDir := filepath.Clean(dir)

		stat, err := os.Stat(cleanDir)
		if err != nil {
			return nil, fmt.Errorf("stat directory %q: %w", cleanDir, err)
		}

		if !stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanDir, ErrPathIsNotDirectory)
		}

		return &Fetcher{
			dir:   cleanDir,
			env:   env,
			cache: make(map[string][]byte),
		}, nil
	}
}

// Fetch returns a copy of the document for name, reading it on first use.
// A copy is returned to prevent callers from mutating the cached data.
func (f *Fetcher) Fetch(name string) ([]byte, error) {
	data, ok := f.cache[name]
	if !ok {
		var err error

		data, err = f.read(name)
		if err != nil {
			return nil, err
		}

		f.cache[name] = data
	}

	result := make([]byte, len(data))
	copy(result, data)

	return result, nil
}

func (f *Fetcher) read(name string) ([]byte, error) {
	for _, candidate := range f.candidates(name) {
		data, err := os.ReadFile(candidate) // #nosec G304 -- path is built from the cleaned property directory
		if err == nil {
			return data, nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading file %q: %w", candidate, err)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (f *Fetcher) candidates(name string) []string {
	var dirs []string
	if f.env != "" {
		dirs = append(dirs, filepath.Join(f.dir, f.env))
	}

	dirs = append(dirs, f.dir)

	paths := make([]string, 0, len(dirs)*len(Extensions))
	for _, dir := range dirs {
		for _, ext := range Extensions {
			paths = append(paths, filepath.Join(dir, name+ext))
		}
	}

	return paths
}
