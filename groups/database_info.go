package groups

import (
	"errors"
	"strings"

	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"
)

// Table name pattern prefixes accepted by the except and target lists.
const (
	prefixPattern  = "prefix:"
	suffixPattern  = "suffix:"
	containPattern = "contain:"
)

var errEmptyPattern = errors.New("table pattern must not be empty")

// DatabaseInfo holds the connection and schema target settings.
type DatabaseInfo struct {
	Driver            string
	URL               string
	Schema            string
	User              string
	Password          string
	ObjectTypeTargets []string
	TableExcepts      []string
	TableTargets      []string
}

// NewDatabaseInfo resolves databaseInfoMap.
func NewDatabaseInfo(root tree.Node) (*DatabaseInfo, error) {
	a, err := property.NewAccessor(DatabaseInfoMap, root)
	if err != nil {
		return nil, err
	}

	d := &DatabaseInfo{}

	if d.Driver, err = a.RequireString("driver"); err != nil {
		return nil, err
	}

	if d.URL, err = a.RequireString("url"); err != nil {
		return nil, err
	}

	if d.Schema, err = a.String("schema", ""); err != nil {
		return nil, err
	}

	if d.User, err = a.String("user", ""); err != nil {
		return nil, err
	}

	if d.Password, err = a.String("password", ""); err != nil {
		return nil, err
	}

	various, err := a.Map("variousMap")
	if err != nil {
		return nil, err
	}

	if d.ObjectTypeTargets, err = various.List("objectTypeTargetList"); err != nil {
		return nil, err
	}

	if len(d.ObjectTypeTargets) == 0 {
		d.ObjectTypeTargets = []string{"TABLE", "VIEW"}
	}

	if d.TableExcepts, err = various.List("tableExceptList"); err != nil {
		return nil, err
	}

	if d.TableTargets, err = various.List("tableTargetList"); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate rejects blank table patterns such as a bare "prefix:".
func (d *DatabaseInfo) Validate() error {
	for _, pattern := range append(append([]string{}, d.TableExcepts...), d.TableTargets...) {
		if patternBody(pattern) == "" {
			return errEmptyPattern
		}
	}

	return nil
}

// IsTableExcept reports whether name matches an entry of the except list.
func (d *DatabaseInfo) IsTableExcept(name string) bool {
	return matchAny(name, d.TableExcepts)
}

// IsTableTarget reports whether name is generated: it matches the target
// list (or the list is empty) and is not excepted.
func (d *DatabaseInfo) IsTableTarget(name string) bool {
	if d.IsTableExcept(name) {
		return false
	}

	return len(d.TableTargets) == 0 || matchAny(name, d.TableTargets)
}

func patternBody(pattern string) string {
	lower := strings.ToLower(pattern)
	for _, prefix := range []string{prefixPattern, suffixPattern, containPattern} {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(pattern[len(prefix):])
		}
	}

	return strings.TrimSpace(pattern)
}

func matchAny(name string, patterns []string) bool {
	upper := strings.ToUpper(name)

	for _, pattern := range patterns {
		body := strings.ToUpper(patternBody(pattern))
		lower := strings.ToLower(pattern)

		var hit bool

		switch {
		case strings.HasPrefix(lower, prefixPattern):
			hit = strings.HasPrefix(upper, body)
		case strings.HasPrefix(lower, suffixPattern):
			hit = strings.HasSuffix(upper, body)
		case strings.HasPrefix(lower, containPattern):
			hit = strings.Contains(upper, body)
		default:
			hit = upper == body
		}

		if hit {
			return true
		}
	}

	return false
}
