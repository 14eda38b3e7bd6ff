package groups

import (
	"strings"

	"github.com/0xalexb/hjarta-dfprop/property"
)

// attrReader reads typed attributes of one validated definition.
type attrReader struct {
	group string
	name  string
	attrs *property.Attributes
}

func (r attrReader) str(key string) string {
	v, _ := r.attrs.Get(key)

	return v
}

func (r attrReader) require(key string) (string, error) {
	v := r.str(key)
	if v == "" {
		return "", &property.MissingError{Group: r.group, Path: []string{r.name, key}}
	}

	return v, nil
}

func (r attrReader) boolean(key string) bool {
	return property.IsTrue(r.str(key), false)
}

func (r attrReader) slash(key string) []string {
	return property.SplitSlash(r.str(key))
}

// matchName compares database object names ignoring case.
func matchName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
