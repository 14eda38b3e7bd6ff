package groups

import (
	"github.com/0xalexb/hjarta-dfprop/omap"
	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"
)

// KeyDefinition is one additional primary or unique key.
type KeyDefinition struct {
	Name    string
	Table   string
	Columns []string
}

// additionalKeys is the shared resolution of additional primary and unique keys.
type additionalKeys struct {
	group string
	keys  *omap.Map[KeyDefinition]
}

func newAdditionalKeys(group string, root tree.Node) (additionalKeys, error) {
	defs, err := property.ParseDefinitions(group, root, false)
	if err != nil {
		return additionalKeys{}, err
	}

	keys := omap.New[KeyDefinition]()

	for name, attrs := range defs.All() {
		r := attrReader{group: group, name: name, attrs: attrs}

		table, err := r.require("tableName")
		if err != nil {
			return additionalKeys{}, err
		}

		if _, err := r.require("columnName"); err != nil {
			return additionalKeys{}, err
		}

		keys.Set(name, KeyDefinition{Name: name, Table: table, Columns: r.slash("columnName")})
	}

	return additionalKeys{group: group, keys: keys}, nil
}

// Names returns the key names in order.
func (k additionalKeys) Names() []string {
	return k.keys.Keys()
}

// Len returns the number of keys.
func (k additionalKeys) Len() int {
	return k.keys.Len()
}

// Find returns the named key.
func (k additionalKeys) Find(name string) (KeyDefinition, error) {
	def, ok := k.keys.Get(name)
	if !ok {
		return KeyDefinition{}, property.NewUnknownDefinitionError(k.group, name, "")
	}

	return def, nil
}

// FindColumns returns the columns of the named key.
func (k additionalKeys) FindColumns(name string) ([]string, error) {
	def, ok := k.keys.Get(name)
	if !ok {
		return nil, property.NewUnknownDefinitionError(k.group, name, "columnName")
	}

	return def.Columns, nil
}

// ForTable returns the keys declared on table.
func (k additionalKeys) ForTable(table string) []KeyDefinition {
	var out []KeyDefinition

	for _, def := range k.keys.All() {
		if matchName(def.Table, table) {
			out = append(out, def)
		}
	}

	return out
}

// AdditionalPrimaryKey is the resolved additionalPrimaryKeyMap, used for
// tables (typically views) without a database primary key.
type AdditionalPrimaryKey struct {
	additionalKeys
}

// NewAdditionalPrimaryKey resolves additionalPrimaryKeyMap.
func NewAdditionalPrimaryKey(root tree.Node) (*AdditionalPrimaryKey, error) {
	keys, err := newAdditionalKeys(AdditionalPrimaryKeyMap, root)
	if err != nil {
		return nil, err
	}

	return &AdditionalPrimaryKey{additionalKeys: keys}, nil
}

// AdditionalUniqueKey is the resolved additionalUniqueKeyMap.
type AdditionalUniqueKey struct {
	additionalKeys
}

// NewAdditionalUniqueKey resolves additionalUniqueKeyMap.
func NewAdditionalUniqueKey(root tree.Node) (*AdditionalUniqueKey, error) {
	keys, err := newAdditionalKeys(AdditionalUniqueKeyMap, root)
	if err != nil {
		return nil, err
	}

	return &AdditionalUniqueKey{additionalKeys: keys}, nil
}
