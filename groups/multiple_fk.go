package groups

import (
	"strings"

	"github.com/0xalexb/hjarta-dfprop/omap"
	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"
)

const columnAliasName = "columnAliasName"

// MultipleFKProperty is the resolved multipleFKPropertyMap: per table, the
// alias used for a relation whose local columns are a composite key.
//
//	multipleFKPropertyMap:
//	  MEMBER_ADDRESS:
//	    MEMBER_ID/VALID_BEGIN_DATE:
//	      columnAliasName: Valid
//
// Table names and composite column keys compare case-insensitively and the
// column key is normalized to "COL1/COL2" without surrounding spaces.
type MultipleFKProperty struct {
	tables *omap.Map[*omap.Map[string]]
}

// NewMultipleFKProperty resolves multipleFKPropertyMap.
func NewMultipleFKProperty(root tree.Node) (*MultipleFKProperty, error) {
	a, err := property.NewAccessor(MultipleFKPropertyMap, root)
	if err != nil {
		return nil, err
	}

	tables := omap.NewFold[*omap.Map[string]]()

	for _, table := range a.Keys() {
		defs, err := a.Definitions(table, true)
		if err != nil {
			return nil, err
		}

		aliases := omap.NewFold[string]()

		for columns, attrs := range defs.All() {
			r := attrReader{group: MultipleFKPropertyMap, name: table + "." + columns, attrs: attrs}

			alias, err := r.require(columnAliasName)
			if err != nil {
				return nil, err
			}

			aliases.Set(columnsKey(property.SplitSlash(columns)), alias)
		}

		tables.Set(table, aliases)
	}

	return &MultipleFKProperty{tables: tables}, nil
}

func columnsKey(columns []string) string {
	trimmed := make([]string, 0, len(columns))
	for _, column := range columns {
		trimmed = append(trimmed, strings.TrimSpace(column))
	}

	return strings.Join(trimmed, "/")
}

// Tables returns the configured table names.
func (m *MultipleFKProperty) Tables() []string {
	return m.tables.Keys()
}

// HasColumnAlias reports whether an alias is configured for the columns of table.
func (m *MultipleFKProperty) HasColumnAlias(table string, columns []string) bool {
	aliases, ok := m.tables.Get(table)
	if !ok {
		return false
	}

	return aliases.Has(columnsKey(columns))
}

// FindColumnAlias returns the alias configured for the columns of table.
func (m *MultipleFKProperty) FindColumnAlias(table string, columns []string) (string, error) {
	aliases, ok := m.tables.Get(table)
	if !ok {
		return "", property.NewUnknownDefinitionError(MultipleFKPropertyMap, table, columnAliasName)
	}

	key := columnsKey(columns)

	alias, ok := aliases.Get(key)
	if !ok {
		return "", property.NewUnknownDefinitionError(MultipleFKPropertyMap, table+"."+key, columnAliasName)
	}

	return alias, nil
}
