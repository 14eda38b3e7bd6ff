package groups

import (
	"github.com/0xalexb/hjarta-dfprop/omap"
	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"
)

// CommonColumn is the resolved commonColumnMap: columns shared by every
// table, mapped to their JDBC type in declaration order.
type CommonColumn struct {
	columns *omap.Map[string]
}

// NewCommonColumn resolves commonColumnMap.
func NewCommonColumn(root tree.Node) (*CommonColumn, error) {
	a, err := property.NewAccessor(CommonColumnMap, root)
	if err != nil {
		return nil, err
	}

	columns := omap.NewFold[string]()

	for _, column := range a.Keys() {
		jdbcType, err := a.RequireString(column)
		if err != nil {
			return nil, err
		}

		columns.Set(column, jdbcType)
	}

	return &CommonColumn{columns: columns}, nil
}

// ColumnNames returns the common columns in declaration order.
func (c *CommonColumn) ColumnNames() []string {
	return c.columns.Keys()
}

// Len returns the number of common columns.
func (c *CommonColumn) Len() int {
	return c.columns.Len()
}

// IsCommonColumn reports whether column is a common column, ignoring case.
func (c *CommonColumn) IsCommonColumn(column string) bool {
	return c.columns.Has(column)
}

// FindColumnType returns the JDBC type of a common column.
func (c *CommonColumn) FindColumnType(column string) (string, error) {
	jdbcType, ok := c.columns.Get(column)
	if !ok {
		return "", property.NewUnknownDefinitionError(CommonColumnMap, column, "column type")
	}

	return jdbcType, nil
}
