package groups_test

import (
	"testing"

	"github.com/0xalexb/hjarta-dfprop/groups"
	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdditionalPrimaryKey(t *testing.T) {
	t.Parallel()

	pks, err := groups.NewAdditionalPrimaryKey(parse(t, `
PK_SUMMARY_PRODUCT:
  tableName: SUMMARY_PRODUCT
  columnName: PRODUCT_ID
PK_SUMMARY_WITHDRAWAL:
  tableName: SUMMARY_WITHDRAWAL
  columnName: MEMBER_ID / WITHDRAWAL_DATETIME
`))
	require.NoError(t, err)

	assert.Equal(t, 2, pks.Len())
	assert.Equal(t, []string{"PK_SUMMARY_PRODUCT", "PK_SUMMARY_WITHDRAWAL"}, pks.Names())

	columns, err := pks.FindColumns("PK_SUMMARY_WITHDRAWAL")
	require.NoError(t, err)
	assert.Equal(t, []string{"MEMBER_ID", "WITHDRAWAL_DATETIME"}, columns)

	keys := pks.ForTable("summary_product")
	require.Len(t, keys, 1)
	assert.Equal(t, groups.KeyDefinition{
		Name:    "PK_SUMMARY_PRODUCT",
		Table:   "SUMMARY_PRODUCT",
		Columns: []string{"PRODUCT_ID"},
	}, keys[0])

	_, err = pks.Find("PK_UNKNOWN")
	require.ErrorIs(t, err, property.ErrUnknownDefinition)
}

func TestNewAdditionalUniqueKey(t *testing.T) {
	t.Parallel()

	uks, err := groups.NewAdditionalUniqueKey(parse(t, `
UQ_MEMBER_ACCOUNT:
  tableName: MEMBER
  columnName: MEMBER_ACCOUNT
`))
	require.NoError(t, err)

	uk, err := uks.Find("UQ_MEMBER_ACCOUNT")
	require.NoError(t, err)
	assert.Equal(t, "MEMBER", uk.Table)
	assert.Empty(t, uks.ForTable("PRODUCT"))

	_, err = uks.FindColumns("UQ_NOPE")

	var unknown *property.UnknownDefinitionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, groups.AdditionalUniqueKeyMap, unknown.Group)
}

func TestNewAdditionalKey_Required(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		doc  string
		path []string
	}{
		{name: "table", doc: "PK_X:\n  columnName: ID\n", path: []string{"PK_X", "tableName"}},
		{name: "column", doc: "PK_X:\n  tableName: T\n", path: []string{"PK_X", "columnName"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := groups.NewAdditionalPrimaryKey(parse(t, tc.doc))

			var missing *property.MissingError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.path, missing.Path)
		})
	}
}

func TestNewAdditionalKey_Absent(t *testing.T) {
	t.Parallel()

	pks, err := groups.NewAdditionalPrimaryKey(tree.Absent())
	require.NoError(t, err)
	assert.Zero(t, pks.Len())
}
