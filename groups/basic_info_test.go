package groups_test

import (
	"testing"

	"github.com/0xalexb/hjarta-dfprop/groups"
	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBasicInfo(t *testing.T) {
	t.Parallel()

	b, err := groups.NewBasicInfo(parse(t, `
project: maihamadb
database: MySQL
packageBase: org.docksidestage.dbflute
isTableNameCamelCase: TRUE
`))
	require.NoError(t, err)

	assert.Equal(t, "maihamadb", b.Project)
	assert.Equal(t, "mysql", b.Database)
	assert.True(t, b.IsDatabase("MYSQL"))
	assert.Equal(t, "java", b.TargetLanguage)
	assert.Equal(t, groups.DefaultTargetContainer, b.TargetContainer)
	assert.Equal(t, groups.DefaultGenerateOutputDirectory, b.GenerateOutputDirectory)
	assert.Equal(t, groups.DefaultResourceOutputDirectory, b.ResourceOutputDirectory)
	assert.True(t, b.TableNameCamelCase)
	assert.Equal(t, "org.docksidestage.dbflute.allcommon", b.AllCommonPackage())
	assert.Equal(t, "org.docksidestage.dbflute.exbhv", b.ExtendedBehaviorPackage())
	assert.Equal(t, "org.docksidestage.dbflute.cbean", b.ConditionBeanPackage())
}

func TestBasicInfo_PackagesWithoutBase(t *testing.T) {
	t.Parallel()

	b, err := groups.NewBasicInfo(parse(t, "project: p\ndatabase: h2\n"))
	require.NoError(t, err)

	assert.Equal(t, "bsbhv", b.BaseBehaviorPackage())
	assert.Equal(t, "bsentity", b.BaseEntityPackage())
	assert.Equal(t, "exentity", b.ExtendedEntityPackage())
}

func TestNewBasicInfo_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		root   tree.Node
		target error
	}{
		{name: "absent group misses project", root: tree.Absent(), target: property.ErrMissingRequired},
		{name: "missing database", root: tree.MapOf(tree.KV("project", tree.String("p"))), target: property.ErrMissingRequired},
		{
			name: "unsupported database",
			root: tree.MapOf(
				tree.KV("project", tree.String("p")),
				tree.KV("database", tree.String("cobol")),
			),
			target: property.ErrUnknownDefinition,
		},
		{
			name: "project is a list",
			root: tree.MapOf(
				tree.KV("project", tree.Seq(tree.String("p"))),
				tree.KV("database", tree.String("h2")),
			),
			target: property.ErrConfigShape,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := groups.NewBasicInfo(tc.root)
			require.ErrorIs(t, err, tc.target)
		})
	}
}
