package groups_test

import (
	"testing"

	"github.com/0xalexb/hjarta-dfprop/groups"
	"github.com/0xalexb/hjarta-dfprop/property"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabaseInfo(t *testing.T) {
	t.Parallel()

	d, err := groups.NewDatabaseInfo(parse(t, `
driver: com.mysql.jdbc.Driver
url: jdbc:mysql://localhost:3306/maihamadb
schema: maihamadb
user: maihamadb
variousMap:
  tableExceptList:
    - prefix:TMP_
    - suffix:_BAK
    - SCHEMA_VERSION
  tableTargetList:
    - contain:MEMBER
    - PRODUCT
`))
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	assert.Equal(t, "com.mysql.jdbc.Driver", d.Driver)
	assert.Equal(t, "jdbc:mysql://localhost:3306/maihamadb", d.URL)
	assert.Equal(t, "maihamadb", d.Schema)
	assert.Empty(t, d.Password)
	assert.Equal(t, []string{"TABLE", "VIEW"}, d.ObjectTypeTargets)

	testCases := []struct {
		table  string
		except bool
		target bool
	}{
		{table: "TMP_MEMBER", except: true, target: false},
		{table: "member_bak", except: true, target: false},
		{table: "schema_version", except: true, target: false},
		{table: "MEMBER_STATUS", except: false, target: true},
		{table: "product", except: false, target: true},
		{table: "PURCHASE", except: false, target: false},
	}

	for _, tc := range testCases {
		t.Run(tc.table, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.except, d.IsTableExcept(tc.table))
			assert.Equal(t, tc.target, d.IsTableTarget(tc.table))
		})
	}
}

func TestDatabaseInfo_EmptyTargetListTargetsEverything(t *testing.T) {
	t.Parallel()

	d, err := groups.NewDatabaseInfo(parse(t, `
driver: org.h2.Driver
url: jdbc:h2:mem:test
variousMap:
  objectTypeTargetList: [TABLE]
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"TABLE"}, d.ObjectTypeTargets)
	assert.True(t, d.IsTableTarget("ANYTHING"))
}

func TestDatabaseInfo_Validate(t *testing.T) {
	t.Parallel()

	d, err := groups.NewDatabaseInfo(parse(t, `
driver: org.h2.Driver
url: jdbc:h2:mem:test
variousMap:
  tableExceptList: ["prefix:"]
`))
	require.NoError(t, err)
	require.Error(t, d.Validate())
}

func TestNewDatabaseInfo_MissingURL(t *testing.T) {
	t.Parallel()

	_, err := groups.NewDatabaseInfo(parse(t, "driver: org.h2.Driver\n"))

	var missing *property.MissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"url"}, missing.Path)
}

func TestNewDatabaseInfo_NumericLookingValuesKeepText(t *testing.T) {
	t.Parallel()

	d, err := groups.NewDatabaseInfo(parse(t, `
driver: org.h2.Driver
url: jdbc:h2:mem:test
schema: 0012
user: 007
password: 0123
`))
	require.NoError(t, err)

	assert.Equal(t, "0012", d.Schema)
	assert.Equal(t, "007", d.User)
	assert.Equal(t, "0123", d.Password)
}
