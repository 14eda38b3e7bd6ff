package groups_test

import (
	"testing"

	"github.com/0xalexb/hjarta-dfprop/groups"
	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"
	"github.com/0xalexb/hjarta-dfprop/typemapping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLittleAdjustment_Defaults(t *testing.T) {
	t.Parallel()

	l, err := groups.NewLittleAdjustment(tree.Absent())
	require.NoError(t, err)

	assert.Equal(t, groups.LittleAdjustment{}, *l)
	assert.Equal(t, typemapping.TemporalDefault, l.TemporalMode())
}

func TestLittleAdjustment_TemporalMode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		doc  string
		want typemapping.TemporalMode
	}{
		{name: "joda", doc: "isAvailableJodaTimeEntity: true\n", want: typemapping.TemporalJodaTime},
		{name: "java8", doc: "isAvailableJava8TimeEntity: True\n", want: typemapping.TemporalJava8},
		{name: "non true falls back", doc: "isAvailableJava8TimeEntity: enabled\n", want: typemapping.TemporalDefault},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l, err := groups.NewLittleAdjustment(parse(t, tc.doc))
			require.NoError(t, err)
			assert.Equal(t, tc.want, l.TemporalMode())
		})
	}
}

func TestNewLittleAdjustment_Flags(t *testing.T) {
	t.Parallel()

	l, err := groups.NewLittleAdjustment(parse(t, `
isAvailableDatabaseDependency: true
isMakeDeprecated: false
isTableDispNameUpperCase: true
isSuppressOtherSchemaSameNameTableLimiter: true
`))
	require.NoError(t, err)

	assert.True(t, l.AvailableDatabaseDependency)
	assert.False(t, l.MakeDeprecated)
	assert.True(t, l.TableDispNameUpperCase)
	assert.True(t, l.SuppressOtherSchemaSameNameTableLimiter)
}

func TestNewLittleAdjustment_BothTemporalFlags(t *testing.T) {
	t.Parallel()

	_, err := groups.NewLittleAdjustment(parse(t, `
isAvailableJodaTimeEntity: true
isAvailableJava8TimeEntity: true
`))
	require.ErrorIs(t, err, property.ErrDomainInvariant)
}
