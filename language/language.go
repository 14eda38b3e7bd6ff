// Package language provides the per-language type mapping defaults consumed
// by the type mapping resolver.
package language

import (
	"strings"

	"github.com/0xalexb/hjarta-dfprop/omap"
	"github.com/0xalexb/hjarta-dfprop/typemapping"
)

const (
	Java   = "java"
	CSharp = "csharp"
)

type pair struct {
	jdbc   string
	native string
}

func orderedOf(pairs []pair) *omap.Map[string] {
	m := omap.New[string]()
	for _, p := range pairs {
		m.Set(p.jdbc, p.native)
	}

	return m
}

// definition is a static Language implementation.
type definition struct {
	name     string
	defaults []pair
	temporal map[typemapping.TemporalMode][]pair
	strings  []string
	numbers  []string
	dates    []string
	booleans []string
	binaries []string
}

func (d *definition) Name() string { return d.name }

func (d *definition) DefaultJDBCToNative() *omap.Map[string] {
	return orderedOf(d.defaults)
}

func (d *definition) TemporalOverrides(mode typemapping.TemporalMode) *omap.Map[string] {
	pairs, ok := d.temporal[mode]
	if !ok {
		return nil
	}

	return orderedOf(pairs)
}

func (d *definition) StringTypes() []string  { return clone(d.strings) }
func (d *definition) NumberTypes() []string  { return clone(d.numbers) }
func (d *definition) DateTypes() []string    { return clone(d.dates) }
func (d *definition) BooleanTypes() []string { return clone(d.booleans) }
func (d *definition) BinaryTypes() []string  { return clone(d.binaries) }

func clone(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)

	return out
}

//nolint:gochecknoglobals // immutable language table.
var java = &definition{
	name: Java,
	defaults: []pair{
		{"CHAR", "String"},
		{"VARCHAR", "String"},
		{"LONGVARCHAR", "String"},
		{"NCHAR", "String"},
		{"NVARCHAR", "String"},
		{"LONGNVARCHAR", "String"},
		{"CLOB", "String"},
		{"NUMERIC", "java.math.BigDecimal"},
		{"DECIMAL", "java.math.BigDecimal"},
		{"TINYINT", "Integer"},
		{"SMALLINT", "Integer"},
		{"INTEGER", "Integer"},
		{"BIGINT", "Long"},
		{"REAL", "java.math.BigDecimal"},
		{"FLOAT", "java.math.BigDecimal"},
		{"DOUBLE", "java.math.BigDecimal"},
		{"DATE", "java.util.Date"},
		{"TIME", "java.sql.Time"},
		{"TIMESTAMP", "java.sql.Timestamp"},
		{"BIT", "Boolean"},
		{"BOOLEAN", "Boolean"},
		{"BINARY", "byte[]"},
		{"VARBINARY", "byte[]"},
		{"LONGVARBINARY", "byte[]"},
		{"BLOB", "byte[]"},
		{"ARRAY", "Object"},
		{"UUID", "java.util.UUID"},
		{"OTHER", "Object"},
	},
	temporal: map[typemapping.TemporalMode][]pair{
		typemapping.TemporalJodaTime: {
			{"DATE", "org.joda.time.LocalDate"},
			{"TIMESTAMP", "org.joda.time.LocalDateTime"},
			{"TIME", "org.joda.time.LocalTime"},
		},
		typemapping.TemporalJava8: {
			{"DATE", "java.time.LocalDate"},
			{"TIMESTAMP", "java.time.LocalDateTime"},
			{"TIME", "java.time.LocalTime"},
		},
	},
	strings:  []string{"String"},
	numbers:  []string{"Byte", "Short", "Integer", "Long", "Float", "Double", "BigDecimal", "BigInteger"},
	dates:    []string{"Date", "Time", "Timestamp", "LocalDate", "LocalDateTime", "LocalTime"},
	booleans: []string{"Boolean"},
	binaries: []string{"byte[]"},
}

//nolint:gochecknoglobals // immutable language table.
var csharp = &definition{
	name: CSharp,
	defaults: []pair{
		{"CHAR", "String"},
		{"VARCHAR", "String"},
		{"LONGVARCHAR", "String"},
		{"NCHAR", "String"},
		{"NVARCHAR", "String"},
		{"CLOB", "String"},
		{"NUMERIC", "decimal?"},
		{"DECIMAL", "decimal?"},
		{"TINYINT", "int?"},
		{"SMALLINT", "int?"},
		{"INTEGER", "int?"},
		{"BIGINT", "long?"},
		{"REAL", "decimal?"},
		{"FLOAT", "decimal?"},
		{"DOUBLE", "decimal?"},
		{"DATE", "DateTime?"},
		{"TIME", "DateTime?"},
		{"TIMESTAMP", "DateTime?"},
		{"BIT", "bool?"},
		{"BOOLEAN", "bool?"},
		{"BINARY", "byte[]"},
		{"VARBINARY", "byte[]"},
		{"LONGVARBINARY", "byte[]"},
		{"BLOB", "byte[]"},
		{"UUID", "Guid?"},
		{"OTHER", "Object"},
	},
	strings:  []string{"String"},
	numbers:  []string{"int?", "long?", "decimal?", "short?", "double?"},
	dates:    []string{"DateTime?"},
	booleans: []string{"bool?"},
	binaries: []string{"byte[]"},
}

// Lookup returns the language registered under name, ignoring case.
func Lookup(name string) (typemapping.Language, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Java:
		return java, true
	case CSharp:
		return csharp, true
	default:
		return nil, false
	}
}

// Names returns the supported language names.
func Names() []string {
	return []string{Java, CSharp}
}
