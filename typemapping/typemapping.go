// Package typemapping resolves database-type to native-type overrides.
//
// One flat mapping is split into three independent tables, classified by key
// shape with the point key checked first:
//
//	"$$df:point$$"   point (spatial) types: pointName -> attribute map
//	"$$<name>$$"     database type name overrides, keyed by <name>
//	anything else    JDBC type name overrides
//
// The JDBC-to-native map layers the language defaults, an optional temporal
// library override set and finally the JDBC overrides in insertion order.
package typemapping

import (
	"strings"

	"github.com/0xalexb/hjarta-dfprop/omap"
	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"
)

const (
	// PointKey holds the point type definitions.
	PointKey = "$$df:point$$"

	nameDelimiter = "$$"
)

// TemporalMode selects the temporal library override set.
type TemporalMode int

const (
	TemporalDefault TemporalMode = iota
	TemporalJodaTime
	TemporalJava8
)

// String returns the mode name.
func (m TemporalMode) String() string {
	switch m {
	case TemporalDefault:
		return "default"
	case TemporalJodaTime:
		return "joda-time"
	case TemporalJava8:
		return "java8"
	default:
		return "unknown"
	}
}

// TemporalModeProvider supplies the temporal feature flag.
type TemporalModeProvider interface {
	TemporalMode() TemporalMode
}

// Language supplies the default mapping and classification lists of a target language.
type Language interface {
	Name() string
	DefaultJDBCToNative() *omap.Map[string]
	// TemporalOverrides returns DATE/TIMESTAMP/TIME overrides for mode, or nil.
	TemporalOverrides(mode TemporalMode) *omap.Map[string]
	StringTypes() []string
	NumberTypes() []string
	DateTypes() []string
	BooleanTypes() []string
	BinaryTypes() []string
}

// Mapping is the resolved type mapping of one generation run.
type Mapping struct {
	group        string
	lang         Language
	mode         TemporalMode
	jdbcToNative *omap.Map[string]
	jdbc         *omap.Map[string]
	names        *omap.Map[string]
	points       *property.Definitions
}

// Resolve classifies the keys of root and derives the JDBC-to-native map.
func Resolve(group string, root tree.Node, lang Language, mode TemporalMode) (*Mapping, error) {
	a, err := property.NewAccessor(group, root)
	if err != nil {
		return nil, err
	}

	m := &Mapping{
		group: group,
		lang:  lang,
		mode:  mode,
		jdbc:  omap.New[string](),
		names: omap.New[string](),
	}

	m.points, err = a.Definitions(PointKey, false)
	if err != nil {
		return nil, err
	}

	for _, key := range a.Keys() {
		if key == PointKey {
			continue
		}

		value, err := a.String(key, "")
		if err != nil {
			return nil, err
		}

		if value == "" {
			continue
		}

		if name, ok := nameTypeKey(key); ok {
			m.names.Set(name, value)

			continue
		}

		m.jdbc.Set(key, value)
	}

	m.jdbcToNative = m.layer()

	return m, nil
}

// nameTypeKey extracts <name> from "$$<name>$$".
func nameTypeKey(key string) (string, bool) {
	if len(key) <= 2*len(nameDelimiter) {
		return "", false
	}

	if !strings.HasPrefix(key, nameDelimiter) || !strings.HasSuffix(key, nameDelimiter) {
		return "", false
	}

	return key[len(nameDelimiter) : len(key)-len(nameDelimiter)], true
}

func (m *Mapping) layer() *omap.Map[string] {
	layered := m.lang.DefaultJDBCToNative().Clone()

	if m.mode != TemporalDefault {
		for jdbcType, native := range m.lang.TemporalOverrides(m.mode).All() {
			layered.Set(jdbcType, native)
		}
	}

	for jdbcType, native := range m.jdbc.All() {
		layered.Set(jdbcType, native)
	}

	return layered
}

// Language returns the language the mapping was resolved for.
func (m *Mapping) Language() Language {
	return m.lang
}

// TemporalMode returns the temporal mode applied to the mapping.
func (m *Mapping) TemporalMode() TemporalMode {
	return m.mode
}

// JDBCToNative returns a copy of the layered JDBC-to-native map.
func (m *Mapping) JDBCToNative() *omap.Map[string] {
	return m.jdbcToNative.Clone()
}

// NativeType returns the native type mapped to jdbcType.
func (m *Mapping) NativeType(jdbcType string) (string, bool) {
	return m.jdbcToNative.Get(jdbcType)
}

// FindNativeType returns the native type mapped to jdbcType, failing when none is mapped.
func (m *Mapping) FindNativeType(jdbcType string) (string, error) {
	native, ok := m.jdbcToNative.Get(jdbcType)
	if !ok {
		return "", property.NewUnknownDefinitionError(m.group, jdbcType, "native type")
	}

	return native, nil
}

// JDBCOverrides returns a copy of the JDBC type overrides as configured.
func (m *Mapping) JDBCOverrides() *omap.Map[string] {
	return m.jdbc.Clone()
}

// NameOverrides returns a copy of the database type name overrides.
func (m *Mapping) NameOverrides() *omap.Map[string] {
	return m.names.Clone()
}

// NameOverride returns the override configured for a database type name.
func (m *Mapping) NameOverride(dbTypeName string) (string, bool) {
	return m.names.Get(dbTypeName)
}

// PointTypes returns the configured point type names.
func (m *Mapping) PointTypes() []string {
	return m.points.Names()
}

// HasPointType reports whether pointName is configured.
func (m *Mapping) HasPointType(pointName string) bool {
	_, ok := m.points.Lookup(pointName)

	return ok
}

// FindPointAttribute returns one attribute of a point type definition.
func (m *Mapping) FindPointAttribute(pointName, attr string) (string, error) {
	return m.points.Attribute(pointName, attr)
}

// IsJavaNativeStringObject reports whether native is a string type.
func (m *Mapping) IsJavaNativeStringObject(native string) bool {
	return hasSuffixFold(native, m.lang.StringTypes())
}

// IsJavaNativeNumberObject reports whether native is a number type.
func (m *Mapping) IsJavaNativeNumberObject(native string) bool {
	return hasSuffixFold(native, m.lang.NumberTypes())
}

// IsJavaNativeDateObject reports whether native is a date or time type.
func (m *Mapping) IsJavaNativeDateObject(native string) bool {
	return hasSuffixFold(native, m.lang.DateTypes())
}

// IsJavaNativeBooleanObject reports whether native is a boolean type.
func (m *Mapping) IsJavaNativeBooleanObject(native string) bool {
	return hasSuffixFold(native, m.lang.BooleanTypes())
}

// IsJavaNativeBinaryObject reports whether native is a binary type.
func (m *Mapping) IsJavaNativeBinaryObject(native string) bool {
	return hasSuffixFold(native, m.lang.BinaryTypes())
}

// hasSuffixFold matches both simple and fully-qualified names.
func hasSuffixFold(native string, suffixes []string) bool {
	native = strings.ToLower(strings.TrimSpace(native))
	if native == "" {
		return false
	}

	for _, suffix := range suffixes {
		if suffix != "" && strings.HasSuffix(native, strings.ToLower(suffix)) {
			return true
		}
	}

	return false
}
