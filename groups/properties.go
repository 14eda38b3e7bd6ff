package groups

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/0xalexb/hjarta-dfprop/config"
	"github.com/0xalexb/hjarta-dfprop/fixedcond"
	"github.com/0xalexb/hjarta-dfprop/language"
	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"
	"github.com/0xalexb/hjarta-dfprop/typemapping"
)

// Properties holds every resolved property group of one generation run.
// It is built once and is read-only afterwards.
type Properties struct {
	BasicInfo            *BasicInfo
	DatabaseInfo         *DatabaseInfo
	LittleAdjustment     *LittleAdjustment
	TypeMapping          *TypeMapping
	AdditionalForeignKey *AdditionalForeignKey
	AdditionalPrimaryKey *AdditionalPrimaryKey
	AdditionalUniqueKey  *AdditionalUniqueKey
	MultipleFKProperty   *MultipleFKProperty
	OptimisticLock       *OptimisticLock
	CommonColumn         *CommonColumn
	SequenceDefinition   *SequenceDefinition
	OutsideSql           *OutsideSql
	Document             *Document
}

// Collaborators supplies what the resolvers need beyond the raw trees.
type Collaborators struct {
	// AliasMarks used for fixed conditions; zero marks use the defaults.
	AliasMarks fixedcond.AliasMarks
	// Languages looks up a target language; nil uses language.Lookup.
	Languages func(name string) (typemapping.Language, bool)
}

func (c Collaborators) language(name string) (typemapping.Language, error) {
	lookup := c.Languages
	if lookup == nil {
		lookup = language.Lookup
	}

	lang, ok := lookup(name)
	if !ok {
		return nil, property.NewUnknownDefinitionError(BasicInfoMap, name, "targetLanguage")
	}

	return lang, nil
}

func load[T any](source config.Source, group string, build func(tree.Node) (*T, error)) (*T, error) {
	node, err := source(group)
	if err != nil {
		return nil, fmt.Errorf("loading %s error: %w", group, err)
	}

	resolved, err := build(node)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(group, resolved); err != nil {
		return nil, err
	}

	return resolved, nil
}

// Build resolves every property group from source, each exactly once.
func Build(source config.Source, c Collaborators) (*Properties, error) {
	p := &Properties{}

	var err error

	if p.BasicInfo, err = load(source, BasicInfoMap, NewBasicInfo); err != nil {
		return nil, err
	}

	lang, err := c.language(p.BasicInfo.TargetLanguage)
	if err != nil {
		return nil, err
	}

	if p.DatabaseInfo, err = load(source, DatabaseInfoMap, NewDatabaseInfo); err != nil {
		return nil, err
	}

	if p.LittleAdjustment, err = load(source, LittleAdjustmentMap, NewLittleAdjustment); err != nil {
		return nil, err
	}

	p.TypeMapping, err = load(source, TypeMappingMap, func(root tree.Node) (*TypeMapping, error) {
		return NewTypeMapping(root, lang, p.LittleAdjustment)
	})
	if err != nil {
		return nil, err
	}

	resolver := fixedcond.NewResolver(c.AliasMarks)

	p.AdditionalForeignKey, err = load(source, AdditionalForeignKeyMap, func(root tree.Node) (*AdditionalForeignKey, error) {
		return NewAdditionalForeignKey(root, resolver)
	})
	if err != nil {
		return nil, err
	}

	if p.AdditionalPrimaryKey, err = load(source, AdditionalPrimaryKeyMap, NewAdditionalPrimaryKey); err != nil {
		return nil, err
	}

	if p.AdditionalUniqueKey, err = load(source, AdditionalUniqueKeyMap, NewAdditionalUniqueKey); err != nil {
		return nil, err
	}

	if p.MultipleFKProperty, err = load(source, MultipleFKPropertyMap, NewMultipleFKProperty); err != nil {
		return nil, err
	}

	if p.OptimisticLock, err = load(source, OptimisticLockDefinitionMap, NewOptimisticLock); err != nil {
		return nil, err
	}

	if p.CommonColumn, err = load(source, CommonColumnMap, NewCommonColumn); err != nil {
		return nil, err
	}

	if p.SequenceDefinition, err = load(source, SequenceDefinitionMap, NewSequenceDefinition); err != nil {
		return nil, err
	}

	if p.OutsideSql, err = load(source, OutsideSqlDefinitionMap, NewOutsideSql); err != nil {
		return nil, err
	}

	if p.Document, err = load(source, DocumentDefinitionMap, NewDocument); err != nil {
		return nil, err
	}

	slog.Info("properties resolved",
		slog.String("project", p.BasicInfo.Project),
		slog.String("database", p.BasicInfo.Database),
		slog.String("language", lang.Name()),
		slog.String("temporal", p.LittleAdjustment.TemporalMode().String()),
		slog.Int("foreignKeys", p.AdditionalForeignKey.Len()),
		slog.Int("commonColumns", p.CommonColumn.Len()))

	return p, nil
}

// Schema is the read-only view of the database schema used by late checks.
type Schema interface {
	TableNames() []string
	HasColumn(table, column string) bool
}

// SchemaTables is a Schema of table name to column names.
type SchemaTables map[string][]string

// TableNames returns the table names in sorted order.
func (s SchemaTables) TableNames() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// HasColumn reports whether table has column, ignoring case for both.
func (s SchemaTables) HasColumn(table, column string) bool {
	for name, columns := range s {
		if !matchName(name, table) {
			continue
		}

		return slices.ContainsFunc(columns, func(c string) bool { return matchName(c, column) })
	}

	return false
}

func hasTable(schema Schema, table string) bool {
	return slices.ContainsFunc(schema.TableNames(), func(t string) bool { return matchName(t, table) })
}

// CheckSchema reports every definition referring to a table or column
// missing from schema. All violations are joined into one error.
func (p *Properties) CheckSchema(schema Schema) error {
	var errs []error

	missingTable := func(group, subject, table string) {
		errs = append(errs, property.NewDomainInvariantError(group, subject,
			fmt.Sprintf("table %s does not exist", table)))
	}

	missingColumns := func(group, subject, table string, columns []string) {
		var missing []string

		for _, column := range columns {
			if !schema.HasColumn(table, column) {
				missing = append(missing, column)
			}
		}

		if len(missing) > 0 {
			errs = append(errs, property.NewDomainInvariantError(group, subject,
				fmt.Sprintf("columns %s do not exist in %s", strings.Join(missing, "/"), table)))
		}
	}

	if err := p.OptimisticLock.Check(schema); err != nil {
		errs = append(errs, err)
	}

	for _, keys := range []additionalKeys{
		p.AdditionalPrimaryKey.additionalKeys,
		p.AdditionalUniqueKey.additionalKeys,
	} {
		for _, def := range keys.keys.All() {
			if !hasTable(schema, def.Table) {
				missingTable(keys.group, def.Name, def.Table)

				continue
			}

			missingColumns(keys.group, def.Name, def.Table, def.Columns)
		}
	}

	for _, fk := range p.AdditionalForeignKey.keys.All() {
		if !fk.ForAllTables() && !hasTable(schema, fk.LocalTable) {
			missingTable(AdditionalForeignKeyMap, fk.Name, fk.LocalTable)
		}

		if !hasTable(schema, fk.ForeignTable) {
			missingTable(AdditionalForeignKeyMap, fk.Name, fk.ForeignTable)
		}
	}

	for _, table := range p.SequenceDefinition.Tables() {
		if !hasTable(schema, table) {
			missingTable(SequenceDefinitionMap, table, table)
		}
	}

	return errors.Join(errs...)
}
