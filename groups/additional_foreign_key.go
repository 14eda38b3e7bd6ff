package groups

import (
	"fmt"

	"github.com/0xalexb/hjarta-dfprop/fixedcond"
	"github.com/0xalexb/hjarta-dfprop/omap"
	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"
)

// AllTables is the local table name meaning every table owning the local columns.
const AllTables = "$$ALL$$"

// ForeignKey is one virtual foreign key of additionalForeignKeyMap.
type ForeignKey struct {
	Name                      string
	LocalTable                string
	ForeignTable              string
	LocalColumns              []string
	ForeignColumns            []string
	FixedCondition            string
	FixedSuffix               string
	FixedInline               bool
	FixedReferrer             bool
	SuppressJoin              bool
	SuppressSubQuery          bool
	Comment                   string
	Deprecated                bool
	SuppressImplicitReverseFK bool
}

// ForAllTables reports whether the key applies to every table owning the local columns.
func (fk ForeignKey) ForAllTables() bool {
	return fk.LocalTable == AllTables || fk.LocalTable == "*"
}

// AdditionalForeignKey is the resolved additionalForeignKeyMap.
type AdditionalForeignKey struct {
	keys *omap.Map[ForeignKey]
}

// NewAdditionalForeignKey resolves additionalForeignKeyMap, normalizing every
// fixed condition with resolver.
func NewAdditionalForeignKey(root tree.Node, resolver *fixedcond.Resolver) (*AdditionalForeignKey, error) {
	defs, err := property.ParseDefinitions(AdditionalForeignKeyMap, root, false)
	if err != nil {
		return nil, err
	}

	keys := omap.New[ForeignKey]()

	for name, attrs := range defs.All() {
		r := attrReader{group: AdditionalForeignKeyMap, name: name, attrs: attrs}

		fk := ForeignKey{
			Name:                      name,
			LocalColumns:              r.slash("localColumnName"),
			ForeignColumns:            r.slash("foreignColumnName"),
			FixedCondition:            resolver.Resolve(r.str("fixedCondition")),
			FixedSuffix:               r.str("fixedSuffix"),
			FixedInline:               r.boolean("fixedInline"),
			FixedReferrer:             r.boolean("fixedReferrer"),
			SuppressJoin:              r.boolean("suppressJoin"),
			SuppressSubQuery:          r.boolean("suppressSubQuery"),
			Comment:                   r.str("comment"),
			Deprecated:                r.boolean("deprecated"),
			SuppressImplicitReverseFK: r.boolean("suppressImplicitReverseFK"),
		}

		if fk.LocalTable, err = r.require("localTableName"); err != nil {
			return nil, err
		}

		if fk.ForeignTable, err = r.require("foreignTableName"); err != nil {
			return nil, err
		}

		keys.Set(name, fk)
	}

	return &AdditionalForeignKey{keys: keys}, nil
}

// Validate checks that explicit local and foreign column lists pair up.
func (a *AdditionalForeignKey) Validate() error {
	for name, fk := range a.keys.All() {
		if len(fk.LocalColumns) == 0 || len(fk.ForeignColumns) == 0 {
			continue
		}

		if len(fk.LocalColumns) != len(fk.ForeignColumns) {
			return property.NewDomainInvariantError(AdditionalForeignKeyMap, name,
				fmt.Sprintf("%d local columns do not pair with %d foreign columns",
					len(fk.LocalColumns), len(fk.ForeignColumns)))
		}
	}

	return nil
}

// Names returns the foreign key names in order.
func (a *AdditionalForeignKey) Names() []string {
	return a.keys.Keys()
}

// Len returns the number of foreign keys.
func (a *AdditionalForeignKey) Len() int {
	return a.keys.Len()
}

func (a *AdditionalForeignKey) find(name, option string) (ForeignKey, error) {
	fk, ok := a.keys.Get(name)
	if !ok {
		return ForeignKey{}, property.NewUnknownDefinitionError(AdditionalForeignKeyMap, name, option)
	}

	return fk, nil
}

// Find returns the named foreign key.
func (a *AdditionalForeignKey) Find(name string) (ForeignKey, error) {
	return a.find(name, "")
}

// FindLocalTableName returns the local table of the named foreign key.
func (a *AdditionalForeignKey) FindLocalTableName(name string) (string, error) {
	fk, err := a.find(name, "localTableName")

	return fk.LocalTable, err
}

// FindForeignTableName returns the foreign table of the named foreign key.
func (a *AdditionalForeignKey) FindForeignTableName(name string) (string, error) {
	fk, err := a.find(name, "foreignTableName")

	return fk.ForeignTable, err
}

// FindFixedCondition returns the resolved fixed condition of the named foreign key.
func (a *AdditionalForeignKey) FindFixedCondition(name string) (string, error) {
	fk, err := a.find(name, "fixedCondition")

	return fk.FixedCondition, err
}

// ForeignKeysOf returns the foreign keys declared on table, including the
// ones declared for all tables.
func (a *AdditionalForeignKey) ForeignKeysOf(table string) []ForeignKey {
	var out []ForeignKey

	for _, fk := range a.keys.All() {
		if fk.ForAllTables() || matchName(fk.LocalTable, table) {
			out = append(out, fk)
		}
	}

	return out
}

// ReferrersOf returns the foreign keys whose foreign table is table.
func (a *AdditionalForeignKey) ReferrersOf(table string) []ForeignKey {
	var out []ForeignKey

	for _, fk := range a.keys.All() {
		if matchName(fk.ForeignTable, table) {
			out = append(out, fk)
		}
	}

	return out
}
