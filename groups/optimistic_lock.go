package groups

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"
)

// DefaultVersionNoFieldName is the version column used when none is configured.
const DefaultVersionNoFieldName = "VERSION_NO"

// OptimisticLock names the update-date and version-number columns used for
// optimistic locking.
type OptimisticLock struct {
	UpdateDateFieldName string
	VersionNoFieldName  string

	versionNoConfigured bool
}

// NewOptimisticLock resolves optimisticLockDefinitionMap.
func NewOptimisticLock(root tree.Node) (*OptimisticLock, error) {
	a, err := property.NewAccessor(OptimisticLockDefinitionMap, root)
	if err != nil {
		return nil, err
	}

	o := &OptimisticLock{}

	if o.UpdateDateFieldName, err = a.String("updateDateFieldName", ""); err != nil {
		return nil, err
	}

	if o.VersionNoFieldName, err = a.String("versionNoFieldName", ""); err != nil {
		return nil, err
	}

	o.versionNoConfigured = o.VersionNoFieldName != ""
	if !o.versionNoConfigured {
		o.VersionNoFieldName = DefaultVersionNoFieldName
	}

	return o, nil
}

// IsUpdateDateColumn reports whether column is the update-date column.
func (o *OptimisticLock) IsUpdateDateColumn(column string) bool {
	return o.UpdateDateFieldName != "" && matchName(o.UpdateDateFieldName, column)
}

// IsVersionNoColumn reports whether column is the version-number column.
func (o *OptimisticLock) IsVersionNoColumn(column string) bool {
	return matchName(o.VersionNoFieldName, column)
}

// Check reports configured columns that exist in no table of schema. The
// default version column is optional and never reported.
func (o *OptimisticLock) Check(schema Schema) error {
	var errs []error

	if o.UpdateDateFieldName != "" && !anyTableHas(schema, o.UpdateDateFieldName) {
		errs = append(errs, property.NewDomainInvariantError(OptimisticLockDefinitionMap,
			"updateDateFieldName", fmt.Sprintf("column %s exists in no table", o.UpdateDateFieldName)))
	}

	if o.versionNoConfigured && !anyTableHas(schema, o.VersionNoFieldName) {
		errs = append(errs, property.NewDomainInvariantError(OptimisticLockDefinitionMap,
			"versionNoFieldName", fmt.Sprintf("column %s exists in no table", o.VersionNoFieldName)))
	}

	return errors.Join(errs...)
}

func anyTableHas(schema Schema, column string) bool {
	for _, table := range schema.TableNames() {
		if schema.HasColumn(table, column) {
			return true
		}
	}

	return false
}
