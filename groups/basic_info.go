package groups

import (
	"slices"
	"strings"

	"github.com/0xalexb/hjarta-dfprop/language"
	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"
)

// Defaults of basicInfoMap.
const (
	DefaultTargetContainer         = "spring"
	DefaultGenerateOutputDirectory = "../src/main/java"
	DefaultResourceOutputDirectory = "../resources"
)

//nolint:gochecknoglobals // fixed list of supported databases.
var supportedDatabases = []string{
	"mysql", "postgresql", "oracle", "db2", "sqlserver", "h2", "derby", "sqlite", "msaccess",
}

// BasicInfo is the base-properties provider: project identity, target
// database and language, package names and output directories.
type BasicInfo struct {
	Project                 string
	Database                string
	TargetLanguage          string
	TargetContainer         string
	PackageBase             string
	GenerateOutputDirectory string
	ResourceOutputDirectory string
	TableNameCamelCase      bool
}

// NewBasicInfo resolves basicInfoMap.
func NewBasicInfo(root tree.Node) (*BasicInfo, error) {
	a, err := property.NewAccessor(BasicInfoMap, root)
	if err != nil {
		return nil, err
	}

	b := &BasicInfo{}

	if b.Project, err = a.RequireString("project"); err != nil {
		return nil, err
	}

	if b.Database, err = a.RequireString("database"); err != nil {
		return nil, err
	}

	b.Database = strings.ToLower(b.Database)
	if !slices.Contains(supportedDatabases, b.Database) {
		return nil, property.NewUnknownDefinitionError(BasicInfoMap, b.Database, "database")
	}

	if b.TargetLanguage, err = a.String("targetLanguage", language.Java); err != nil {
		return nil, err
	}

	b.TargetLanguage = strings.ToLower(b.TargetLanguage)

	if b.TargetContainer, err = a.String("targetContainer", DefaultTargetContainer); err != nil {
		return nil, err
	}

	if b.PackageBase, err = a.String("packageBase", ""); err != nil {
		return nil, err
	}

	if b.GenerateOutputDirectory, err = a.String("generateOutputDirectory", DefaultGenerateOutputDirectory); err != nil {
		return nil, err
	}

	if b.ResourceOutputDirectory, err = a.String("resourceOutputDirectory", DefaultResourceOutputDirectory); err != nil {
		return nil, err
	}

	if b.TableNameCamelCase, err = a.Bool("isTableNameCamelCase", false); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *BasicInfo) pkg(leaf string) string {
	if b.PackageBase == "" {
		return leaf
	}

	return b.PackageBase + "." + leaf
}

// AllCommonPackage returns the package of shared runtime classes.
func (b *BasicInfo) AllCommonPackage() string { return b.pkg("allcommon") }

// BaseBehaviorPackage returns the package of generated base behaviors.
func (b *BasicInfo) BaseBehaviorPackage() string { return b.pkg("bsbhv") }

// ExtendedBehaviorPackage returns the package of extended behaviors.
func (b *BasicInfo) ExtendedBehaviorPackage() string { return b.pkg("exbhv") }

// BaseEntityPackage returns the package of generated base entities.
func (b *BasicInfo) BaseEntityPackage() string { return b.pkg("bsentity") }

// ExtendedEntityPackage returns the package of extended entities.
func (b *BasicInfo) ExtendedEntityPackage() string { return b.pkg("exentity") }

// ConditionBeanPackage returns the package of condition beans.
func (b *BasicInfo) ConditionBeanPackage() string { return b.pkg("cbean") }

// IsDatabase reports whether the target database is name, ignoring case.
func (b *BasicInfo) IsDatabase(name string) bool {
	return strings.EqualFold(b.Database, name)
}
