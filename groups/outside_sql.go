package groups

import (
	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"
)

// DefaultSqlFileEncoding is the encoding of outside-SQL files.
const DefaultSqlFileEncoding = "UTF-8"

// OutsideSql holds the settings for SQL files kept outside the generated code.
type OutsideSql struct {
	GenerateProcedureParameterBean bool
	RequiredSqlTitle               bool
	RequiredSqlDescription         bool
	SqlDirectory                   string
	SqlFileEncoding                string
	TargetProcedureNames           []string
}

// NewOutsideSql resolves outsideSqlDefinitionMap.
func NewOutsideSql(root tree.Node) (*OutsideSql, error) {
	a, err := property.NewAccessor(OutsideSqlDefinitionMap, root)
	if err != nil {
		return nil, err
	}

	o := &OutsideSql{}

	if o.GenerateProcedureParameterBean, err = a.Bool("isGenerateProcedureParameterBean", false); err != nil {
		return nil, err
	}

	if o.RequiredSqlTitle, err = a.Bool("isRequiredSqlTitle", false); err != nil {
		return nil, err
	}

	if o.RequiredSqlDescription, err = a.Bool("isRequiredSqlDescription", false); err != nil {
		return nil, err
	}

	if o.SqlDirectory, err = a.String("sqlDirectory", ""); err != nil {
		return nil, err
	}

	if o.SqlFileEncoding, err = a.String("sqlFileEncoding", DefaultSqlFileEncoding); err != nil {
		return nil, err
	}

	if o.TargetProcedureNames, err = a.List("targetProcedureNameList"); err != nil {
		return nil, err
	}

	return o, nil
}

// IsTargetProcedure reports whether the procedure is generated. An empty
// target list selects every procedure.
func (o *OutsideSql) IsTargetProcedure(name string) bool {
	if len(o.TargetProcedureNames) == 0 {
		return true
	}

	for _, target := range o.TargetProcedureNames {
		if matchName(target, name) {
			return true
		}
	}

	return false
}
