package groups

import (
	"github.com/0xalexb/hjarta-dfprop/tree"
	"github.com/0xalexb/hjarta-dfprop/typemapping"
)

// TypeMapping is the resolved typeMappingMap for the target language.
type TypeMapping struct {
	*typemapping.Mapping
}

// NewTypeMapping resolves typeMappingMap against lang, applying the temporal
// override set selected by flags.
func NewTypeMapping(root tree.Node, lang typemapping.Language, flags typemapping.TemporalModeProvider) (*TypeMapping, error) {
	mode := typemapping.TemporalDefault
	if flags != nil {
		mode = flags.TemporalMode()
	}

	m, err := typemapping.Resolve(TypeMappingMap, root, lang, mode)
	if err != nil {
		return nil, err
	}

	return &TypeMapping{Mapping: m}, nil
}
