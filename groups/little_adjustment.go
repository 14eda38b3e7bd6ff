package groups

import (
	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"
	"github.com/0xalexb/hjarta-dfprop/typemapping"
)

// LittleAdjustment holds the fine-tuning flags of the generator and is the
// feature-flag provider of the temporal library mode.
type LittleAdjustment struct {
	AvailableDatabaseDependency             bool
	MakeDeprecated                          bool
	AvailableJodaTimeEntity                 bool
	AvailableJava8TimeEntity                bool
	TableDispNameUpperCase                  bool
	SuppressOtherSchemaSameNameTableLimiter bool
}

// NewLittleAdjustment resolves littleAdjustmentMap.
func NewLittleAdjustment(root tree.Node) (*LittleAdjustment, error) {
	a, err := property.NewAccessor(LittleAdjustmentMap, root)
	if err != nil {
		return nil, err
	}

	l := &LittleAdjustment{}

	flags := []struct {
		key    string
		target *bool
	}{
		{"isAvailableDatabaseDependency", &l.AvailableDatabaseDependency},
		{"isMakeDeprecated", &l.MakeDeprecated},
		{"isAvailableJodaTimeEntity", &l.AvailableJodaTimeEntity},
		{"isAvailableJava8TimeEntity", &l.AvailableJava8TimeEntity},
		{"isTableDispNameUpperCase", &l.TableDispNameUpperCase},
		{"isSuppressOtherSchemaSameNameTableLimiter", &l.SuppressOtherSchemaSameNameTableLimiter},
	}

	for _, flag := range flags {
		if *flag.target, err = a.Bool(flag.key, false); err != nil {
			return nil, err
		}
	}

	if l.AvailableJodaTimeEntity && l.AvailableJava8TimeEntity {
		return nil, property.NewDomainInvariantError(LittleAdjustmentMap,
			"isAvailableJodaTimeEntity/isAvailableJava8TimeEntity",
			"temporal library overrides are mutually exclusive")
	}

	return l, nil
}

// TemporalMode returns the temporal library selected by the flags. A nil
// *LittleAdjustment selects the default library.
func (l *LittleAdjustment) TemporalMode() typemapping.TemporalMode {
	switch {
	case l == nil:
		return typemapping.TemporalDefault
	case l.AvailableJava8TimeEntity:
		return typemapping.TemporalJava8
	case l.AvailableJodaTimeEntity:
		return typemapping.TemporalJodaTime
	default:
		return typemapping.TemporalDefault
	}
}
