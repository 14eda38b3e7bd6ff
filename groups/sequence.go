package groups

import (
	"github.com/0xalexb/hjarta-dfprop/omap"
	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"
)

// SequenceDefinition is the resolved sequenceDefinitionMap: table name to
// the sequence feeding its primary key.
type SequenceDefinition struct {
	sequences *omap.Map[string]
}

// NewSequenceDefinition resolves sequenceDefinitionMap.
func NewSequenceDefinition(root tree.Node) (*SequenceDefinition, error) {
	a, err := property.NewAccessor(SequenceDefinitionMap, root)
	if err != nil {
		return nil, err
	}

	sequences := omap.NewFold[string]()

	for _, table := range a.Keys() {
		sequence, err := a.RequireString(table)
		if err != nil {
			return nil, err
		}

		sequences.Set(table, sequence)
	}

	return &SequenceDefinition{sequences: sequences}, nil
}

// Tables returns the tables with a sequence, in declaration order.
func (s *SequenceDefinition) Tables() []string {
	return s.sequences.Keys()
}

// HasSequence reports whether table has a sequence.
func (s *SequenceDefinition) HasSequence(table string) bool {
	return s.sequences.Has(table)
}

// FindSequence returns the sequence of table.
func (s *SequenceDefinition) FindSequence(table string) (string, error) {
	sequence, ok := s.sequences.Get(table)
	if !ok {
		return "", property.NewUnknownDefinitionError(SequenceDefinitionMap, table, "sequence")
	}

	return sequence, nil
}
