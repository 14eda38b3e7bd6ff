package groups

import (
	"strings"

	"github.com/0xalexb/hjarta-dfprop/property"
	"github.com/0xalexb/hjarta-dfprop/tree"
)

// DefaultDocumentOutputDirectory is where schema documents are written.
const DefaultDocumentOutputDirectory = "./output/doc"

// Document holds the schema document settings.
type Document struct {
	OutputDirectory           string
	AliasDelimiterInDbComment string
	DbCommentOnAliasBasis     bool
}

// NewDocument resolves documentDefinitionMap.
func NewDocument(root tree.Node) (*Document, error) {
	a, err := property.NewAccessor(DocumentDefinitionMap, root)
	if err != nil {
		return nil, err
	}

	d := &Document{}

	if d.OutputDirectory, err = a.String("documentOutputDirectory", DefaultDocumentOutputDirectory); err != nil {
		return nil, err
	}

	if d.AliasDelimiterInDbComment, err = a.String("aliasDelimiterInDbComment", ""); err != nil {
		return nil, err
	}

	if d.DbCommentOnAliasBasis, err = a.Bool("isDbCommentOnAliasBasis", false); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate requires a delimiter when comments are read on alias basis.
func (d *Document) Validate() error {
	if d.DbCommentOnAliasBasis && d.AliasDelimiterInDbComment == "" {
		return property.NewDomainInvariantError(DocumentDefinitionMap, "isDbCommentOnAliasBasis",
			"aliasDelimiterInDbComment is required")
	}

	return nil
}

// ExtractAlias splits a database comment into its alias and the remaining
// description. Without a configured delimiter, or when the comment does not
// contain it, the alias is empty.
func (d *Document) ExtractAlias(comment string) (alias, description string) {
	if d.AliasDelimiterInDbComment == "" {
		return "", comment
	}

	before, after, found := strings.Cut(comment, d.AliasDelimiterInDbComment)
	if !found {
		return "", comment
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}
