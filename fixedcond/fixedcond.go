// Package fixedcond normalizes hand-authored join-condition fragments
// ("fixed conditions") of virtual foreign keys for embedding into generated
// query templates.
//
// A resolved condition is a single logical line: every line break becomes the
// two-character escape marker LineMarker. Continuation lines starting with
// "and " are re-indented unless the condition is already hand-formatted or
// contains nested parentheses.
package fixedcond

import (
	"regexp"
	"strings"
)

const (
	// LineMarker is the escaped line break embedded in templates.
	LineMarker = `\n`

	// AliasToken is the alias placeholder as authored.
	AliasToken = "$$ALIAS$$"
	// AliasCanonical is the canonical form of AliasToken.
	AliasCanonical = "$$alias$$"
	// ForeignAliasToken is replaced by AliasMarks.Foreign.
	ForeignAliasToken = "$$ForeignAlias$$"
	// LocalAliasToken is replaced by AliasMarks.Local.
	LocalAliasToken = "$$LocalAlias$$"

	// SubQueryBeginMark marks a hand-formatted sub-query scope; conditions
	// containing it are never re-indented.
	SubQueryBeginMark = "$$sqbegin$$"

	// Indent prefixes the clause following a continuation "and ".
	Indent = "     "

	andPrefix = "and "
)

// AliasMarks are the alias placeholders understood by the query builder.
type AliasMarks struct {
	Foreign string
	Local   string
}

// DefaultAliasMarks returns the alias marks of the runtime query builder.
func DefaultAliasMarks() AliasMarks {
	return AliasMarks{
		Foreign: "$$foreignAlias$$",
		Local:   "$$localAlias$$",
	}
}

var (
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	overScopePattern    = regexp.MustCompile(`(?s)\$\$over\(.*?\)\$\$`)
)

// Resolver rewrites raw fixed conditions into their canonical form.
type Resolver struct {
	replacer *strings.Replacer
}

// NewResolver creates a resolver substituting the given alias marks.
// Empty marks fall back to DefaultAliasMarks.
func NewResolver(marks AliasMarks) *Resolver {
	defaults := DefaultAliasMarks()
	if marks.Foreign == "" {
		marks.Foreign = defaults.Foreign
	}

	if marks.Local == "" {
		marks.Local = defaults.Local
	}

	return &Resolver{
		replacer: strings.NewReplacer(
			AliasToken, AliasCanonical,
			ForeignAliasToken, marks.Foreign,
			LocalAliasToken, marks.Local,
		),
	}
}

// Resolve normalizes raw. A blank input yields the empty string (absent).
// Malformed input is passed through rather than rejected.
func (r *Resolver) Resolve(raw string) string {
	condition := strings.TrimSpace(raw)
	if condition == "" {
		return ""
	}

	condition = r.replacer.Replace(condition)
	condition = strings.ReplaceAll(condition, "\r\n", "\n")
	condition = strings.ReplaceAll(condition, "\n", LineMarker)

	return indent(condition)
}

func indent(condition string) string {
	if !strings.Contains(condition, LineMarker) {
		return condition
	}

	if strings.Contains(condition, SubQueryBeginMark) {
		return condition
	}

	if hasNestedParenthesis(condition) {
		return condition
	}

	segments := strings.Split(condition, LineMarker)
	for i := 1; i < len(segments); i++ {
		if !strings.HasPrefix(strings.TrimSpace(segments[i]), andPrefix) {
			continue
		}

		trimmed := strings.TrimLeft(segments[i], " \t")
		clause := strings.TrimLeft(strings.TrimPrefix(trimmed, andPrefix), " \t")
		segments[i] = andPrefix + Indent + clause
	}

	return strings.Join(segments, LineMarker)
}

// hasNestedParenthesis reports whether a "(" remains once block comments and
// $$over(...)$$ window scopes are removed.
func hasNestedParenthesis(condition string) bool {
	stripped := blockCommentPattern.ReplaceAllString(condition, "")
	stripped = overScopePattern.ReplaceAllString(stripped, "")

	return strings.Contains(stripped, "(")
}
