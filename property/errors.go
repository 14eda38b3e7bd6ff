package property

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-dfprop/tree"
)

// ErrConfigShape is returned when a value's shape does not match the expected shape.
var ErrConfigShape = errors.New("unexpected property shape")

// ErrMissingRequired is returned when a required property is absent or blank.
var ErrMissingRequired = errors.New("required property missing")

// ErrUnknownDefinition is returned when a lookup by logical name finds no entry.
var ErrUnknownDefinition = errors.New("unknown definition")

// ErrDomainInvariant is returned when a cross-cutting rule is violated.
var ErrDomainInvariant = errors.New("domain invariant violated")

// ShapeError describes a value whose runtime shape mismatched the expected shape.
type ShapeError struct {
	Group    string
	Path     []string
	Expected string
	Actual   tree.Kind
	Value    string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s.%s: expected %s but was %s: %s",
		e.Group, strings.Join(e.Path, "."), e.Expected, e.Actual, e.Value)
}

func (e *ShapeError) Unwrap() error {
	return ErrConfigShape
}

func newShapeError(group string, path []string, expected string, actual tree.Node) *ShapeError {
	return &ShapeError{
		Group:    group,
		Path:     path,
		Expected: expected,
		Actual:   actual.Kind(),
		Value:    actual.String(),
	}
}

// MissingError describes a required property that is absent or blank.
type MissingError struct {
	Group string
	Path  []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s.%s: required property missing", e.Group, strings.Join(e.Path, "."))
}

func (e *MissingError) Unwrap() error {
	return ErrMissingRequired
}

// UnknownDefinitionError describes a named lookup that found no entry.
// Option is the attribute or operation that triggered the lookup.
type UnknownDefinitionError struct {
	Group  string
	Name   string
	Option string
}

func (e *UnknownDefinitionError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("%s: no definition named %q", e.Group, e.Name)
	}

	return fmt.Sprintf("%s: no definition named %q (looking up %s)", e.Group, e.Name, e.Option)
}

func (e *UnknownDefinitionError) Unwrap() error {
	return ErrUnknownDefinition
}

// NewUnknownDefinitionError builds an UnknownDefinitionError.
func NewUnknownDefinitionError(group, name, option string) *UnknownDefinitionError {
	return &UnknownDefinitionError{Group: group, Name: name, Option: option}
}

// DomainInvariantError describes a violated cross-cutting rule, such as a
// configured column found in no table of the schema.
type DomainInvariantError struct {
	Group   string
	Subject string
	Detail  string
}

func (e *DomainInvariantError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Group, e.Subject, e.Detail)
}

func (e *DomainInvariantError) Unwrap() error {
	return ErrDomainInvariant
}

// NewDomainInvariantError builds a DomainInvariantError.
func NewDomainInvariantError(group, subject, detail string) *DomainInvariantError {
	return &DomainInvariantError{Group: group, Subject: subject, Detail: detail}
}
