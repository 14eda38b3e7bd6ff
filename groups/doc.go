// Package groups resolves the named property groups of a generation run into
// immutable, typed configuration.
//
// Build reads every group once from a config.Source and returns Properties.
// Groups that validate "name -> attribute map" definitions share
// property.Definitions; every Find method fails with
// *property.UnknownDefinitionError for names it does not know.
//
// Cross-cutting rules that need the database schema are checked afterwards
// by Properties.CheckSchema, which reports *property.DomainInvariantError.
package groups
