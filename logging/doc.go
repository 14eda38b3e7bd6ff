// Package logging builds the structured log/slog logger used while resolving
// properties. Output is JSON unless the text format is requested; the root
// package installs the logger as slog.Default and supplies it to Fx.
package logging
