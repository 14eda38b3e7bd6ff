// Package dfprop resolves the property groups of a database-first code
// generator from YAML documents and exposes them through an Fx application.
//
//	props, err := dfprop.Load(
//		dfprop.WithDirectory("./dfprop"),
//		dfprop.WithEnvironment("ut"),
//	)
//
// Options select the document layout, environment overrides, alias marks and
// logging; WithModules adds Fx modules that receive *groups.Properties.
package dfprop
