// Package ruleset loads declarative rule tables from YAML, producing the
// same normalized groups a program would build with the pkg/rules
// constructors. Inline closures and argument thunks have no YAML form;
// reference model handlers by name instead.
package ruleset
