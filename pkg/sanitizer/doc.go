// Package sanitizer provides the built-in named sanitizers behind the
// default rule registry: whitespace trimming and collapsing, case
// conversion, HTML escaping, digit extraction, truncation, and email
// normalization.
//
// Each transform exists twice: as a plain func(string) string for direct
// use and composition, and as a registry entry (via Named or a dedicated
// adapter when arguments are involved) so rule tables can reference it by
// directive name. Sanitizers never fail validation; non-string values pass
// through unchanged.
package sanitizer
