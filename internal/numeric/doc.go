// Package numeric implements the numeric text filter and reformatter.
//
// The package is the logical core of numfield: two total functions plus one
// configuration value type.
//
//   - [Style] describes which character classes an input may contain:
//     a decimal separator, a leading minus, an exponent marker, and an
//     advisory numeric range.
//   - [Filter] sanitizes an arbitrary string so it only contains characters
//     the style permits, with multiplicity and position rules (one separator,
//     one mantissa sign, one exponent marker).
//   - [Reformat] canonicalizes a sanitized string into either fixed-decimal
//     or scientific notation depending on magnitude.
//
// # Live-typing semantics
//
// Both functions are designed to run on every keystroke of a bound text
// input, so neither ever fails: disallowed characters are silently dropped
// and unparsable input passes through [Reformat] unchanged. Intermediate
// typing states like "-" or "1." are valid filter output even though they do
// not parse as numbers.
//
// # Range is advisory
//
// Style.Range is never enforced by [Filter] or [Reformat]. A field is allowed
// to hold out-of-range text mid-edit; callers that want to surface the bound
// use [Range.Contains] for display purposes only.
//
// All functions are stateless and safe for concurrent use.
package numeric
