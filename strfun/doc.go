// Package strfun provides small ASCII string helpers: case-insensitive
// prefix, suffix and directory comparison, hex digit parsing, word scanning,
// a lenient decimal parser, and single-placeholder printf/scanf helpers.
//
// All comparisons fold with wildpat.Fold, so only 'A'..'Z' are case-mapped.
package strfun
