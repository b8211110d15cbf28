// Package decimal provides arbitrary precision base 10 arithmetic and the
// canonical text form used by the test vector corpus.
//
// The equation for a decimal number is:
//
//  number = coefficient * 10 ^ exponent
//
// Where coefficient is an unscaled integer and exponent is a base 10 scale.
// For example:
//
//  1.23 = 123 * 10^-2
//
// Arithmetic is carried out by a Context configured with a precision (the
// number of significant decimal digits kept). The corpus uses a precision of
// 100. Results are rounded half to even when they have more digits than the
// precision allows. Literals are parsed exactly.
//
// Canonical Form
//
// Values are rendered in fixed point notation and then canonicalized:
//
//  | Rendered       | Canonical  |                                     |
//  |----------------|------------|-------------------------------------|
//  | 3.10           | 3.1        | Trailing fractional zeros stripped. |
//  | 3.00           | 3.         | Point kept after stripping.         |
//  | 10             | 10.        | Point appended to integers.         |
//  | 0.0000000      | 0.         |                                     |
//  | -1234567889.00 | -1234567889. |                                   |
//  | 1E+5           | error      | Exponent markers are rejected.      |
//  |----------------|------------|-------------------------------------|
//
// The grammar of a canonical line is:
//
//  -?[0-9]+\.([0-9]*[1-9])?
//
// The trailing point is significant: it marks the text as a formatted decimal
// whose value happens to be whole, as opposed to a plain integer literal.
// There is never a leading plus sign and never an exponent.
package decimal
