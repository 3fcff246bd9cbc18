// Package locale provides the culture-specific numeric primitives used by the
// validator package: discovering the decimal and group separators of a BCP 47
// language tag and parsing decimal strings written in that convention.
//
// Separators and the minus sign are discovered by formatting a sample number
// with golang.org/x/text/message, so every locale x/text knows about is
// supported without a hand-maintained table.
//
// # Usage
//
//	format := locale.DecimalFormatFor(language.French)
//	v, err := format.Parse("123,45")
//	// v == 123.45
//
// Parsing accepts an optional leading sign, digits and at most one decimal
// separator. The sign may be ASCII or the locale's own (U+2212 in Swedish),
// digits may be native ("١٢٫٥" in Arabic), and bidi marks are ignored.
// Group separators, surrounding whitespace, exponents and currency symbols
// are rejected.
package locale
