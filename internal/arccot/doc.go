// Package arccot evaluates Machin-like linear combinations of inverse
// cotangents,
//
//	result = d * sum(m[i] * arccot(a[i]))
//
// to arbitrary fixed-point precision, using a blocked long-division
// evaluation of the Taylor series
//
//	arccot(a) = 1/a - 1/(3*a^3) + 1/(5*a^5) - 1/(7*a^7) + ...
//
// The implementation works entirely in base 2^32 "limbs", most
// significant first, and is a direct structural port of a hand-written
// C++ evaluator: a mutable big fixed-point accumulator, a per-term
// quotient vector seeded once at construction, and a remainder column
// that carries partial long-division state across output limbs so that
// peak memory stays bounded regardless of how many digits are
// requested.
//
// The package does not perform rounding: the last one or two emitted
// fractional digits may be biased low due to truncation. See Evaluator
// for the entry point.
package arccot
