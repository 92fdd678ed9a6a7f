// Package sd59x18 provides a signed fixed point base 10 number with 18
// decimals stored in a 256-bit two's complement integer.
//
// The equation for an SD59x18 number is:
//
//	number = raw / 10^18
//
// Where raw is an integer.Int. For example:
//
//	1.5    = 1_500000000000000000 / 10^18
//	-1e-18 = -1 / 10^18
//
// The range follows from the 256-bit raw value and is asymmetric:
//
//	Min = -57896044618658097711785492504343953926634992332820282019728.792003956564819968
//	Max = +57896044618658097711785492504343953926634992332820282019728.792003956564819967
//
// # Multiplication
//
// Mul multiplies the magnitudes with a 512-bit intermediate product, divides
// by 10^18 rounding toward zero, and reapplies the sign:
//
//	| Condition                               | Result                       |
//	|-----------------------------------------|------------------------------|
//	| either operand is 0                     | 0 (even if the other is Min) |
//	| either operand is Min, neither is 0     | MulInputTooSmall             |
//	| floor(|x|*|y| / 10^18) >= 2^256         | MulDivFixedPointOverflow     |
//	| magnitude exceeds Max (or |Min| if < 0) | MulOverflow                  |
//	| otherwise                               | the floored product          |
//
// The checks run in that order. A negative product may be exactly Min while
// its positive mirror fails with MulOverflow.
//
// Two entry points share one implementation: Mul operates on raw
// integer.Int values and SD59x18.Mul operates on the distinct SD59x18 type.
// Both return identical values and identical error kinds for every input.
//
// # Encoding
//
// The text form is a decimal literal with trailing fractional zeros removed
// (e.g. "-12983.989"). Parse additionally accepts an exponent ("1e-18") and
// the names listed in Constants with an optional leading minus.
//
// The binary form is the raw value in the zigzag encoding of package
// integer.
package sd59x18
