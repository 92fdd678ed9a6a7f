// Package integer provides a 256-bit two's complement signed integer.
//
// An Int shares its representation with uint256.Int: four 64-bit limbs in
// little-endian order, where the most significant bit of the last limb is the
// sign. The range is asymmetric:
//
//	Min = -2^255
//	Max = +2^255 - 1
//
// Min has no positive counterpart. Operations that would need one (Neg, Abs)
// report ErrRange for it, while Magnitude returns the unsigned 2^255.
//
// # Encoding
//
// The binary form is the magnitude shifted left by one with the sign in the
// low bit (aka zigzag), written big-endian with leading zero bytes removed.
// Zero is a single zero byte.
//
//	+0   = 0b0000_0000
//	+1   = 0b0000_0010
//	-1   = 0b0000_0011
//	+127 = 0b1111_1110
//	-127 = 0b1111_1111
//
// The text form is base 10 with an optional leading sign.
package integer
