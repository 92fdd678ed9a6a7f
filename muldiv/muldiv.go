// Package muldiv computes floor(x * y / d) over unsigned 256-bit words
// without losing the upper half of the product.
package muldiv

import (
	"math/bits"

	"github.com/holiman/uint256"
	"github.com/zeebo/errs"
)

// Unit is the fixed point scale, 10^18.
const Unit uint64 = 1_000_000_000_000_000_000

// Error is the error class for this package.
var Error = errs.Class("muldiv")

var (
	// ErrOverflow is returned when the quotient needs more than 256 bits.
	ErrOverflow = Error.New("fixed point overflow")

	// ErrDivisionByZero is returned for a zero denominator.
	ErrDivisionByZero = Error.New("division by zero")
)

// Product is a 512-bit unsigned value as eight little-endian limbs.
type Product [8]uint64

// Hi returns the upper 256 bits of p.
func (p *Product) Hi() uint256.Int {
	return uint256.Int{p[4], p[5], p[6], p[7]}
}

// Lo returns the lower 256 bits of p.
func (p *Product) Lo() uint256.Int {
	return uint256.Int{p[0], p[1], p[2], p[3]}
}

// Mul returns the full 512-bit product x * y.
func Mul(x, y *uint256.Int) (p Product) {
	for i := 0; i < 4; i++ {
		if x[i] == 0 {
			continue
		}

		var carry uint64
		for j := 0; j < 4; j++ {
			// hi:lo = x[i]*y[j] + p[i+j] + carry never exceeds 2^128 - 1.
			hi, lo := bits.Mul64(x[i], y[j])

			var c uint64
			lo, c = bits.Add64(lo, p[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c

			p[i+j] = lo
			carry = hi
		}
		p[i+4] = carry
	}

	return p
}

// div64 divides p by d limb by limb, most significant first. The running
// remainder stays below d so bits.Div64 never faults.
func div64(p *Product, d uint64) (q Product, r uint64) {
	for i := len(p) - 1; i >= 0; i-- {
		q[i], r = bits.Div64(r, p[i], d)
	}

	return q, r
}

// MulDiv64 returns floor(x * y / d).
//
// The 512-bit product is divided exactly. ErrOverflow is returned when the
// quotient does not fit in 256 bits and ErrDivisionByZero when d is zero.
func MulDiv64(x, y *uint256.Int, d uint64) (z uint256.Int, err error) {
	if d == 0 {
		return z, ErrDivisionByZero
	}

	p := Mul(x, y)

	q, _ := div64(&p, d)
	if q[4]|q[5]|q[6]|q[7] != 0 {
		return z, ErrOverflow
	}

	return q.Lo(), nil
}

// FixedPoint returns floor(x * y / Unit), the product of two unsigned fixed
// point numbers with 18 decimals.
func FixedPoint(x, y *uint256.Int) (uint256.Int, error) {
	return MulDiv64(x, y, Unit)
}

// MulDiv returns floor(x * y / d) for a full width denominator.
func MulDiv(x, y, d *uint256.Int) (z uint256.Int, err error) {
	switch {
	case d.IsZero():
		return z, ErrDivisionByZero
	case d.IsUint64():
		return MulDiv64(x, y, d.Uint64())
	}

	_, overflow := z.MulDivOverflow(x, y, d)
	if overflow {
		return uint256.Int{}, ErrOverflow
	}

	return z, nil
}
