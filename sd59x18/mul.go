package sd59x18

import (
	"github.com/calebcase/sd59x18/integer"
	"github.com/calebcase/sd59x18/muldiv"
)

// Mul returns x * y for raw fixed point values, rounded toward zero.
//
// Failures are reported as *OpError carrying MulInputTooSmall,
// MulDivFixedPointOverflow or MulOverflow.
func Mul(x, y integer.Int) (integer.Int, error) {
	if x.IsZero() || y.IsZero() {
		return integer.Int{}, nil
	}

	// Min has no positive counterpart so its magnitude cannot be signed.
	if x.IsMin() || y.IsMin() {
		return integer.Int{}, &OpError{Op: "mul", Kind: MulInputTooSmall, X: x, Y: y}
	}

	ax, ay := x.Magnitude(), y.Magnitude()
	neg := x.IsNeg() != y.IsNeg()

	abs, err := muldiv.FixedPoint(&ax, &ay)
	if err != nil {
		return integer.Int{}, &OpError{Op: "mul", Kind: MulDivFixedPointOverflow, X: x, Y: y, Err: err}
	}

	// The bound is Max for positive results and |Min| = Max + 1 for
	// negative ones.
	z, err := integer.FromMagnitude(&abs, neg)
	if err != nil {
		return integer.Int{}, &OpError{Op: "mul", Kind: MulOverflow, X: x, Y: y, Err: err}
	}

	return z, nil
}

// Mul returns x * y rounded toward zero. It behaves exactly like the package
// level Mul on the raw values.
func (x SD59x18) Mul(y SD59x18) (SD59x18, error) {
	z, err := Mul(integer.Int(x), integer.Int(y))

	return SD59x18(z), err
}
