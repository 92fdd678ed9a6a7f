package integer

import (
	"fmt"
	"math"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

var (
	// ErrRange is returned when a value does not fit in 256 signed bits.
	ErrRange = Error.New("out of range")

	// ErrSyntax is returned when text or binary input is malformed.
	ErrSyntax = Error.New("invalid syntax")
)

// Int is a signed 256-bit integer in two's complement.
type Int uint256.Int

var (
	// Min is the most negative value, -2^255.
	Min = Int{0, 0, 0, 1 << 63}

	// Max is the most positive value, 2^255 - 1.
	Max = Int{math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64 >> 1}

	// MinMagnitude is |Min| = 2^255 = Max + 1.
	MinMagnitude = uint256.Int{0, 0, 0, 1 << 63}

	// MaxMagnitude is |Max| = 2^255 - 1.
	MaxMagnitude = uint256.Int(Max)
)

// FromInt64 returns v as an Int.
func FromInt64(v int64) Int {
	if v < 0 {
		// Sign extend into the upper limbs.
		return Int{uint64(v), math.MaxUint64, math.MaxUint64, math.MaxUint64}
	}

	return Int{uint64(v)}
}

// FromMagnitude returns the value with magnitude m, negated when neg is set.
// It fails with ErrRange if the result is outside [Min, Max].
func FromMagnitude(m *uint256.Int, neg bool) (Int, error) {
	if neg {
		if m.Gt(&MinMagnitude) {
			return Int{}, ErrRange
		}

		var z uint256.Int
		z.Neg(m)

		return Int(z), nil
	}

	if m.Gt(&MaxMagnitude) {
		return Int{}, ErrRange
	}

	return Int(*m), nil
}

// FromBig converts b. It fails with ErrRange if b is outside [Min, Max].
func FromBig(b *big.Int) (Int, error) {
	m, overflow := uint256.FromBig(new(big.Int).Abs(b))
	if overflow {
		return Int{}, ErrRange
	}

	return FromMagnitude(m, b.Sign() < 0)
}

// MustFromBig is like FromBig but panics on error.
func MustFromBig(b *big.Int) Int {
	x, err := FromBig(b)
	if err != nil {
		panic(err)
	}

	return x
}

// Parse reads a base 10 integer with an optional leading sign.
func Parse(s string) (x Int, err error) {
	defer Error.WrapP(&err)

	digits := s
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		digits = digits[1:]
	}

	if digits == "" {
		return Int{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Int{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
	}

	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	x, err = FromBig(b)
	if err != nil {
		return Int{}, fmt.Errorf("%w: %q", err, s)
	}

	return x, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool {
	return x == Int{}
}

// IsNeg reports whether x < 0.
func (x Int) IsNeg() bool {
	return x[3]>>63 == 1
}

// IsMin reports whether x is the most negative value.
func (x Int) IsMin() bool {
	return x == Min
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case x.IsNeg():
		return -1
	case x.IsZero():
		return 0
	}

	return 1
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	xn, yn := x.IsNeg(), y.IsNeg()
	if xn != yn {
		if xn {
			return -1
		}

		return 1
	}

	// Same sign: two's complement order matches unsigned order.
	ux, uy := uint256.Int(x), uint256.Int(y)

	return ux.Cmp(&uy)
}

// Magnitude returns |x| as an unsigned value. It is defined for every x,
// including Min whose magnitude is 2^255.
func (x Int) Magnitude() uint256.Int {
	u := uint256.Int(x)
	if !x.IsNeg() {
		return u
	}

	var m uint256.Int
	m.Neg(&u)

	return m
}

// Neg returns -x. It fails with ErrRange for Min.
func (x Int) Neg() (Int, error) {
	if x.IsMin() {
		return Int{}, ErrRange
	}

	u := uint256.Int(x)

	var z uint256.Int
	z.Neg(&u)

	return Int(z), nil
}

// Abs returns |x|. It fails with ErrRange for Min.
func (x Int) Abs() (Int, error) {
	if !x.IsNeg() {
		return x, nil
	}

	return x.Neg()
}

// Big returns x as a big.Int.
func (x Int) Big() *big.Int {
	m := x.Magnitude()

	b := m.ToBig()
	if x.IsNeg() {
		b.Neg(b)
	}

	return b
}

// String returns x in base 10.
func (x Int) String() string {
	return x.Big().String()
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*x = v

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x Int) MarshalBinary() (data []byte, err error) {
	m := x.Magnitude()

	i := m.ToBig()
	i.Lsh(i, 1)
	if x.IsNeg() {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return ErrSyntax
	}

	i := new(big.Int).SetBytes(data)

	neg := i.Bit(0) == 1
	i.Rsh(i, 1)

	m, overflow := uint256.FromBig(i)
	if overflow {
		return ErrRange
	}

	v, err := FromMagnitude(m, neg)
	if err != nil {
		return err
	}

	*x = v

	return nil
}
