package sd59x18

import (
	"github.com/calebcase/sd59x18/integer"
	"github.com/calebcase/sd59x18/muldiv"
)

// Decimals is the number of fractional base 10 digits.
const Decimals = 18

// SD59x18 is a signed fixed point number with 18 decimals. It shares its
// representation with integer.Int but the two cannot be mixed without an
// explicit conversion.
type SD59x18 integer.Int

// Constants.
var (
	// Unit is 1.0.
	Unit = Wrap(integer.FromInt64(int64(muldiv.Unit)))

	// HalfUnit is 0.5.
	HalfUnit = Wrap(integer.FromInt64(int64(muldiv.Unit / 2)))

	// Min is the most negative value.
	Min = Wrap(integer.Min)

	// Max is the most positive value.
	Max = Wrap(integer.Max)

	// MinWhole is Min truncated to a whole number.
	MinWhole = Wrap(integer.MustParse("-57896044618658097711785492504343953926634992332820282019728000000000000000000"))

	// MaxWhole is Max truncated to a whole number.
	MaxWhole = Wrap(integer.MustParse("57896044618658097711785492504343953926634992332820282019728000000000000000000"))

	// SqrtMax is the largest value whose square does not exceed Max.
	SqrtMax = Wrap(integer.MustParse("240615969168004511545033772477625056927114980741"))

	// Pi is π to 18 decimals.
	Pi = Wrap(integer.FromInt64(3_141592653589793238))

	// E is Euler's number to 18 decimals.
	E = Wrap(integer.FromInt64(2_718281828459045235))
)

// Constant is a named value accepted by Parse.
type Constant struct {
	Name  string
	Value SD59x18
}

// Constants lists the named values.
var Constants = []Constant{
	{"MIN", Min},
	{"MAX", Max},
	{"MIN_WHOLE", MinWhole},
	{"MAX_WHOLE", MaxWhole},
	{"SQRT_MAX", SqrtMax},
	{"HALF_SCALE", HalfUnit},
	{"UNIT", Unit},
	{"PI", Pi},
	{"E", E},
}

// Wrap returns raw as an SD59x18.
func Wrap(raw integer.Int) SD59x18 {
	return SD59x18(raw)
}

// Unwrap returns the raw integer behind x.
func (x SD59x18) Unwrap() integer.Int {
	return integer.Int(x)
}

// IsZero reports whether x == 0.
func (x SD59x18) IsZero() bool {
	return integer.Int(x).IsZero()
}

// Sign returns -1, 0 or +1.
func (x SD59x18) Sign() int {
	return integer.Int(x).Sign()
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x SD59x18) Cmp(y SD59x18) int {
	return integer.Int(x).Cmp(integer.Int(y))
}

// Neg returns -x. It fails with integer.ErrRange for Min.
func (x SD59x18) Neg() (SD59x18, error) {
	n, err := integer.Int(x).Neg()

	return SD59x18(n), err
}
