package sd59x18

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"

	"github.com/calebcase/sd59x18/integer"
	"github.com/calebcase/sd59x18/muldiv"
)

// maxShift bounds how far a literal's exponent may move the decimal point.
// Anything beyond it is out of range for a non-zero coefficient.
const maxShift = 2 * 78

// maxExp saturates the exponent; any larger value already exceeds maxShift.
const maxExp = 100_000_000

// Parse reads a decimal literal such as "-12983.989", "1e-18" or "PI".
//
// Literals needing more than 18 decimals fail with ErrPrecision and values
// outside [Min, Max] with integer.ErrRange.
func Parse(s string) (x SD59x18, err error) {
	defer Error.WrapP(&err)

	if x, ok, err := parseNamed(s); ok {
		return x, err
	}

	var (
		pos     int
		width   = len(s)
		neg     bool
		digits  []byte
		scale   int
		hascoef bool
		eneg    bool
		exp     int
		hase    bool
		hasexp  bool
	)

	// Sign
	if pos < width && (s[pos] == '-' || s[pos] == '+') {
		neg = s[pos] == '-'
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		digits = append(digits, s[pos])
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			digits = append(digits, s[pos])
			scale++
			pos++
		}
	}

	// Exponent
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hase = true
		pos++
		if pos < width && (s[pos] == '-' || s[pos] == '+') {
			eneg = s[pos] == '-'
			pos++
		}
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hasexp = true
			if exp < maxExp {
				exp = exp*10 + int(s[pos]-'0')
			}
			pos++
		}
	}

	switch {
	case pos != width:
		return SD59x18{}, fmt.Errorf("%w: invalid character at %d in %q", ErrSyntax, pos, s)
	case !hascoef:
		return SD59x18{}, fmt.Errorf("%w: no digits in %q", ErrSyntax, s)
	case hase && !hasexp:
		return SD59x18{}, fmt.Errorf("%w: no exponent in %q", ErrSyntax, s)
	}

	if eneg {
		exp = -exp
	}

	// Trailing zeros never need precision; fold them into the shift.
	trimmed := len(digits)
	for trimmed > 0 && digits[trimmed-1] == '0' {
		trimmed--
	}

	if trimmed == 0 {
		return SD59x18{}, nil
	}

	coef, _ := new(big.Int).SetString(string(digits[:trimmed]), 10)

	shift := Decimals + exp - scale + len(digits) - trimmed
	switch {
	case shift > maxShift:
		return SD59x18{}, fmt.Errorf("%w: %q", integer.ErrRange, s)
	case shift < -maxShift:
		return SD59x18{}, fmt.Errorf("%w: %q", ErrPrecision, s)
	case shift >= 0:
		coef.Mul(coef, pow10(shift))
	default:
		var rem big.Int
		coef.QuoRem(coef, pow10(-shift), &rem)
		if rem.Sign() != 0 {
			return SD59x18{}, fmt.Errorf("%w: %q", ErrPrecision, s)
		}
	}

	if neg {
		coef.Neg(coef)
	}

	raw, err := integer.FromBig(coef)
	if err != nil {
		return SD59x18{}, fmt.Errorf("%w: %q", err, s)
	}

	return SD59x18(raw), nil
}

// parseNamed resolves the named constants, optionally negated.
func parseNamed(s string) (x SD59x18, ok bool, err error) {
	name := strings.ToUpper(s)

	neg := strings.HasPrefix(name, "-")
	if neg {
		name = name[1:]
	}

	var c *Constant
	for i := range Constants {
		if Constants[i].Name == name {
			c = &Constants[i]
			break
		}
	}

	if c == nil {
		return SD59x18{}, false, nil
	}

	if !neg {
		return c.Value, true, nil
	}

	x, err = c.Value.Neg()
	if err != nil {
		return SD59x18{}, true, fmt.Errorf("%w: %q", err, s)
	}

	return x, true, nil
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) SD59x18 {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

// String returns x as a decimal literal with trailing fractional zeros
// removed.
func (x SD59x18) String() string {
	raw := integer.Int(x)
	m := raw.Magnitude()
	unit := uint256.NewInt(muldiv.Unit)

	var whole, frac uint256.Int
	whole.Div(&m, unit)
	frac.Mod(&m, unit)

	sb := &strings.Builder{}
	if raw.IsNeg() {
		sb.WriteByte('-')
	}

	sb.WriteString(whole.ToBig().String())

	if !frac.IsZero() {
		sb.WriteByte('.')
		sb.WriteString(strings.TrimRight(fmt.Sprintf("%018d", frac.Uint64()), "0"))
	}

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (x SD59x18) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *SD59x18) UnmarshalText(text []byte) (err error) {
	defer Error.WrapP(&err)

	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*x = v

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x SD59x18) MarshalBinary() (data []byte, err error) {
	return integer.Int(x).MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *SD59x18) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	var raw integer.Int

	err = raw.UnmarshalBinary(data)
	if err != nil {
		return err
	}

	*x = SD59x18(raw)

	return nil
}
