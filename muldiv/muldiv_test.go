package muldiv_test

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/sd59x18/muldiv"
)

var (
	two256 = new(big.Int).Lsh(big.NewInt(1), 256)
	unit   = new(big.Int).SetUint64(muldiv.Unit)
)

func maxU256() *uint256.Int {
	return new(uint256.Int).SetAllOne()
}

func mustBig(s string) *uint256.Int {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}

	return uint256.MustFromBig(b)
}

// oracle returns floor(x*y/d) and whether it overflows 256 bits.
func oracle(x, y *uint256.Int, d *big.Int) (*big.Int, bool) {
	q := new(big.Int).Mul(x.ToBig(), y.ToBig())
	q.Quo(q, d)

	return q, q.Cmp(two256) >= 0
}

// randWord returns a word with a random bit length so that small and large
// magnitudes are both covered.
func randWord(r *rand.Rand) *uint256.Int {
	var z uint256.Int
	for i := range z {
		z[i] = r.Uint64()
	}

	return z.Rsh(&z, uint(r.Intn(256)))
}

func TestMul(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		x, y := randWord(r), randWord(r)

		p := muldiv.Mul(x, y)

		hi, lo := p.Hi(), p.Lo()
		got := new(big.Int).Lsh(hi.ToBig(), 256)
		got.Add(got, lo.ToBig())

		want := new(big.Int).Mul(x.ToBig(), y.ToBig())
		require.Equal(t, 0, want.Cmp(got), "%s * %s", x.ToBig(), y.ToBig())
	}

	m := maxU256()
	p := muldiv.Mul(m, m)

	// (2^256 - 1)^2 = 2^512 - 2^257 + 1
	hi, lo := p.Hi(), p.Lo()
	require.Equal(t, uint256.Int{0xffff_ffff_ffff_fffe, ^uint64(0), ^uint64(0), ^uint64(0)}, hi)
	require.Equal(t, uint256.Int{1, 0, 0, 0}, lo)
}

func TestFixedPoint(t *testing.T) {
	type TC struct {
		name string
		x, y *uint256.Int
		want *uint256.Int
		err  error
	}

	sqrtMax := mustBig("340282366920938463463374607431768211455999999999")
	sqrtMaxNext := mustBig("340282366920938463463374607431768211456000000000")

	tcs := []TC{
		{
			name: "zero",
			x:    uint256.NewInt(0),
			y:    maxU256(),
			want: uint256.NewInt(0),
		},
		{
			name: "unit",
			x:    uint256.NewInt(muldiv.Unit),
			y:    maxU256(),
			want: maxU256(),
		},
		{
			name: "floor",
			x:    uint256.NewInt(6),
			y:    uint256.NewInt(100_000_000_000_000_000),
			want: uint256.NewInt(0),
		},
		{
			name: "pi*e",
			x:    uint256.NewInt(3_141592653589793238),
			y:    uint256.NewInt(2_718281828459045235),
			want: uint256.NewInt(8_539734222673567063),
		},
		{
			name: "largest square",
			x:    sqrtMax,
			y:    sqrtMax,
			want: mustBig("115792089237316195423570985008687907853269984664959999305615707080986380425072"),
		},
		{
			name: "smallest overflowing square",
			x:    sqrtMaxNext,
			y:    sqrtMaxNext,
			err:  muldiv.ErrOverflow,
		},
		{
			name: "max*max",
			x:    maxU256(),
			y:    maxU256(),
			err:  muldiv.ErrOverflow,
		},
		{
			name: "max*unit+1",
			x:    maxU256(),
			y:    uint256.NewInt(muldiv.Unit + 1),
			err:  muldiv.ErrOverflow,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			got, err := muldiv.FixedPoint(tc.x, tc.y)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)

			want, overflow := oracle(tc.x, tc.y, unit)
			require.False(t, overflow)
			require.Equal(t, 0, want.Cmp(got.ToBig()))

			if tc.want != nil {
				require.Equal(t, *tc.want, got)
			}
		})
	}
}

func TestFixedPointRandom(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	for i := 0; i < 2000; i++ {
		x, y := randWord(r), randWord(r)

		got, err := muldiv.FixedPoint(x, y)
		want, overflow := oracle(x, y, unit)

		if overflow {
			require.ErrorIs(t, err, muldiv.ErrOverflow, "%s * %s", x.ToBig(), y.ToBig())
			continue
		}

		require.NoError(t, err, "%s * %s", x.ToBig(), y.ToBig())
		require.Equal(t, 0, want.Cmp(got.ToBig()), "%s * %s", x.ToBig(), y.ToBig())
	}
}

func TestMulDiv(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	for i := 0; i < 2000; i++ {
		x, y, d := randWord(r), randWord(r), randWord(r)
		if d.IsZero() {
			d.SetOne()
		}

		got, err := muldiv.MulDiv(x, y, d)
		want, overflow := oracle(x, y, d.ToBig())

		if overflow {
			require.ErrorIs(t, err, muldiv.ErrOverflow)
			continue
		}

		require.NoError(t, err)
		require.Equal(t, 0, want.Cmp(got.ToBig()), "%s * %s / %s", x.ToBig(), y.ToBig(), d.ToBig())
	}
}

func TestDivisionByZero(t *testing.T) {
	_, err := muldiv.MulDiv64(uint256.NewInt(1), uint256.NewInt(1), 0)
	require.ErrorIs(t, err, muldiv.ErrDivisionByZero)

	_, err = muldiv.MulDiv(uint256.NewInt(1), uint256.NewInt(1), uint256.NewInt(0))
	require.ErrorIs(t, err, muldiv.ErrDivisionByZero)
}

func BenchmarkFixedPoint(b *testing.B) {
	x := mustBig("240615969168004511545033772477625056927114980741")
	y := mustBig("240615969168004511545033772477625056927114980741")

	for i := 0; i < b.N; i++ {
		_, _ = muldiv.FixedPoint(x, y)
	}
}
