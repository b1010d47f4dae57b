package num

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestTwosComplement(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual([]uint32{0xFFFFFFFB}, twosComplement([]uint32{5}))
	tt.MustEqual([]uint32{0xFFFFFFFF, 0xFFFFFFFE}, twosComplement([]uint32{1, 1}))
	tt.MustEqual([]uint32{0, 0xFFFFFFFF}, twosComplement([]uint32{0, 1}))

	// The carry out of an all-zero value is kept:
	tt.MustEqual([]uint32{0, 0, 1}, twosComplement([]uint32{0, 0}))
}

func TestIntBitwise(t *testing.T) {
	for idx, tc := range []struct {
		a, b                 *Int
		and, or, xor, andNot *Int
	}{
		{i64(0), i64(0), i64(0), i64(0), i64(0), i64(0)},
		{i64(12), i64(10), i64(8), i64(14), i64(6), i64(4)},
		{i64(-5), i64(3), i64(3), i64(-5), i64(-8), i64(-8)},
		{i64(3), i64(-5), i64(3), i64(-5), i64(-8), i64(0)},
		{i64(-5), i64(-3), i64(-7), i64(-1), i64(6), i64(2)},
		{i64(-1), i64(0), i64(0), i64(-1), i64(-1), i64(-1)},
		{i64(-1), i64(-1), i64(-1), i64(-1), i64(0), i64(0)},

		// Sign extension into the longer operand:
		{raw(false, 0xFFFFFFFF, 0xFFFFFFFF), i64(-2),
			raw(false, 0xFFFFFFFE, 0xFFFFFFFF), i64(-1), raw(true, 0xFFFFFFFF, 0xFFFFFFFF), i64(1)},
		{raw(true, 0, 1), raw(false, 0xFFFFFFFF, 0xFFFFFFFF),
			raw(false, 0, 0xFFFFFFFF), i64(-1), raw(true, 1, 0xFFFFFFFF), raw(true, 0, 0, 1)},
	} {
		t.Run(fmt.Sprintf("%d/%s,%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.and.Equal(tc.a.And(tc.b)), "& found: %s", tc.a.And(tc.b))
			tt.MustAssert(tc.or.Equal(tc.a.Or(tc.b)), "| found: %s", tc.a.Or(tc.b))
			tt.MustAssert(tc.xor.Equal(tc.a.Xor(tc.b)), "^ found: %s", tc.a.Xor(tc.b))
			tt.MustAssert(tc.andNot.Equal(tc.a.AndNot(tc.b)), "&^ found: %s", tc.a.AndNot(tc.b))

			tt.MustAssert(tc.and.Equal(tc.a.Clone().AndAssign(tc.b)))
			tt.MustAssert(tc.or.Equal(tc.a.Clone().OrAssign(tc.b)))
			tt.MustAssert(tc.xor.Equal(tc.a.Clone().XorAssign(tc.b)))
			tt.MustAssert(tc.andNot.Equal(tc.a.Clone().AndNotAssign(tc.b)))
		})
	}
}

func TestIntBitwiseAgainstBig(t *testing.T) {
	tt := assert.WrapTB(t)
	vals := []string{
		"0", "1", "-1", "4294967295", "-4294967295", "4294967296", "-4294967296",
		"-18446744073709551616", "18446744073709551615", "-79228162514264337593543950335",
	}
	for _, as := range vals {
		for _, bs := range vals {
			a, b := ints(as), ints(bs)
			ba, bb := bigs(as), bigs(bs)
			tt.MustEqual(new(big.Int).And(ba, bb).String(), a.And(b).String(), "%s & %s", as, bs)
			tt.MustEqual(new(big.Int).Or(ba, bb).String(), a.Or(b).String(), "%s | %s", as, bs)
			tt.MustEqual(new(big.Int).Xor(ba, bb).String(), a.Xor(b).String(), "%s ^ %s", as, bs)
			tt.MustEqual(new(big.Int).AndNot(ba, bb).String(), a.AndNot(b).String(), "%s &^ %s", as, bs)
		}
	}
}

func TestIntNot(t *testing.T) {
	for idx, tc := range []struct {
		a, out *Int
	}{
		{i64(0), i64(-1)},
		{i64(-1), i64(0)},
		{i64(5), i64(-6)},
		{i64(-5), i64(4)},
		{raw(false, 0xFFFFFFFF), raw(true, 0, 1)},
		{raw(true, 0, 1), raw(false, 0xFFFFFFFF)},
		{raw(false, 0xFFFFFFFF, 0xFFFFFFFF), raw(true, 0, 0, 1)},
	} {
		t.Run(fmt.Sprintf("%d/^%s=%s", idx, tc.a, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			result := tc.a.Not()
			tt.MustAssert(tc.out.Equal(result), "found: %s", result)
			tt.MustAssert(result.Equal(tc.a.Neg().Dec()))
		})
	}
}

func TestIntLsh(t *testing.T) {
	for idx, tc := range []struct {
		a   *Int
		n   uint
		out *Int
	}{
		{i64(0), 100, i64(0)},
		{i64(1), 0, i64(1)},
		{i64(1), 1, i64(2)},
		{i64(1), 31, raw(false, 0x80000000)},
		{i64(1), 32, raw(false, 0, 1)},
		{i64(1), 33, raw(false, 0, 2)},
		{i64(1), 64, raw(false, 0, 0, 1)},
		{i64(-1), 1, i64(-2)},
		{i64(-1), 32, raw(true, 0, 1)},
		{i64(-3), 31, raw(true, 0x80000000, 1)},
		{raw(false, 0xFFFFFFFF), 4, raw(false, 0xFFFFFFF0, 0xF)},
		{raw(true, 0xFFFFFFFF), 4, raw(true, 0xFFFFFFF0, 0xF)},
		{raw(true, 0xFFFFFFFF, 0xFFFFFFFF), 36, raw(true, 0, 0xFFFFFFF0, 0xFFFFFFFF, 0xF)},
	} {
		t.Run(fmt.Sprintf("%d/%s<<%d=%s", idx, tc.a, tc.n, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			result := tc.a.Lsh(tc.n)
			tt.MustAssert(tc.out.Equal(result), "found: %s", result)
			tt.MustAssert(tc.out.Equal(tc.a.Clone().LshAssign(tc.n)))
		})
	}
}

func TestIntRsh(t *testing.T) {
	for idx, tc := range []struct {
		a   *Int
		n   uint
		out *Int
	}{
		{i64(0), 1, i64(0)},
		{i64(1), 0, i64(1)},
		{i64(2), 1, i64(1)},
		{i64(1), 1, i64(0)},
		{i64(-1), 1, i64(-1)},
		{i64(-2), 1, i64(-1)},
		{i64(-3), 1, i64(-2)},
		{i64(-7), 2, i64(-2)},
		{raw(false, 0, 1), 32, i64(1)},
		{raw(false, 0, 1), 33, i64(0)},
		{raw(true, 0, 1), 32, i64(-1)},
		{raw(true, 1, 1), 32, i64(-2)},
		{raw(true, 0, 0, 1), 36, raw(true, 0x10000000)},

		// Shifting every digit out:
		{raw(false, 1, 2, 3), 96, i64(0)},
		{raw(false, 1, 2, 3), 1000, i64(0)},
		{raw(true, 1, 2, 3), 96, i64(0)},
		{raw(true, 1, 2, 3), 1000, i64(0)},
		{i64(-1), 32, i64(0)},
		{i64(-5), 64, i64(0)},
		{raw(true, 0, 1), 64, i64(0)},

		// Keeping at least one digit still sign-extends:
		{i64(-1), 31, i64(-1)},
		{raw(true, 1, 2, 3), 64, i64(-4)},
	} {
		t.Run(fmt.Sprintf("%d/%s>>%d=%s", idx, tc.a, tc.n, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			result := tc.a.Rsh(tc.n)
			tt.MustAssert(tc.out.Equal(result), "found: %s", result)
			tt.MustAssert(tc.out.Equal(tc.a.Clone().RshAssign(tc.n)))
		})
	}
}

func TestIntLshRshRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, s := range []string{"0", "1", "-1", "123456789012345678901234567890", "-340282366920938463463374607431768211455"} {
		for _, n := range []uint{0, 1, 31, 32, 33, 63, 64, 65, 200} {
			v := ints(s)
			tt.MustAssert(v.Lsh(n).Rsh(n).Equal(v), "(%s << %d) >> %d", s, n, n)
		}
	}
}
