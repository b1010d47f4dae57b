package num

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestIntCmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b   *Int
		result int
	}{
		{i64(0), i64(0), 0},
		{i64(0), i64(-1), 1},
		{i64(-1), i64(0), -1},
		{i64(1), i64(0), 1},
		{i64(1), i64(1), 0},
		{i64(-1), i64(-1), 0},
		{i64(1), i64(-1), 1},
		{i64(-1), i64(1), -1},
		{i64(-2), i64(-1), -1},
		{i64(-1), i64(-2), 1},
		{raw(false, 0, 1), raw(false, 0xFFFFFFFF), 1},
		{raw(true, 0, 1), raw(true, 0xFFFFFFFF), -1},
		{raw(false, 1, 2), raw(false, 2, 1), 1},
		{raw(true, 1, 2), raw(true, 2, 1), -1},
		{raw(false, 1, 2, 3), raw(false, 1, 2, 3), 0},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s=%d", idx, tc.a, tc.b, tc.result), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.result, tc.a.Cmp(tc.b))
			tt.MustEqual(-tc.result, tc.b.Cmp(tc.a))

			tt.MustEqual(tc.result == 0, tc.a.Equal(tc.b))
			tt.MustEqual(tc.result != 0, tc.a.NotEqual(tc.b))
			tt.MustEqual(tc.result < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.result <= 0, tc.a.LessOrEqualTo(tc.b))
			tt.MustEqual(tc.result > 0, tc.a.GreaterThan(tc.b))
			tt.MustEqual(tc.result >= 0, tc.a.GreaterOrEqualTo(tc.b))

			// a < b iff a - b < 0:
			tt.MustEqual(tc.result, tc.a.Sub(tc.b).Sign())
		})
	}
}

func TestIntCmpZeroValue(t *testing.T) {
	tt := assert.WrapTB(t)
	var z Int
	tt.MustEqual(0, z.Cmp(i64(0)))
	tt.MustEqual(0, i64(-1).Inc().Cmp(&z))
	tt.MustAssert(z.LessThan(i64(1)))
	tt.MustAssert(z.GreaterThan(i64(-1)))
}

func TestIntEqualInt64(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(i64(-5).EqualInt64(-5))
	tt.MustAssert(!i64(-5).EqualInt64(5))
	tt.MustAssert(!raw(false, 5, 0, 1).EqualInt64(5))
}

func TestLargerSmallerDifference(t *testing.T) {
	for idx, tc := range []struct {
		a, b, larger, smaller, diff *Int
	}{
		{i64(0), i64(0), i64(0), i64(0), i64(0)},
		{i64(1), i64(2), i64(2), i64(1), i64(1)},
		{i64(-1), i64(2), i64(2), i64(-1), i64(3)},
		{i64(-1), i64(-2), i64(-1), i64(-2), i64(1)},
		{raw(true, 0, 1), raw(false, 0, 1), raw(false, 0, 1), raw(true, 0, 1), raw(false, 0, 2)},
	} {
		t.Run(fmt.Sprintf("%d/%s,%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.larger.Equal(LargerInt(tc.a, tc.b)))
			tt.MustAssert(tc.larger.Equal(LargerInt(tc.b, tc.a)))
			tt.MustAssert(tc.smaller.Equal(SmallerInt(tc.a, tc.b)))
			tt.MustAssert(tc.smaller.Equal(SmallerInt(tc.b, tc.a)))
			tt.MustAssert(tc.diff.Equal(DifferenceInt(tc.a, tc.b)))
			tt.MustAssert(tc.diff.Equal(DifferenceInt(tc.b, tc.a)))
		})
	}
}
