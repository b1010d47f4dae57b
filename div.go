package num

import (
	"math/bits"

	"github.com/pkg/errors"
)

// division returns the truncated quotient and remainder of x / y. The
// quotient is negative if the signs of x and y differ; the remainder takes
// the sign of x.
func division(x, y *Int) (q, r *Int, err error) {
	yd := y.abs()
	if len(yd) == 1 {
		return shortDivision(x, yd[0], y.neg)
	}
	q, r = longDivision(x, y)
	return q, r, nil
}

// shortDivision divides x by the single digit by in one pass from the most
// significant digit down.
func shortDivision(x *Int, by uint32, byNeg bool) (q, r *Int, err error) {
	if by == 0 {
		return nil, nil, errors.WithStack(ErrDivisionByZero)
	}

	xd := x.abs()
	qd := make([]uint32, len(xd))

	var rem uint64
	for i := len(xd) - 1; i >= 0; i-- {
		cur := rem<<digitBits | uint64(xd[i])
		qd[i] = uint32(cur / uint64(by))
		rem = cur % uint64(by)
	}

	q = &Int{digits: qd, neg: x.neg != byNeg}
	q.trim()
	r = &Int{digits: []uint32{uint32(rem)}, neg: x.neg}
	r.trim()
	return q, r, nil
}

// longDivision implements Knuth's Algorithm D (TAOCP vol. 2, 4.3.1) for a
// divisor of two or more digits.
func longDivision(x, y *Int) (q, r *Int) {
	xd, yd := x.abs(), y.abs()
	if cmpDigits(xd, yd) < 0 {
		return &Int{digits: []uint32{0}}, x.Clone()
	}

	// Normalize so the top bit of the divisor's leading digit is set. This
	// bounds each quotient digit estimate to at most 2 above the real one.
	k := uint(bits.LeadingZeros32(yd[len(yd)-1]))
	u := shlBits(xd, k)           // len(xd)+1 digits, the top one may be zero
	v := shlBits(yd, k)[:len(yd)] // the shift never spills out of the top digit

	n := len(v)
	m := len(u) - n - 1
	qd := make([]uint32, m+1)
	vTop := uint64(v[n-1])

	for j := m; j >= 0; j-- {
		est := (uint64(u[j+n])<<digitBits | uint64(u[j+n-1])) / vTop
		if est > digitMask {
			est = digitMask
		}

		// u[j:j+n+1] -= est * v
		var carry, borrow uint64
		for i := 0; i < n; i++ {
			p := est*uint64(v[i]) + carry
			carry = p >> digitBits
			d := uint64(u[i+j]) - (p & digitMask) - borrow
			u[i+j] = uint32(d)
			borrow = d >> 63
		}
		d := uint64(u[j+n]) - carry - borrow
		u[j+n] = uint32(d)
		negative := d>>63 != 0

		// The running remainder went negative, so the estimate was too high.
		// Add the divisor back until the top carries out, which happens at
		// most twice.
		for negative {
			est--
			var c uint64
			for i := 0; i < n; i++ {
				s := uint64(u[i+j]) + uint64(v[i]) + c
				u[i+j] = uint32(s)
				c = s >> digitBits
			}
			s := uint64(u[j+n]) + c
			u[j+n] = uint32(s)
			negative = s>>digitBits == 0
		}

		qd[j] = uint32(est)
	}

	q = &Int{digits: qd, neg: x.neg != y.neg}
	q.trim()
	r = &Int{digits: shrBits(u[:n], k), neg: x.neg}
	r.trim()
	return q, r
}

// CheckedQuoRem returns the quotient q and remainder r of x / y, or an error
// wrapping ErrDivisionByZero if y == 0. See QuoRem.
func (x *Int) CheckedQuoRem(by *Int) (q, r *Int, err error) {
	return division(x, by)
}

// QuoRem returns the quotient q and remainder r for y != 0. If y == 0, a
// division-by-zero run-time panic occurs; the panic value is an error wrapping
// ErrDivisionByZero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// so the remainder always has the sign of x. Int does not support
// big.Int.DivMod()-style Euclidean division.
func (x *Int) QuoRem(by *Int) (q, r *Int) {
	q, r, err := division(x, by)
	if err != nil {
		panic(err)
	}
	return q, r
}

// Quo returns the quotient x/y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (x *Int) Quo(by *Int) (q *Int) {
	q, _ = x.QuoRem(by)
	return q
}

// Rem returns the remainder of x%y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Rem implements truncated modulus (like Go); see
// QuoRem for more details.
func (x *Int) Rem(by *Int) (r *Int) {
	_, r = x.QuoRem(by)
	return r
}

// QuoAssign sets z to z/y and returns z. It panics if y == 0.
func (z *Int) QuoAssign(by *Int) *Int {
	q, _ := z.QuoRem(by)
	z.digits, z.neg = q.digits, q.neg
	return z
}

// RemAssign sets z to z%y and returns z. It panics if y == 0.
func (z *Int) RemAssign(by *Int) *Int {
	_, r := z.QuoRem(by)
	z.digits, z.neg = r.digits, r.neg
	return z
}
