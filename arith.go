package num

// This file contains the unsigned digit-sequence primitives that everything
// else is built on. All sequences are little-endian base 2^32 magnitudes.
// Unless stated otherwise, inputs are expected to be canonical (see
// trimDigits).

// trimDigits strips most-significant zero digits, leaving at least one digit.
func trimDigits(d []uint32) []uint32 {
	n := len(d)
	for n > 1 && d[n-1] == 0 {
		n--
	}
	if n == 0 {
		return append(d[:0], 0)
	}
	return d[:n]
}

func isZeroDigits(d []uint32) bool {
	return len(d) == 0 || (len(d) == 1 && d[0] == 0)
}

func cloneDigits(d []uint32) []uint32 {
	if len(d) == 0 {
		return []uint32{0}
	}
	out := make([]uint32, len(d))
	copy(out, d)
	return out
}

func cmpDigits(x, y []uint32) int {
	if len(x) < len(y) {
		return -1
	} else if len(x) > len(y) {
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] < y[i] {
			return -1
		} else if x[i] > y[i] {
			return 1
		}
	}
	return 0
}

// addDigits adds x to z in place, growing z as required, and returns z.
// z and x may be the same slice.
func addDigits(z, x []uint32) []uint32 {
	if len(z) < len(x) {
		z = append(z, make([]uint32, len(x)-len(z))...)
	}

	var carry uint64
	for i := 0; i < len(z); i++ {
		if i >= len(x) && carry == 0 {
			break
		}
		s := uint64(z[i]) + carry
		if i < len(x) {
			s += uint64(x[i])
		}
		z[i] = uint32(s)
		carry = s >> digitBits
	}
	if carry != 0 {
		z = append(z, uint32(carry))
	}
	return z
}

// subDigits subtracts x from z in place and returns the trimmed result. The
// magnitude of z must be greater than or equal to the magnitude of x.
func subDigits(z, x []uint32) []uint32 {
	var borrow uint64
	for i := 0; i < len(z); i++ {
		if i >= len(x) && borrow == 0 {
			break
		}
		d := uint64(z[i]) - borrow
		if i < len(x) {
			d -= uint64(x[i])
		}
		z[i] = uint32(d)
		borrow = d >> 63 // any wrap sets the top bit
	}
	return trimDigits(z)
}

// mulDigits returns the schoolbook product of x and y in a new slice.
func mulDigits(x, y []uint32) []uint32 {
	out := make([]uint32, len(x)+len(y))
	for i, yi := range y {
		if yi == 0 {
			continue
		}
		var carry uint64
		for j, xj := range x {
			// (2^32-1) + (2^32-1)^2 + (2^32-1) == 2^64-1, so this can't overflow:
			p := uint64(out[i+j]) + uint64(xj)*uint64(yi) + carry
			out[i+j] = uint32(p)
			carry = p >> digitBits
		}
		out[i+len(x)] = uint32(carry)
	}
	return trimDigits(out)
}

// mulAddDigit sets z to z*m + a in place, growing z by at most one digit,
// and returns z.
func mulAddDigit(z []uint32, m, a uint32) []uint32 {
	carry := uint64(a)
	for i, d := range z {
		// (2^32-1)^2 + (2^32-1) < 2^64
		p := uint64(d)*uint64(m) + carry
		z[i] = uint32(p)
		carry = p >> digitBits
	}
	if carry != 0 {
		z = append(z, uint32(carry))
	}
	return z
}

// incDigits adds one to z in place.
func incDigits(z []uint32) []uint32 {
	for i := range z {
		z[i]++
		if z[i] != 0 {
			return z
		}
	}
	return append(z, 1)
}

// decDigits subtracts one from z in place. z must not be zero.
func decDigits(z []uint32) []uint32 {
	for i := range z {
		z[i]--
		if z[i] != allOnes {
			break
		}
	}
	return trimDigits(z)
}

// shlBits returns x shifted left by k bits (k < 32) in a new slice that is
// always one digit longer than x. The top digit may be zero.
func shlBits(x []uint32, k uint) []uint32 {
	out := make([]uint32, len(x)+1)
	if k == 0 {
		copy(out, x)
		return out
	}
	var carry uint32
	for i, d := range x {
		out[i] = d<<k | carry
		carry = d >> (digitBits - k)
	}
	out[len(x)] = carry
	return out
}

// shrBits shifts z right by k bits (k < 32) in place and returns the trimmed
// result.
func shrBits(z []uint32, k uint) []uint32 {
	if k > 0 {
		for i := 0; i < len(z); i++ {
			z[i] >>= k
			if i+1 < len(z) {
				z[i] |= z[i+1] << (digitBits - k)
			}
		}
	}
	return trimDigits(z)
}
