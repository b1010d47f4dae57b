package num

type RandSource interface {
	Uint64() uint64
}

// RandInt returns a random Int with at most the given number of base 2^32
// digits. If neg is true and the result is not zero, it is negative.
func RandInt(source RandSource, digits int, neg bool) *Int {
	if digits < 1 {
		digits = 1
	}
	d := make([]uint32, digits)
	for i := 0; i < digits; i += 2 {
		v := source.Uint64()
		d[i] = uint32(v)
		if i+1 < digits {
			d[i+1] = uint32(v >> digitBits)
		}
	}
	z := &Int{digits: d, neg: neg}
	z.trim()
	return z
}

// DifferenceInt subtracts the smaller of a and b from the larger.
func DifferenceInt(a, b *Int) *Int {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

// LargerInt returns whichever of a and b is larger. If they are equal, a is
// returned. The result is not a copy.
func LargerInt(a, b *Int) *Int {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

// SmallerInt returns whichever of a and b is smaller. If they are equal, a is
// returned. The result is not a copy.
func SmallerInt(a, b *Int) *Int {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}
