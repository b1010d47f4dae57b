package num

// Bitwise operations and shifts behave as if Int were stored in an infinitely
// sign-extended two's complement representation, like Go's fixed-size signed
// integers (and big.Int). The magnitude is only converted to two's complement
// for the duration of the operation.

// twosComplement inverts every digit of d and adds one, in place. It is its
// own inverse. A carry out of the top digit, which only happens when d is all
// zeros, is kept as a new top digit.
func twosComplement(d []uint32) []uint32 {
	for i := range d {
		d[i] = ^d[i]
	}
	return incDigits(d)
}

// signWord is the digit that sign-extends a two's complement value.
func signWord(neg bool) uint32 {
	if neg {
		return allOnes
	}
	return 0
}

// toTwos returns a copy of the magnitude of x, converted to two's complement
// if x is negative.
func (x *Int) toTwos() []uint32 {
	d := cloneDigits(x.abs())
	if x.neg {
		d = twosComplement(d)
	}
	return d
}

// setFromTwos takes ownership of d, a two's complement value whose
// sign-extension digit is signWord(neg), and stores it in z as a magnitude.
func (z *Int) setFromTwos(d []uint32, neg bool) {
	if neg {
		d = twosComplement(d)
	}
	z.digits, z.neg = d, neg
	z.trim()
}

// bitwise applies op digit-by-digit to the two's complement forms of z and x,
// storing the result in z. The sign of the result is op applied to the
// sign-extension digits.
func (z *Int) bitwise(x *Int, op func(a, b uint32) uint32) *Int {
	a, b := z.toTwos(), x.toTwos()
	aExt, bExt := signWord(z.neg), signWord(x.neg)
	for len(a) < len(b) {
		a = append(a, aExt)
	}
	for len(b) < len(a) {
		b = append(b, bExt)
	}
	for i := range a {
		a[i] = op(a[i], b[i])
	}
	z.setFromTwos(a, op(aExt, bExt) == allOnes)
	return z
}

// AndAssign sets z to z & x and returns z.
func (z *Int) AndAssign(x *Int) *Int {
	return z.bitwise(x, func(a, b uint32) uint32 { return a & b })
}

// OrAssign sets z to z | x and returns z.
func (z *Int) OrAssign(x *Int) *Int {
	return z.bitwise(x, func(a, b uint32) uint32 { return a | b })
}

// XorAssign sets z to z ^ x and returns z.
func (z *Int) XorAssign(x *Int) *Int {
	return z.bitwise(x, func(a, b uint32) uint32 { return a ^ b })
}

// AndNotAssign sets z to z &^ x and returns z.
func (z *Int) AndNotAssign(x *Int) *Int {
	return z.bitwise(x, func(a, b uint32) uint32 { return a &^ b })
}

func (x *Int) And(n *Int) *Int    { return x.Clone().AndAssign(n) }
func (x *Int) Or(n *Int) *Int     { return x.Clone().OrAssign(n) }
func (x *Int) Xor(n *Int) *Int    { return x.Clone().XorAssign(n) }
func (x *Int) AndNot(n *Int) *Int { return x.Clone().AndNotAssign(n) }

// Not returns the bitwise complement of x, which is -x - 1.
func (x *Int) Not() *Int {
	// The extra zero digit means the top digit of the inverted value is
	// all ones exactly when the result is negative.
	d := append(cloneDigits(x.abs()), 0)
	if x.neg {
		d = twosComplement(d)
	}
	for i := range d {
		d[i] = ^d[i]
	}

	v := &Int{}
	v.setFromTwos(d, d[len(d)-1] == allOnes)
	return v
}

// LshAssign sets z to z << n and returns z.
func (z *Int) LshAssign(n uint) *Int {
	neg := z.neg
	d := z.toTwos()

	whole, rem := n/digitBits, n%digitBits
	if whole > 0 {
		d = append(make([]uint32, int(whole), int(whole)+len(d)+1), d...)
	}

	if rem > 0 {
		var carry uint32
		for i := int(whole); i < len(d); i++ {
			next := d[i] >> (digitBits - rem)
			d[i] = d[i]<<rem | carry
			carry = next
		}
		// The bits shifted in above the old top digit are sign extension:
		carry |= signWord(neg) << rem
		d = append(d, carry)
	}

	z.setFromTwos(d, neg)
	return z
}

// RshAssign sets z to z >> n and returns z. This is an arithmetic shift:
// the bits shifted in at the top are sign extension, so negative values round
// towards negative infinity. A shift that drops every digit of z always
// yields 0, whatever the sign; this differs from big.Int.Rsh, which gives -1
// for negative values.
func (z *Int) RshAssign(n uint) *Int {
	whole, rem := n/digitBits, n%digitBits
	if whole >= uint(len(z.abs())) {
		z.setZero()
		return z
	}

	neg := z.neg
	d := z.toTwos()
	d = d[whole:]

	if rem > 0 {
		carry := signWord(neg) << (digitBits - rem)
		for i := len(d) - 1; i >= 0; i-- {
			next := d[i] << (digitBits - rem)
			d[i] = d[i]>>rem | carry
			carry = next
		}
	}

	z.setFromTwos(d, neg)
	return z
}

func (x *Int) Lsh(n uint) *Int { return x.Clone().LshAssign(n) }
func (x *Int) Rsh(n uint) *Int { return x.Clone().RshAssign(n) }
