package num

import (
	"math/big"
	"math/bits"
)

// Int is an arbitrary-precision signed integer. The zero value is 0.
//
// Methods ending in 'Assign' (and IncAssign, DecAssign, PostInc, PostDec)
// modify the receiver in place and return it, so they can be chained. All
// other methods leave their receiver and arguments untouched and return a
// new Int.
//
// An Int must not be copied by value; use Clone.
type Int struct {
	// digits is the magnitude, little-endian in base 2^32. It is never empty
	// once the Int has been through trim, and the top digit is only zero when
	// the value is zero.
	digits []uint32

	// neg is false for zero.
	neg bool
}

func IntFrom64(v int64) *Int {
	u := uint64(v)
	if v < 0 {
		// Unsigned negation so that math.MinInt64 doesn't overflow:
		u = ^u + 1
	}
	return intFromMagnitude64(v < 0, u)
}

func IntFrom32(v int32) *Int { return IntFrom64(int64(v)) }
func IntFrom16(v int16) *Int { return IntFrom64(int64(v)) }
func IntFrom8(v int8) *Int   { return IntFrom64(int64(v)) }
func IntFromInt(v int) *Int  { return IntFrom64(int64(v)) }

func IntFromU64(v uint64) *Int { return intFromMagnitude64(false, v) }
func IntFromU32(v uint32) *Int { return intFromMagnitude64(false, uint64(v)) }
func IntFromU16(v uint16) *Int { return intFromMagnitude64(false, uint64(v)) }
func IntFromU8(v uint8) *Int   { return intFromMagnitude64(false, uint64(v)) }
func IntFromUint(v uint) *Int  { return intFromMagnitude64(false, uint64(v)) }

func intFromMagnitude64(neg bool, u uint64) *Int {
	z := &Int{
		digits: []uint32{uint32(u), uint32(u >> digitBits)},
		neg:    neg,
	}
	z.trim()
	return z
}

// IntFromRaw is the complement to Int.Raw(); it creates an Int from a sign and
// a little-endian sequence of base 2^32 digits. The digits are copied.
func IntFromRaw(neg bool, digits []uint32) *Int {
	z := &Int{digits: cloneDigits(digits), neg: neg}
	z.trim()
	return z
}

// IntFromBigInt creates an Int from a big.Int. The conversion is always
// accurate.
func IntFromBigInt(v *big.Int) *Int {
	words := v.Bits()

	var digits []uint32

	switch intSize {
	case 64:
		digits = make([]uint32, 0, len(words)*2)
		for _, w := range words {
			digits = append(digits, uint32(w), uint32(uint64(w)>>digitBits))
		}

	case 32:
		digits = make([]uint32, 0, len(words))
		for _, w := range words {
			digits = append(digits, uint32(w))
		}

	default:
		panic("num: unsupported bit size")
	}

	z := &Int{digits: digits, neg: v.Sign() < 0}
	z.trim()
	return z
}

// abs returns the magnitude for reading only. The result must not be
// modified; use own() to get a writable magnitude.
func (x *Int) abs() []uint32 {
	if len(x.digits) == 0 {
		return zeroDigits
	}
	return x.digits
}

// own returns the receiver's own digit buffer for in-place modification.
func (z *Int) own() []uint32 {
	if len(z.digits) == 0 {
		z.digits = []uint32{0}
	}
	return z.digits
}

// trim restores the canonical form after a mutation.
func (z *Int) trim() {
	z.digits = trimDigits(z.digits)
	if len(z.digits) == 1 && z.digits[0] == 0 {
		z.neg = false
	}
}

func (z *Int) setZero() {
	z.digits = append(z.digits[:0], 0)
	z.neg = false
}

// Raw returns a copy of the sign and the little-endian base 2^32 digits of the
// magnitude. See IntFromRaw() for the counterpart.
func (x *Int) Raw() (neg bool, digits []uint32) {
	return x.neg, cloneDigits(x.abs())
}

// Clone returns a deep copy of x. It is the equivalent of unary '+'.
func (x *Int) Clone() *Int {
	return &Int{digits: cloneDigits(x.abs()), neg: x.neg}
}

// Set sets z to the value of x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.digits = append(z.digits[:0], x.abs()...)
		z.neg = x.neg
	}
	return z
}

func (x *Int) IsZero() bool { return isZeroDigits(x.digits) }

func (x *Int) Sign() int {
	if x.IsZero() {
		return 0
	} else if x.neg {
		return -1
	}
	return 1
}

// BitLen returns the length of the absolute value of x in bits. The bit
// length of 0 is 0.
func (x *Int) BitLen() int {
	d := x.abs()
	top := len(d) - 1
	return top*digitBits + bits.Len32(d[top])
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (x *Int) IntoBigInt(b *big.Int) {
	d := x.abs()
	words := b.Bits()[:0]

	switch intSize {
	case 64:
		for i := 0; i < len(d); i += 2 {
			w := uint64(d[i])
			if i+1 < len(d) {
				w |= uint64(d[i+1]) << digitBits
			}
			words = append(words, big.Word(w))
		}

	case 32:
		for _, v := range d {
			words = append(words, big.Word(v))
		}

	default:
		panic("num: unsupported bit size")
	}

	b.SetBits(words)
	if x.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (x *Int) AsBigInt() *big.Int {
	var b big.Int
	x.IntoBigInt(&b)
	return &b
}

// low64 returns the least significant 64 bits of the magnitude.
func (x *Int) low64() uint64 {
	d := x.abs()
	lo := uint64(d[0])
	if len(d) > 1 {
		lo |= uint64(d[1]) << digitBits
	}
	return lo
}

// AsInt64 truncates the Int to fit in an int64, keeping the low 64 bits of its
// two's complement representation. Values outside the range will wrap. See
// IsInt64() if you want to check before you convert.
func (x *Int) AsInt64() int64 {
	lo := x.low64()
	if x.neg {
		return int64(^lo + 1)
	}
	return int64(lo)
}

// IsInt64 reports whether x can be represented as an int64.
func (x *Int) IsInt64() bool {
	if len(x.abs()) > 2 {
		return false
	}
	lo := x.low64()
	if x.neg {
		return lo <= 1<<63
	}
	return lo <= maxInt64
}

// AsUint64 truncates the Int to fit in a uint64, keeping the low 64 bits of
// its two's complement representation. See IsUint64() if you want to check
// before you convert.
func (x *Int) AsUint64() uint64 {
	lo := x.low64()
	if x.neg {
		return ^lo + 1
	}
	return lo
}

// IsUint64 reports whether x can be represented as a uint64.
func (x *Int) IsUint64() bool {
	return !x.neg && len(x.abs()) <= 2
}

// subMagnitude sets z to sign(z) * (|z| - x), flipping the sign of z if x is
// the larger magnitude.
func (z *Int) subMagnitude(x []uint32) {
	zd := z.own()
	switch cmpDigits(zd, x) {
	case 0:
		z.setZero()
	case 1:
		z.digits = subDigits(zd, x)
	default:
		z.digits = subDigits(cloneDigits(x), zd)
		z.neg = !z.neg
	}
}

// AddAssign sets z to z + x and returns z.
func (z *Int) AddAssign(x *Int) *Int {
	switch {
	case !z.neg && !x.neg: // |z| + |x|
		z.digits = addDigits(z.own(), x.abs())
	case z.neg && x.neg: // -(|z| + |x|)
		z.digits = addDigits(z.own(), x.abs())
	case !z.neg && x.neg: // |z| - |x|
		z.subMagnitude(x.abs())
	default: // -(|z| - |x|)
		z.subMagnitude(x.abs())
	}
	z.trim()
	return z
}

// SubAssign sets z to z - x and returns z.
func (z *Int) SubAssign(x *Int) *Int {
	switch {
	case !z.neg && !x.neg: // |z| - |x|
		z.subMagnitude(x.abs())
	case z.neg && x.neg: // -(|z| - |x|)
		z.subMagnitude(x.abs())
	case !z.neg && x.neg: // |z| + |x|
		z.digits = addDigits(z.own(), x.abs())
	default: // -(|z| + |x|)
		z.digits = addDigits(z.own(), x.abs())
	}
	z.trim()
	return z
}

// MulAssign sets z to z * x and returns z.
func (z *Int) MulAssign(x *Int) *Int {
	neg := z.neg != x.neg
	z.digits = mulDigits(z.abs(), x.abs())
	z.neg = neg
	z.trim()
	return z
}

// IncAssign increments z in place (prefix '++') and returns z.
func (z *Int) IncAssign() *Int {
	if z.neg {
		z.digits = decDigits(z.own())
	} else {
		z.digits = incDigits(z.own())
	}
	z.trim()
	return z
}

// DecAssign decrements z in place (prefix '--') and returns z.
func (z *Int) DecAssign() *Int {
	if z.neg || z.IsZero() {
		z.digits = incDigits(z.own())
		z.neg = true
	} else {
		z.digits = decDigits(z.own())
	}
	z.trim()
	return z
}

// PostInc increments z in place and returns its previous value (postfix
// '++').
func (z *Int) PostInc() (old *Int) {
	old = z.Clone()
	z.IncAssign()
	return old
}

// PostDec decrements z in place and returns its previous value (postfix
// '--').
func (z *Int) PostDec() (old *Int) {
	old = z.Clone()
	z.DecAssign()
	return old
}

func (x *Int) Add(n *Int) *Int { return x.Clone().AddAssign(n) }
func (x *Int) Sub(n *Int) *Int { return x.Clone().SubAssign(n) }
func (x *Int) Mul(n *Int) *Int { return x.Clone().MulAssign(n) }
func (x *Int) Inc() *Int       { return x.Clone().IncAssign() }
func (x *Int) Dec() *Int       { return x.Clone().DecAssign() }

func (x *Int) Neg() *Int {
	v := x.Clone()
	if !v.IsZero() {
		v.neg = !v.neg
	}
	return v
}

func (x *Int) Abs() *Int {
	v := x.Clone()
	v.neg = false
	return v
}
