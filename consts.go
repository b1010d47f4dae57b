package num

const (
	maxInt64 = 1<<63 - 1

	// digitBits is the width of a single digit of the magnitude.
	digitBits = 32
	digitMask = 1<<digitBits - 1
	allOnes   = uint32(digitMask)

	// Decimal strings are parsed and rendered in chunks of chunkDigits
	// decimal digits; chunkBase (10^9) is the largest power of ten that fits
	// in a single digit.
	chunkDigits = 9
	chunkBase   = 1000000000

	intSize = 32 << (^uint(0) >> 63)
)

// zeroDigits is the magnitude of any Int with no digits. It must never be
// written to.
var zeroDigits = []uint32{0}
