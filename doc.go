/*
Package num provides an arbitrary-precision signed integer type (Int), stored
as a sign and a magnitude of base 2^32 digits.

Int is a mutable pointer type. Methods ending in 'Assign' modify their
receiver and return it; the others leave their operands untouched and return
a new Int:

	x := IntFrom64(math.MaxInt64)
	x.MulAssign(x).IncAssign()
	fmt.Println(x.Quo(IntFrom64(3)))
	// Output: 28356863910078205282465635928077500416

Division truncates towards zero, like Go. Dividing by zero panics, the same
way Go's integer division does; use CheckedQuoRem to get an error instead.

Bitwise operations and shifts treat negative values as if they were stored
in two's complement with infinite sign extension, so they agree with Go's
built-in signed integers (and with big.Int).

Int can be created from a variety of sources:

	IntFrom64(v int64) *Int
	IntFromU64(v uint64) *Int
	IntFromRaw(neg bool, digits []uint32) *Int
	IntFromString(s string) (*Int, error)
	IntFromBigInt(v *big.Int) *Int

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num
