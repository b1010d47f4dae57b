package num

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// IntFromString parses a base 10 integer with an optional leading '+' or '-'.
// Anything else, including surrounding whitespace, an empty string or a sign
// with no digits, returns an error wrapping ErrInvalidArgument.
func IntFromString(s string) (*Int, error) {
	str := s
	neg := false
	if len(str) > 0 && (str[0] == '+' || str[0] == '-') {
		neg = str[0] == '-'
		str = str[1:]
	}
	if len(str) == 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "num: int string %q", s)
	}

	// The first chunk takes the odd digits so every chunk after it is
	// exactly chunkDigits long.
	chunk := len(str) % chunkDigits
	if chunk == 0 {
		chunk = chunkDigits
	}

	digits := make([]uint32, 1, len(str)/chunkDigits+2)
	for i := 0; i < len(str); i, chunk = i+chunk, chunkDigits {
		var coef uint32
		for _, c := range []byte(str[i : i+chunk]) {
			if c < '0' || c > '9' {
				return nil, errors.Wrapf(ErrInvalidArgument, "num: int string %q", s)
			}
			coef = coef*10 + uint32(c-'0')
		}
		digits = mulAddDigit(digits, chunkBase, coef)
	}

	z := &Int{digits: digits, neg: neg}
	z.trim()
	return z, nil
}

// MustIntFromString is like IntFromString but panics if s can not be parsed.
// It is intended for constants and tests.
func MustIntFromString(s string) *Int {
	v, err := IntFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}
	if x.IsZero() {
		return "0"
	}

	// Chunks come out least significant first:
	var chunks []uint32
	q := x.Abs()
	for !q.IsZero() {
		var r *Int
		q, r, _ = shortDivision(q, chunkBase, false)
		chunks = append(chunks, r.abs()[0])
	}

	var sb strings.Builder
	sb.Grow(len(chunks)*chunkDigits + 1)
	if x.neg {
		sb.WriteByte('-')
	}

	top := len(chunks) - 1
	sb.WriteString(strconv.FormatUint(uint64(chunks[top]), 10))

	var buf [chunkDigits]byte
	for i := top - 1; i >= 0; i-- {
		c := chunks[i]
		for j := chunkDigits - 1; j >= 0; j-- {
			buf[j] = byte('0' + c%10)
			c /= 10
		}
		sb.Write(buf[:])
	}
	return sb.String()
}

// Format implements fmt.Formatter. Only the decimal verbs 'd', 's' and 'v'
// are supported, with the '+', '-' and '0' flags and a width.
func (x *Int) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(num.Int=%s)", c, x.String())
		return
	}

	if x == nil {
		io.WriteString(s, "<nil>")
		return
	}

	digits := x.String()
	sign := ""
	if x.neg {
		sign, digits = "-", digits[1:]
	} else if s.Flag('+') {
		sign = "+"
	}

	pad := 0
	if w, ok := s.Width(); ok {
		pad = w - len(sign) - len(digits)
	}
	if pad <= 0 {
		io.WriteString(s, sign+digits)
		return
	}

	switch {
	case s.Flag('-'):
		io.WriteString(s, sign+digits+strings.Repeat(" ", pad))
	case s.Flag('0'):
		io.WriteString(s, sign+strings.Repeat("0", pad)+digits)
	default:
		io.WriteString(s, strings.Repeat(" ", pad)+sign+digits)
	}
}

func (x *Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (z *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	z.digits, z.neg = v.digits, v.neg
	return nil
}

func (x *Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted or bare base 10 integer. A JSON null leaves
// z unchanged.
func (z *Int) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return errors.Wrapf(ErrInvalidArgument, "num: int invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	z.digits, z.neg = v.digits, v.neg
	return nil
}
