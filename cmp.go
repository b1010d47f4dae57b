package num

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Int) Cmp(y *Int) int {
	xz, yz := x.IsZero(), y.IsZero()
	switch {
	case xz && yz:
		return 0
	case x.neg != y.neg:
		if x.neg {
			return -1
		}
		return 1
	}

	c := cmpDigits(x.abs(), y.abs())
	if x.neg {
		return -c
	}
	return c
}

func (x *Int) Equal(y *Int) bool            { return x.Cmp(y) == 0 }
func (x *Int) NotEqual(y *Int) bool         { return x.Cmp(y) != 0 }
func (x *Int) GreaterThan(y *Int) bool      { return x.Cmp(y) > 0 }
func (x *Int) GreaterOrEqualTo(y *Int) bool { return x.Cmp(y) >= 0 }
func (x *Int) LessThan(y *Int) bool         { return x.Cmp(y) < 0 }
func (x *Int) LessOrEqualTo(y *Int) bool    { return x.Cmp(y) <= 0 }

// EqualInt64 reports whether x is equal to the int64 value n.
func (x *Int) EqualInt64(n int64) bool {
	return x.IsInt64() && x.AsInt64() == n
}
