package num

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned by IntFromString (and the text/JSON
	// decoders built on it) for an empty string, a lone sign, or any character
	// outside '0'-'9' after the optional sign.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero is returned by CheckedQuoRem, and used as the panic
	// value by every other division and remainder operation, when the
	// divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
)
