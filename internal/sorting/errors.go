package sorting

import "errors"

// ErrInvalidArrayInput is returned when an array cannot be used as engine input:
// empty text, a non-numeric token, or no values at all.
var ErrInvalidArrayInput = errors.New("invalid array input")
