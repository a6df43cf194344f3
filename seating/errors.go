package seating

import "errors"

var (
	// ErrBadSymbol indicates ParseRow met a character it cannot map to a seat.
	ErrBadSymbol = errors.New("seating: unrecognized seat symbol")
)
