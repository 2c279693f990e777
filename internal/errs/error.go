package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict with existing data")

	ErrTooManyGuests     = errors.New("guest_amount exceeds the seats of the table")
	ErrTooFewGuests      = errors.New("guest_amount is below the minimum required for the table")
	ErrInvalidTimeWindow = errors.New("reserved_from must be before reserved_until")
	ErrOverlap           = errors.New("reservation overlaps an existing reservation on the table")
)
