package query

import (
	"errors"
	"fmt"
)

var ErrFlightNotFound = errors.New("flight not found")
var ErrReservationNotFound = errors.New("reservation not found")

// ValidationError reports malformed search input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
