package booking

import (
	"errors"
	"fmt"

	"github.com/odudar/skybook/internal/domain"
)

var (
	ErrFlightNotFound      = errors.New("flight not found")
	ErrSeatNotFound        = errors.New("seat not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrFlightNotBookable   = errors.New("flight is not open for booking")
	ErrSeatNotOnFlight     = errors.New("seat does not belong to the flight's aircraft")
	ErrCabinClassMismatch  = errors.New("seat does not match the requested cabin class")
	ErrSeatUnavailable     = errors.New("seat is already taken on this flight")
	ErrPassengerConflict   = errors.New("passport number is registered to another passenger")
	ErrReferenceExhausted  = errors.New("could not generate a unique booking reference")
)

// ValidationError reports malformed input, detected before any store
// interaction.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidTransitionError reports a status change the reservation state
// machine forbids. Current carries the status the reservation actually
// has so the caller can refresh stale UI state.
type InvalidTransitionError struct {
	Current   domain.ReservationStatus
	Requested domain.ReservationStatus
	Reason    string
}

func (e *InvalidTransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot move reservation from %s to %s: %s", e.Current, e.Requested, e.Reason)
	}
	return fmt.Sprintf("cannot move reservation from %s to %s", e.Current, e.Requested)
}
