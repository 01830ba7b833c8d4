package booking

import "github.com/odudar/skybook/internal/domain"

// Legal reservation status transitions. Cancelled and completed are
// terminal; nothing skips confirmed.
var transitions = map[domain.ReservationStatus][]domain.ReservationStatus{
	domain.ReservationConfirmed: {
		domain.ReservationCancelled,
		domain.ReservationCheckedIn,
	},
	domain.ReservationCheckedIn: {
		domain.ReservationCompleted,
	},
}

// CanTransition reports whether the state machine allows moving a
// reservation from one status to another.
func CanTransition(from, to domain.ReservationStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
