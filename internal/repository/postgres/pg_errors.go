package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/odudar/skybook/internal/repository"
)

// Constraint names declared by the provisioning schema. A unique
// violation on one of these is an expected outcome of the booking flow,
// not a fault, and each maps to its own sentinel.
const (
	constraintActiveSeat       = "reservations_active_seat_key"
	constraintBookingReference = "reservations_booking_reference_key"
	constraintPassport         = "passengers_passport_number_key"
)

func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01":
			return true
		}
	}

	return false
}

func translateDBErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}

	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		// unique_violation
		if pge.Code == "23505" {
			switch pge.ConstraintName {
			case constraintActiveSeat:
				return repository.ErrSeatTaken
			case constraintBookingReference:
				return repository.ErrDuplicateReference
			case constraintPassport:
				return repository.ErrPassengerConflict
			}
			return repository.ErrConflict
		}
	}

	return err
}
