package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/odudar/skybook/internal/domain"
	"github.com/odudar/skybook/internal/repository"
	redisrepo "github.com/odudar/skybook/internal/repository/redis"
	"github.com/odudar/skybook/internal/uow"
)

type Config struct {
	// BusinessMultiplier scales the base price for business class.
	BusinessMultiplier float64
	// MaxReferenceAttempts bounds booking-reference regeneration before
	// the whole reserve call fails.
	MaxReferenceAttempts int
}

// Service is the only component that creates or mutates reservations.
type Service struct {
	txs     TxStore
	pubsub  FlightPublisher
	limiter *redisrepo.SlidingWindowLimiter
	cfg     Config
}

func New(
	txs TxStore,
	pubsub FlightPublisher,
	limiter *redisrepo.SlidingWindowLimiter,
	cfg Config,
) *Service {
	if cfg.BusinessMultiplier < 1 {
		cfg.BusinessMultiplier = 1.5
	}

	if cfg.MaxReferenceAttempts <= 0 {
		cfg.MaxReferenceAttempts = 5
	}

	return &Service{
		txs:     txs,
		pubsub:  pubsub,
		limiter: limiter,
		cfg:     cfg,
	}
}

type PassengerInput struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	DateOfBirth    time.Time
	PassportNumber string
	Nationality    string
}

type ReserveInput struct {
	FlightID   int64
	SeatID     int64
	CabinClass domain.CabinClass
	Passenger  PassengerInput
}

func (in ReserveInput) validate() error {
	if in.FlightID <= 0 {
		return &ValidationError{Field: "flight_id", Reason: "must be positive"}
	}
	if in.SeatID <= 0 {
		return &ValidationError{Field: "seat_id", Reason: "must be positive"}
	}
	if !in.CabinClass.Valid() {
		return &ValidationError{Field: "cabin_class", Reason: "must be business or economy"}
	}
	if strings.TrimSpace(in.Passenger.FirstName) == "" {
		return &ValidationError{Field: "first_name", Reason: "required"}
	}
	if strings.TrimSpace(in.Passenger.LastName) == "" {
		return &ValidationError{Field: "last_name", Reason: "required"}
	}
	email := strings.TrimSpace(in.Passenger.Email)
	if email == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	if !strings.Contains(email, "@") {
		return &ValidationError{Field: "email", Reason: "not an email address"}
	}
	if strings.TrimSpace(in.Passenger.PassportNumber) == "" {
		return &ValidationError{Field: "passport_number", Reason: "required"}
	}
	return nil
}

// Reserve allocates a seat on a flight for a passenger and records a
// confirmed reservation with a unique booking reference. The seat
// check and the insert run in one transaction; the partial unique
// index on active (flight, seat) pairs is the actual occupancy guard,
// so a concurrent booking of the same seat surfaces as
// ErrSeatUnavailable rather than a double booking.
//
// Returns:
//   - *domain.Reservation: the created reservation.
//   - error: *ValidationError on malformed input, before any store call.
//   - error: ErrFlightNotFound, ErrSeatNotFound.
//   - error: ErrFlightNotBookable if the flight has departed, arrived
//     or been cancelled.
//   - error: ErrSeatNotOnFlight, ErrCabinClassMismatch.
//   - error: ErrPassengerConflict if the passport number belongs to a
//     passenger with a different email.
//   - error: ErrSeatUnavailable on an occupancy conflict.
func (s *Service) Reserve(ctx context.Context, in ReserveInput) (*domain.Reservation, error) {
	const op = "service.booking.Reserve"

	if err := in.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var created *domain.Reservation

	err := s.txs.InTx(ctx, func(
		ctx context.Context,
		r Repos,
		after func(uow.AfterCommit),
	) error {
		flight, err := r.Flights.GetByID(ctx, in.FlightID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrFlightNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if !flight.Status.Bookable() {
			return fmt.Errorf("%s: %w", op, ErrFlightNotBookable)
		}

		seat, err := r.Flights.GetSeat(ctx, in.SeatID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrSeatNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if seat.AircraftID != flight.AircraftID {
			return fmt.Errorf("%s: %w", op, ErrSeatNotOnFlight)
		}

		if seat.CabinClass != in.CabinClass {
			return fmt.Errorf("%s: %w", op, ErrCabinClassMismatch)
		}

		passengerID, err := s.resolvePassenger(ctx, r.Passengers, in.Passenger)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		price := TicketPrice(flight.BasePrice, in.CabinClass, s.cfg.BusinessMultiplier)

		ref, err := s.uniqueReference(ctx, r.Reservations)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		seatID := in.SeatID
		res, err := r.Reservations.Create(ctx, domain.Reservation{
			PassengerID:      passengerID,
			FlightID:         in.FlightID,
			SeatID:           &seatID,
			BookingReference: ref,
			TicketPrice:      price,
			Status:           domain.ReservationConfirmed,
			PaymentStatus:    domain.PaymentPending,
		})
		if err != nil {
			if errors.Is(err, repository.ErrSeatTaken) {
				return fmt.Errorf("%s: %w", op, ErrSeatUnavailable)
			}
			if errors.Is(err, repository.ErrDuplicateReference) {
				// lost the race after the existence check; vanishingly
				// rare with an 8-char code
				return fmt.Errorf("%s: %w", op, ErrReferenceExhausted)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		created = res

		after(func(ctx context.Context) {
			s.publishFlightChanged(ctx, in.FlightID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Cancel transitions a reservation to cancelled and refunds its
// payment if it was paid. Cancelling an already-cancelled reservation
// is a no-op. The freed seat becomes bookable again on the same
// flight.
//
// Returns:
//   - error: ErrReservationNotFound if the reservation does not exist.
//   - error: *InvalidTransitionError from checked_in or completed.
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Reservation, error) {
	const op = "service.booking.Cancel"

	var out *domain.Reservation

	err := s.txs.InTx(ctx, func(
		ctx context.Context,
		r Repos,
		after func(uow.AfterCommit),
	) error {
		res, err := r.Reservations.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrReservationNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if res.Status == domain.ReservationCancelled {
			out = res
			return nil
		}

		if !CanTransition(res.Status, domain.ReservationCancelled) {
			return fmt.Errorf("%s: %w", op, &InvalidTransitionError{
				Current:   res.Status,
				Requested: domain.ReservationCancelled,
			})
		}

		if err := r.Reservations.Cancel(ctx, id); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		res.Status = domain.ReservationCancelled
		if res.PaymentStatus == domain.PaymentPaid {
			res.PaymentStatus = domain.PaymentRefunded
		}
		out = res

		after(func(ctx context.Context) {
			s.publishFlightChanged(ctx, res.FlightID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// CheckIn moves a confirmed reservation to checked_in. Only allowed
// while the flight is still scheduled or boarding.
//
// Returns:
//   - error: ErrReservationNotFound if the reservation does not exist.
//   - error: *InvalidTransitionError otherwise.
func (s *Service) CheckIn(ctx context.Context, id int64) (*domain.Reservation, error) {
	const op = "service.booking.CheckIn"

	var out *domain.Reservation

	err := s.txs.InTx(ctx, func(
		ctx context.Context,
		r Repos,
		after func(uow.AfterCommit),
	) error {
		res, err := r.Reservations.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrReservationNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if !CanTransition(res.Status, domain.ReservationCheckedIn) {
			return fmt.Errorf("%s: %w", op, &InvalidTransitionError{
				Current:   res.Status,
				Requested: domain.ReservationCheckedIn,
			})
		}

		flight, err := r.Flights.GetByID(ctx, res.FlightID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if !flight.Status.Bookable() {
			return fmt.Errorf("%s: %w", op, &InvalidTransitionError{
				Current:   res.Status,
				Requested: domain.ReservationCheckedIn,
				Reason:    fmt.Sprintf("flight is %s", flight.Status),
			})
		}

		if err := r.Reservations.SetStatus(ctx, id, domain.ReservationCheckedIn); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		res.Status = domain.ReservationCheckedIn
		out = res

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Complete moves a checked-in reservation to completed. Normally
// driven by the flight reaching arrived status.
//
// Returns:
//   - error: ErrReservationNotFound if the reservation does not exist.
//   - error: *InvalidTransitionError from any status but checked_in.
func (s *Service) Complete(ctx context.Context, id int64) (*domain.Reservation, error) {
	const op = "service.booking.Complete"

	var out *domain.Reservation

	err := s.txs.InTx(ctx, func(
		ctx context.Context,
		r Repos,
		after func(uow.AfterCommit),
	) error {
		res, err := r.Reservations.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrReservationNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if !CanTransition(res.Status, domain.ReservationCompleted) {
			return fmt.Errorf("%s: %w", op, &InvalidTransitionError{
				Current:   res.Status,
				Requested: domain.ReservationCompleted,
			})
		}

		if err := r.Reservations.SetStatus(ctx, id, domain.ReservationCompleted); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		res.Status = domain.ReservationCompleted
		out = res

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// RateLimit checks the reserve rate limit for a client key. A nil
// limiter allows everything.
func (s *Service) RateLimit(ctx context.Context, key string) (bool, time.Duration, error) {
	if s.limiter == nil || key == "" {
		return true, 0, nil
	}

	ok, _, retry, err := s.limiter.Allow(ctx, key)
	if err != nil {
		return false, 0, fmt.Errorf("service.booking.RateLimit: %w", err)
	}

	return ok, retry, nil
}

func (s *Service) publishFlightChanged(ctx context.Context, flightID int64) {
	if s.pubsub == nil {
		return
	}
	_ = s.pubsub.PublishFlightChanged(ctx, flightID)
}

// resolvePassenger finds the passenger by email or creates one.
// A passport number already registered under a different email is a
// distinct-passenger conflict and fails closed.
func (s *Service) resolvePassenger(ctx context.Context, passengers PassengerStore, in PassengerInput) (int64, error) {
	p, err := passengers.GetByEmail(ctx, in.Email)
	if err == nil {
		return p.ID, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return 0, err
	}

	id, err := passengers.Create(ctx, domain.Passenger{
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Email:          strings.TrimSpace(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		DateOfBirth:    in.DateOfBirth,
		PassportNumber: strings.TrimSpace(in.PassportNumber),
		Nationality:    strings.TrimSpace(in.Nationality),
	})
	if err != nil {
		if errors.Is(err, repository.ErrPassengerConflict) {
			return 0, ErrPassengerConflict
		}
		return 0, err
	}

	return id, nil
}

// uniqueReference generates a booking reference not yet present in the
// store, bounded by MaxReferenceAttempts. The unique constraint on the
// insert remains the final guard against a concurrent collision.
func (s *Service) uniqueReference(ctx context.Context, reservations ReservationStore) (string, error) {
	for i := 0; i < s.cfg.MaxReferenceAttempts; i++ {
		ref, err := NewReference()
		if err != nil {
			return "", err
		}

		exists, err := reservations.ReferenceExists(ctx, ref)
		if err != nil {
			return "", err
		}
		if !exists {
			return ref, nil
		}
	}

	return "", ErrReferenceExhausted
}
