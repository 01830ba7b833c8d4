package query

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/odudar/skybook/internal/domain"
	"github.com/odudar/skybook/internal/repository"
	postgresrepo "github.com/odudar/skybook/internal/repository/postgres"
)

// Service serves the read side: flight search, seat maps and
// reservation lookups. It never writes.
type Service struct {
	store *postgresrepo.Store
}

func New(store *postgresrepo.Store) *Service {
	return &Service{store: store}
}

type SearchInput struct {
	Origin      string
	Destination string
	Day         time.Time
	CabinClass  domain.CabinClass
}

func (in SearchInput) validate() error {
	origin := strings.TrimSpace(in.Origin)
	destination := strings.TrimSpace(in.Destination)

	if origin == "" {
		return &ValidationError{Field: "origin", Reason: "required"}
	}
	if destination == "" {
		return &ValidationError{Field: "destination", Reason: "required"}
	}
	if strings.EqualFold(origin, destination) {
		return &ValidationError{Field: "destination", Reason: "must differ from origin"}
	}
	if in.Day.IsZero() {
		return &ValidationError{Field: "date", Reason: "required"}
	}
	if in.CabinClass != "" && !in.CabinClass.Valid() {
		return &ValidationError{Field: "cabin_class", Reason: "must be business or economy"}
	}

	return nil
}

// SearchFlights finds bookable flights for a route and day. An empty
// cabin class matches any availability; a set one narrows results to
// flights with at least one free seat of that class.
//
// Returns:
//   - []domain.FlightDetails: matching flights, possibly empty.
//   - error: *ValidationError on malformed input.
func (s *Service) SearchFlights(ctx context.Context, in SearchInput) ([]domain.FlightDetails, error) {
	const op = "service.query.SearchFlights"

	if err := in.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	flights, err := s.store.Flights().Search(ctx,
		strings.TrimSpace(in.Origin),
		strings.TrimSpace(in.Destination),
		in.Day,
		in.CabinClass,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return flights, nil
}

// GetFlight returns one flight with endpoint and aircraft details.
//
// Returns:
//   - error: ErrFlightNotFound if the flight does not exist.
func (s *Service) GetFlight(ctx context.Context, id int64) (*domain.FlightDetails, error) {
	const op = "service.query.GetFlight"

	fd, err := s.store.Flights().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrFlightNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return fd, nil
}

// SeatAvailability returns the full seat map of a flight, every seat of
// the aircraft with its occupancy on that flight.
//
// Returns:
//   - error: ErrFlightNotFound if the flight does not exist.
func (s *Service) SeatAvailability(ctx context.Context, flightID int64) ([]domain.SeatAvailability, error) {
	const op = "service.query.SeatAvailability"

	if _, err := s.store.Flights().GetByID(ctx, flightID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrFlightNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	seats, err := s.store.Flights().SeatMap(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return seats, nil
}

// ListAirports lists all airports, ordered by city.
func (s *Service) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	const op = "service.query.ListAirports"

	airports, err := s.store.Flights().ListAirports(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return airports, nil
}

// ReservationByReference looks up a reservation by its booking
// reference, case-insensitively.
//
// Returns:
//   - error: ErrReservationNotFound if no reservation has this reference.
func (s *Service) ReservationByReference(ctx context.Context, ref string) (*domain.ReservationDetails, error) {
	const op = "service.query.ReservationByReference"

	ref = strings.ToUpper(strings.TrimSpace(ref))
	if ref == "" {
		return nil, fmt.Errorf("%s: %w", op, &ValidationError{Field: "reference", Reason: "required"})
	}

	rd, err := s.store.Reservations().GetByReference(ctx, ref)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrReservationNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rd, nil
}

// PassengerReservations lists a passenger's reservations by email,
// most recent departure first. An unknown email yields an empty list,
// not an error, so the endpoint does not leak which emails exist.
func (s *Service) PassengerReservations(ctx context.Context, email string) ([]domain.ReservationDetails, error) {
	const op = "service.query.PassengerReservations"

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%s: %w", op, &ValidationError{Field: "email", Reason: "required"})
	}

	out, err := s.store.Reservations().ListByPassengerEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
