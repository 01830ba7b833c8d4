package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/odudar/skybook/internal/domain"
	"github.com/odudar/skybook/internal/repository"
	postgresrepo "github.com/odudar/skybook/internal/repository/postgres"
	redisrepo "github.com/odudar/skybook/internal/repository/redis"
	"github.com/odudar/skybook/internal/uow"
)

// Service carries the operational surface: flight oversight, manifests
// and dashboard stats. Every call is gated by the admin token at the
// transport layer.
type Service struct {
	store  *postgresrepo.Store
	pubsub *redisrepo.FlightsPubSub
	uow    *uow.UoW
	logger *slog.Logger
}

func New(store *postgresrepo.Store, pubsub *redisrepo.FlightsPubSub, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
		logger: logger,
	}
}

// ListFlights lists every flight with endpoint and occupancy details,
// most recent departure first.
func (s *Service) ListFlights(ctx context.Context) ([]domain.FlightDetails, error) {
	const op = "service.admin.ListFlights"

	flights, err := s.store.Admin().ListFlights(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return flights, nil
}

// UpdateFlightStatus moves a flight to a new status. Marking a flight
// arrived also completes its checked-in reservations, in the same
// transaction, so a crash between the two writes cannot leave the
// manifest half-finished.
//
// Returns:
//   - error: *InvalidStatusError on an unknown status.
//   - error: ErrFlightNotFound if the flight does not exist.
func (s *Service) UpdateFlightStatus(ctx context.Context, flightID int64, status domain.FlightStatus) error {
	const op = "service.admin.UpdateFlightStatus"

	if !status.Valid() {
		return fmt.Errorf("%s: %w", op, &InvalidStatusError{Status: status})
	}

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		if err := s.store.Admin().With(tx).UpdateFlightStatus(ctx, flightID, status); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrFlightNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if status == domain.FlightArrived {
			n, err := s.store.Reservations().With(tx).CompleteForFlight(ctx, flightID)
			if err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}

			if n > 0 {
				s.logger.Info("completed reservations on arrival",
					slog.Int64("flight_id", flightID),
					slog.Int64("count", n),
				)
			}
		}

		after(func(ctx context.Context) {
			_ = s.pubsub.PublishFlightChanged(ctx, flightID)
		})

		return nil
	})

	return err
}

// Manifest lists every reservation on a flight with passenger and seat
// details.
//
// Returns:
//   - error: ErrFlightNotFound if the flight does not exist.
func (s *Service) Manifest(ctx context.Context, flightID int64) ([]domain.ManifestEntry, error) {
	const op = "service.admin.Manifest"

	if _, err := s.store.Flights().GetByID(ctx, flightID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrFlightNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entries, err := s.store.Admin().Manifest(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return entries, nil
}

// Stats returns the dashboard counters: flights, passengers, active
// reservations and paid revenue.
func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	const op = "service.admin.Stats"

	st, err := s.store.Admin().Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return st, nil
}
