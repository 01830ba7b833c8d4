package booking

import (
	"context"

	"github.com/odudar/skybook/internal/domain"
	postgresrepo "github.com/odudar/skybook/internal/repository/postgres"
	"github.com/odudar/skybook/internal/uow"
)

// FlightStore is the slice of the flight repository the booking flow
// reads.
type FlightStore interface {
	GetByID(ctx context.Context, id int64) (*domain.FlightDetails, error)
	GetSeat(ctx context.Context, seatID int64) (*domain.Seat, error)
}

type PassengerStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Passenger, error)
	Create(ctx context.Context, p domain.Passenger) (int64, error)
}

type ReservationStore interface {
	Create(ctx context.Context, res domain.Reservation) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ReferenceExists(ctx context.Context, ref string) (bool, error)
	SetStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64) error
}

// Repos bundles the transaction-scoped repositories handed to a booking
// transaction body. Every call on them runs in the same transaction.
type Repos struct {
	Flights      FlightStore
	Passengers   PassengerStore
	Reservations ReservationStore
}

// TxStore runs a booking transaction. After-commit hooks registered by
// fn fire only once the transaction has committed.
type TxStore interface {
	InTx(ctx context.Context, fn func(ctx context.Context, r Repos, after func(uow.AfterCommit)) error) error
}

// FlightPublisher announces committed seat-map changes.
type FlightPublisher interface {
	PublishFlightChanged(ctx context.Context, flightID int64) error
}

type pgTxStore struct {
	store *postgresrepo.Store
	uow   *uow.UoW
}

// NewTxStore wraps the postgres store in the booking transaction seam.
func NewTxStore(store *postgresrepo.Store) TxStore {
	return &pgTxStore{store: store, uow: uow.NewUoW(store)}
}

func (s *pgTxStore) InTx(
	ctx context.Context,
	fn func(ctx context.Context, r Repos, after func(uow.AfterCommit)) error,
) error {
	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		return fn(ctx, Repos{
			Flights:      s.store.Flights().With(tx),
			Passengers:   s.store.Passengers().With(tx),
			Reservations: s.store.Reservations().With(tx),
		}, after)
	})
}
