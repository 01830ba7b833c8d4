package booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/odudar/skybook/internal/domain"
	"github.com/odudar/skybook/internal/uow"
)

type mockFlightStore struct {
	mock.Mock
}

func (m *mockFlightStore) GetByID(ctx context.Context, id int64) (*domain.FlightDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightDetails), args.Error(1)
}

func (m *mockFlightStore) GetSeat(ctx context.Context, seatID int64) (*domain.Seat, error) {
	args := m.Called(ctx, seatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seat), args.Error(1)
}

type mockPassengerStore struct {
	mock.Mock
}

func (m *mockPassengerStore) GetByEmail(ctx context.Context, email string) (*domain.Passenger, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *mockPassengerStore) Create(ctx context.Context, p domain.Passenger) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

type mockReservationStore struct {
	mock.Mock
}

func (m *mockReservationStore) Create(ctx context.Context, res domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, res)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *mockReservationStore) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *mockReservationStore) ReferenceExists(ctx context.Context, ref string) (bool, error) {
	args := m.Called(ctx, ref)
	return args.Bool(0), args.Error(1)
}

func (m *mockReservationStore) SetStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockReservationStore) Cancel(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeTxStore hands the test's repos to the transaction body and fires
// after-commit hooks only when the body succeeds, mirroring the real
// transaction wrapper.
type fakeTxStore struct {
	repos Repos
}

func (s *fakeTxStore) InTx(
	ctx context.Context,
	fn func(ctx context.Context, r Repos, after func(uow.AfterCommit)) error,
) error {
	var hooks []uow.AfterCommit

	if err := fn(ctx, s.repos, func(h uow.AfterCommit) { hooks = append(hooks, h) }); err != nil {
		return err
	}

	for _, h := range hooks {
		h(ctx)
	}
	return nil
}

// recordingPublisher captures flight-changed announcements that made
// it past a commit.
type recordingPublisher struct {
	flightIDs []int64
}

func (p *recordingPublisher) PublishFlightChanged(_ context.Context, flightID int64) error {
	p.flightIDs = append(p.flightIDs, flightID)
	return nil
}
