package booking

import (
	"context"
	"testing"

	"github.com/odudar/skybook/internal/domain"
	"github.com/odudar/skybook/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingMocks struct {
	flights      *mockFlightStore
	passengers   *mockPassengerStore
	reservations *mockReservationStore
	published    *recordingPublisher
}

func (m *bookingMocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.flights.AssertExpectations(t)
	m.passengers.AssertExpectations(t)
	m.reservations.AssertExpectations(t)
}

func newTestService(cfg Config) (*Service, *bookingMocks) {
	m := &bookingMocks{
		flights:      &mockFlightStore{},
		passengers:   &mockPassengerStore{},
		reservations: &mockReservationStore{},
		published:    &recordingPublisher{},
	}

	txs := &fakeTxStore{repos: Repos{
		Flights:      m.flights,
		Passengers:   m.passengers,
		Reservations: m.reservations,
	}}

	return New(txs, m.published, nil, cfg), m
}

func scheduledFlight() *domain.FlightDetails {
	return &domain.FlightDetails{Flight: domain.Flight{
		ID:         1,
		AircraftID: 7,
		BasePrice:  350.00,
		Status:     domain.FlightScheduled,
	}}
}

func economySeat() *domain.Seat {
	return &domain.Seat{
		ID:         10,
		AircraftID: 7,
		SeatNumber: "14C",
		CabinClass: domain.ClassEconomy,
	}
}

func validReserveInput() ReserveInput {
	return ReserveInput{
		FlightID:   1,
		SeatID:     10,
		CabinClass: domain.ClassEconomy,
		Passenger: PassengerInput{
			FirstName:      "John",
			LastName:       "Doe",
			Email:          "john.doe@email.com",
			PassportNumber: "P12345678",
		},
	}
}

func TestReserveInputValidate(t *testing.T) {
	t.Run("valid input passes", func(t *testing.T) {
		assert.NoError(t, validReserveInput().validate())
	})

	tests := []struct {
		name      string
		mutate    func(*ReserveInput)
		wantField string
	}{
		{"zero flight id", func(in *ReserveInput) { in.FlightID = 0 }, "flight_id"},
		{"negative seat id", func(in *ReserveInput) { in.SeatID = -1 }, "seat_id"},
		{"unknown cabin class", func(in *ReserveInput) { in.CabinClass = "first" }, "cabin_class"},
		{"blank first name", func(in *ReserveInput) { in.Passenger.FirstName = "  " }, "first_name"},
		{"missing last name", func(in *ReserveInput) { in.Passenger.LastName = "" }, "last_name"},
		{"missing email", func(in *ReserveInput) { in.Passenger.Email = "" }, "email"},
		{"malformed email", func(in *ReserveInput) { in.Passenger.Email = "not-an-email" }, "email"},
		{"missing passport", func(in *ReserveInput) { in.Passenger.PassportNumber = "" }, "passport_number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validReserveInput()
			tt.mutate(&in)

			err := in.validate()
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestNewAppliesConfigDefaults(t *testing.T) {
	svc := New(nil, nil, nil, Config{})

	assert.Equal(t, 1.5, svc.cfg.BusinessMultiplier)
	assert.Equal(t, 5, svc.cfg.MaxReferenceAttempts)
}

func TestNewKeepsExplicitConfig(t *testing.T) {
	svc := New(nil, nil, nil, Config{BusinessMultiplier: 2.0, MaxReferenceAttempts: 3})

	assert.Equal(t, 2.0, svc.cfg.BusinessMultiplier)
	assert.Equal(t, 3, svc.cfg.MaxReferenceAttempts)
}

func TestInvalidTransitionErrorMessage(t *testing.T) {
	err := &InvalidTransitionError{
		Current:   domain.ReservationCancelled,
		Requested: domain.ReservationCheckedIn,
	}
	assert.Equal(t, "cannot move reservation from cancelled to checked_in", err.Error())

	err = &InvalidTransitionError{
		Current:   domain.ReservationConfirmed,
		Requested: domain.ReservationCheckedIn,
		Reason:    "flight is departed",
	}
	assert.Contains(t, err.Error(), "flight is departed")
}

func TestReserveConfirmsSeatAndPublishes(t *testing.T) {
	svc, m := newTestService(Config{})
	ctx := context.Background()

	m.flights.On("GetByID", ctx, int64(1)).Return(scheduledFlight(), nil)
	m.flights.On("GetSeat", ctx, int64(10)).Return(economySeat(), nil)
	m.passengers.On("GetByEmail", ctx, "john.doe@email.com").
		Return(&domain.Passenger{ID: 42}, nil)
	m.reservations.On("ReferenceExists", ctx, mock.AnythingOfType("string")).
		Return(false, nil).Once()
	m.reservations.On("Create", ctx, mock.MatchedBy(func(res domain.Reservation) bool {
		return res.PassengerID == 42 &&
			res.FlightID == 1 &&
			res.SeatID != nil && *res.SeatID == 10 &&
			len(res.BookingReference) == referenceLength &&
			res.TicketPrice == 350.00 &&
			res.Status == domain.ReservationConfirmed &&
			res.PaymentStatus == domain.PaymentPending
	})).Return(&domain.Reservation{ID: 5, FlightID: 1, Status: domain.ReservationConfirmed}, nil)

	res, err := svc.Reserve(ctx, validReserveInput())
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.ID)

	assert.Equal(t, []int64{1}, m.published.flightIDs)
	m.assertExpectations(t)
}

func TestReserveCreatesUnknownPassenger(t *testing.T) {
	svc, m := newTestService(Config{BusinessMultiplier: 2.0})
	ctx := context.Background()

	seat := economySeat()
	seat.CabinClass = domain.ClassBusiness

	in := validReserveInput()
	in.CabinClass = domain.ClassBusiness

	m.flights.On("GetByID", ctx, int64(1)).Return(scheduledFlight(), nil)
	m.flights.On("GetSeat", ctx, int64(10)).Return(seat, nil)
	m.passengers.On("GetByEmail", ctx, "john.doe@email.com").
		Return(nil, repository.ErrNotFound)
	m.passengers.On("Create", ctx, mock.MatchedBy(func(p domain.Passenger) bool {
		return p.Email == "john.doe@email.com" && p.PassportNumber == "P12345678"
	})).Return(int64(99), nil)
	m.reservations.On("ReferenceExists", ctx, mock.AnythingOfType("string")).
		Return(false, nil).Once()
	m.reservations.On("Create", ctx, mock.MatchedBy(func(res domain.Reservation) bool {
		return res.PassengerID == 99 && res.TicketPrice == 700.00
	})).Return(&domain.Reservation{ID: 6, FlightID: 1}, nil)

	_, err := svc.Reserve(ctx, in)
	require.NoError(t, err)
	m.assertExpectations(t)
}

func TestReserveFailures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(ctx context.Context, m *bookingMocks)
		wantErr error
	}{
		{
			name: "unknown flight",
			setup: func(ctx context.Context, m *bookingMocks) {
				m.flights.On("GetByID", ctx, int64(1)).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrFlightNotFound,
		},
		{
			name: "departed flight rejected before seat lookup",
			setup: func(ctx context.Context, m *bookingMocks) {
				flight := scheduledFlight()
				flight.Status = domain.FlightDeparted
				m.flights.On("GetByID", ctx, int64(1)).Return(flight, nil)
			},
			wantErr: ErrFlightNotBookable,
		},
		{
			name: "unknown seat",
			setup: func(ctx context.Context, m *bookingMocks) {
				m.flights.On("GetByID", ctx, int64(1)).Return(scheduledFlight(), nil)
				m.flights.On("GetSeat", ctx, int64(10)).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrSeatNotFound,
		},
		{
			name: "seat from another aircraft",
			setup: func(ctx context.Context, m *bookingMocks) {
				seat := economySeat()
				seat.AircraftID = 8
				m.flights.On("GetByID", ctx, int64(1)).Return(scheduledFlight(), nil)
				m.flights.On("GetSeat", ctx, int64(10)).Return(seat, nil)
			},
			wantErr: ErrSeatNotOnFlight,
		},
		{
			name: "business seat for an economy booking",
			setup: func(ctx context.Context, m *bookingMocks) {
				seat := economySeat()
				seat.CabinClass = domain.ClassBusiness
				m.flights.On("GetByID", ctx, int64(1)).Return(scheduledFlight(), nil)
				m.flights.On("GetSeat", ctx, int64(10)).Return(seat, nil)
			},
			wantErr: ErrCabinClassMismatch,
		},
		{
			name: "passport registered to another passenger",
			setup: func(ctx context.Context, m *bookingMocks) {
				m.flights.On("GetByID", ctx, int64(1)).Return(scheduledFlight(), nil)
				m.flights.On("GetSeat", ctx, int64(10)).Return(economySeat(), nil)
				m.passengers.On("GetByEmail", ctx, "john.doe@email.com").
					Return(nil, repository.ErrNotFound)
				m.passengers.On("Create", ctx, mock.AnythingOfType("domain.Passenger")).
					Return(int64(0), repository.ErrPassengerConflict)
			},
			wantErr: ErrPassengerConflict,
		},
		{
			name: "seat taken by a concurrent booking",
			setup: func(ctx context.Context, m *bookingMocks) {
				m.flights.On("GetByID", ctx, int64(1)).Return(scheduledFlight(), nil)
				m.flights.On("GetSeat", ctx, int64(10)).Return(economySeat(), nil)
				m.passengers.On("GetByEmail", ctx, "john.doe@email.com").
					Return(&domain.Passenger{ID: 42}, nil)
				m.reservations.On("ReferenceExists", ctx, mock.AnythingOfType("string")).
					Return(false, nil)
				m.reservations.On("Create", ctx, mock.AnythingOfType("domain.Reservation")).
					Return(nil, repository.ErrSeatTaken)
			},
			wantErr: ErrSeatUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(Config{})
			ctx := context.Background()
			tt.setup(ctx, m)

			_, err := svc.Reserve(ctx, validReserveInput())
			assert.ErrorIs(t, err, tt.wantErr)

			assert.Empty(t, m.published.flightIDs,
				"a failed reserve must not announce a seat-map change")
			m.assertExpectations(t)
		})
	}
}

func TestReserveBoundsReferenceAttempts(t *testing.T) {
	svc, m := newTestService(Config{MaxReferenceAttempts: 3})
	ctx := context.Background()

	m.flights.On("GetByID", ctx, int64(1)).Return(scheduledFlight(), nil)
	m.flights.On("GetSeat", ctx, int64(10)).Return(economySeat(), nil)
	m.passengers.On("GetByEmail", ctx, "john.doe@email.com").
		Return(&domain.Passenger{ID: 42}, nil)
	m.reservations.On("ReferenceExists", ctx, mock.AnythingOfType("string")).
		Return(true, nil)

	_, err := svc.Reserve(ctx, validReserveInput())
	assert.ErrorIs(t, err, ErrReferenceExhausted)

	m.reservations.AssertNumberOfCalls(t, "ReferenceExists", 3)
	assert.Empty(t, m.published.flightIDs)
}

func TestCancelRefundsPaidReservation(t *testing.T) {
	svc, m := newTestService(Config{})
	ctx := context.Background()

	m.reservations.On("GetByID", ctx, int64(5)).Return(&domain.Reservation{
		ID:            5,
		FlightID:      1,
		Status:        domain.ReservationConfirmed,
		PaymentStatus: domain.PaymentPaid,
	}, nil)
	m.reservations.On("Cancel", ctx, int64(5)).Return(nil)

	res, err := svc.Cancel(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, domain.ReservationCancelled, res.Status)
	assert.Equal(t, domain.PaymentRefunded, res.PaymentStatus)
	assert.Equal(t, []int64{1}, m.published.flightIDs)
	m.assertExpectations(t)
}

func TestCancelIsIdempotent(t *testing.T) {
	svc, m := newTestService(Config{})
	ctx := context.Background()

	m.reservations.On("GetByID", ctx, int64(5)).Return(&domain.Reservation{
		ID:            5,
		FlightID:      1,
		Status:        domain.ReservationCancelled,
		PaymentStatus: domain.PaymentRefunded,
	}, nil)

	res, err := svc.Cancel(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, domain.ReservationCancelled, res.Status)
	m.reservations.AssertNotCalled(t, "Cancel", ctx, int64(5))
	assert.Empty(t, m.published.flightIDs,
		"cancelling a cancelled reservation changes no seat map")
}

func TestCancelRejectsCheckedIn(t *testing.T) {
	svc, m := newTestService(Config{})
	ctx := context.Background()

	m.reservations.On("GetByID", ctx, int64(5)).Return(&domain.Reservation{
		ID:     5,
		Status: domain.ReservationCheckedIn,
	}, nil)

	_, err := svc.Cancel(ctx, 5)

	var terr *InvalidTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, domain.ReservationCheckedIn, terr.Current)
	m.reservations.AssertNotCalled(t, "Cancel", ctx, int64(5))
}

func TestCancelUnknownReservation(t *testing.T) {
	svc, m := newTestService(Config{})
	ctx := context.Background()

	m.reservations.On("GetByID", ctx, int64(5)).Return(nil, repository.ErrNotFound)

	_, err := svc.Cancel(ctx, 5)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCheckInConfirmedReservation(t *testing.T) {
	svc, m := newTestService(Config{})
	ctx := context.Background()

	m.reservations.On("GetByID", ctx, int64(5)).Return(&domain.Reservation{
		ID:       5,
		FlightID: 1,
		Status:   domain.ReservationConfirmed,
	}, nil)
	m.flights.On("GetByID", ctx, int64(1)).Return(scheduledFlight(), nil)
	m.reservations.On("SetStatus", ctx, int64(5), domain.ReservationCheckedIn).Return(nil)

	res, err := svc.CheckIn(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, domain.ReservationCheckedIn, res.Status)
	m.assertExpectations(t)
}

func TestCheckInRejectsDepartedFlight(t *testing.T) {
	svc, m := newTestService(Config{})
	ctx := context.Background()

	flight := scheduledFlight()
	flight.Status = domain.FlightDeparted

	m.reservations.On("GetByID", ctx, int64(5)).Return(&domain.Reservation{
		ID:       5,
		FlightID: 1,
		Status:   domain.ReservationConfirmed,
	}, nil)
	m.flights.On("GetByID", ctx, int64(1)).Return(flight, nil)

	_, err := svc.CheckIn(ctx, 5)

	var terr *InvalidTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "flight is departed", terr.Reason)
	m.reservations.AssertNotCalled(t, "SetStatus",
		ctx, int64(5), domain.ReservationCheckedIn)
}

func TestCheckInRejectsCancelledReservation(t *testing.T) {
	svc, m := newTestService(Config{})
	ctx := context.Background()

	m.reservations.On("GetByID", ctx, int64(5)).Return(&domain.Reservation{
		ID:       5,
		FlightID: 1,
		Status:   domain.ReservationCancelled,
	}, nil)

	_, err := svc.CheckIn(ctx, 5)

	var terr *InvalidTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, domain.ReservationCancelled, terr.Current)
	m.flights.AssertNotCalled(t, "GetByID", ctx, int64(1))
}

func TestCompleteCheckedInReservation(t *testing.T) {
	svc, m := newTestService(Config{})
	ctx := context.Background()

	m.reservations.On("GetByID", ctx, int64(5)).Return(&domain.Reservation{
		ID:       5,
		FlightID: 1,
		Status:   domain.ReservationCheckedIn,
	}, nil)
	m.reservations.On("SetStatus", ctx, int64(5), domain.ReservationCompleted).Return(nil)

	res, err := svc.Complete(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, domain.ReservationCompleted, res.Status)
	m.assertExpectations(t)
}

func TestCompleteRequiresCheckIn(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.ReservationConfirmed,
		domain.ReservationCancelled,
		domain.ReservationCompleted,
	} {
		t.Run(string(status), func(t *testing.T) {
			svc, m := newTestService(Config{})
			ctx := context.Background()

			m.reservations.On("GetByID", ctx, int64(5)).Return(&domain.Reservation{
				ID:     5,
				Status: status,
			}, nil)

			_, err := svc.Complete(ctx, 5)

			var terr *InvalidTransitionError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, status, terr.Current)
			assert.Equal(t, domain.ReservationCompleted, terr.Requested)
		})
	}
}

func TestCompleteUnknownReservation(t *testing.T) {
	svc, m := newTestService(Config{})
	ctx := context.Background()

	m.reservations.On("GetByID", ctx, int64(5)).Return(nil, repository.ErrNotFound)

	_, err := svc.Complete(ctx, 5)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
