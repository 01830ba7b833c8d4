package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/odudar/skybook/internal/domain"
)

type ReservationRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ReservationRepo) With(db DB) *ReservationRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ReservationRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Create inserts a reservation row. The partial unique index on
// (flight_id, seat_id) over active reservations is the occupancy
// guard: a violation means the seat was taken by a concurrent booking.
//
// Returns:
//   - error: repository.ErrSeatTaken on an occupancy conflict.
//   - error: repository.ErrDuplicateReference if the booking reference
//     collides with an existing one.
func (r *ReservationRepo) Create(ctx context.Context, res domain.Reservation) (*domain.Reservation, error) {
	const op = "postgres.ReservationRepo.Create"

	db := r.handle()

	err := db.QueryRow(ctx,
		`INSERT INTO reservations (passenger_id, flight_id, seat_id, booking_reference, ticket_price, status, payment_status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, booked_at`,
		res.PassengerID,
		res.FlightID,
		res.SeatID,
		res.BookingReference,
		res.TicketPrice,
		res.Status,
		res.PaymentStatus,
	).Scan(&res.ID, &res.BookedAt)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &res, nil
}

// GetByID retrieves a reservation by its ID.
//
// Returns:
//   - error: repository.ErrNotFound if the reservation does not exist.
func (r *ReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	const op = "postgres.ReservationRepo.GetByID"

	db := r.handle()

	var res domain.Reservation
	err := db.QueryRow(ctx,
		`SELECT id, passenger_id, flight_id, seat_id, booking_reference, booked_at, ticket_price, status, payment_status
		 FROM reservations
		 WHERE id = $1`,
		id,
	).Scan(
		&res.ID,
		&res.PassengerID,
		&res.FlightID,
		&res.SeatID,
		&res.BookingReference,
		&res.BookedAt,
		&res.TicketPrice,
		&res.Status,
		&res.PaymentStatus,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &res, nil
}

// ReferenceExists reports whether a booking reference is already in
// use, including by cancelled reservations. References are never
// recycled.
func (r *ReservationRepo) ReferenceExists(ctx context.Context, ref string) (bool, error) {
	const op = "postgres.ReservationRepo.ReferenceExists"

	db := r.handle()

	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reservations WHERE booking_reference = $1)`,
		ref,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return exists, nil
}

// SetStatus updates a reservation's status.
//
// Returns:
//   - error: repository.ErrNotFound if the reservation does not exist.
func (r *ReservationRepo) SetStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	const op = "postgres.ReservationRepo.SetStatus"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE reservations SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, translateDBErr(pgx.ErrNoRows))
	}

	return nil
}

// Cancel marks a reservation cancelled and refunds its payment if it
// was paid. Pending payments stay pending.
func (r *ReservationRepo) Cancel(ctx context.Context, id int64) error {
	const op = "postgres.ReservationRepo.Cancel"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE reservations
		 SET status = 'cancelled',
		     payment_status = CASE WHEN payment_status = 'paid' THEN 'refunded' ELSE payment_status END
		 WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, translateDBErr(pgx.ErrNoRows))
	}

	return nil
}

// CompleteForFlight moves all checked-in reservations of a flight to
// completed and returns how many rows changed.
func (r *ReservationRepo) CompleteForFlight(ctx context.Context, flightID int64) (int64, error) {
	const op = "postgres.ReservationRepo.CompleteForFlight"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE reservations
		 SET status = 'completed'
		 WHERE flight_id = $1 AND status = 'checked_in'`,
		flightID,
	)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return tag.RowsAffected(), nil
}

const reservationDetailsQuery = `
	SELECT r.id, r.passenger_id, r.flight_id, r.seat_id, r.booking_reference,
	       r.booked_at, r.ticket_price, r.status, r.payment_status,
	       p.first_name || ' ' || p.last_name, p.email,
	       f.flight_number, f.status, f.departure_time, f.arrival_time,
	       o.code, d.code, COALESCE(s.seat_number, '')
	FROM reservations r
	JOIN passengers p ON p.id = r.passenger_id
	JOIN flights f ON f.id = r.flight_id
	JOIN airports o ON o.id = f.origin_airport_id
	JOIN airports d ON d.id = f.destination_airport_id
	LEFT JOIN seats s ON s.id = r.seat_id`

func scanReservationDetails(row pgx.Row, rd *domain.ReservationDetails) error {
	return row.Scan(
		&rd.ID,
		&rd.PassengerID,
		&rd.FlightID,
		&rd.SeatID,
		&rd.BookingReference,
		&rd.BookedAt,
		&rd.TicketPrice,
		&rd.Status,
		&rd.PaymentStatus,
		&rd.PassengerName,
		&rd.PassengerEmail,
		&rd.FlightNumber,
		&rd.FlightStatus,
		&rd.DepartureTime,
		&rd.ArrivalTime,
		&rd.OriginCode,
		&rd.DestinationCode,
		&rd.SeatNumber,
	)
}

// GetByReference retrieves a reservation with its passenger, flight
// and seat by its human-facing booking reference.
//
// Returns:
//   - error: repository.ErrNotFound if no reservation has this reference.
func (r *ReservationRepo) GetByReference(ctx context.Context, ref string) (*domain.ReservationDetails, error) {
	const op = "postgres.ReservationRepo.GetByReference"

	db := r.handle()

	var rd domain.ReservationDetails
	row := db.QueryRow(ctx, reservationDetailsQuery+` WHERE r.booking_reference = $1`, ref)
	if err := scanReservationDetails(row, &rd); err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &rd, nil
}

// ListByPassengerEmail lists a passenger's reservations, most recent
// departure first.
func (r *ReservationRepo) ListByPassengerEmail(ctx context.Context, email string) ([]domain.ReservationDetails, error) {
	const op = "postgres.ReservationRepo.ListByPassengerEmail"

	db := r.handle()

	rows, err := db.Query(ctx,
		reservationDetailsQuery+`
		 WHERE lower(p.email) = lower($1)
		 ORDER BY f.departure_time DESC`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.ReservationDetails
	for rows.Next() {
		var rd domain.ReservationDetails
		if err := scanReservationDetails(rows, &rd); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}
