package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/odudar/skybook/internal/domain"
)

type AdminRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *AdminRepo) With(db DB) *AdminRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *AdminRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// ListFlights lists all flights with endpoint, aircraft and booked-seat
// details, most recent departure first.
func (r *AdminRepo) ListFlights(ctx context.Context) ([]domain.FlightDetails, error) {
	const op = "postgres.AdminRepo.ListFlights"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT`+flightDetailsColumns+flightDetailsJoins+`
		 ORDER BY f.departure_time DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.FlightDetails
	for rows.Next() {
		var fd domain.FlightDetails
		if err := scanFlightDetails(rows, &fd); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, fd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// UpdateFlightStatus sets a flight's status.
//
// Returns:
//   - error: repository.ErrNotFound if the flight does not exist.
func (r *AdminRepo) UpdateFlightStatus(ctx context.Context, flightID int64, status domain.FlightStatus) error {
	const op = "postgres.AdminRepo.UpdateFlightStatus"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE flights SET status = $2 WHERE id = $1`,
		flightID, status,
	)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, translateDBErr(pgx.ErrNoRows))
	}

	return nil
}

// Manifest lists every reservation on a flight with passenger and seat
// details, ordered by seat number.
func (r *AdminRepo) Manifest(ctx context.Context, flightID int64) ([]domain.ManifestEntry, error) {
	const op = "postgres.AdminRepo.Manifest"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT p.first_name, p.last_name, p.email, COALESCE(p.phone, ''),
		        COALESCE(p.passport_number, ''),
		        r.booking_reference, r.status, r.payment_status,
		        COALESCE(s.seat_number, ''), COALESCE(s.cabin_class, '')
		 FROM reservations r
		 JOIN passengers p ON p.id = r.passenger_id
		 LEFT JOIN seats s ON s.id = r.seat_id
		 WHERE r.flight_id = $1
		 ORDER BY s.seat_number`,
		flightID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.ManifestEntry
	for rows.Next() {
		var m domain.ManifestEntry
		if err := rows.Scan(
			&m.FirstName,
			&m.LastName,
			&m.Email,
			&m.Phone,
			&m.PassportNumber,
			&m.BookingReference,
			&m.Status,
			&m.PaymentStatus,
			&m.SeatNumber,
			&m.CabinClass,
		); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// Stats returns the dashboard counters.
func (r *AdminRepo) Stats(ctx context.Context) (*domain.Stats, error) {
	const op = "postgres.AdminRepo.Stats"

	db := r.handle()

	var st domain.Stats
	err := db.QueryRow(ctx,
		`SELECT
		     (SELECT COUNT(*) FROM flights),
		     (SELECT COUNT(*) FROM passengers),
		     (SELECT COUNT(*) FROM reservations WHERE status = 'confirmed'),
		     (SELECT COALESCE(SUM(ticket_price), 0) FROM reservations WHERE payment_status = 'paid')`,
	).Scan(&st.TotalFlights, &st.TotalPassengers, &st.TotalReservations, &st.TotalRevenue)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &st, nil
}
