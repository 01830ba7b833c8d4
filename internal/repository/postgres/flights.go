package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/odudar/skybook/internal/domain"
)

type FlightRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *FlightRepo) With(db DB) *FlightRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *FlightRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

const flightDetailsColumns = `
	f.id, f.flight_number, f.aircraft_id, f.origin_airport_id, f.destination_airport_id,
	f.departure_time, f.arrival_time, f.base_price, f.status,
	o.code, o.city, d.code, d.city, a.model, a.total_seats,
	(SELECT COUNT(*) FROM reservations r
	  WHERE r.flight_id = f.id AND r.status IN ('confirmed', 'checked_in'))`

const flightDetailsJoins = `
	FROM flights f
	JOIN airports o ON o.id = f.origin_airport_id
	JOIN airports d ON d.id = f.destination_airport_id
	JOIN aircraft a ON a.id = f.aircraft_id`

func scanFlightDetails(row pgx.Row, fd *domain.FlightDetails) error {
	return row.Scan(
		&fd.ID,
		&fd.FlightNumber,
		&fd.AircraftID,
		&fd.OriginAirportID,
		&fd.DestinationAirportID,
		&fd.DepartureTime,
		&fd.ArrivalTime,
		&fd.BasePrice,
		&fd.Status,
		&fd.OriginCode,
		&fd.OriginCity,
		&fd.DestinationCode,
		&fd.DestinationCity,
		&fd.AircraftModel,
		&fd.TotalSeats,
		&fd.BookedSeats,
	)
}

// Search returns non-cancelled flights between two airports (matched by
// code or city, case-insensitive) departing on the given calendar day,
// ordered by departure time. When class is non-empty only flights with
// at least one free seat of that class are returned.
//
// Returns:
//   - []domain.FlightDetails: matching flights, possibly empty.
func (r *FlightRepo) Search(
	ctx context.Context,
	origin, destination string,
	day time.Time,
	class domain.CabinClass,
) ([]domain.FlightDetails, error) {
	const op = "postgres.FlightRepo.Search"

	db := r.handle()

	var rows pgx.Rows
	var err error

	if class != "" {
		rows, err = db.Query(ctx,
			`SELECT`+flightDetailsColumns+flightDetailsJoins+`
			 WHERE (upper(o.code) = upper($1) OR lower(o.city) = lower($1))
			   AND (upper(d.code) = upper($2) OR lower(d.city) = lower($2))
			   AND f.departure_time::date = $3::date
			   AND f.status <> 'cancelled'
			   AND EXISTS (
			       SELECT 1 FROM seats s
			        WHERE s.aircraft_id = f.aircraft_id
			          AND s.cabin_class = $4
			          AND NOT EXISTS (
			              SELECT 1 FROM reservations r
			               WHERE r.flight_id = f.id
			                 AND r.seat_id = s.id
			                 AND r.status IN ('confirmed', 'checked_in')))
			 ORDER BY f.departure_time`,
			origin, destination, day, class,
		)
	} else {
		rows, err = db.Query(ctx,
			`SELECT`+flightDetailsColumns+flightDetailsJoins+`
			 WHERE (upper(o.code) = upper($1) OR lower(o.city) = lower($1))
			   AND (upper(d.code) = upper($2) OR lower(d.city) = lower($2))
			   AND f.departure_time::date = $3::date
			   AND f.status <> 'cancelled'
			 ORDER BY f.departure_time`,
			origin, destination, day,
		)
	}
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

// GetByID retrieves a flight with its endpoints and aircraft.
//
// Returns:
//   - error: repository.ErrNotFound if the flight does not exist.
func (r *FlightRepo) GetByID(ctx context.Context, id int64) (*domain.FlightDetails, error) {
	const op = "postgres.FlightRepo.GetByID"

	db := r.handle()

	var fd domain.FlightDetails
	row := db.QueryRow(ctx,
		`SELECT`+flightDetailsColumns+flightDetailsJoins+` WHERE f.id = $1`,
		id,
	)
	if err := scanFlightDetails(row, &fd); err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &fd, nil
}

// GetSeat retrieves a seat by its ID.
//
// Returns:
//   - error: repository.ErrNotFound if the seat does not exist.
func (r *FlightRepo) GetSeat(ctx context.Context, seatID int64) (*domain.Seat, error) {
	const op = "postgres.FlightRepo.GetSeat"

	db := r.handle()

	var s domain.Seat
	err := db.QueryRow(ctx,
		`SELECT id, aircraft_id, seat_number, cabin_class
		 FROM seats WHERE id = $1`,
		seatID,
	).Scan(&s.ID, &s.AircraftID, &s.SeatNumber, &s.CabinClass)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &s, nil
}

// SeatMap lists every seat of the flight's aircraft together with its
// occupancy on this flight. A seat is taken iff a confirmed or
// checked-in reservation references the (flight, seat) pair.
func (r *FlightRepo) SeatMap(ctx context.Context, flightID int64) ([]domain.SeatAvailability, error) {
	const op = "postgres.FlightRepo.SeatMap"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT s.id, s.seat_number, s.cabin_class,
		        EXISTS (
		            SELECT 1 FROM reservations r
		             WHERE r.flight_id = $1
		               AND r.seat_id = s.id
		               AND r.status IN ('confirmed', 'checked_in'))
		 FROM seats s
		 JOIN flights f ON f.aircraft_id = s.aircraft_id
		 WHERE f.id = $1
		 ORDER BY s.id`,
		flightID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.SeatAvailability
	for rows.Next() {
		var sa domain.SeatAvailability
		if err := rows.Scan(&sa.SeatID, &sa.SeatNumber, &sa.CabinClass, &sa.Taken); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, sa)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// ListAirports lists all airports ordered by city.
func (r *FlightRepo) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	const op = "postgres.FlightRepo.ListAirports"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, code, name, city, country, COALESCE(timezone, '')
		 FROM airports
		 ORDER BY city`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Airport
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.City, &a.Country, &a.Timezone); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}
