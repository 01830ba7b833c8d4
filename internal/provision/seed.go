package provision

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

type seedAirport struct {
	Code, Name, City, Country, Timezone string
}

type seedAircraft struct {
	Model, Registration, Manufacturer string
	Total, Business, Economy          int
}

type seedFlight struct {
	Number       string
	Registration string
	Origin       string
	Destination  string
	Departure    time.Time
	Arrival      time.Time
	BasePrice    float64
}

type seedPassenger struct {
	FirstName, LastName, Email, Phone string
	DateOfBirth                       time.Time
	Passport, Nationality             string
}

type seedReservation struct {
	Reference     string
	Email         string
	FlightNumber  string
	SeatNumber    string // empty means no seat assigned yet
	Price         float64
	PaymentStatus string
}

func dt(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

var seedAirports = []seedAirport{
	{"JFK", "John F. Kennedy International Airport", "New York", "USA", "America/New_York"},
	{"LAX", "Los Angeles International Airport", "Los Angeles", "USA", "America/Los_Angeles"},
	{"ORD", "O'Hare International Airport", "Chicago", "USA", "America/Chicago"},
	{"LHR", "London Heathrow Airport", "London", "UK", "Europe/London"},
	{"CDG", "Charles de Gaulle Airport", "Paris", "France", "Europe/Paris"},
	{"DXB", "Dubai International Airport", "Dubai", "UAE", "Asia/Dubai"},
	{"HND", "Tokyo Haneda Airport", "Tokyo", "Japan", "Asia/Tokyo"},
	{"SIN", "Singapore Changi Airport", "Singapore", "Singapore", "Asia/Singapore"},
	{"DEL", "Indira Gandhi International Airport", "New Delhi", "India", "Asia/Kolkata"},
	{"SFO", "San Francisco International Airport", "San Francisco", "USA", "America/Los_Angeles"},
}

var seedAircrafts = []seedAircraft{
	{"Boeing 737-800", "N12345", "Boeing", 189, 12, 177},
	{"Airbus A320", "N23456", "Airbus", 180, 12, 168},
	{"Boeing 777-300ER", "N34567", "Boeing", 396, 42, 354},
	{"Airbus A350-900", "N45678", "Airbus", 325, 36, 289},
	{"Boeing 787-9", "N56789", "Boeing", 290, 30, 260},
	{"Airbus A380", "N67890", "Airbus", 525, 58, 467},
}

var seedFlights = []seedFlight{
	{"AA101", "N12345", "JFK", "LAX", dt(2025, 11, 15, 8, 0), dt(2025, 11, 15, 11, 30), 350.00},
	{"AA102", "N23456", "LAX", "JFK", dt(2025, 11, 15, 14, 0), dt(2025, 11, 15, 22, 45), 380.00},
	{"UA201", "N34567", "JFK", "LHR", dt(2025, 11, 16, 18, 0), dt(2025, 11, 17, 7, 0), 850.00},
	{"BA301", "N45678", "LHR", "DXB", dt(2025, 11, 17, 10, 0), dt(2025, 11, 17, 19, 30), 650.00},
	{"DL401", "N56789", "ORD", "SFO", dt(2025, 11, 18, 9, 0), dt(2025, 11, 18, 11, 45), 280.00},
	{"SQ501", "N67890", "SIN", "HND", dt(2025, 11, 19, 23, 0), dt(2025, 11, 20, 7, 30), 720.00},
	{"AI601", "N34567", "DEL", "JFK", dt(2025, 11, 20, 2, 0), dt(2025, 11, 20, 7, 0), 920.00},
	{"EK701", "N45678", "DXB", "CDG", dt(2025, 11, 21, 15, 0), dt(2025, 11, 21, 20, 30), 550.00},
}

var seedPassengers = []seedPassenger{
	{"John", "Doe", "john.doe@email.com", "+1-555-0101", dt(1985, 5, 15, 0, 0), "P12345678", "USA"},
	{"Jane", "Smith", "jane.smith@email.com", "+1-555-0102", dt(1990, 8, 22, 0, 0), "P23456789", "USA"},
	{"Robert", "Johnson", "robert.j@email.com", "+44-20-1234-5678", dt(1978, 3, 10, 0, 0), "P34567890", "UK"},
	{"Maria", "Garcia", "maria.garcia@email.com", "+33-1-2345-6789", dt(1992, 11, 30, 0, 0), "P45678901", "France"},
	{"Ahmed", "Hassan", "ahmed.hassan@email.com", "+971-4-123-4567", dt(1988, 7, 18, 0, 0), "P56789012", "UAE"},
}

// BK2025002/003 start without an assigned seat: their flights run on
// other aircraft and seat assignment happens at booking time anyway.
var seedReservations = []seedReservation{
	{"BK2025001", "john.doe@email.com", "AA101", "3C", 350.00, "paid"},
	{"BK2025002", "jane.smith@email.com", "AA102", "", 380.00, "paid"},
	{"BK2025003", "robert.j@email.com", "UA201", "", 850.00, "paid"},
}

func seedAirportsTable(ctx context.Context, tx pgx.Tx) error {
	batch := &pgx.Batch{}
	for _, a := range seedAirports {
		batch.Queue(
			`INSERT INTO airports (code, name, city, country, timezone)
			 VALUES ($1, $2, $3, $4, $5)`,
			a.Code, a.Name, a.City, a.Country, a.Timezone,
		)
	}
	return tx.SendBatch(ctx, batch).Close()
}

func seedAircraftTable(ctx context.Context, tx pgx.Tx) error {
	batch := &pgx.Batch{}
	for _, a := range seedAircrafts {
		batch.Queue(
			`INSERT INTO aircraft (model, registration, manufacturer, total_seats, business_seats, economy_seats, status)
			 VALUES ($1, $2, $3, $4, $5, $6, 'active')`,
			a.Model, a.Registration, a.Manufacturer, a.Total, a.Business, a.Economy,
		)
	}
	return tx.SendBatch(ctx, batch).Close()
}

// seedSeatsTable generates a cabin for every aircraft already in the
// store, so the repair path works against aircraft rows it did not
// insert itself.
func seedSeatsTable(ctx context.Context, tx pgx.Tx, layout Layout) error {
	rows, err := tx.Query(ctx,
		`SELECT id, total_seats, business_seats FROM aircraft ORDER BY id`,
	)
	if err != nil {
		return err
	}

	type cabin struct {
		id              int64
		total, business int
	}

	var cabins []cabin
	for rows.Next() {
		var c cabin
		if err := rows.Scan(&c.id, &c.total, &c.business); err != nil {
			rows.Close()
			return err
		}
		cabins = append(cabins, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, c := range cabins {
		for _, s := range layout.Seats(c.total, c.business) {
			batch.Queue(
				`INSERT INTO seats (aircraft_id, seat_number, cabin_class)
				 VALUES ($1, $2, $3)
				 ON CONFLICT (aircraft_id, seat_number) DO NOTHING`,
				c.id, s.Number, s.Class,
			)
		}
	}
	return tx.SendBatch(ctx, batch).Close()
}

func seedFlightsTable(ctx context.Context, tx pgx.Tx) error {
	batch := &pgx.Batch{}
	for _, f := range seedFlights {
		batch.Queue(
			`INSERT INTO flights (flight_number, aircraft_id, origin_airport_id, destination_airport_id,
			                      departure_time, arrival_time, base_price, status)
			 SELECT $1, a.id, o.id, d.id, $5, $6, $7, 'scheduled'
			 FROM aircraft a, airports o, airports d
			 WHERE a.registration = $2 AND o.code = $3 AND d.code = $4`,
			f.Number, f.Registration, f.Origin, f.Destination,
			f.Departure, f.Arrival, f.BasePrice,
		)
	}
	return tx.SendBatch(ctx, batch).Close()
}

func seedPassengersTable(ctx context.Context, tx pgx.Tx) error {
	batch := &pgx.Batch{}
	for _, p := range seedPassengers {
		batch.Queue(
			`INSERT INTO passengers (first_name, last_name, email, phone, date_of_birth, passport_number, nationality)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.FirstName, p.LastName, p.Email, p.Phone, p.DateOfBirth, p.Passport, p.Nationality,
		)
	}
	return tx.SendBatch(ctx, batch).Close()
}

func seedReservationsTable(ctx context.Context, tx pgx.Tx) error {
	for _, r := range seedReservations {
		var err error
		if r.SeatNumber != "" {
			_, err = tx.Exec(ctx,
				`INSERT INTO reservations (passenger_id, flight_id, seat_id, booking_reference, ticket_price, status, payment_status)
				 SELECT p.id, f.id, s.id, $1, $5, 'confirmed', $6
				 FROM passengers p, flights f
				 JOIN seats s ON s.aircraft_id = f.aircraft_id AND s.seat_number = $4
				 WHERE p.email = $2 AND f.flight_number = $3`,
				r.Reference, r.Email, r.FlightNumber, r.SeatNumber, r.Price, r.PaymentStatus,
			)
		} else {
			_, err = tx.Exec(ctx,
				`INSERT INTO reservations (passenger_id, flight_id, booking_reference, ticket_price, status, payment_status)
				 SELECT p.id, f.id, $1, $4, 'confirmed', $5
				 FROM passengers p, flights f
				 WHERE p.email = $2 AND f.flight_number = $3`,
				r.Reference, r.Email, r.FlightNumber, r.Price, r.PaymentStatus,
			)
		}
		if err != nil {
			return fmt.Errorf("seed reservation %s: %w", r.Reference, err)
		}
	}
	return nil
}
