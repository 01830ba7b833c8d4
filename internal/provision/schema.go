package provision

// requiredTables in dependency order. Creation and seeding both follow
// this order so foreign keys always resolve.
var requiredTables = []string{
	"airports",
	"aircraft",
	"seats",
	"flights",
	"passengers",
	"reservations",
}

// The unique constraints named here are load-bearing: the repository
// layer dispatches 23505 violations by constraint name. Renaming one
// requires updating internal/repository/postgres/pg_errors.go.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS airports (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		code VARCHAR(10) NOT NULL,
		name VARCHAR(100) NOT NULL,
		city VARCHAR(50) NOT NULL,
		country VARCHAR(50) NOT NULL,
		timezone VARCHAR(50),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT airports_code_key UNIQUE (code)
	)`,

	`CREATE TABLE IF NOT EXISTS aircraft (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		model VARCHAR(50) NOT NULL,
		registration VARCHAR(20) NOT NULL,
		manufacturer VARCHAR(50),
		total_seats INT NOT NULL,
		business_seats INT NOT NULL DEFAULT 0,
		economy_seats INT NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT aircraft_registration_key UNIQUE (registration),
		CONSTRAINT aircraft_status_check
			CHECK (status IN ('active', 'maintenance', 'retired')),
		CONSTRAINT aircraft_seat_split_check
			CHECK (total_seats = business_seats + economy_seats)
	)`,

	`CREATE TABLE IF NOT EXISTS seats (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		aircraft_id BIGINT NOT NULL REFERENCES aircraft(id),
		seat_number VARCHAR(10) NOT NULL,
		cabin_class VARCHAR(10) NOT NULL,
		CONSTRAINT seats_aircraft_number_key UNIQUE (aircraft_id, seat_number),
		CONSTRAINT seats_cabin_class_check
			CHECK (cabin_class IN ('business', 'economy'))
	)`,

	`CREATE TABLE IF NOT EXISTS flights (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		flight_number VARCHAR(20) NOT NULL,
		aircraft_id BIGINT NOT NULL REFERENCES aircraft(id),
		origin_airport_id BIGINT NOT NULL REFERENCES airports(id),
		destination_airport_id BIGINT NOT NULL REFERENCES airports(id),
		departure_time TIMESTAMPTZ NOT NULL,
		arrival_time TIMESTAMPTZ NOT NULL,
		base_price NUMERIC(10, 2) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT flights_number_key UNIQUE (flight_number),
		CONSTRAINT flights_status_check
			CHECK (status IN ('scheduled', 'boarding', 'departed', 'arrived', 'cancelled', 'delayed')),
		CONSTRAINT flights_distinct_endpoints_check
			CHECK (origin_airport_id <> destination_airport_id),
		CONSTRAINT flights_time_order_check
			CHECK (departure_time < arrival_time),
		CONSTRAINT flights_base_price_check
			CHECK (base_price > 0)
	)`,

	`CREATE TABLE IF NOT EXISTS passengers (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		first_name VARCHAR(50) NOT NULL,
		last_name VARCHAR(50) NOT NULL,
		email VARCHAR(100) NOT NULL,
		phone VARCHAR(20),
		date_of_birth DATE,
		passport_number VARCHAR(20),
		nationality VARCHAR(50),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT passengers_email_key UNIQUE (email),
		CONSTRAINT passengers_passport_number_key UNIQUE (passport_number)
	)`,

	`CREATE TABLE IF NOT EXISTS reservations (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		passenger_id BIGINT NOT NULL REFERENCES passengers(id),
		flight_id BIGINT NOT NULL REFERENCES flights(id),
		seat_id BIGINT REFERENCES seats(id),
		booking_reference VARCHAR(20) NOT NULL,
		booked_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		ticket_price NUMERIC(10, 2) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'confirmed',
		payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
		CONSTRAINT reservations_booking_reference_key UNIQUE (booking_reference),
		CONSTRAINT reservations_status_check
			CHECK (status IN ('confirmed', 'cancelled', 'checked_in', 'completed')),
		CONSTRAINT reservations_payment_status_check
			CHECK (payment_status IN ('pending', 'paid', 'refunded'))
	)`,

	// The occupancy constraint: at most one active reservation may hold
	// a (flight, seat) pair. Cancelled and completed rows fall out of
	// the index, so a freed seat can be booked again.
	`CREATE UNIQUE INDEX IF NOT EXISTS reservations_active_seat_key
		ON reservations (flight_id, seat_id)
		WHERE seat_id IS NOT NULL AND status IN ('confirmed', 'checked_in')`,

	`CREATE INDEX IF NOT EXISTS idx_flights_departure ON flights (departure_time)`,
	`CREATE INDEX IF NOT EXISTS idx_flights_origin ON flights (origin_airport_id)`,
	`CREATE INDEX IF NOT EXISTS idx_flights_destination ON flights (destination_airport_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_passenger ON reservations (passenger_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_flight ON reservations (flight_id)`,
}

// expectedColumns is the declared shape each required table must have.
// A pre-existing table missing any of these is an incompatible schema
// and provisioning refuses to touch it. Extra columns are tolerated.
var expectedColumns = map[string][]string{
	"airports": {
		"id", "code", "name", "city", "country", "timezone", "created_at",
	},
	"aircraft": {
		"id", "model", "registration", "manufacturer",
		"total_seats", "business_seats", "economy_seats", "status", "created_at",
	},
	"seats": {
		"id", "aircraft_id", "seat_number", "cabin_class",
	},
	"flights": {
		"id", "flight_number", "aircraft_id", "origin_airport_id", "destination_airport_id",
		"departure_time", "arrival_time", "base_price", "status", "created_at",
	},
	"passengers": {
		"id", "first_name", "last_name", "email", "phone",
		"date_of_birth", "passport_number", "nationality", "created_at",
	},
	"reservations": {
		"id", "passenger_id", "flight_id", "seat_id", "booking_reference",
		"booked_at", "ticket_price", "status", "payment_status",
	},
}
