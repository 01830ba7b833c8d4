package domain

import "time"

type CabinClass string

const (
	ClassBusiness CabinClass = "business"
	ClassEconomy  CabinClass = "economy"
)

func (c CabinClass) Valid() bool {
	return c == ClassBusiness || c == ClassEconomy
}

type AircraftStatus string

const (
	AircraftActive      AircraftStatus = "active"
	AircraftMaintenance AircraftStatus = "maintenance"
	AircraftRetired     AircraftStatus = "retired"
)

type FlightStatus string

const (
	FlightScheduled FlightStatus = "scheduled"
	FlightBoarding  FlightStatus = "boarding"
	FlightDeparted  FlightStatus = "departed"
	FlightArrived   FlightStatus = "arrived"
	FlightCancelled FlightStatus = "cancelled"
	FlightDelayed   FlightStatus = "delayed"
)

func (s FlightStatus) Valid() bool {
	switch s {
	case FlightScheduled, FlightBoarding, FlightDeparted,
		FlightArrived, FlightCancelled, FlightDelayed:
		return true
	}
	return false
}

// Bookable reports whether new reservations and check-ins are still
// accepted for a flight in this status.
func (s FlightStatus) Bookable() bool {
	return s == FlightScheduled || s == FlightBoarding
}

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCheckedIn ReservationStatus = "checked_in"
	ReservationCompleted ReservationStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Airport struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

type Aircraft struct {
	ID            int64          `json:"id"`
	Model         string         `json:"model"`
	Registration  string         `json:"registration"`
	Manufacturer  string         `json:"manufacturer"`
	TotalSeats    int            `json:"total_seats"`
	BusinessSeats int            `json:"business_seats"`
	EconomySeats  int            `json:"economy_seats"`
	Status        AircraftStatus `json:"status"`
}

type Seat struct {
	ID         int64      `json:"id"`
	AircraftID int64      `json:"aircraft_id"`
	SeatNumber string     `json:"seat_number"`
	CabinClass CabinClass `json:"cabin_class"`
}

// SeatAvailability is one entry of a flight seat map. Taken means an
// active (confirmed or checked-in) reservation holds the seat on that
// flight; cancelled reservations free the seat again.
type SeatAvailability struct {
	SeatID     int64      `json:"seat_id"`
	SeatNumber string     `json:"seat_number"`
	CabinClass CabinClass `json:"cabin_class"`
	Taken      bool       `json:"taken"`
}

type Flight struct {
	ID                   int64        `json:"id"`
	FlightNumber         string       `json:"flight_number"`
	AircraftID           int64        `json:"aircraft_id"`
	OriginAirportID      int64        `json:"origin_airport_id"`
	DestinationAirportID int64        `json:"destination_airport_id"`
	DepartureTime        time.Time    `json:"departure_time"`
	ArrivalTime          time.Time    `json:"arrival_time"`
	BasePrice            float64      `json:"base_price"`
	Status               FlightStatus `json:"status"`
}

// FlightDetails is a flight joined with its endpoints and aircraft,
// the shape the search and detail screens render.
type FlightDetails struct {
	Flight
	OriginCode      string `json:"origin_code"`
	OriginCity      string `json:"origin_city"`
	DestinationCode string `json:"destination_code"`
	DestinationCity string `json:"destination_city"`
	AircraftModel   string `json:"aircraft_model"`
	TotalSeats      int    `json:"total_seats"`
	BookedSeats     int    `json:"booked_seats"`
}

type Passenger struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	DateOfBirth    time.Time `json:"date_of_birth"`
	PassportNumber string    `json:"passport_number"`
	Nationality    string    `json:"nationality"`
}

type Reservation struct {
	ID               int64             `json:"id"`
	PassengerID      int64             `json:"passenger_id"`
	FlightID         int64             `json:"flight_id"`
	SeatID           *int64            `json:"seat_id,omitempty"`
	BookingReference string            `json:"booking_reference"`
	BookedAt         time.Time         `json:"booked_at"`
	TicketPrice      float64           `json:"ticket_price"`
	Status           ReservationStatus `json:"status"`
	PaymentStatus    PaymentStatus     `json:"payment_status"`
}

// ReservationDetails is a reservation joined with its passenger,
// flight and seat for display.
type ReservationDetails struct {
	Reservation
	PassengerName   string       `json:"passenger_name"`
	PassengerEmail  string       `json:"passenger_email"`
	FlightNumber    string       `json:"flight_number"`
	FlightStatus    FlightStatus `json:"flight_status"`
	DepartureTime   time.Time    `json:"departure_time"`
	ArrivalTime     time.Time    `json:"arrival_time"`
	OriginCode      string       `json:"origin_code"`
	DestinationCode string       `json:"destination_code"`
	SeatNumber      string       `json:"seat_number,omitempty"`
}

type ManifestEntry struct {
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	PassportNumber   string            `json:"passport_number"`
	BookingReference string            `json:"booking_reference"`
	Status           ReservationStatus `json:"status"`
	PaymentStatus    PaymentStatus     `json:"payment_status"`
	SeatNumber       string            `json:"seat_number,omitempty"`
	CabinClass       CabinClass        `json:"cabin_class,omitempty"`
}

type Stats struct {
	TotalFlights      int64   `json:"total_flights"`
	TotalPassengers   int64   `json:"total_passengers"`
	TotalReservations int64   `json:"total_reservations"`
	TotalRevenue      float64 `json:"total_revenue"`
}
