package httpgin

import "time"

type PassengerRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	DateOfBirth    string `json:"date_of_birth"`
	PassportNumber string `json:"passport_number" binding:"required"`
	Nationality    string `json:"nationality"`
}

type ReserveRequest struct {
	FlightID   int64            `json:"flight_id" binding:"required"`
	SeatID     int64            `json:"seat_id" binding:"required"`
	CabinClass string           `json:"cabin_class" binding:"required"`
	Passenger  PassengerRequest `json:"passenger" binding:"required"`
}

type UpdateFlightStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	// Status carries the reservation's actual status on transition
	// conflicts so stale clients can resync.
	Status string `json:"status,omitempty"`
}

// parseDay parses a calendar day in YYYY-MM-DD form.
func parseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
