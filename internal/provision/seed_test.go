package provision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The seed rows reference each other by natural keys. A broken
// reference would make the INSERT ... SELECT statements silently skip
// rows, so the fixture itself is checked here.
func TestSeedDataConsistency(t *testing.T) {
	airports := make(map[string]struct{})
	for _, a := range seedAirports {
		_, dup := airports[a.Code]
		require.False(t, dup, "duplicate airport code %s", a.Code)
		airports[a.Code] = struct{}{}
	}

	aircraft := make(map[string]seedAircraft)
	for _, a := range seedAircrafts {
		_, dup := aircraft[a.Registration]
		require.False(t, dup, "duplicate registration %s", a.Registration)
		aircraft[a.Registration] = a

		assert.Equal(t, a.Total, a.Business+a.Economy,
			"%s cabin split does not add up", a.Registration)
	}

	flights := make(map[string]seedFlight)
	for _, f := range seedFlights {
		_, dup := flights[f.Number]
		require.False(t, dup, "duplicate flight number %s", f.Number)
		flights[f.Number] = f

		assert.Contains(t, airports, f.Origin, "%s origin", f.Number)
		assert.Contains(t, airports, f.Destination, "%s destination", f.Number)
		assert.NotEqual(t, f.Origin, f.Destination, "%s endpoints", f.Number)
		assert.Contains(t, aircraft, f.Registration, "%s aircraft", f.Number)
		assert.True(t, f.Arrival.After(f.Departure), "%s time order", f.Number)
		assert.Greater(t, f.BasePrice, 0.0, "%s base price", f.Number)
	}

	passengers := make(map[string]struct{})
	passports := make(map[string]struct{})
	for _, p := range seedPassengers {
		_, dup := passengers[p.Email]
		require.False(t, dup, "duplicate email %s", p.Email)
		passengers[p.Email] = struct{}{}

		_, dup = passports[p.Passport]
		require.False(t, dup, "duplicate passport %s", p.Passport)
		passports[p.Passport] = struct{}{}
	}

	references := make(map[string]struct{})
	for _, r := range seedReservations {
		_, dup := references[r.Reference]
		require.False(t, dup, "duplicate reference %s", r.Reference)
		references[r.Reference] = struct{}{}

		assert.Contains(t, passengers, r.Email, "%s passenger", r.Reference)

		f, ok := flights[r.FlightNumber]
		require.True(t, ok, "%s flight %s", r.Reference, r.FlightNumber)

		// an assigned seat must exist on the flight's aircraft
		if r.SeatNumber != "" {
			a := aircraft[f.Registration]
			found := false
			for _, s := range DefaultLayout.Seats(a.Total, a.Business) {
				if s.Number == r.SeatNumber {
					found = true
					break
				}
			}
			assert.True(t, found, "%s seat %s not on %s", r.Reference, r.SeatNumber, f.Registration)
		}
	}
}
