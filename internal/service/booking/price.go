package booking

import (
	"math"

	"github.com/odudar/skybook/internal/domain"
)

// TicketPrice computes the price snapshotted onto a reservation.
// Economy pays the flight's base price; business pays the base price
// scaled by the configured multiplier. Rounded to cents.
func TicketPrice(basePrice float64, class domain.CabinClass, businessMultiplier float64) float64 {
	price := basePrice
	if class == domain.ClassBusiness {
		price *= businessMultiplier
	}

	return math.Round(price*100) / 100
}
