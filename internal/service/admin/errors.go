package admin

import (
	"errors"
	"fmt"

	"github.com/odudar/skybook/internal/domain"
)

var ErrFlightNotFound = errors.New("flight not found")

// InvalidStatusError reports a flight status outside the known set.
type InvalidStatusError struct {
	Status domain.FlightStatus
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid flight status %q", e.Status)
}
