package booking

import (
	"testing"

	"github.com/odudar/skybook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTicketPrice(t *testing.T) {
	tests := []struct {
		name       string
		base       float64
		class      domain.CabinClass
		multiplier float64
		want       float64
	}{
		{"economy pays base price", 350.00, domain.ClassEconomy, 1.5, 350.00},
		{"business pays multiplied price", 350.00, domain.ClassBusiness, 1.5, 525.00},
		{"business with multiplier 1 equals base", 280.00, domain.ClassBusiness, 1.0, 280.00},
		{"rounds down to cents", 199.99, domain.ClassBusiness, 1.2, 239.99},
		{"rounds repeating product", 333.33, domain.ClassBusiness, 1.1, 366.66},
		{"economy ignores multiplier", 850.00, domain.ClassEconomy, 2.0, 850.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TicketPrice(tt.base, tt.class, tt.multiplier), 1e-9)
		})
	}
}
