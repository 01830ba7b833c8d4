package provision

import (
	"fmt"

	"github.com/odudar/skybook/internal/domain"
)

// Layout describes how seat numbers are generated when an aircraft is
// seeded. Numbering is a seed-data convention, not business logic; the
// booking path only ever sees seat rows, never this layout.
type Layout struct {
	Letters string
}

var DefaultLayout = Layout{Letters: "ABCDEF"}

type SeatSpec struct {
	Number string
	Class  domain.CabinClass
}

// Seats generates exactly total seat specs, numbered row by row
// (1A, 1B, ... 2A, ...). The first business seats are business class,
// matching the aircraft's cabin split.
func (l Layout) Seats(total, business int) []SeatSpec {
	letters := l.Letters
	if letters == "" {
		letters = DefaultLayout.Letters
	}

	if total < 0 {
		total = 0
	}
	if business > total {
		business = total
	}

	out := make([]SeatSpec, 0, total)
	for i := 0; i < total; i++ {
		row := i/len(letters) + 1
		letter := letters[i%len(letters)]

		class := domain.ClassEconomy
		if i < business {
			class = domain.ClassBusiness
		}

		out = append(out, SeatSpec{
			Number: fmt.Sprintf("%d%c", row, letter),
			Class:  class,
		})
	}

	return out
}
