package provision

import (
	"testing"

	"github.com/odudar/skybook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutSeats(t *testing.T) {
	t.Run("numbers seats row by row", func(t *testing.T) {
		seats := DefaultLayout.Seats(8, 2)
		require.Len(t, seats, 8)

		assert.Equal(t, "1A", seats[0].Number)
		assert.Equal(t, "1F", seats[5].Number)
		assert.Equal(t, "2A", seats[6].Number)
		assert.Equal(t, "2B", seats[7].Number)
	})

	t.Run("first seats are business", func(t *testing.T) {
		seats := DefaultLayout.Seats(8, 2)
		require.Len(t, seats, 8)

		assert.Equal(t, domain.ClassBusiness, seats[0].Class)
		assert.Equal(t, domain.ClassBusiness, seats[1].Class)
		for _, s := range seats[2:] {
			assert.Equal(t, domain.ClassEconomy, s.Class)
		}
	})

	t.Run("business capped at total", func(t *testing.T) {
		seats := DefaultLayout.Seats(3, 10)
		require.Len(t, seats, 3)
		for _, s := range seats {
			assert.Equal(t, domain.ClassBusiness, s.Class)
		}
	})

	t.Run("negative total yields no seats", func(t *testing.T) {
		assert.Empty(t, DefaultLayout.Seats(-1, 0))
	})

	t.Run("custom letters change row width", func(t *testing.T) {
		seats := Layout{Letters: "AB"}.Seats(5, 0)
		require.Len(t, seats, 5)
		assert.Equal(t, []string{"1A", "1B", "2A", "2B", "3A"}, []string{
			seats[0].Number, seats[1].Number, seats[2].Number, seats[3].Number, seats[4].Number,
		})
	})

	t.Run("seat numbers are unique per aircraft", func(t *testing.T) {
		seats := DefaultLayout.Seats(525, 58)
		seen := make(map[string]struct{}, len(seats))
		for _, s := range seats {
			_, dup := seen[s.Number]
			require.False(t, dup, "duplicate seat number %s", s.Number)
			seen[s.Number] = struct{}{}
		}
	})
}
