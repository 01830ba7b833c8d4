package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/odudar/skybook/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestTranslateDBErr(t *testing.T) {
	uniqueViolation := func(constraint string) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
	}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows becomes not found", pgx.ErrNoRows, repository.ErrNotFound},
		{"wrapped no rows becomes not found", fmt.Errorf("scan: %w", pgx.ErrNoRows), repository.ErrNotFound},
		{"active seat index becomes seat taken", uniqueViolation("reservations_active_seat_key"), repository.ErrSeatTaken},
		{"reference constraint becomes duplicate reference", uniqueViolation("reservations_booking_reference_key"), repository.ErrDuplicateReference},
		{"passport constraint becomes passenger conflict", uniqueViolation("passengers_passport_number_key"), repository.ErrPassengerConflict},
		{"other unique violation becomes conflict", uniqueViolation("flights_number_key"), repository.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateDBErr(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	t.Run("unrelated errors pass through", func(t *testing.T) {
		err := errors.New("connection refused")
		assert.Equal(t, err, translateDBErr(err))
	})
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&pgconn.PgError{Code: "40001"}))
	assert.True(t, IsRetryable(&pgconn.PgError{Code: "40P01"}))
	assert.True(t, IsRetryable(fmt.Errorf("tx: %w", &pgconn.PgError{Code: "40001"})))
	assert.False(t, IsRetryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsRetryable(errors.New("boom")))
	assert.False(t, IsRetryable(nil))
}
