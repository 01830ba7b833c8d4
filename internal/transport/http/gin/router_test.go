package httpgin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/odudar/skybook/internal/domain"
	"github.com/odudar/skybook/internal/service/admin"
	"github.com/odudar/skybook/internal/service/booking"
	"github.com/odudar/skybook/internal/service/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	day, err := parseDay("2025-11-15")
	require.NoError(t, err)
	assert.Equal(t, 2025, day.Year())
	assert.Equal(t, 15, day.Day())

	_, err = parseDay("15/11/2025")
	assert.Error(t, err)

	_, err = parseDay("")
	assert.Error(t, err)
}

func TestRespondErr(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			"flight not found",
			fmt.Errorf("service.query.GetFlight: %w", query.ErrFlightNotFound),
			http.StatusNotFound,
			"flight not found",
		},
		{
			"booking flight not found",
			booking.ErrFlightNotFound,
			http.StatusNotFound,
			"flight not found",
		},
		{
			"admin flight not found",
			admin.ErrFlightNotFound,
			http.StatusNotFound,
			"flight not found",
		},
		{
			"seat not found",
			booking.ErrSeatNotFound,
			http.StatusNotFound,
			"seat not found",
		},
		{
			"reservation not found",
			fmt.Errorf("wrap: %w", query.ErrReservationNotFound),
			http.StatusNotFound,
			"reservation not found",
		},
		{
			"seat taken",
			fmt.Errorf("service.booking.Reserve: %w", booking.ErrSeatUnavailable),
			http.StatusConflict,
			"seat is already taken",
		},
		{
			"flight closed",
			booking.ErrFlightNotBookable,
			http.StatusConflict,
			"flight is not open for booking",
		},
		{
			"seat off flight",
			booking.ErrSeatNotOnFlight,
			http.StatusConflict,
			"seat does not match this flight",
		},
		{
			"cabin class mismatch",
			booking.ErrCabinClassMismatch,
			http.StatusConflict,
			"seat does not match this flight",
		},
		{
			"passenger conflict",
			booking.ErrPassengerConflict,
			http.StatusConflict,
			"passport number is registered to another passenger",
		},
		{
			"validation error",
			&booking.ValidationError{Field: "email", Reason: "required"},
			http.StatusBadRequest,
			"invalid email: required",
		},
		{
			"search validation error",
			fmt.Errorf("wrap: %w", &query.ValidationError{Field: "origin", Reason: "required"}),
			http.StatusBadRequest,
			"invalid origin: required",
		},
		{
			"invalid flight status",
			&admin.InvalidStatusError{Status: "teleported"},
			http.StatusBadRequest,
			`invalid flight status "teleported"`,
		},
		{
			"unknown error",
			fmt.Errorf("pool exhausted"),
			http.StatusInternalServerError,
			"internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondErr(c, tt.err)

			require.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}

func TestRespondErrInvalidTransitionCarriesStatus(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondErr(c, fmt.Errorf("service.booking.Cancel: %w", &booking.InvalidTransitionError{
		Current:   domain.ReservationCompleted,
		Requested: domain.ReservationCancelled,
	}))

	require.Equal(t, http.StatusConflict, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	assert.Contains(t, resp.Error, "cannot move reservation")
}
