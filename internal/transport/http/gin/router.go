package httpgin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/odudar/skybook/internal/domain"
	redisrepo "github.com/odudar/skybook/internal/repository/redis"
	"github.com/odudar/skybook/internal/service"
	"github.com/odudar/skybook/internal/service/admin"
	"github.com/odudar/skybook/internal/service/booking"
	"github.com/odudar/skybook/internal/service/query"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	adminToken string,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public API
	r.GET("/airports", handleListAirports(svcs))
	r.GET("/flights/search", handleSearchFlights(svcs))
	r.GET("/flights/:id", handleGetFlight(svcs))
	r.GET("/flights/:id/seats", handleSeatAvailability(svcs))

	r.POST("/reservations", handleReserve(svcs, idem))
	r.GET("/reservations", handlePassengerReservations(svcs))
	r.GET("/reservations/:reference", handleGetReservation(svcs))
	r.POST("/reservations/:reference/cancel", handleCancel(svcs))
	r.POST("/reservations/:reference/checkin", handleCheckIn(svcs))

	// Admin API
	adm := r.Group("/admin", AdminTokenMiddleware(adminToken))
	{
		adm.GET("/flights", handleAdminListFlights(svcs))
		adm.PATCH("/flights/:id/status", handleUpdateFlightStatus(svcs))
		adm.GET("/flights/:id/manifest", handleManifest(svcs))
		adm.GET("/stats", handleStats(svcs))
	}

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  List airports
// @Success  200  {array}  domain.Airport
// @Router   /airports [get]
func handleListAirports(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		airports, err := svcs.Query.ListAirports(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		// airports barely change; revalidate hourly
		writeJSONWithCache(c, http.StatusOK, airports, "public, max-age=3600")
	}
}

// @Summary  Search flights
// @Param    origin       query  string  true   "airport code or city"
// @Param    destination  query  string  true   "airport code or city"
// @Param    date         query  string  true   "departure day (YYYY-MM-DD)"
// @Param    cabin_class  query  string  false  "business or economy"
// @Success  200  {array}   domain.FlightDetails
// @Failure  400  {object}  ErrorResponse
// @Router   /flights/search [get]
func handleSearchFlights(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		day, err := parseDay(c.Query("date"))
		if err != nil {
			badRequest(c, "invalid date (YYYY-MM-DD)")
			return
		}

		flights, err := svcs.Query.SearchFlights(c.Request.Context(), query.SearchInput{
			Origin:      c.Query("origin"),
			Destination: c.Query("destination"),
			Day:         day,
			CabinClass:  domain.CabinClass(c.Query("cabin_class")),
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, flights, "public, max-age=30")
	}
}

// @Summary  Get flight
// @Param    id  path  int  true  "Flight ID"
// @Success  200  {object}  domain.FlightDetails
// @Failure  404  {object}  ErrorResponse
// @Router   /flights/{id} [get]
func handleGetFlight(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		flightID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		fd, err := svcs.Query.GetFlight(c.Request.Context(), flightID)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, fd, "public, max-age=30")
	}
}

// @Summary  Flight seat map
// @Param    id  path  int  true  "Flight ID"
// @Success  200  {array}   domain.SeatAvailability
// @Failure  404  {object}  ErrorResponse
// @Router   /flights/{id}/seats [get]
func handleSeatAvailability(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		flightID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		seats, err := svcs.Query.SeatAvailability(c.Request.Context(), flightID)
		if err != nil {
			respondErr(c, err)
			return
		}
		// seat maps go stale fast while people are booking
		writeJSONWithCache(c, http.StatusOK, seats, "public, max-age=5")
	}
}

// @Summary  Reserve a seat (idempotent)
// @Param    req  body  ReserveRequest  true  "payload"
// @Header   201  {string}  Idempotency-Key  "echo"
// @Success  201  {object}  domain.Reservation
// @Failure  400  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse  "seat taken / flight closed"
// @Failure  429  {object}  ErrorResponse  "rate limited"
// @Router   /reservations [post]
func handleReserve(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReserveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		in := booking.ReserveInput{
			FlightID:   req.FlightID,
			SeatID:     req.SeatID,
			CabinClass: domain.CabinClass(req.CabinClass),
			Passenger: booking.PassengerInput{
				FirstName:      req.Passenger.FirstName,
				LastName:       req.Passenger.LastName,
				Email:          req.Passenger.Email,
				Phone:          req.Passenger.Phone,
				PassportNumber: req.Passenger.PassportNumber,
				Nationality:    req.Passenger.Nationality,
			},
		}
		if req.Passenger.DateOfBirth != "" {
			dob, err := parseDay(req.Passenger.DateOfBirth)
			if err != nil {
				badRequest(c, "invalid date_of_birth (YYYY-MM-DD)")
				return
			}
			in.Passenger.DateOfBirth = dob
		}

		allowed, retryAfter, err := svcs.Booking.RateLimit(
			c.Request.Context(),
			"ip:"+c.ClientIP(),
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		if !allowed {
			secs := int(retryAfter.Seconds())
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "rate limited"})
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemReserve(req.FlightID, idemKey)

			if payload, ok, _ := idem.GetResult(
				c.Request.Context(),
				idemStorageKey,
			); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(
					http.StatusCreated,
					"application/json; charset=utf-8",
					[]byte(payload),
				)
				return
			}

			locked, err := idem.AcquireLock(
				c.Request.Context(),
				idemStorageKey,
				60*time.Second,
			)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(
					c.Request.Context(),
					idemStorageKey,
				); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(
						http.StatusCreated,
						"application/json; charset=utf-8",
						[]byte(payload),
					)
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(
					http.StatusConflict,
					ErrorResponse{Error: "idempotency key in progress"},
				)
				return
			}
		}

		res, err := svcs.Booking.Reserve(c.Request.Context(), in)
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			respondErr(c, err)
			return
		}

		if idemStorageKey != "" && idem != nil {
			b, _ := json.Marshal(res)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(b))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, res)
	}
}

// @Summary  List a passenger's reservations
// @Param    email  query  string  true  "passenger email"
// @Success  200  {array}   domain.ReservationDetails
// @Failure  400  {object}  ErrorResponse
// @Router   /reservations [get]
func handlePassengerReservations(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Query.PassengerReservations(
			c.Request.Context(),
			c.Query("email"),
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Look up a reservation
// @Param    reference  path  string  true  "Booking reference"
// @Success  200  {object}  domain.ReservationDetails
// @Failure  404  {object}  ErrorResponse
// @Router   /reservations/{reference} [get]
func handleGetReservation(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		rd, err := svcs.Query.ReservationByReference(
			c.Request.Context(),
			c.Param("reference"),
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, rd)
	}
}

// @Summary  Cancel a reservation
// @Param    reference  path  string  true  "Booking reference"
// @Success  200  {object}  domain.Reservation
// @Failure  404  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse  "already checked in or completed"
// @Router   /reservations/{reference}/cancel [post]
func handleCancel(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		rd, err := svcs.Query.ReservationByReference(
			c.Request.Context(),
			c.Param("reference"),
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		res, err := svcs.Booking.Cancel(c.Request.Context(), rd.ID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary  Check in a reservation
// @Param    reference  path  string  true  "Booking reference"
// @Success  200  {object}  domain.Reservation
// @Failure  404  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse  "not confirmed / flight closed"
// @Router   /reservations/{reference}/checkin [post]
func handleCheckIn(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		rd, err := svcs.Query.ReservationByReference(
			c.Request.Context(),
			c.Param("reference"),
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		res, err := svcs.Booking.CheckIn(c.Request.Context(), rd.ID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary  List all flights
// @Success  200  {array}  domain.FlightDetails
// @Router   /admin/flights [get]
func handleAdminListFlights(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		flights, err := svcs.Admin.ListFlights(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, flights)
	}
}

// @Summary  Update flight status
// @Param    id   path  int                        true  "Flight ID"
// @Param    req  body  UpdateFlightStatusRequest  true  "payload"
// @Success  200  {object}  map[string]string
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /admin/flights/{id}/status [patch]
func handleUpdateFlightStatus(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		flightID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req UpdateFlightStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if err := svcs.Admin.UpdateFlightStatus(
			c.Request.Context(),
			flightID,
			domain.FlightStatus(req.Status),
		); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": req.Status})
	}
}

// @Summary  Flight manifest
// @Param    id  path  int  true  "Flight ID"
// @Success  200  {array}   domain.ManifestEntry
// @Failure  404  {object}  ErrorResponse
// @Router   /admin/flights/{id}/manifest [get]
func handleManifest(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		flightID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		entries, err := svcs.Admin.Manifest(c.Request.Context(), flightID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

// @Summary  Dashboard stats
// @Success  200  {object}  domain.Stats
// @Router   /admin/stats [get]
func handleStats(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := svcs.Admin.Stats(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

// --- Helpers ---

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	var bookingValidation *booking.ValidationError
	var queryValidation *query.ValidationError
	var invalidTransition *booking.InvalidTransitionError
	var invalidStatus *admin.InvalidStatusError

	switch {
	// bad input
	case errors.As(err, &bookingValidation):
		badRequest(c, bookingValidation.Error())
		return
	case errors.As(err, &queryValidation):
		badRequest(c, queryValidation.Error())
		return
	case errors.As(err, &invalidStatus):
		badRequest(c, invalidStatus.Error())
		return
	// not found
	case errors.Is(err, booking.ErrFlightNotFound),
		errors.Is(err, query.ErrFlightNotFound),
		errors.Is(err, admin.ErrFlightNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "flight not found"})
		return
	case errors.Is(err, booking.ErrSeatNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "seat not found"})
		return
	case errors.Is(err, booking.ErrReservationNotFound),
		errors.Is(err, query.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "reservation not found"})
		return
	// booking conflicts
	case errors.Is(err, booking.ErrSeatUnavailable):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "seat is already taken"})
		return
	case errors.Is(err, booking.ErrFlightNotBookable):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "flight is not open for booking"})
		return
	case errors.Is(err, booking.ErrSeatNotOnFlight),
		errors.Is(err, booking.ErrCabinClassMismatch):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "seat does not match this flight"})
		return
	case errors.Is(err, booking.ErrPassengerConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "passport number is registered to another passenger"})
		return
	case errors.As(err, &invalidTransition):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:  invalidTransition.Error(),
			Status: string(invalidTransition.Current),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
