package service

import (
	"log/slog"

	"github.com/odudar/skybook/internal/config"
	postgresrepo "github.com/odudar/skybook/internal/repository/postgres"
	redisrepo "github.com/odudar/skybook/internal/repository/redis"
	"github.com/odudar/skybook/internal/service/admin"
	"github.com/odudar/skybook/internal/service/booking"
	"github.com/odudar/skybook/internal/service/query"
)

// Services bundles the application services for the transport layer.
type Services struct {
	Booking *booking.Service
	Query   *query.Service
	Admin   *admin.Service
}

func NewServices(
	store *postgresrepo.Store,
	pubsub *redisrepo.FlightsPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
	cfg *config.Config,
	logger *slog.Logger,
) *Services {
	return &Services{
		Booking: booking.New(booking.NewTxStore(store), pubsub, limiter, booking.Config{
			BusinessMultiplier:   cfg.Booking.BusinessMultiplier,
			MaxReferenceAttempts: cfg.Booking.MaxReferenceAttempts,
		}),
		Query: query.New(store),
		Admin: admin.New(store, pubsub, logger),
	}
}
