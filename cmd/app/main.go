package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avykhor/airport-api/config"
	"github.com/avykhor/airport-api/internal/bootstrap"
	"github.com/avykhor/airport-api/internal/cache"
	"github.com/avykhor/airport-api/internal/kafka"
	"github.com/avykhor/airport-api/internal/logging"
	"github.com/avykhor/airport-api/internal/repository"
	"github.com/avykhor/airport-api/internal/service/fleet"
	"github.com/avykhor/airport-api/internal/service/flights"
	"github.com/avykhor/airport-api/internal/service/geo"
	"github.com/avykhor/airport-api/internal/service/orders"
	"github.com/avykhor/airport-api/internal/service/routes"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	airplaneTypeRepo := repository.NewAirplaneTypeRepository(pool)
	airplaneRepo := repository.NewAirplaneRepository(pool)
	crewRepo := repository.NewCrewRepository(pool)
	countryRepo := repository.NewCountryRepository(pool)
	locationRepo := repository.NewLocationRepository(pool)
	airportRepo := repository.NewAirportRepository(pool)
	routeRepo := repository.NewRouteRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	svc := bootstrap.Services{
		Fleet:   fleet.NewFleetService(airplaneTypeRepo, airplaneRepo, crewRepo),
		Geo:     geo.NewGeoService(countryRepo, locationRepo, airportRepo),
		Routes:  routes.NewRouteService(routeRepo),
		Flights: flights.NewFlightService(flightRepo, redisCache, logger),
		Orders: orders.NewOrderService(
			orderRepo,
			flightRepo,
			redisCache,
			producer,
			cfg.Kafka.OrderTopic,
			time.Duration(cfg.Booking.SeatLockTTLSeconds)*time.Second,
			logger,
			orders.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		),
	}

	if err := bootstrap.Run(ctx, cfg, logger, svc); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
