package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avykhor/airport-api/api"
	"github.com/avykhor/airport-api/config"
	"github.com/avykhor/airport-api/internal/auth"
	"github.com/avykhor/airport-api/internal/service/fleet"
	"github.com/avykhor/airport-api/internal/service/flights"
	"github.com/avykhor/airport-api/internal/service/geo"
	"github.com/avykhor/airport-api/internal/service/orders"
	"github.com/avykhor/airport-api/internal/service/routes"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Services struct {
	Fleet   fleet.FleetUseCase
	Geo     geo.GeoUseCase
	Routes  routes.RouteUseCase
	Flights flights.FlightUseCase
	Orders  orders.OrderUseCase
}

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger, svc Services) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, log, svc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	log.Info("http server started", zap.String("address", cfg.HTTP.Address))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, log *zap.Logger, svc Services) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	authed := auth.Middleware(cfg.Auth.JWTSecret)
	staff := []gin.HandlerFunc{authed, auth.RequireStaff()}

	v1 := router.Group("/api/v1")

	api.NewAirplaneTypeHandler(svc.Fleet).Register(v1.Group("/airplane-types"), staff...)
	api.NewAirplaneHandler(svc.Fleet).Register(v1.Group("/airplanes"), staff...)
	api.NewCrewHandler(svc.Fleet).Register(v1.Group("/crews"), staff...)
	api.NewCountryHandler(svc.Geo).Register(v1.Group("/countries"), staff...)
	api.NewLocationHandler(svc.Geo).Register(v1.Group("/locations"), staff...)
	api.NewAirportHandler(svc.Geo).Register(v1.Group("/airports"), staff...)
	api.NewRouteHandler(svc.Routes).Register(v1.Group("/routes"), staff...)
	api.NewFlightHandler(svc.Flights).Register(v1.Group("/flights"), staff...)

	api.NewOrderHandler(svc.Orders).Register(v1.Group("/orders", authed))
	api.NewTicketHandler(svc.Orders).Register(v1.Group("/tickets", staff...))

	return router
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
