package api

import (
	"context"

	"github.com/brpaz/echozap"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echomiddleware "github.com/oapi-codegen/echo-middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/carelink/vitals/baselines"
	"github.com/carelink/vitals/config"
	"github.com/carelink/vitals/errors"
	"github.com/carelink/vitals/logger"
	"github.com/carelink/vitals/outbox"
	"github.com/carelink/vitals/records"
	"github.com/carelink/vitals/store"
	"github.com/carelink/vitals/users"
	vitalsService "github.com/carelink/vitals/vitals/service"
)

func Start(e *echo.Echo, cfg *config.Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(cfg.ServerAddress()); err != nil {
					logger.Infow("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// It's important this is set after mongo is initialized, which is ensured
			// by taking a dependency on mongo in the constructor, because lifecycle hooks
			// are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
	})
}

func NewServer(handler *Handler, healthCheck *HealthCheck, logger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	// Do not validate servers in the open api spec
	swagger.Servers = nil

	// Skip validation and logging for the readiness probe
	skipper := RouteSkipper([]string{"/ready"})
	requestValidator := echomiddleware.OapiRequestValidatorWithOptions(swagger, &echomiddleware.Options{
		Options: openapi3filter.Options{
			// Security schemes are not enforced here
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
		Skipper: skipper,
	})

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(SkipMiddleware(skipper, echozap.ZapLogger(logger)))
	e.Use(requestValidator)

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	RegisterHandlers(e, handler)

	return e, nil
}

// Dependencies returns the DI graph of the service without starting the server.
// It's shared by the server, the CLI and the integration tests.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Suggar,
			config.NewConfig,
			store.NewConfig,
			store.GetConnectionString,
			store.NewLifecycleClient,
			store.NewDatabase,
			users.NewRepository,
			users.NewDirectory,
			records.NewRepository,
			baselines.NewRepository,
			outbox.NewRepository,
			vitalsService.NewService,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
		fx.WithLogger(logger.NewFxLogger),
	}
}

func MainLoop() {
	deps := append(Dependencies(), fx.Invoke(SetReady), fx.Invoke(Start))
	fx.New(deps...).Run()
}
