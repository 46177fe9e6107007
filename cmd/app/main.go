package main

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"robodelivery/cmd"
	_ "robodelivery/docs"
	httpin "robodelivery/internal/adapters/in/http"
	"robodelivery/internal/adapters/out/postgres/orderrepo"
	"robodelivery/internal/adapters/out/postgres/productrepo"
	"robodelivery/internal/generated/servers"
	"robodelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	apiBasePath     = "/api/v1"
	shutdownTimeout = 10 * time.Second
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateGetOrderStatsQueryHandler(),
		app.CreateGetPendingOrdersQueryHandler(),
		jobs.DefaultOverdueThreshold,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		RobotAPIKey: goDotEnvVariable("ROBOT_API_KEY"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &productrepo.ProductDTO{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

// robotAPIKeyMiddleware enforces the X-API-Key header on the robot-facing
// routes only; order placement and read endpoints stay open.
func robotAPIKeyMiddleware(apiKey string) echo.MiddlewareFunc {
	robotPaths := map[string]bool{
		apiBasePath + "/delivery-plan": true,
		apiBasePath + "/orders/status": true,
	}

	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "header:X-API-Key",
		Skipper: func(c echo.Context) bool {
			return !robotPaths[c.Path()]
		},
		Validator: func(key string, c echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1, nil
		},
	})
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Use(robotAPIKeyMiddleware(configs.RobotAPIKey))

	server := httpin.NewServer(
		app.CreateRequestPlanCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateGetPendingOrdersQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, apiBasePath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
