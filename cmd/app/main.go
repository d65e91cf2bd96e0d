package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sales/cmd"
	httpin "sales/internal/adapters/in/http"
	"sales/internal/adapters/out/postgres/orderrepo"
	"sales/internal/adapters/out/postgres/statusrepo"
	"sales/internal/core/domain/model/order"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	gormDB := mustGormOpen(makeConnectionString(configs))
	mustAutoMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err := app.CreateStatusLabelRepository().EnsureDefaults(context.Background(), order.DefaultStatusLabels()); err != nil {
		log.Fatalf("failed to seed status labels: %v", err)
	}

	if err := run(app, configs.HTTPPort, logger); err != nil {
		logger.Error().Err(err).Msg("sales service stopped")
		os.Exit(1)
	}
}

// run starts the background jobs and serves HTTP until a signal arrives or
// the server fails. Jobs are stopped before it returns.
func run(app cmd.CompositionRoot, port string, logger zerolog.Logger) error {
	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	return startWebServer(app, port, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("no .env file loaded, using process environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		ReclassifySchedule: goDotEnvVariable("RECLASSIFY_SCHEDULE"),
		LogLevel:           goDotEnvVariable("LOG_LEVEL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	return os.Getenv(key)
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(parsed).
		With().
		Timestamp().
		Str("service", "sales").
		Logger()
}

func makeConnectionString(configs cmd.Config) string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode)
}

func mustGormOpen(connectionString string) *gorm.DB {
	pgGorm, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connectionString,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("connection to postgres through gorm\n: %s", err)
	}
	return pgGorm
}

func mustAutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.InvoiceDTO{},
		&statusrepo.StatusStateDTO{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string, logger zerolog.Logger) error {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:   app.CreateCreateOrderCommandHandler(),
		InvoiceOrder:  app.CreateInvoiceOrderCommandHandler(),
		PayInvoice:    app.CreatePayInvoiceCommandHandler(),
		ShipOrder:     app.CreateShipOrderCommandHandler(),
		RefundOrder:   app.CreateRefundOrderCommandHandler(),
		OrderAction:   app.CreateOrderActionCommandHandler(),
		ClassifyOrder: app.CreateClassifyOrderCommandHandler(),
		GetOrder:      app.CreateGetOrderQueryHandler(),
	})
	e, err := httpin.NewEcho(server, app.ServerMetrics(), app.Registry(), logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	logger.Info().Str("port", port).Msg("http server started")

	select {
	case <-ctx.Done():
	case err = <-serverErr:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown")
	}
	return nil
}
