package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"comandas/cmd"
	httpadapter "comandas/internal/adapters/in/http"
	"comandas/internal/adapters/out/postgres"
	"comandas/internal/adapters/out/postgres/orderrepo"
	"comandas/internal/adapters/out/postgres/stationrepo"
	"comandas/internal/core/application/usecases/commands"
	"comandas/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const storeReadinessAttempts = 30

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx := context.Background()

	// The service must not accept traffic or start the admission worker
	// before the order store answers.
	if err := postgres.WaitForStore(ctx, configs.DSN(), storeReadinessAttempts); err != nil {
		log.Fatalf("Store is not reachable: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &stationrepo.StationDTO{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	// Crash recovery: rebuild occupancy from the store before the first
	// admission tick.
	recomputeHandler := app.CreateRecomputeOccupancyCommandHandler()
	if err = recomputeHandler.Handle(ctx, commands.NewRecomputeOccupancyCommand()); err != nil {
		log.Fatalf("Failed to recompute occupancy: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateAdmitPendingOrdersCommandHandler(),
		recomputeHandler,
		configs.WorkerSchedule,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	e := echo.New()
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCreateStationCommandHandler(),
		app.CreateRecordOrderTransitionCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetStationLoadQueryHandler(),
	)
	server.RegisterRoutes(e)

	go func() {
		if serveErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); serveErr != nil &&
			serveErr != http.ErrServerClosed {
			log.Fatalf("Web server failed: %v", serveErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	// Stop admitting first so no new events race the broadcaster teardown.
	jobManager.StopAll()
	app.Broadcaster().Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Web server shutdown failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		WorkerSchedule:   goDotEnvVariable("WORKER_SCHEDULE"),
		ClientOutboxSize: goDotEnvIntVariable("CLIENT_OUTBOX_SIZE"),
	}

	if config.WorkerSchedule == "" {
		config.WorkerSchedule = "*/3 * * * * *"
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

func goDotEnvIntVariable(key string) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}
