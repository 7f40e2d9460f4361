package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/cmd"
	httpin "github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/adapters/in/http"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/adapters/out/kafka"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/telemetry"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	metricsHandler, shutdownMetrics, err := telemetry.InitMeterProvider(configs.ServiceName, configs.ServiceVersion)
	if err != nil {
		log.Fatalf("Error initializing metrics: %v", err)
	}

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	writer := kafka.NewWriter(configs.KafkaHost, configs.KafkaOrderChangedTopic)
	publisher, err := kafka.NewPublisher(writer, configs.KafkaOrderChangedTopic, logger)
	if err != nil {
		log.Fatalf("Error creating event publisher: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, publisher, otel.Meter(telemetry.MeterName), logger)
	if err != nil {
		log.Fatalf("Error composing application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := startWebServer(app.CreateHTTPServer(), metricsHandler, configs.HTTPPort, logger)

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	jobManager.StopAll()
	if err := publisher.Close(); err != nil {
		logger.Error("Kafka writer close failed", "error", err)
	}
	if err := shutdownMetrics(shutdownCtx); err != nil {
		logger.Error("Meter provider shutdown failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	// The .env file is optional; the environment wins when both set a key.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.NewConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func startWebServer(s *httpin.Server, metrics http.Handler, port string, logger *slog.Logger) *http.Server {
	e, err := httpin.NewEcho(s, metrics)
	if err != nil {
		log.Fatalf("Error building HTTP routes: %v", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", port),
		Handler:           otelhttp.NewHandler(e, "orders-api"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	return server
}
