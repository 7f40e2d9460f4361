package cmd

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"
)

const (
	DefaultUnpaidOrderTTL  = 15 * time.Minute
	DefaultOutboxBatchSize = 100
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	UnpaidOrderTTL         time.Duration
	OutboxBatchSize        int
	ServiceName            string
	ServiceVersion         string
}

// NewConfig reads the configuration through getenv, applying defaults to the
// optional keys.
func NewConfig(getenv func(string) string) (Config, error) {
	ttl, err := durationOr(getenv("UNPAID_ORDER_TTL"), DefaultUnpaidOrderTTL)
	if err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("UNPAID_ORDER_TTL", err)
	}

	batchSize, err := intOr(getenv("OUTBOX_BATCH_SIZE"), DefaultOutboxBatchSize)
	if err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("OUTBOX_BATCH_SIZE", err)
	}

	config := Config{
		HTTPPort:               stringOr(getenv("HTTP_PORT"), "8080"),
		DBHost:                 getenv("DB_HOST"),
		DBPort:                 stringOr(getenv("DB_PORT"), "5432"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              stringOr(getenv("DB_SSLMODE"), "disable"),
		KafkaHost:              stringOr(getenv("KAFKA_HOST"), "localhost:9092"),
		KafkaOrderChangedTopic: stringOr(getenv("KAFKA_ORDER_CHANGED_TOPIC"), "order.status_changed"),
		UnpaidOrderTTL:         ttl,
		OutboxBatchSize:        batchSize,
		ServiceName:            stringOr(getenv("SERVICE_NAME"), "tech-challenge"),
		ServiceVersion:         stringOr(getenv("SERVICE_VERSION"), "dev"),
	}

	for key, value := range map[string]string{
		"DB_HOST": config.DBHost,
		"DB_USER": config.DBUser,
		"DB_NAME": config.DBName,
	} {
		if value == "" {
			return Config{}, errs.NewValueIsRequiredError(key)
		}
	}

	return config, nil
}

// DSN is the gorm/pgx connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// DatabaseURL is the postgres:// form used by migrations.
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSslMode),
	}
	return u.String()
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func durationOr(value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	return time.ParseDuration(value)
}

func intOr(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}
