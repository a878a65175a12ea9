// Package config reads process configuration from the environment. A .env
// file is honoured through godotenv, loaded by the entrypoint.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	StoreDriver string
	DynamoDB    DynamoDB
	Tables      Tables

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	PaymentNotificationURL string

	IssuerAPIURL string
	IssuerAPIKey string

	CollaboratorTimeout time.Duration
	ShutdownTimeout     time.Duration
}

// DynamoDB holds the client settings. Endpoint targets DynamoDB Local; when
// CreateTables is set the service creates missing tables at startup.
type DynamoDB struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	CreateTables    bool
}

type Tables struct {
	Policies    string
	Clients     string
	Vehicles    string
	Offers      string
	Templates   string
	Transitions string
	Payments    string
	Issuances   string
}

func Load() (Config, error) {
	cfg := Config{
		Port:      getenvDefault("PORT", "8080"),
		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
		LogFormat: getenvDefault("LOG_FORMAT", "json"),

		StoreDriver: strings.ToLower(getenvDefault("STORE_DRIVER", StoreDynamoDB)),
		DynamoDB: DynamoDB{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		},
		Tables: Tables{
			Policies:    getenvDefault("POLICIES_TABLE", "policies"),
			Clients:     getenvDefault("CLIENT_DATA_TABLE", "client_data"),
			Vehicles:    getenvDefault("VEHICLE_DATA_TABLE", "vehicle_data"),
			Offers:      getenvDefault("QUOTATION_OFFERS_TABLE", "quotation_offers"),
			Templates:   getenvDefault("QUOTATION_TEMPLATES_TABLE", "quotation_templates"),
			Transitions: getenvDefault("STATE_TRANSITIONS_TABLE", "state_transitions"),
			Payments:    getenvDefault("POLICY_PAYMENTS_TABLE", "policy_payments"),
			Issuances:   getenvDefault("POLICY_ISSUANCES_TABLE", "policy_issuances"),
		},

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentNotificationURL: os.Getenv("PAYMENT_NOTIFICATION_URL"),

		IssuerAPIURL: strings.TrimRight(os.Getenv("ISSUER_API_URL"), "/"),
		IssuerAPIKey: os.Getenv("ISSUER_API_KEY"),
	}

	var err error
	if cfg.RedisDB, err = getenvInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.DynamoDB.CreateTables, err = getenvBool("DYNAMODB_CREATE_TABLES", cfg.DynamoDB.Endpoint != ""); err != nil {
		return Config{}, err
	}
	mock := os.Getenv("PAYMENT_GATEWAY_MOCK")
	if mock == "" {
		mock = os.Getenv("MERCADOPAGO_MOCK")
	}
	if mock == "" {
		cfg.PaymentGatewayMock = cfg.MercadoPagoAccessToken == ""
	} else if cfg.PaymentGatewayMock, err = strconv.ParseBool(mock); err != nil {
		return Config{}, fmt.Errorf("config: PAYMENT_GATEWAY_MOCK: %w", err)
	}
	if cfg.CollaboratorTimeout, err = getenvDuration("COLLABORATOR_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreDynamoDB, StoreMemory:
	default:
		return fmt.Errorf("config: STORE_DRIVER must be %q or %q, got %q", StoreDynamoDB, StoreMemory, c.StoreDriver)
	}
	if !c.PaymentGatewayMock && c.MercadoPagoAccessToken == "" {
		return fmt.Errorf("config: MERCADOPAGO_ACCESS_TOKEN is required when the payment gateway mock is disabled")
	}
	if c.CollaboratorTimeout <= 0 {
		return fmt.Errorf("config: COLLABORATOR_TIMEOUT must be positive")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}
