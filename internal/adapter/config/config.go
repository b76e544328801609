package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Kafka    *Kafka
	Orders   *Orders
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Kafka struct {
	Brokers string `env:"KAFKA_BROKERS"`
	Topic   string `env:"KAFKA_ORDER_TOPIC" envDefault:"order-events"`
}

type Orders struct {
	EnforceCapacity        bool `env:"ORDER_ENFORCE_CAPACITY" envDefault:"true"`
	SpentExcludesCancelled bool `env:"ORDER_SPENT_EXCLUDES_CANCELLED" envDefault:"false"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var kafka Kafka
	var orders Orders
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&kafka.Brokers, "k", "", "Kafka brokers (CSV), empty disables events")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&kafka)
	if err != nil {
		return nil, fmt.Errorf("error parsing kafka config: %w", err)
	}
	err = env.Parse(&orders)
	if err != nil {
		return nil, fmt.Errorf("error parsing orders config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Kafka:    &kafka,
		Orders:   &orders,
		App:      &app,
	}

	return &config, nil
}
