package main

import (
	"context"
	"fmt"

	"github.com/blossomkart/blossomkart/internal/adapter/auth"
	"github.com/blossomkart/blossomkart/internal/adapter/config"
	"github.com/blossomkart/blossomkart/internal/adapter/events"
	"github.com/blossomkart/blossomkart/internal/adapter/handler/http"
	"github.com/blossomkart/blossomkart/internal/adapter/logger"
	"github.com/blossomkart/blossomkart/internal/adapter/metrics"
	"github.com/blossomkart/blossomkart/internal/adapter/storage"
	"github.com/blossomkart/blossomkart/internal/adapter/storage/repository"
	"github.com/blossomkart/blossomkart/internal/core/port"
	"github.com/blossomkart/blossomkart/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Fatal("error creating db storage", zap.Error(err))
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatal("error running migrations", zap.Error(err))
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Fatal("error creating repository", zap.Error(err))
	}

	tokenService, err := auth.New()
	if err != nil {
		log.Fatal("error creating token service", zap.Error(err))
	}

	var publisher port.EventPublisher
	if kp := events.NewKafkaPublisher(conf.Kafka); kp != nil {
		publisher = kp
		defer func() {
			if err := kp.Close(); err != nil {
				log.Error("error closing event publisher", zap.Error(err))
			}
		}()
	} else {
		log.Info("order events disabled, no kafka brokers configured")
	}

	svc, err := service.NewService(repo, tokenService, publisher, log, service.Policy{
		EnforceCapacity:        conf.Orders.EnforceCapacity,
		SpentExcludesCancelled: conf.Orders.SpentExcludesCancelled,
	})
	if err != nil {
		log.Fatal("error creating service", zap.Error(err))
	}

	userHandler, err := http.NewUserHandler(svc, log)
	if err != nil {
		log.Fatal("error creating user handler", zap.Error(err))
	}
	productHandler, err := http.NewProductHandler(svc, log)
	if err != nil {
		log.Fatal("error creating product handler", zap.Error(err))
	}
	cartHandler, err := http.NewCartHandler(svc, log)
	if err != nil {
		log.Fatal("error creating cart handler", zap.Error(err))
	}
	orderHandler, err := http.NewOrderHandler(svc, log)
	if err != nil {
		log.Fatal("error creating order handler", zap.Error(err))
	}

	serverMetrics := metrics.NewServerMetrics()

	router, err := http.NewRouter(conf.HTTP, tokenService, serverMetrics, log,
		userHandler, productHandler, cartHandler, orderHandler)
	if err != nil {
		log.Fatal("error creating router", zap.Error(err))
	}

	log.Info("starting server", zap.String("address", conf.HTTP.HostString))
	if err := router.Serve(conf.HTTP.HostString); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
