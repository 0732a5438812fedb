package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vkarpenko/flightgate/api"
	"github.com/vkarpenko/flightgate/config"
	"github.com/vkarpenko/flightgate/internal/amadeus"
	"github.com/vkarpenko/flightgate/internal/bootstrap"
	"github.com/vkarpenko/flightgate/internal/cache"
	"github.com/vkarpenko/flightgate/internal/kafka"
	"github.com/vkarpenko/flightgate/internal/repository"
	"github.com/vkarpenko/flightgate/internal/service/booking"
	"github.com/vkarpenko/flightgate/internal/service/locations"
	"github.com/vkarpenko/flightgate/internal/service/search"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	locationsCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.LocationsTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	amadeusClient := amadeus.NewClient(cfg.Amadeus)

	bookingRepo := repository.NewBookingRepository(pool)
	searchService := search.NewSearchService(amadeusClient)
	locationService := locations.NewLocationService(amadeusClient, locationsCache)
	bookingService := booking.NewBookingService(bookingRepo, producer, cfg.Kafka.NotificationsTopic)

	flightHandler := api.NewFlightHandler(searchService)
	locationHandler := api.NewLocationHandler(locationService)
	bookingHandler := api.NewBookingHandler(bookingService)

	if err := bootstrap.Run(ctx, cfg, flightHandler, locationHandler, bookingHandler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
