package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/api"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/catalog"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/db"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/message"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/service"
	observability "github.com/CiccioCer27/ProgettoTrenical-sub000/trace"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := log.FromContext(ctx)

	tp := observability.ConfigureTraceProvider()
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()

	conn, err := db.NewDBConn(os.Getenv("POSTGRES_URL"))
	if err != nil {
		logger.WithError(err).Fatal("could not connect to postgres")
	}
	defer conn.Close()
	conn.MigrateSchema()

	trips, err := catalog.LoadFile(envOr("TRIPS_FILE", "data/trips.json"))
	if err != nil {
		logger.WithError(err).Fatal("could not load trip catalog")
	}

	redisClient := message.NewRedisClient(os.Getenv("REDIS_ADDR"))
	defer redisClient.Close()

	payments := api.NewPaymentsClient(os.Getenv("PAYMENTS_ADDR"))

	svc, err := service.New(
		redisClient,
		conn,
		trips,
		payments,
		service.Config{
			TicketsFile:    os.Getenv("TICKETS_FILE"),
			LoyaltyFile:    envOr("LOYALTY_FILE", "data/loyalty.json"),
			PromotionsFile: envOr("PROMOTIONS_FILE", "data/promotions.json"),
			HTTPAddr:       envOr("HTTP_ADDR", ":8080"),
		},
	)
	if err != nil {
		logger.WithError(err).Fatal("could not build service")
	}

	if err := svc.Run(ctx); err != nil {
		logger.WithError(err).Fatal("service stopped")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
