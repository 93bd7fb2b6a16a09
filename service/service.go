package service

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	watermillMessage "github.com/ThreeDotsLabs/watermill/message"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/booking"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/catalog"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/db"
	trenicalHttp "github.com/CiccioCer27/ProgettoTrenical-sub000/http"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/ledger"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/message"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/message/event"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/message/outbox"
)

func init() {
	log.Init(logrus.InfoLevel)
}

type Config struct {
	// TicketsFile switches ticket durability from Postgres to a JSON file.
	TicketsFile    string
	LoyaltyFile    string
	PromotionsFile string

	HTTPAddr string
}

type Service struct {
	watermillRouter *watermillMessage.Router
	echoRouter      *echo.Echo
	reaper          *ledger.Reaper
	httpAddr        string
}

func New(
	redisClient *redis.Client,
	conn db.DB,
	trips *catalog.Catalog,
	payments booking.PaymentGateway,
	cfg Config,
) (Service, error) {
	ctx := context.Background()
	watermillLogger := log.NewWatermill(log.FromContext(ctx))

	redisPublisher := message.NewRedisPublisher(redisClient, watermillLogger)

	// events go through the Postgres outbox and are forwarded to redis, so a
	// publish survives a redis outage
	outboxPublisher, err := outbox.NewPublisher(ctx, conn.Conn)
	if err != nil {
		return Service{}, fmt.Errorf("could not create outbox publisher: %w", err)
	}
	eventBus := event.NewBus(outboxPublisher)
	pgSubscriber := outbox.NewSubscriber(conn.Conn, watermillLogger)

	var store ledger.TicketStore
	if cfg.TicketsFile != "" {
		store = db.NewJSONTicketStore(cfg.TicketsFile)
	} else {
		store = db.NewTicketStore(&conn)
	}

	seatLedger := ledger.NewLedger(store)
	if err := seatLedger.Load(ctx); err != nil {
		return Service{}, err
	}

	loyalty, err := db.NewLoyaltyRepository(cfg.LoyaltyFile)
	if err != nil {
		return Service{}, err
	}
	promotions, err := db.NewPromotionRepository(cfg.PromotionsFile)
	if err != nil {
		return Service{}, err
	}

	reaper := ledger.NewReaper(seatLedger, eventBus, ledger.HoldingWindow, ledger.DefaultSweepInterval)

	handler := booking.NewHandler(
		seatLedger,
		reaper,
		trips,
		loyalty,
		promotions,
		payments,
		eventBus,
	)
	dispatcher := booking.NewDispatcher(handler)

	eventsHandler := event.NewHandler(db.NewEventArchive(&conn))
	watermillRouter := message.NewWatermillRouter(
		pgSubscriber,
		redisPublisher,
		event.NewProcessorConfig(redisClient, watermillLogger),
		eventsHandler,
		watermillLogger,
	)

	echoRouter := trenicalHttp.NewHttpRouter(dispatcher, seatLedger, eventBus)

	httpAddr := cfg.HTTPAddr
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	return Service{
		watermillRouter: watermillRouter,
		echoRouter:      echoRouter,
		reaper:          reaper,
		httpAddr:        httpAddr,
	}, nil
}

func (s Service) Run(ctx context.Context) error {
	errgrp, ctx := errgroup.WithContext(ctx)

	errgrp.Go(func() error {
		return s.watermillRouter.Run(ctx)
	})

	errgrp.Go(func() error {
		return s.reaper.Run(ctx)
	})

	errgrp.Go(func() error {
		// the HTTP server starts only after the router is up, so the service
		// is not healthy before it can consume
		<-s.watermillRouter.Running()

		return s.echoRouter.Start(s.httpAddr)
	})

	errgrp.Go(func() error {
		<-ctx.Done()
		return s.echoRouter.Shutdown(context.Background())
	})

	return errgrp.Wait()
}
