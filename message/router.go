package message

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/message/event"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/message/outbox"
)

// NewWatermillRouter runs the event consumers and, when a Postgres outbox
// subscriber is provided, the forwarder moving outbox rows onto redis.
func NewWatermillRouter(
	pgSubscriber message.Subscriber,
	publisher message.Publisher,
	eventProcessorConfig cqrs.EventProcessorConfig,
	eventHandler event.Handler,
	watermillLogger watermill.LoggerAdapter,
) *message.Router {
	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		panic(err)
	}

	useMiddlewares(router, watermillLogger)

	if pgSubscriber != nil {
		_, err = outbox.NewForwarder(pgSubscriber, publisher, watermillLogger, router)
		if err != nil {
			panic(err)
		}
	}

	eventProcessor, err := cqrs.NewEventProcessorWithConfig(router, eventProcessorConfig)
	if err != nil {
		panic(err)
	}

	err = eventProcessor.AddHandlers(
		cqrs.NewEventHandler(
			"ArchiveTicketIssued",
			eventHandler.ArchiveTicketIssued,
		),
		cqrs.NewEventHandler(
			"ArchiveTicketConfirmed",
			eventHandler.ArchiveTicketConfirmed,
		),
		cqrs.NewEventHandler(
			"ArchiveTicketModified",
			eventHandler.ArchiveTicketModified,
		),
		cqrs.NewEventHandler(
			"ArchiveTicketReclaimed",
			eventHandler.ArchiveTicketReclaimed,
		),
		cqrs.NewEventHandler(
			"ArchiveLoyaltyActivated",
			eventHandler.ArchiveLoyaltyActivated,
		),
		cqrs.NewEventHandler(
			"NotifyTripChange",
			eventHandler.NotifyTripChange,
		),
	)
	if err != nil {
		panic(err)
	}

	return router
}
