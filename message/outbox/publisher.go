package outbox

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	watermillSQL "github.com/ThreeDotsLabs/watermill-sql/v2/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"

	observability "github.com/CiccioCer27/ProgettoTrenical-sub000/trace"
)

// NewPublisher writes messages to the Postgres outbox table wrapped in the
// forwarder envelope; the forwarder later replays them onto redis. db may be
// a *sqlx.DB or a *sqlx.Tx.
func NewPublisher(ctx context.Context, db watermillSQL.ContextExecutor) (message.Publisher, error) {
	logger := log.NewWatermill(log.FromContext(ctx))

	var publisher message.Publisher
	publisher, err := watermillSQL.NewPublisher(
		db,
		watermillSQL.PublisherConfig{
			SchemaAdapter:        watermillSQL.DefaultPostgreSQLSchema{},
			AutoInitializeSchema: true,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("could not create outbox publisher: %w", err)
	}

	publisher = forwarder.NewPublisher(publisher, forwarder.PublisherConfig{
		ForwarderTopic: topic,
	})
	publisher = log.CorrelationPublisherDecorator{Publisher: publisher}
	publisher = observability.TracingPublisherDecorator{Publisher: publisher}

	return publisher, nil
}
