package outbox

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-sql/v2/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/jmoiron/sqlx"
)

func NewSubscriber(db *sqlx.DB, logger watermill.LoggerAdapter) message.Subscriber {
	sub, err := sql.NewSubscriber(db, sql.SubscriberConfig{
		SchemaAdapter:  sql.DefaultPostgreSQLSchema{},
		OffsetsAdapter: sql.DefaultPostgreSQLOffsetsAdapter{},
	}, logger)
	if err != nil {
		panic(err)
	}

	if err := sub.SubscribeInitialize(topic); err != nil {
		panic(err)
	}

	return sub
}
