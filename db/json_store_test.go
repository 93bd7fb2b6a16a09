package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

func TestJSONTicketStoreRoundTrip(t *testing.T) {
	store := NewJSONTicketStore(filepath.Join(t.TempDir(), "tickets.json"))
	ctx := context.Background()

	tickets := []entities.Ticket{
		{
			TicketID:   "t-1",
			CustomerID: "customer-1",
			TripID:     "rm-mi-morning",
			Class:      entities.ClassEconomy,
			PriceType:  entities.PriceTypeStandard,
			PaidPrice:  47.5,
			Kind:       entities.KindPurchased,
			Status:     entities.StatusConfirmed,
			CreatedAt:  time.Now().UTC().Truncate(time.Second),
		},
		{
			TicketID:   "t-2",
			CustomerID: "customer-2",
			TripID:     "rm-mi-morning",
			Class:      entities.ClassPremium,
			PriceType:  entities.PriceTypeLoyalty,
			PaidPrice:  72,
			Kind:       entities.KindBooked,
			Status:     entities.StatusBooked,
			CreatedAt:  time.Now().UTC().Truncate(time.Second),
		},
	}

	require.NoError(t, store.SaveAll(ctx, tickets))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, tickets, loaded)
}

func TestJSONTicketStoreMissingFileIsEmpty(t *testing.T) {
	store := NewJSONTicketStore(filepath.Join(t.TempDir(), "nothing-here.json"))

	loaded, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestJSONTicketStoreSaveReplacesTheCollection(t *testing.T) {
	store := NewJSONTicketStore(filepath.Join(t.TempDir(), "tickets.json"))
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx, []entities.Ticket{{TicketID: "t-1"}, {TicketID: "t-2"}}))
	require.NoError(t, store.SaveAll(ctx, []entities.Ticket{{TicketID: "t-3"}}))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "t-3", loaded[0].TicketID)
}
