package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

func testCatalog() *Catalog {
	return New([]entities.Trip{
		{
			TripID:      "rm-mi-morning",
			Origin:      "Roma",
			Destination: "Milano",
			Departure:   time.Date(2026, 9, 10, 8, 30, 0, 0, time.UTC),
			Vehicle:     entities.Vehicle{Name: "Frecciarossa 1000", Capacity: 400},
		},
		{
			TripID:      "rm-mi-evening",
			Origin:      "Roma",
			Destination: "Milano",
			Departure:   time.Date(2026, 9, 10, 19, 0, 0, 0, time.UTC),
			Vehicle:     entities.Vehicle{Name: "Intercity 590", Capacity: 250},
		},
		{
			TripID:      "na-to-morning",
			Origin:      "Napoli",
			Destination: "Torino",
			Departure:   time.Date(2026, 9, 11, 9, 0, 0, 0, time.UTC),
			Vehicle:     entities.Vehicle{Name: "Frecciarossa 1000", Capacity: 400},
		},
	})
}

func TestTripByID(t *testing.T) {
	c := testCatalog()

	trip, err := c.TripByID(context.Background(), "rm-mi-morning")
	require.NoError(t, err)
	assert.Equal(t, "Roma", trip.Origin)

	_, err = c.TripByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestFindByRoute(t *testing.T) {
	c := testCatalog()

	trips := c.Find(context.Background(), entities.TripFilter{Origin: "roma", Destination: "MILANO"})

	require.Len(t, trips, 2)
	for _, trip := range trips {
		assert.Equal(t, "Roma", trip.Origin)
	}
}

func TestFindByDateAndTimeBand(t *testing.T) {
	c := testCatalog()

	trips := c.Find(context.Background(), entities.TripFilter{Date: "2026-09-10", TimeBand: "evening"})

	require.Len(t, trips, 1)
	assert.Equal(t, "rm-mi-evening", trips[0].TripID)
}

func TestFindByFreeText(t *testing.T) {
	c := testCatalog()

	trips := c.Find(context.Background(), entities.TripFilter{FreeText: "intercity"})

	require.Len(t, trips, 1)
	assert.Equal(t, "rm-mi-evening", trips[0].TripID)

	trips = c.Find(context.Background(), entities.TripFilter{FreeText: "torino"})
	require.Len(t, trips, 1)
	assert.Equal(t, "na-to-morning", trips[0].TripID)
}

func TestFindEmptyFilterReturnsEverything(t *testing.T) {
	c := testCatalog()

	trips := c.Find(context.Background(), entities.TripFilter{})

	assert.Len(t, trips, 3)
}
