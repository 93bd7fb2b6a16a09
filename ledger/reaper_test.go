package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

type busStub struct {
	mu        sync.Mutex
	published []any
}

func (b *busStub) Publish(_ context.Context, event any) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.published = append(b.published, event)
	return nil
}

func TestSweepReclaimsAndPublishes(t *testing.T) {
	ctx := context.Background()
	trip := testTrip(2)
	l := NewLedger(&storeStub{})
	bus := &busStub{}
	reaper := NewReaper(l, bus, 10*time.Minute, time.Minute)

	stale := draftFor(trip)
	stale.CreatedAt = time.Now().Add(-11 * time.Minute)
	_, err := l.TryReserve(ctx, trip, stale)
	require.NoError(t, err)

	reclaimed := reaper.Sweep(ctx)

	require.Len(t, reclaimed, 1)
	require.Len(t, bus.published, 1)

	event, ok := bus.published[0].(entities.TicketReclaimed)
	require.True(t, ok)
	assert.Equal(t, stale.TicketID, event.TicketID)
	assert.Equal(t, trip.TripID, event.TripID)

	assert.Equal(t, 0, l.CountByTrip(trip.TripID))
}

func TestSweepWithNothingExpired(t *testing.T) {
	ctx := context.Background()
	trip := testTrip(2)
	l := NewLedger(&storeStub{})
	bus := &busStub{}
	reaper := NewReaper(l, bus, 10*time.Minute, time.Minute)

	_, err := l.TryReserve(ctx, trip, draftFor(trip))
	require.NoError(t, err)

	reclaimed := reaper.Sweep(ctx)

	assert.Empty(t, reclaimed)
	assert.Empty(t, bus.published)
	assert.Equal(t, 1, l.CountByTrip(trip.TripID))
}

func TestRunStopsOnContextCancel(t *testing.T) {
	l := NewLedger(&storeStub{})
	reaper := NewReaper(l, &busStub{}, time.Minute, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- reaper.Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reaper did not stop")
	}
}
