// Package catalog holds the read-only list of scheduled trips. The list is
// an immutable snapshot loaded at startup, so lookups need no locking.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

var ErrTripNotFound = errors.New("trip not found")

type Catalog struct {
	trips []entities.Trip
	byID  map[string]entities.Trip
}

func New(trips []entities.Trip) *Catalog {
	byID := make(map[string]entities.Trip, len(trips))
	for _, t := range trips {
		byID[t.TripID] = t
	}
	return &Catalog{trips: trips, byID: byID}
}

// LoadFile reads the trip schedule fixture.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read trips file: %w", err)
	}

	var trips []entities.Trip
	if err := json.Unmarshal(raw, &trips); err != nil {
		return nil, fmt.Errorf("could not parse trips file: %w", err)
	}

	return New(trips), nil
}

func (c *Catalog) TripByID(_ context.Context, tripID string) (entities.Trip, error) {
	trip, ok := c.byID[tripID]
	if !ok {
		return entities.Trip{}, ErrTripNotFound
	}
	return trip, nil
}

// Find returns trips matching every set filter field.
func (c *Catalog) Find(_ context.Context, filter entities.TripFilter) []entities.Trip {
	var matched []entities.Trip
	for _, trip := range c.trips {
		if matches(trip, filter) {
			matched = append(matched, trip)
		}
	}
	return matched
}

func matches(trip entities.Trip, filter entities.TripFilter) bool {
	if filter.Origin != "" && !strings.EqualFold(trip.Origin, filter.Origin) {
		return false
	}
	if filter.Destination != "" && !strings.EqualFold(trip.Destination, filter.Destination) {
		return false
	}
	if filter.Date != "" && trip.Departure.Format("2006-01-02") != filter.Date {
		return false
	}
	if filter.TimeBand != "" && timeBand(trip.Departure.Hour()) != strings.ToLower(filter.TimeBand) {
		return false
	}
	if filter.FreeText != "" {
		text := strings.ToLower(filter.FreeText)
		haystack := strings.ToLower(trip.Origin + " " + trip.Destination + " " + trip.Vehicle.Name)
		if !strings.Contains(haystack, text) {
			return false
		}
	}
	return true
}

func timeBand(hour int) string {
	switch {
	case hour < 6:
		return "night"
	case hour < 12:
		return "morning"
	case hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}
