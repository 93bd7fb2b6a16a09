package entities

import "time"

type ServiceClass string

const (
	ClassEconomy ServiceClass = "economy"
	ClassPremium ServiceClass = "premium"
)

type PriceType string

const (
	PriceTypeStandard PriceType = "standard"
	PriceTypeLoyalty  PriceType = "loyalty"
)

type Vehicle struct {
	Name      string   `json:"name" db:"name"`
	Capacity  int      `json:"capacity" db:"capacity"`
	Amenities []string `json:"amenities,omitempty"`
}

// Fare is the table price of one service class: the regular price and the
// preferential price for registered loyalty customers.
type Fare struct {
	Standard float64 `json:"standard"`
	Loyalty  float64 `json:"loyalty"`
}

type Trip struct {
	TripID      string                `json:"trip_id" db:"trip_id"`
	Origin      string                `json:"origin" db:"origin"`
	Destination string                `json:"destination" db:"destination"`
	Departure   time.Time             `json:"departure" db:"departure"`
	Platform    int                   `json:"platform" db:"platform"`
	Vehicle     Vehicle               `json:"vehicle"`
	Fares       map[ServiceClass]Fare `json:"fares"`
}

func (t Trip) Fare(class ServiceClass, priceType PriceType) float64 {
	fare, ok := t.Fares[class]
	if !ok {
		return 0
	}
	if priceType == PriceTypeLoyalty {
		return fare.Loyalty
	}
	return fare.Standard
}

// TripFilter selects trips from the catalog. Zero-valued fields match
// everything.
type TripFilter struct {
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	Date        string `json:"date,omitempty"` // YYYY-MM-DD
	TimeBand    string `json:"time_band,omitempty"`
	FreeText    string `json:"free_text,omitempty"`
}
