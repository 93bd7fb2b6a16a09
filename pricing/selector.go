// Package pricing computes the lowest legally-applicable price for a seat.
// Every strategy is a pure function over the trip, the requested class and
// price type, the customer's loyalty standing and the promotion snapshot;
// the selector evaluates all applicable strategies and keeps the strict
// minimum.
package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

type Strategy string

const (
	StrategyStandard    Strategy = "standard"
	StrategyDynamic     Strategy = "dynamic"
	StrategyPromotional Strategy = "promotional"
)

type Quote struct {
	Price       float64
	Strategy    Strategy
	Explanation string
}

type Input struct {
	Trip       entities.Trip
	Class      entities.ServiceClass
	PriceType  entities.PriceType
	Loyal      bool
	Promotions []entities.Promotion
	Now        time.Time
}

// Best returns the cheapest applicable quote. The standard strategy is
// always applicable, so there is always a result; a later strategy replaces
// it only on a strictly lower price.
func Best(in Input) Quote {
	best := quoteStandard(in)

	if q, ok := quoteDynamic(in); ok && q.Price < best.Price {
		best = q
	}
	if q, ok := quotePromotional(in); ok && q.Price < best.Price {
		best = q
	}

	return best
}

func quoteStandard(in Input) Quote {
	price := in.Trip.Fare(in.Class, in.PriceType)
	return Quote{
		Price:       round(price),
		Strategy:    StrategyStandard,
		Explanation: fmt.Sprintf("table fare for %s/%s", in.Class, in.PriceType),
	}
}

// quoteDynamic adjusts the table fare by departure-time and lead-time
// factors. It only applies to trips departing on a later day than Now.
func quoteDynamic(in Input) (Quote, bool) {
	dep := in.Trip.Departure
	if !dep.After(in.Now) || sameDay(dep, in.Now) {
		return Quote{}, false
	}

	factor := 1.0
	details := ""

	hour := dep.Hour()
	if (hour >= 7 && hour < 9) || (hour >= 17 && hour < 19) {
		factor *= 1.15
		details += " peak-hour+15%"
	}
	if hour >= 22 || hour < 6 {
		factor *= 0.90
		details += " night-10%"
	}
	if wd := dep.Weekday(); wd == time.Saturday || wd == time.Sunday {
		factor *= 1.10
		details += " weekend+10%"
	}

	leadDays := dep.Sub(in.Now).Hours() / 24
	switch {
	case leadDays >= 30:
		factor *= 0.80
		details += " early-booking-20%"
	case leadDays <= 1:
		factor *= 1.25
		details += " last-minute+25%"
	case leadDays <= 7:
		factor *= 1.10
		details += " short-notice+10%"
	}

	switch in.Class {
	case entities.ClassPremium:
		factor *= 1.05
		details += " premium+5%"
	case entities.ClassEconomy:
		factor *= 0.95
		details += " economy-5%"
	}

	price := in.Trip.Fare(in.Class, in.PriceType) * factor
	return Quote{
		Price:       round(price),
		Strategy:    StrategyDynamic,
		Explanation: "dynamic adjustment:" + details,
	}, true
}

// quotePromotional applies every currently valid, in-scope promotion to the
// table fare and, for loyalty customers, also considers the loyalty table
// fare. The cheapest candidate wins.
func quotePromotional(in Input) (Quote, bool) {
	base := in.Trip.Fare(in.Class, in.PriceType)

	var (
		found bool
		best  float64
		expl  string
	)

	consider := func(price float64, explanation string) {
		if !found || price < best {
			found = true
			best = price
			expl = explanation
		}
	}

	for _, promo := range in.Promotions {
		if !promo.ValidAt(in.Now) {
			continue
		}
		switch promo.Scope {
		case entities.ScopeGeneral:
		case entities.ScopeLoyaltyOnly:
			if !in.Loyal {
				continue
			}
		case entities.ScopeTrip:
			if promo.TripID != in.Trip.TripID {
				continue
			}
		default:
			continue
		}

		consider(base*(1-promo.Discount), fmt.Sprintf("promotion %q -%d%%", promo.Name, int(promo.Discount*100)))
	}

	if in.Loyal {
		consider(in.Trip.Fare(in.Class, entities.PriceTypeLoyalty), "loyalty table fare")
	}

	if !found {
		return Quote{}, false
	}
	return Quote{
		Price:       round(best),
		Strategy:    StrategyPromotional,
		Explanation: expl,
	}, true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func round(p float64) float64 {
	return math.Round(p*100) / 100
}
