package entities

import "time"

type PromotionScope string

const (
	ScopeGeneral     PromotionScope = "general"
	ScopeLoyaltyOnly PromotionScope = "loyalty-only"
	ScopeTrip        PromotionScope = "trip-specific"
)

// Promotion is a discount rule with a validity window. Discount is a
// fraction of the table fare, e.g. 0.25 for 25% off. TripID is set only for
// trip-specific promotions.
type Promotion struct {
	PromotionID string         `json:"promotion_id" db:"promotion_id"`
	Name        string         `json:"name" db:"name"`
	Discount    float64        `json:"discount" db:"discount"`
	ValidFrom   time.Time      `json:"valid_from" db:"valid_from"`
	ValidTo     time.Time      `json:"valid_to" db:"valid_to"`
	Scope       PromotionScope `json:"scope" db:"scope"`
	TripID      string         `json:"trip_id,omitempty" db:"trip_id"`
}

func (p Promotion) ValidAt(t time.Time) bool {
	return !t.Before(p.ValidFrom) && !t.After(p.ValidTo)
}
