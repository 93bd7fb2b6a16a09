package event

import (
	"context"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/sirupsen/logrus"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

// NotifyTripChange is the streaming fan-out endpoint for trip-change
// notices. Ticket holders are looked up outside the reservation core; here
// the notice is logged and archived.
func (h Handler) NotifyTripChange(ctx context.Context, event *entities.TripChanged) error {
	log.FromContext(ctx).WithFields(logrus.Fields{
		"trip_id": event.TripID,
		"reason":  event.Reason,
	}).Info("Trip changed, notifying ticket holders")

	return h.archive.Store(ctx, event.Header, "TripChanged", event)
}
